package booking

import (
	"strings"
	"time"

	"coachbook/internal/domain/slotkey"
	"coachbook/internal/pkg/errs"
)

var (
	ErrEmptyCoach     = errs.Class("booking coach id is required", errs.ErrValidation)
	ErrEmptySeeker    = errs.Class("seeker id is required", errs.ErrValidation)
	ErrEmptySlotKey   = errs.Class("both availability keys are required", errs.ErrValidation)
	ErrSameSlotTwice  = errs.Class("availability keys must be distinct", errs.ErrValidation)
	ErrNotParticipant = errs.Class("caller is neither the coach nor the seeker of this booking", errs.ErrForbidden)
)

// Booking reserves two of a coach's slots for one seeker.
type Booking struct {
	key       string
	coachID   string
	seekerID  string
	calendar  slotkey.Calendar
	slotKeys  [2]string
	terms     terms
	createdAt time.Time
}

func New(coachID, seekerID string, cal slotkey.Calendar, slotA, slotB string, n Negotiation, now time.Time) (*Booking, error) {
	coachID = strings.TrimSpace(coachID)
	if coachID == "" {
		return nil, ErrEmptyCoach
	}
	seekerID = strings.TrimSpace(seekerID)
	if seekerID == "" {
		return nil, ErrEmptySeeker
	}
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	slotA, slotB = strings.TrimSpace(slotA), strings.TrimSpace(slotB)
	if slotA == "" || slotB == "" {
		return nil, ErrEmptySlotKey
	}
	if slotA == slotB {
		return nil, ErrSameSlotTwice
	}
	t, err := n.normalize()
	if err != nil {
		return nil, err
	}

	return &Booking{
		key:       slotkey.ForBooking(coachID, seekerID, cal),
		coachID:   coachID,
		seekerID:  seekerID,
		calendar:  cal,
		slotKeys:  [2]string{slotA, slotB},
		terms:     t,
		createdAt: now,
	}, nil
}

func Reconstruct(
	key, coachID, seekerID string,
	cal slotkey.Calendar,
	slotKeys [2]string,
	goals, questions, resumeURL *string,
	priceCents int32,
	pending, confirmed bool,
	createdAt time.Time,
) *Booking {
	return &Booking{
		key:      key,
		coachID:  coachID,
		seekerID: seekerID,
		calendar: cal,
		slotKeys: slotKeys,
		terms: terms{
			interviewGoals:     goals,
			interviewQuestions: questions,
			resumeURL:          resumeURL,
			priceCents:         priceCents,
			pending:            pending,
			confirmed:          confirmed,
		},
		createdAt: createdAt,
	}
}

// CheckParticipant allows only the coach or the seeker to act on the booking.
func (b *Booking) CheckParticipant(userID string) error {
	if userID == "" || (userID != b.coachID && userID != b.seekerID) {
		return ErrNotParticipant
	}
	return nil
}

func (b *Booking) Key() string                 { return b.key }
func (b *Booking) CoachID() string             { return b.coachID }
func (b *Booking) SeekerID() string            { return b.seekerID }
func (b *Booking) Calendar() slotkey.Calendar  { return b.calendar }
func (b *Booking) SlotKeys() [2]string         { return b.slotKeys }
func (b *Booking) InterviewGoals() *string     { return b.terms.interviewGoals }
func (b *Booking) InterviewQuestions() *string { return b.terms.interviewQuestions }
func (b *Booking) ResumeURL() *string          { return b.terms.resumeURL }
func (b *Booking) PriceCents() int32           { return b.terms.priceCents }
func (b *Booking) Pending() bool               { return b.terms.pending }
func (b *Booking) Confirmed() bool             { return b.terms.confirmed }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }

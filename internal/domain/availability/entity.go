package availability

import (
	"strings"

	"coachbook/internal/domain/slotkey"
	"coachbook/internal/pkg/errs"
)

var (
	ErrEmptyCoach = errs.Class("availability coach id is required", errs.ErrValidation)
	// ErrSlotReserved guards the open-only deletion rule.
	ErrSlotReserved = errs.Class("availability is reserved by a booking", errs.ErrConflict)
)

// Availability is one bookable slot offered by a coach. IsOpen=false means
// exactly one booking (BookingKey) currently holds it.
type Availability struct {
	key        string
	coachID    string
	calendar   slotkey.Calendar
	isOpen     bool
	recurring  bool
	bookingKey *string
}

// New builds a freshly opened slot with its derived key.
func New(coachID string, cal slotkey.Calendar, recurring bool) (*Availability, error) {
	coachID = strings.TrimSpace(coachID)
	if coachID == "" {
		return nil, ErrEmptyCoach
	}
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	return &Availability{
		key:       slotkey.ForSlot(coachID, cal),
		coachID:   coachID,
		calendar:  cal,
		isOpen:    true,
		recurring: recurring,
	}, nil
}

// Reconstruct restores a stored slot without re-deriving the key.
func Reconstruct(key, coachID string, cal slotkey.Calendar, isOpen, recurring bool, bookingKey *string) *Availability {
	return &Availability{
		key:        key,
		coachID:    coachID,
		calendar:   cal,
		isOpen:     isOpen,
		recurring:  recurring,
		bookingKey: bookingKey,
	}
}

func (a *Availability) Key() string                { return a.key }
func (a *Availability) CoachID() string            { return a.coachID }
func (a *Availability) Calendar() slotkey.Calendar { return a.calendar }
func (a *Availability) IsOpen() bool               { return a.isOpen }
func (a *Availability) Recurring() bool            { return a.recurring }
func (a *Availability) BookingKey() *string        { return a.bookingKey }

func (a *Availability) CheckRemovable() error {
	if !a.isOpen {
		return ErrSlotReserved
	}
	return nil
}

//go:build unit || e2e

package builder

import (
	"time"

	dombooking "coachbook/internal/domain/booking"
	"coachbook/internal/domain/slotkey"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/pkg/pgconv"
	"coachbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CoachID            string
	SeekerID           string
	Calendar           slotkey.Calendar
	SlotA              string
	SlotB              string
	InterviewGoals     *string
	InterviewQuestions *string
	ResumeURL          *string
	PriceCents         int32
	Pending            *bool
	Confirmed          *bool
	CreatedAt          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	cal := slotkey.Calendar{Year: 2024, Month: 1, Day: 10, Hour: 9, Minute: 0}
	next := slotkey.Calendar{Year: 2024, Month: 1, Day: 10, Hour: 10, Minute: 0}
	goals := "Practice system design"
	return &BookingBuilder{
		CoachID:        "C",
		SeekerID:       "S",
		Calendar:       cal,
		SlotA:          slotkey.ForSlot("C", cal),
		SlotB:          slotkey.ForSlot("C", next),
		InterviewGoals: &goals,
		PriceCents:     5000,
		CreatedAt:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.New(b.CoachID, b.SeekerID, b.Calendar, b.SlotA, b.SlotB, b.Negotiation(), b.CreatedAt)
}

func (b *BookingBuilder) MustBuildDomain() *dombooking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildRow() sqlc.Bookings {
	bk := b.MustBuildDomain()
	return sqlc.Bookings{
		ID:                 uuid.New(),
		Uniquecheck:        bk.Key(),
		CoachID:            bk.CoachID(),
		SeekerID:           bk.SeekerID(),
		Year:               int32(b.Calendar.Year),
		Month:              int32(b.Calendar.Month),
		Day:                int32(b.Calendar.Day),
		Hour:               int32(b.Calendar.Hour),
		Minute:             int32(b.Calendar.Minute),
		InterviewGoals:     pgconv.StringPtrToPgtype(bk.InterviewGoals()),
		InterviewQuestions: pgconv.StringPtrToPgtype(bk.InterviewQuestions()),
		ResumeUrl:          pgconv.StringPtrToPgtype(bk.ResumeURL()),
		PriceCents:         bk.PriceCents(),
		Pending:            bk.Pending(),
		Confirmed:          bk.Confirmed(),
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewByKeyRow {
	row := b.BuildRow()
	return sqlc.GetBookingViewByKeyRow{
		ID:                 row.ID,
		Uniquecheck:        row.Uniquecheck,
		CoachID:            row.CoachID,
		SeekerID:           row.SeekerID,
		Year:               row.Year,
		Month:              row.Month,
		Day:                row.Day,
		Hour:               row.Hour,
		Minute:             row.Minute,
		InterviewGoals:     row.InterviewGoals,
		InterviewQuestions: row.InterviewQuestions,
		ResumeUrl:          row.ResumeUrl,
		PriceCents:         row.PriceCents,
		Pending:            row.Pending,
		Confirmed:          row.Confirmed,
		CreatedAt:          row.CreatedAt,
		SlotKeys:           []string{b.SlotA, b.SlotB},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	bk := b.MustBuildDomain()
	return &queries.BookingView{
		Key:                bk.Key(),
		CoachID:            bk.CoachID(),
		SeekerID:           bk.SeekerID(),
		Year:               b.Calendar.Year,
		Month:              b.Calendar.Month,
		Day:                b.Calendar.Day,
		Hour:               b.Calendar.Hour,
		Minute:             b.Calendar.Minute,
		SlotKeys:           []string{b.SlotA, b.SlotB},
		InterviewGoals:     bk.InterviewGoals(),
		InterviewQuestions: bk.InterviewQuestions(),
		ResumeURL:          bk.ResumeURL(),
		PriceCents:         bk.PriceCents(),
		Pending:            bk.Pending(),
		Confirmed:          bk.Confirmed(),
		CreatedAt:          b.CreatedAt,
	}
}

// BuildCreateRequestDTO returns the JSON body of POST /bookings.
func (b *BookingBuilder) BuildCreateRequestDTO() map[string]any {
	body := map[string]any{
		"coachId":       b.CoachID,
		"year":          b.Calendar.Year,
		"month":         b.Calendar.Month,
		"day":           b.Calendar.Day,
		"hour":          b.Calendar.Hour,
		"minute":        b.Calendar.Minute,
		"availabilityA": b.SlotA,
		"availabilityB": b.SlotB,
		"priceCents":    b.PriceCents,
	}
	if b.InterviewGoals != nil {
		body["interviewGoals"] = *b.InterviewGoals
	}
	if b.InterviewQuestions != nil {
		body["interviewQuestions"] = *b.InterviewQuestions
	}
	if b.ResumeURL != nil {
		body["resumeUrl"] = *b.ResumeURL
	}
	return body
}

func (b *BookingBuilder) Negotiation() dombooking.Negotiation {
	return dombooking.Negotiation{
		InterviewGoals:     b.InterviewGoals,
		InterviewQuestions: b.InterviewQuestions,
		ResumeURL:          b.ResumeURL,
		PriceCents:         b.PriceCents,
		Pending:            b.Pending,
		Confirmed:          b.Confirmed,
	}
}

func (b *BookingBuilder) Key() string {
	return slotkey.ForBooking(b.CoachID, b.SeekerID, b.Calendar)
}

// Fluent builder methods
func (b *BookingBuilder) WithCoach(coachID string) *BookingBuilder {
	b.CoachID = coachID
	return b
}

func (b *BookingBuilder) WithSeeker(seekerID string) *BookingBuilder {
	b.SeekerID = seekerID
	return b
}

func (b *BookingBuilder) WithCalendar(cal slotkey.Calendar) *BookingBuilder {
	b.Calendar = cal
	return b
}

func (b *BookingBuilder) WithSlots(a, c string) *BookingBuilder {
	b.SlotA = a
	b.SlotB = c
	return b
}

func (b *BookingBuilder) WithPrice(cents int32) *BookingBuilder {
	b.PriceCents = cents
	return b
}

func (b *BookingBuilder) WithResumeURL(u string) *BookingBuilder {
	b.ResumeURL = &u
	return b
}

func (b *BookingBuilder) WithPending(v bool) *BookingBuilder {
	b.Pending = &v
	return b
}

//go:build unit || e2e

package builder

import (
	"time"

	"coachbook/internal/domain/availability"
	"coachbook/internal/domain/slotkey"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/pkg/pgconv"
	"coachbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityBuilder struct {
	CoachID    string
	Calendar   slotkey.Calendar
	IsOpen     bool
	Recurring  bool
	BookingKey *string
	CreatedAt  time.Time
}

func NewAvailabilityBuilder() *AvailabilityBuilder {
	return &AvailabilityBuilder{
		CoachID:   "C",
		Calendar:  slotkey.Calendar{Year: 2024, Month: 1, Day: 10, Hour: 9, Minute: 0},
		IsOpen:    true,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AvailabilityBuilder) With(mutate func(*AvailabilityBuilder)) *AvailabilityBuilder {
	mutate(b)
	return b
}

func (b *AvailabilityBuilder) Key() string {
	return slotkey.ForSlot(b.CoachID, b.Calendar)
}

// Build methods
func (b *AvailabilityBuilder) BuildDomain() (*availability.Availability, error) {
	return availability.New(b.CoachID, b.Calendar, b.Recurring)
}

// BuildStored returns the slot as the repository would load it, openness included.
func (b *AvailabilityBuilder) BuildStored() *availability.Availability {
	return availability.Reconstruct(b.Key(), b.CoachID, b.Calendar, b.IsOpen, b.Recurring, b.BookingKey)
}

func (b *AvailabilityBuilder) BuildRow() sqlc.Availabilities {
	return sqlc.Availabilities{
		ID:          uuid.New(),
		Uniquecheck: b.Key(),
		CoachID:     b.CoachID,
		Year:        int32(b.Calendar.Year),
		Month:       int32(b.Calendar.Month),
		Day:         int32(b.Calendar.Day),
		Hour:        int32(b.Calendar.Hour),
		Minute:      int32(b.Calendar.Minute),
		IsOpen:      b.IsOpen,
		Recurring:   b.Recurring,
		BookingKey:  pgconv.StringPtrToPgtype(b.BookingKey),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *AvailabilityBuilder) BuildView() *queries.AvailabilityView {
	return &queries.AvailabilityView{
		Key:        b.Key(),
		CoachID:    b.CoachID,
		Year:       b.Calendar.Year,
		Month:      b.Calendar.Month,
		Day:        b.Calendar.Day,
		Hour:       b.Calendar.Hour,
		Minute:     b.Calendar.Minute,
		IsOpen:     b.IsOpen,
		Recurring:  b.Recurring,
		BookingKey: b.BookingKey,
		CreatedAt:  b.CreatedAt,
	}
}

// BuildCreateRequestDTO returns the JSON body of POST /availabilities.
func (b *AvailabilityBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"year":      b.Calendar.Year,
		"month":     b.Calendar.Month,
		"day":       b.Calendar.Day,
		"hour":      b.Calendar.Hour,
		"minute":    b.Calendar.Minute,
		"recurring": b.Recurring,
	}
}

// Fluent builder methods
func (b *AvailabilityBuilder) WithCoach(coachID string) *AvailabilityBuilder {
	b.CoachID = coachID
	return b
}

func (b *AvailabilityBuilder) WithCalendar(cal slotkey.Calendar) *AvailabilityBuilder {
	b.Calendar = cal
	return b
}

func (b *AvailabilityBuilder) WithHour(hour int) *AvailabilityBuilder {
	b.Calendar.Hour = hour
	return b
}

func (b *AvailabilityBuilder) Closed(bookingKey string) *AvailabilityBuilder {
	b.IsOpen = false
	b.BookingKey = &bookingKey
	return b
}

func (b *AvailabilityBuilder) WithRecurring(v bool) *AvailabilityBuilder {
	b.Recurring = v
	return b
}

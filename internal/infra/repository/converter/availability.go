package converter

import (
	"coachbook/internal/domain/availability"
	"coachbook/internal/domain/slotkey"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/pkg/pgconv"
)

func AvailabilityToCreateParams(a *availability.Availability) sqlc.CreateAvailabilityParams {
	cal := a.Calendar()
	return sqlc.CreateAvailabilityParams{
		Uniquecheck: a.Key(),
		CoachID:     a.CoachID(),
		Year:        int32(cal.Year),
		Month:       int32(cal.Month),
		Day:         int32(cal.Day),
		Hour:        int32(cal.Hour),
		Minute:      int32(cal.Minute),
		Recurring:   a.Recurring(),
	}
}

func AvailabilityFromRow(row sqlc.Availabilities) *availability.Availability {
	cal := slotkey.Calendar{
		Year:   int(row.Year),
		Month:  int(row.Month),
		Day:    int(row.Day),
		Hour:   int(row.Hour),
		Minute: int(row.Minute),
	}
	return availability.Reconstruct(
		row.Uniquecheck,
		row.CoachID,
		cal,
		row.IsOpen,
		row.Recurring,
		pgconv.StringPtrFromPgtype(row.BookingKey),
	)
}

package converter

import (
	"coachbook/internal/domain/booking"
	"coachbook/internal/domain/slotkey"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/pkg/errs"
	"coachbook/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	cal := b.Calendar()
	return sqlc.CreateBookingParams{
		Uniquecheck:        b.Key(),
		CoachID:            b.CoachID(),
		SeekerID:           b.SeekerID(),
		Year:               int32(cal.Year),
		Month:              int32(cal.Month),
		Day:                int32(cal.Day),
		Hour:               int32(cal.Hour),
		Minute:             int32(cal.Minute),
		InterviewGoals:     pgconv.StringPtrToPgtype(b.InterviewGoals()),
		InterviewQuestions: pgconv.StringPtrToPgtype(b.InterviewQuestions()),
		ResumeUrl:          pgconv.StringPtrToPgtype(b.ResumeURL()),
		PriceCents:         b.PriceCents(),
		Pending:            b.Pending(),
		Confirmed:          b.Confirmed(),
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingSlotParams(b *booking.Booking) []sqlc.CreateBookingSlotParams {
	keys := b.SlotKeys()
	params := make([]sqlc.CreateBookingSlotParams, 0, len(keys))
	for i, k := range keys {
		params = append(params, sqlc.CreateBookingSlotParams{
			BookingKey:      b.Key(),
			AvailabilityKey: k,
			Position:        int16(i),
		})
	}
	return params
}

func BookingFromRow(row sqlc.Bookings, slotKeys []string) (*booking.Booking, error) {
	if len(slotKeys) != 2 {
		return nil, errs.Newf("booking %s links %d availabilities, want 2", row.Uniquecheck, len(slotKeys))
	}
	cal := slotkey.Calendar{
		Year:   int(row.Year),
		Month:  int(row.Month),
		Day:    int(row.Day),
		Hour:   int(row.Hour),
		Minute: int(row.Minute),
	}
	return booking.Reconstruct(
		row.Uniquecheck,
		row.CoachID,
		row.SeekerID,
		cal,
		[2]string{slotKeys[0], slotKeys[1]},
		pgconv.StringPtrFromPgtype(row.InterviewGoals),
		pgconv.StringPtrFromPgtype(row.InterviewQuestions),
		pgconv.StringPtrFromPgtype(row.ResumeUrl),
		row.PriceCents,
		row.Pending,
		row.Confirmed,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

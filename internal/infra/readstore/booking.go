package readstore

import (
	"context"

	"coachbook/internal/infra"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/pkg/pgconv"
	"coachbook/internal/usecase/queries"
)

type BookingViewQueries interface {
	GetBookingViewByKey(ctx context.Context, db sqlc.DBTX, uniquecheck string) (sqlc.GetBookingViewByKeyRow, error)
	ListBookingViewsByCoach(ctx context.Context, db sqlc.DBTX, coachID string) ([]sqlc.ListBookingViewsByCoachRow, error)
	ListBookingViewsBySeeker(ctx context.Context, db sqlc.DBTX, seekerID string) ([]sqlc.ListBookingViewsBySeekerRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByKey(ctx context.Context, key string) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByKey(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by key", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindByCoach(ctx context.Context, coachID string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByCoach(ctx, r.db, coachID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by coach", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.GetBookingViewByKeyRow(row)))
	}
	return views, nil
}

func (r *BookingReadStore) FindBySeeker(ctx context.Context, seekerID string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsBySeeker(ctx, r.db, seekerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by seeker", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.GetBookingViewByKeyRow(row)))
	}
	return views, nil
}

// All three view queries select the same columns, so their rows convert.
func toBookingView(row sqlc.GetBookingViewByKeyRow) *queries.BookingView {
	return &queries.BookingView{
		Key:                row.Uniquecheck,
		CoachID:            row.CoachID,
		SeekerID:           row.SeekerID,
		Year:               int(row.Year),
		Month:              int(row.Month),
		Day:                int(row.Day),
		Hour:               int(row.Hour),
		Minute:             int(row.Minute),
		SlotKeys:           row.SlotKeys,
		InterviewGoals:     pgconv.StringPtrFromPgtype(row.InterviewGoals),
		InterviewQuestions: pgconv.StringPtrFromPgtype(row.InterviewQuestions),
		ResumeURL:          pgconv.StringPtrFromPgtype(row.ResumeUrl),
		PriceCents:         row.PriceCents,
		Pending:            row.Pending,
		Confirmed:          row.Confirmed,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

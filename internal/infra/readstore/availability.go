package readstore

import (
	"context"

	"coachbook/internal/infra"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/pkg/pgconv"
	"coachbook/internal/usecase/queries"
)

type AvailabilityViewQueries interface {
	GetAvailabilityByKey(ctx context.Context, db sqlc.DBTX, uniquecheck string) (sqlc.Availabilities, error)
	ListAvailabilitiesByCoach(ctx context.Context, db sqlc.DBTX, coachID string) ([]sqlc.Availabilities, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityViewQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityViewQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) FindByKey(ctx context.Context, key string) (*queries.AvailabilityView, error) {
	row, err := r.queries.GetAvailabilityByKey(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("availability not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get availability by key", err)
	}
	return toAvailabilityView(row), nil
}

func (r *AvailabilityReadStore) FindByCoach(ctx context.Context, coachID string) ([]*queries.AvailabilityView, error) {
	rows, err := r.queries.ListAvailabilitiesByCoach(ctx, r.db, coachID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availabilities by coach", err)
	}
	views := make([]*queries.AvailabilityView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toAvailabilityView(row))
	}
	return views, nil
}

func toAvailabilityView(row sqlc.Availabilities) *queries.AvailabilityView {
	return &queries.AvailabilityView{
		Key:        row.Uniquecheck,
		CoachID:    row.CoachID,
		Year:       int(row.Year),
		Month:      int(row.Month),
		Day:        int(row.Day),
		Hour:       int(row.Hour),
		Minute:     int(row.Minute),
		IsOpen:     row.IsOpen,
		Recurring:  row.Recurring,
		BookingKey: pgconv.StringPtrFromPgtype(row.BookingKey),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

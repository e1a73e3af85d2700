package repository

import (
	"context"

	"coachbook/internal/domain/availability"
	"coachbook/internal/infra"
	"coachbook/internal/infra/repository/converter"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/pkg/pgconv"
)

type AvailabilityWriteQueries interface {
	CreateAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAvailabilityParams) (sqlc.Availabilities, error)
	LockAvailabilityByKey(ctx context.Context, db sqlc.DBTX, uniquecheck string) (sqlc.Availabilities, error)
	CloseAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.CloseAvailabilityParams) (int64, error)
	ReopenAvailability(ctx context.Context, db sqlc.DBTX, uniquecheck string) (int64, error)
	DeleteOpenAvailability(ctx context.Context, db sqlc.DBTX, uniquecheck string) (sqlc.Availabilities, error)
}

type AvailabilityRepository struct {
	queries AvailabilityWriteQueries
	db      sqlc.DBTX
}

func NewAvailabilityRepository(queries AvailabilityWriteQueries, db sqlc.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityRepository) Create(ctx context.Context, tx sqlc.DBTX, a *availability.Availability) (*availability.Availability, error) {
	row, err := r.queries.CreateAvailability(ctx, tx, converter.AvailabilityToCreateParams(a))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create availability", err)
	}
	return converter.AvailabilityFromRow(row), nil
}

func (r *AvailabilityRepository) FindByKeyForUpdate(ctx context.Context, tx sqlc.DBTX, key string) (*availability.Availability, error) {
	row, err := r.queries.LockAvailabilityByKey(ctx, tx, key)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock availability", err)
	}
	return converter.AvailabilityFromRow(row), nil
}

func (r *AvailabilityRepository) Close(ctx context.Context, tx sqlc.DBTX, key, bookingKey string) (bool, error) {
	n, err := r.queries.CloseAvailability(ctx, tx, sqlc.CloseAvailabilityParams{
		Uniquecheck: key,
		BookingKey:  pgconv.StringToPgtype(bookingKey),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to close availability", err)
	}
	return n > 0, nil
}

func (r *AvailabilityRepository) Reopen(ctx context.Context, tx sqlc.DBTX, key string) (bool, error) {
	n, err := r.queries.ReopenAvailability(ctx, tx, key)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reopen availability", err)
	}
	return n > 0, nil
}

func (r *AvailabilityRepository) DeleteOpen(ctx context.Context, tx sqlc.DBTX, key string) (*availability.Availability, error) {
	row, err := r.queries.DeleteOpenAvailability(ctx, tx, key)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete availability", err)
	}
	return converter.AvailabilityFromRow(row), nil
}

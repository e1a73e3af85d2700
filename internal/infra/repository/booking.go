package repository

import (
	"context"

	"coachbook/internal/domain/booking"
	"coachbook/internal/infra"
	"coachbook/internal/infra/repository/converter"
	sqlc "coachbook/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	CreateBookingSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingSlotParams) error
	LockBookingByKey(ctx context.Context, db sqlc.DBTX, uniquecheck string) (sqlc.Bookings, error)
	ListBookingSlotKeys(ctx context.Context, db sqlc.DBTX, bookingKey string) ([]string, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, uniquecheck string) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the booking row and one link per slot. The link table's
// unique index on availability_key rejects a slot that is already linked.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	for _, p := range converter.BookingSlotParams(b) {
		if err := r.queries.CreateBookingSlot(ctx, tx, p); err != nil {
			return infra.WrapRepoErr("failed to link availability to booking", err)
		}
	}
	return nil
}

func (r *BookingRepository) FindByKeyForUpdate(ctx context.Context, tx sqlc.DBTX, key string) (*booking.Booking, error) {
	row, err := r.queries.LockBookingByKey(ctx, tx, key)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	slotKeys, err := r.queries.ListBookingSlotKeys(ctx, tx, key)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking availabilities", err)
	}
	b, err := converter.BookingFromRow(row, slotKeys)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, key string) (bool, error) {
	n, err := r.queries.DeleteBooking(ctx, tx, key)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return n > 0, nil
}

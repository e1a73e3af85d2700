package shared

import (
	"context"

	"coachbook/internal/domain/availability"
	"coachbook/internal/domain/booking"
	"coachbook/internal/domain/tag"
	sqlc "coachbook/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Availabilities() AvailabilityRepository
	Bookings() BookingRepository
	Tags() TagRepository
	Outbox() OutboxRepository
	DB() sqlc.DBTX
}

type AvailabilityRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *availability.Availability) (*availability.Availability, error)
	FindByKeyForUpdate(ctx context.Context, tx sqlc.DBTX, key string) (*availability.Availability, error)
	// Close flips an open slot to closed; false means no open slot matched.
	Close(ctx context.Context, tx sqlc.DBTX, key, bookingKey string) (bool, error)
	Reopen(ctx context.Context, tx sqlc.DBTX, key string) (bool, error)
	// DeleteOpen removes the slot only while it is open.
	DeleteOpen(ctx context.Context, tx sqlc.DBTX, key string) (*availability.Availability, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindByKeyForUpdate(ctx context.Context, tx sqlc.DBTX, key string) (*booking.Booking, error)
	Delete(ctx context.Context, tx sqlc.DBTX, key string) (bool, error)
}

type TagRepository interface {
	PostByID(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) (*PostSnapshot, error)
	Upsert(ctx context.Context, tx sqlc.DBTX, name string) (tag.Tag, error)
	Attach(ctx context.Context, tx sqlc.DBTX, postID, tagID uuid.UUID) (bool, error)
	Detach(ctx context.Context, tx sqlc.DBTX, postID, tagID uuid.UUID) (bool, error)
	DetachAll(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) ([]uuid.UUID, error)
	CountPosts(ctx context.Context, tx sqlc.DBTX, tagID uuid.UUID) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, tagID uuid.UUID) error
	ListForPost(ctx context.Context, tx sqlc.DBTX, postID uuid.UUID) ([]tag.Tag, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, event OutboxEvent) error
}

package repository

import (
	"context"

	"coachbook/internal/infra"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/pkg/pgconv"
	"coachbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
	ClaimQueuedOutboxEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

// OutboxRepository stores events for the relay. Every event appended through it
// is addressed to topic.
type OutboxRepository struct {
	queries OutboxWriteQueries
	topic   string
}

func NewOutboxRepository(queries OutboxWriteQueries, topic string) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		topic:   topic,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, event shared.OutboxEvent) error {
	err := r.queries.InsertOutboxEvent(ctx, tx, sqlc.InsertOutboxEventParams{
		Topic:    r.topic,
		EventKey: event.Key,
		Kind:     event.Kind,
		Payload:  event.Payload,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

// ClaimQueued locks up to limit queued events; concurrent relays skip each other's rows.
func (r *OutboxRepository) ClaimQueued(ctx context.Context, tx sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error) {
	rows, err := r.queries.ClaimQueuedOutboxEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}
	return rows, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOutboxEventSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

// MarkFailed records the error; the event goes dead once attempts reach maxAttempts.
func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, cause string, maxAttempts int32) error {
	err := r.queries.MarkOutboxEventFailed(ctx, tx, sqlc.MarkOutboxEventFailedParams{
		LastError:   pgconv.StringToPgtype(cause),
		MaxAttempts: maxAttempts,
		ID:          id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}

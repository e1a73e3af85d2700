package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"coachbook/internal/infra/messaging"
	sqlc "coachbook/internal/infra/sqlc/generated"
	"coachbook/internal/pkg/config"
	"coachbook/internal/pkg/errs"
	"coachbook/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	headerEventID   = "event-id"
	headerEventKind = "event-kind"
)

type Publisher interface {
	Publish(ctx context.Context, msgs []messaging.Message) error
}

type Store interface {
	ClaimQueued(ctx context.Context, tx sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, cause string, maxAttempts int32) error
}

// Relay moves committed outbox rows to the broker. Delivery is at least once:
// a crash between publish and commit republishes the batch.
type Relay struct {
	uow       shared.UnitOfWork
	store     Store
	publisher Publisher
	cfg       config.OutboxConfig
	logger    *slog.Logger

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, store Store, publisher Publisher, cfg config.OutboxConfig, logger *slog.Logger) *Relay {
	return &Relay{
		uow:       uow,
		store:     store,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		stop:      make(chan struct{}),
	}
}

func (r *Relay) Start(context.Context) error {
	r.wg.Add(1)
	go r.run()
	return nil
}

func (r *Relay) Stop(ctx context.Context) error {
	close(r.stop)
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) run() {
	defer r.wg.Done()
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-r.stop
		cancel()
	}()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			sent, err := r.RelayOnce(ctx)
			if err != nil {
				r.logger.Error("outbox relay failed", "error", err)
				continue
			}
			if sent > 0 {
				r.logger.Debug("outbox events published", "count", sent)
			}
		}
	}
}

// RelayOnce publishes one batch and returns how many events reached the broker.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		events, err := r.store.ClaimQueued(ctx, tx.DB(), r.cfg.BatchSize)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		failed := map[int]error{}
		if err := r.publisher.Publish(ctx, toMessages(events)); err != nil {
			var partial *messaging.PartialFailure
			if errs.As(err, &partial) {
				failed = partial.Failed
			} else {
				for i := range events {
					failed[i] = err
				}
			}
		}

		for i, ev := range events {
			if cause, ok := failed[i]; ok {
				r.logger.Warn("outbox event not published",
					"event_id", ev.ID, "kind", ev.Kind, "attempts", ev.Attempts+1, "error", cause)
				if err := r.store.MarkFailed(ctx, tx.DB(), ev.ID, cause.Error(), r.cfg.MaxAttempts); err != nil {
					return err
				}
				continue
			}
			if err := r.store.MarkSent(ctx, tx.DB(), ev.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "outbox relay batch")
	}
	return sent, nil
}

func toMessages(events []sqlc.OutboxEvents) []messaging.Message {
	msgs := make([]messaging.Message, 0, len(events))
	for _, ev := range events {
		msgs = append(msgs, messaging.Message{
			Topic: ev.Topic,
			Key:   ev.EventKey,
			Value: ev.Payload,
			Headers: map[string]string{
				headerEventID:   ev.ID.String(),
				headerEventKind: ev.Kind,
			},
			Time: ev.CreatedAt.Time,
		})
	}
	return msgs
}

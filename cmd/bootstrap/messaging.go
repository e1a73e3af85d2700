package bootstrap

import (
	"context"
	"log/slog"

	"coachbook/internal/infra/messaging"
	"coachbook/internal/infra/outbox"
	"coachbook/internal/infra/repository"
	"coachbook/internal/pkg/config"
	"coachbook/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay runs the relay only when brokers are configured.
// Without them booking events stay queued in outbox_events.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, store *repository.OutboxRepository, logger *slog.Logger) error {
	if !cfg.Kafka.Enabled() {
		logger.Info("Kafka brokers not configured, outbox relay disabled")
		return nil
	}

	publisher, err := messaging.NewKafkaPublisher(cfg.Kafka, logger)
	if err != nil {
		return err
	}
	relay := outbox.NewRelay(uow, store, publisher, cfg.Outbox, logger)

	lc.Append(fx.Hook{
		OnStart: relay.Start,
		OnStop: func(ctx context.Context) error {
			stopErr := relay.Stop(ctx)
			if err := publisher.Close(); err != nil {
				logger.Error("Failed to close Kafka writer", "error", err)
			}
			return stopErr
		},
	})
	return nil
}

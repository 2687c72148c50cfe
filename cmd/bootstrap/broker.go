package bootstrap

import (
	"context"
	"log/slog"

	"campus-parking/internal/infra/broker"
	"campus-parking/internal/pkg/config"
	"campus-parking/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	publisher, cleanup, err := broker.NewPublisher(cfg.Broker)
	if err != nil {
		return nil, err
	}
	if cfg.Broker.URL == "" {
		logger.Info("AMQP_URL not set, occupancy events are not published")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
	return publisher, nil
}

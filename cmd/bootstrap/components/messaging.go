package components

import (
	"context"

	"campfinder/internal/infra/messaging"
	"campfinder/internal/pkg/clock"
	"campfinder/internal/pkg/config"
	"campfinder/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
)

// NewPublisher dials lazily, so building it without a reachable broker is fine.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) messaging.Publisher {
	pub := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

func NewRelay(uow shared.UnitOfWork, pub messaging.Publisher, clk clock.Clock, cfg config.Config) *messaging.Relay {
	return messaging.NewRelay(uow, pub, clk, cfg.Outbox)
}

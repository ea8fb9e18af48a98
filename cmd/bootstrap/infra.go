package bootstrap

import (
	"context"

	"gym-booking/internal/infra/broker"
	"gym-booking/internal/infra/cache"
	"gym-booking/internal/infra/metrics"
	"gym-booking/internal/infra/payment"
	"gym-booking/internal/infra/telemetry"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		metrics.New,
		NewPaymentProvider,
		NewPublisher,
		NewRedis,
	),
	fx.Invoke(SetupTelemetry),
)

func NewPaymentProvider(cfg config.Config) commands.PaymentProvider {
	return payment.NewSumUpClient(cfg.Payment)
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config) broker.Publisher {
	pub := broker.New(cfg.AMQP)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

// NewRedis may return nil; rate limiting is then disabled.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := cache.NewRedisClient(context.Background(), cfg.Redis)
	if client != nil {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
	}
	return client
}

func SetupTelemetry(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}

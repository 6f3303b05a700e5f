package bootstrap

import (
	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	SectionsModule,
)

// SectionsModule splits a provided Config into the sections individual
// components depend on.
var SectionsModule = fx.Options(
	fx.Provide(
		func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
		func(cfg config.Config) config.SchedulerConfig { return cfg.Scheduler },
		func(cfg config.Config) config.GiftCardConfig { return cfg.GiftCard },
		func(cfg config.Config) config.IdempotencyConfig { return cfg.Idempotency },
	),
)

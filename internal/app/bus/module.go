package bus

import (
	"context"

	"go.uber.org/fx"

	"logview/internal/config"
	"logview/internal/config/logger"
)

// Module provides the bus live event streams are published on
var Module = fx.Module("bus",
	fx.Provide(func(lifecycle fx.Lifecycle, cfg *config.Config, log logger.Logger) Bus {
		b := New(cfg, log.WithComponent("BUS"))

		lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				b.Close()
				return nil
			},
		})

		return b
	}),
)

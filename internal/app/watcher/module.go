package watcher

import (
	"context"

	"go.uber.org/fx"

	"logview/internal/config"
	"logview/internal/config/logger"
)

// Module provides the script watcher and closes it on shutdown
var Module = fx.Module("watcher",
	fx.Provide(func(lifecycle fx.Lifecycle, cfg *config.Config, log logger.Logger) (Watcher, error) {
		w, err := NewWatcher(cfg, log.WithComponent("WATCHER"))
		if err != nil {
			return nil, err
		}

		lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				w.Close()
				return nil
			},
		})

		return w, nil
	}),
)

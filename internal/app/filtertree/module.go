package filtertree

import (
	"context"

	"go.uber.org/fx"

	"logview/internal/app/filters"
	"logview/internal/config/logger"
)

// Module provides a tree mirroring the root filter model
var Module = fx.Module("filtertree",
	fx.Provide(func(lifecycle fx.Lifecycle, root filters.MutableFilterModel, log logger.Logger) *Tree {
		tree := New(root, log.WithComponent("TREE"))

		lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				tree.Close()
				return nil
			},
		})

		return tree
	}),
)

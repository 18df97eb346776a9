package filters

import (
	"go.uber.org/fx"

	"logview/internal/config/logger"
)

// RootLabel names the top-level model in logs and bus messages
const RootLabel = "root"

// Module provides the root filter model for dependency injection
var Module = fx.Module("filters",
	fx.Provide(func(log logger.Logger) MutableFilterModel {
		root := NewModel()
		root.AddObserver(NewLoggingObserver(log.WithComponent("FILTERS"), RootLabel))

		return root
	}),
)

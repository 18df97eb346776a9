package app

import (
	"go.uber.org/fx"

	"logview/internal/app/bus"
	"logview/internal/app/cli"
	"logview/internal/app/filters"
	"logview/internal/app/filtertree"
	"logview/internal/app/watcher"
	"logview/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	filters.Module,
	bus.Module,
	filtertree.Module,
	watcher.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)

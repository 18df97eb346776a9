package logger

import (
	"go.uber.org/fx"
)

// Module provides the application logger configured from the loaded config
var Module = fx.Options(
	fx.Provide(NewLogger),
)

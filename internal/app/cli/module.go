package cli

import "go.uber.org/fx"

// Module provides the CLI that runs the parsed command against the root filter model
var Module = fx.Options(
	fx.Provide(NewCLI),
)

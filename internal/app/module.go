package app

import (
	"go.uber.org/fx"

	"bidmatch/internal/app/cli"
	"bidmatch/internal/app/generator"
	"bidmatch/internal/app/ui/wire"
)

// Module wires the CLI, its collaborators and the application lifecycle
var Module = fx.Options(
	cli.Module,
	generator.Module,
	wire.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)

package generator

import "go.uber.org/fx"

// Module provides the bidmatch.yaml generator
var Module = fx.Options(
	fx.Provide(NewGenerator),
)

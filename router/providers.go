package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV0Router),
	fx.Provide(NewOrgRouter),
)

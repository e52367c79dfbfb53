package controllers_fx

import (
	"go.uber.org/fx"

	"beacon/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewReportController),
	fx.Provide(controllers.NewRewardController),
	fx.Provide(controllers.NewAdminController))

package controllers_fx

import (
	"go.uber.org/fx"

	"agenda/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewEmployeeController),
	fx.Provide(controllers.NewBranchController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewExportController),
)

package export_fx

import (
	"go.uber.org/fx"

	"agenda/internal/repositories"
	"agenda/internal/services"
)

var Module = fx.Provide(provideExportService)

func provideExportService(activityRepo repositories.ActivityRepository) services.ExportServiceInterface {
	return services.NewExportService(activityRepo)
}

package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"agenda/internal/repositories"
	"agenda/internal/services"
)

var Module = fx.Provide(provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(activityRepo repositories.ActivityRepository) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo)
}

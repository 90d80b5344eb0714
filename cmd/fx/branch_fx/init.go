package branch_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"agenda/internal/repositories"
	"agenda/internal/services"
)

var Module = fx.Provide(provideBranchRepo, provideBranchService)

func provideBranchRepo(db *gorm.DB) repositories.BranchRepository {
	return repositories.NewBranchRepository(db)
}

func provideBranchService(branchRepo repositories.BranchRepository) services.BranchServiceInterface {
	return services.NewBranchService(branchRepo)
}

package employee_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"agenda/internal/repositories"
	"agenda/internal/services"
)

var Module = fx.Provide(provideEmployeeRepo, provideEmployeeService)

func provideEmployeeRepo(db *gorm.DB) repositories.EmployeeRepository {
	return repositories.NewEmployeeRepository(db)
}

func provideEmployeeService(employeeRepo repositories.EmployeeRepository) services.EmployeeServiceInterface {
	return services.NewEmployeeService(employeeRepo)
}

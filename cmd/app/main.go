package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"agenda/cmd/fx/account_fx"
	"agenda/cmd/fx/activity_fx"
	"agenda/cmd/fx/branch_fx"
	"agenda/cmd/fx/controllers_fx"
	"agenda/cmd/fx/dashboard_fx"
	"agenda/cmd/fx/db_fx"
	"agenda/cmd/fx/employee_fx"
	"agenda/cmd/fx/export_fx"
	"agenda/internal/api/controllers"
	"agenda/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		activity_fx.Module,
		employee_fx.Module,
		branch_fx.Module,
		dashboard_fx.Module,
		export_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	activityController *controllers.ActivityController,
	employeeController *controllers.EmployeeController,
	branchController *controllers.BranchController,
	dashboardController *controllers.DashboardController,
	exportController *controllers.ExportController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		activityController,
		employeeController,
		branchController,
		dashboardController,
		exportController,
	)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	activityController *controllers.ActivityController,
	employeeController *controllers.EmployeeController,
	branchController *controllers.BranchController,
	dashboardController *controllers.DashboardController,
	exportController *controllers.ExportController,
) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	activitiesGroup := r.Group("/activities")
	activitiesGroup.Use(middleware.JWTAuthMiddleware())
	activitiesGroup.GET("", activityController.List)
	activitiesGroup.POST("", activityController.Create)
	activitiesGroup.GET("/stats", dashboardController.ActivityStats)
	activitiesGroup.GET("/export/pdf", exportController.TripItinerary)
	activitiesGroup.GET("/:id", activityController.GetByID)
	activitiesGroup.PUT("/:id", activityController.Update)
	activitiesGroup.DELETE("/:id", activityController.Delete)
	activitiesGroup.POST("/:id/reschedule", activityController.Reschedule)

	employeesGroup := r.Group("/employees")
	employeesGroup.Use(middleware.JWTAuthMiddleware())
	employeesGroup.GET("/search", employeeController.Search)

	branchesGroup := r.Group("/branches")
	branchesGroup.Use(middleware.JWTAuthMiddleware())
	branchesGroup.GET("/search", branchController.Search)
}

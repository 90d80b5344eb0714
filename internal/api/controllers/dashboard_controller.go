package controllers

import (
	"github.com/gin-gonic/gin"

	"agenda/internal/services"
	"agenda/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// ActivityStats godoc
// @Summary Activity counts per employee, branch and type for the requester
// @Router /activities/stats [get]
func (d *DashboardController) ActivityStats(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	report, err := d.dashboardService.ActivityStats(c.Request.Context(), userID, c.Query("employeeId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "Activity stats fetched successfully")
}

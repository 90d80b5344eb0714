package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	"agenda/internal/services"
	"agenda/pkg/utils"
)

type EmployeeController struct {
	employeeService services.EmployeeServiceInterface
}

func NewEmployeeController(employeeService services.EmployeeServiceInterface) *EmployeeController {
	return &EmployeeController{employeeService: employeeService}
}

// Search godoc
// @Summary Paged employee search by name, email or position
// @Router /employees/search [get]
func (e *EmployeeController) Search(c *gin.Context) {
	if _, ok := requesterID(c); !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	result, err := e.employeeService.Search(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Employees fetched successfully")
}

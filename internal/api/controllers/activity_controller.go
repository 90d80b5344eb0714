package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"strconv"

	"agenda/internal/models/request_models"
	"agenda/internal/services"
	"agenda/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// List godoc
// @Summary List the requester's activities for a day or a month
// @Description Pass either date=YYYY-MM-DD or month=1-12&year=YYYY, with an
// optional employeeId filter.
// @Router /activities [get]
func (a *ActivityController) List(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	employeeID := c.Query("employeeId")

	if date := c.Query("date"); date != "" {
		activities, err := a.activityService.ListByDay(c.Request.Context(), userID, date, employeeID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, activities, "Activities fetched successfully")
		return
	}

	monthStr, yearStr := c.Query("month"), c.Query("year")
	if monthStr != "" && yearStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid month parameter")
			return
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid year parameter")
			return
		}

		activities, err := a.activityService.ListByMonth(c.Request.Context(), userID, month, year, employeeID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, activities, "Activities fetched successfully")
		return
	}

	utils.RespondError(c, http.StatusBadRequest, "Missing required parameters")
}

// GetByID godoc
// @Summary Fetch one activity with its daily itinerary
// @Router /activities/{id} [get]
func (a *ActivityController) GetByID(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	activity, err := a.activityService.GetByID(c.Request.Context(), activityID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

// Create godoc
// @Summary Create an activity
// @Router /activities [post]
func (a *ActivityController) Create(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Data yang dimasukkan tidak valid")
		return
	}

	activity, err := a.activityService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity created successfully")
}

// Update godoc
// @Summary Replace an activity's fields and daily itinerary
// @Router /activities/{id} [put]
func (a *ActivityController) Update(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Data yang dimasukkan tidak valid")
		return
	}

	activity, err := a.activityService.Update(c.Request.Context(), activityID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// Delete godoc
// @Summary Delete an activity and its daily itinerary
// @Router /activities/{id} [delete]
func (a *ActivityController) Delete(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	if err := a.activityService.Delete(c.Request.Context(), activityID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

// Reschedule godoc
// @Summary Move an activity to a new slot
// @Description Marks the original as superseded and creates a full copy,
// daily itinerary included, at the new date and time.
// @Router /activities/{id}/reschedule [post]
func (a *ActivityController) Reschedule(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	var req request_models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Tanggal dan waktu harus diisi")
		return
	}

	result, err := a.activityService.Reschedule(c.Request.Context(), activityID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Activity rescheduled successfully")
}

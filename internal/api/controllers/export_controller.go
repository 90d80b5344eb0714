package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"

	"agenda/internal/services"
	"agenda/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{exportService: exportService}
}

// TripItinerary godoc
// @Summary Download the itinerary PDF for a business-trip activity
// @Router /activities/export/pdf [get]
func (e *ExportController) TripItinerary(c *gin.Context) {
	if _, ok := requesterID(c); !ok {
		return
	}

	activityID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	pdfBytes, err := e.exportService.TripItineraryPDF(c.Request.Context(), activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trip-itinerary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

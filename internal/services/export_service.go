package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"agenda/internal/models/db_models"
	"agenda/internal/repositories"
	"agenda/pkg/utils"
)

type ExportServiceInterface interface {
	// TripItineraryPDF renders the itinerary document for a business-trip
	// activity. Non-trip ids are indistinguishable from missing ones.
	TripItineraryPDF(ctx context.Context, activityID uuid.UUID) ([]byte, error)
}

type ExportService struct {
	activityRepo repositories.ActivityRepository
}

func NewExportService(activityRepo repositories.ActivityRepository) ExportServiceInterface {
	return &ExportService{activityRepo: activityRepo}
}

func (s *ExportService) TripItineraryPDF(ctx context.Context, activityID uuid.UUID) ([]byte, error) {
	activity, err := s.activityRepo.FindTripByID(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrNotBusinessTrip
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 15, 18)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Trip Itinerary "+activity.Date.Format("January 2006"), "", 1, "L", false, 0, "")

	travelerLine := activity.Employee.Name
	if activity.Trip.BirthDate != nil || activity.Trip.IDCard != "" {
		travelerLine = fmt.Sprintf("%s (TTL %s, %s)",
			activity.Employee.Name,
			utils.FormatDatePtr(activity.Trip.BirthDate),
			activity.Trip.IDCard,
		)
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, travelerLine, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, transportLine(activity), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	for _, day := range activity.DailyActivities {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, day.Date.Format("Monday, 2 January 2006"), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		if day.NeedHotel {
			hotel := fmt.Sprintf("Hotel: %s, %s (%s - %s)",
				day.HotelName, day.HotelAddress,
				utils.FormatDatePtr(day.HotelCheckIn),
				utils.FormatDatePtr(day.HotelCheckOut),
			)
			pdf.CellFormat(0, 5, hotel, "", 1, "L", false, 0, "")
		}
		for _, item := range day.ActivityItems {
			pdf.CellFormat(0, 5, fmt.Sprintf("%d. %s", item.Order+1, item.Name), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buf.Bytes(), nil
}

func transportLine(activity *db_models.Activity) string {
	verb := "Travel"
	switch activity.Trip.TransportationType {
	case db_models.TransportationFlight:
		verb = "Fly"
	case db_models.TransportationFerry:
		verb = "Ferry"
	case db_models.TransportationTrain:
		verb = "Train"
	}

	line := fmt.Sprintf("%s %s from %s to %s",
		verb,
		utils.FormatDatePtr(activity.Trip.DepartureDate),
		activity.Trip.DepartureFrom,
		activity.Trip.ArrivalTo,
	)
	if activity.Trip.TransportationName != "" {
		line += " with " + activity.Trip.TransportationName
	}
	if activity.Trip.BookingFlightNo != "" {
		line += " (" + activity.Trip.BookingFlightNo + ")"
	}
	return line
}

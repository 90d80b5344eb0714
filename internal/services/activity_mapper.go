package services

import (
	"github.com/google/uuid"

	"agenda/internal/models/db_models"
	"agenda/internal/models/response_models"
	"agenda/pkg/utils"
)

func toActivityResponse(a *db_models.Activity) response_models.ActivityResponse {
	out := response_models.ActivityResponse{
		ID:           a.ID.String(),
		Title:        a.Title,
		Description:  a.Description,
		Date:         utils.FormatDate(a.Date),
		Time:         a.Time,
		ActivityType: string(a.ActivityType),

		Strikethrough:       a.Strikethrough,
		RescheduledFrom:     utils.FormatDatePtr(a.RescheduledFrom),
		RescheduledTimeFrom: a.RescheduledTimeFrom,
		RescheduledTo:       utils.FormatDatePtr(a.RescheduledTo),
		RescheduledTimeTo:   a.RescheduledTimeTo,
	}

	if a.ActivityType.IsTrip() {
		out.BirthDate = utils.FormatDatePtr(a.Trip.BirthDate)
		out.IDCard = a.Trip.IDCard
		out.DepartureDate = utils.FormatDatePtr(a.Trip.DepartureDate)
		out.TransportationType = string(a.Trip.TransportationType)
		out.TransportationName = a.Trip.TransportationName
		out.TransportationFrom = a.Trip.TransportationFrom
		out.Destination = a.Trip.Destination
		out.BookingFlightNo = a.Trip.BookingFlightNo
		out.DepartureFrom = a.Trip.DepartureFrom
		out.ArrivalTo = a.Trip.ArrivalTo
	}

	if a.User.ID != uuid.Nil {
		out.User = &response_models.UserRef{
			ID:    a.User.ID.String(),
			Name:  a.User.Name,
			Email: a.User.Email,
		}
	}
	if a.Branch.ID != uuid.Nil {
		out.Branch = &response_models.BranchRef{
			ID:   a.Branch.ID.String(),
			Name: a.Branch.Name,
		}
	}
	if a.Employee.ID != uuid.Nil {
		out.Employee = &response_models.EmployeeRef{
			ID:       a.Employee.ID.String(),
			Name:     a.Employee.Name,
			Email:    a.Employee.Email,
			Position: a.Employee.Position,
		}
	}

	for _, day := range a.DailyActivities {
		out.DailyActivities = append(out.DailyActivities, toDailyActivityResponse(day))
	}

	return out
}

func toDailyActivityResponse(day db_models.DailyActivity) response_models.DailyActivityResponse {
	out := response_models.DailyActivityResponse{
		ID:            day.ID.String(),
		Date:          utils.FormatDate(day.Date),
		NeedHotel:     day.NeedHotel,
		HotelCheckIn:  utils.FormatDatePtr(day.HotelCheckIn),
		HotelCheckOut: utils.FormatDatePtr(day.HotelCheckOut),
		HotelName:     day.HotelName,
		HotelAddress:  day.HotelAddress,
	}
	for _, item := range day.ActivityItems {
		out.ActivityItems = append(out.ActivityItems, response_models.ActivityItemResponse{
			ID:    item.ID.String(),
			Name:  item.Name,
			Order: item.Order,
		})
	}
	return out
}

func toActivityResponses(activities []db_models.Activity) []response_models.ActivityResponse {
	out := make([]response_models.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, toActivityResponse(&activities[i]))
	}
	return out
}

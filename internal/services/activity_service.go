package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agenda/internal/models/db_models"
	"agenda/internal/models/request_models"
	"agenda/internal/models/response_models"
	"agenda/internal/repositories"
	"agenda/pkg/utils"
)

type ActivityServiceInterface interface {
	ListByDay(ctx context.Context, requesterID uuid.UUID, date string, employeeID string) ([]response_models.ActivityResponse, error)
	ListByMonth(ctx context.Context, requesterID uuid.UUID, month int, year int, employeeID string) ([]response_models.ActivityResponse, error)
	GetByID(ctx context.Context, activityID, requesterID uuid.UUID) (*response_models.ActivityResponse, error)
	Create(ctx context.Context, requesterID uuid.UUID, req request_models.ActivityRequest) (*response_models.ActivityResponse, error)
	Update(ctx context.Context, activityID, requesterID uuid.UUID, req request_models.ActivityRequest) (*response_models.ActivityResponse, error)
	Delete(ctx context.Context, activityID, requesterID uuid.UUID) error
	Reschedule(ctx context.Context, activityID, requesterID uuid.UUID, req request_models.RescheduleRequest) (*response_models.RescheduleResponse, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
}

func NewActivityService(activityRepo repositories.ActivityRepository) ActivityServiceInterface {
	return &ActivityService{activityRepo: activityRepo}
}

func (s *ActivityService) ListByDay(ctx context.Context, requesterID uuid.UUID, date string, employeeID string) ([]response_models.ActivityResponse, error) {
	day, err := utils.ParseDateWIB(date)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	employeeFilter, err := parseOptionalID(employeeID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	activities, err := s.activityRepo.ListForCreatorOnDay(ctx, requesterID, day, employeeFilter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toActivityResponses(activities), nil
}

func (s *ActivityService) ListByMonth(ctx context.Context, requesterID uuid.UUID, month int, year int, employeeID string) ([]response_models.ActivityResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, utils.ErrInvalidInput
	}

	employeeFilter, err := parseOptionalID(employeeID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	activities, err := s.activityRepo.ListForCreatorInMonth(ctx, requesterID, year, time.Month(month), employeeFilter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toActivityResponses(activities), nil
}

func (s *ActivityService) GetByID(ctx context.Context, activityID, requesterID uuid.UUID) (*response_models.ActivityResponse, error) {
	activity, err := s.activityRepo.FindByIDForCreator(ctx, activityID, requesterID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	out := toActivityResponse(activity)
	return &out, nil
}

func (s *ActivityService) Create(ctx context.Context, requesterID uuid.UUID, req request_models.ActivityRequest) (*response_models.ActivityResponse, error) {
	activity, days, err := buildActivityFromRequest(req, requesterID)
	if err != nil {
		return nil, err
	}

	conflict, err := s.activityRepo.HasConflict(ctx, activity.EmployeeID, activity.Date, activity.Time, uuid.Nil)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if conflict {
		return nil, utils.ErrScheduleConflict
	}

	created, err := s.activityRepo.Create(ctx, activity, days)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := toActivityResponse(created)
	return &out, nil
}

func (s *ActivityService) Update(ctx context.Context, activityID, requesterID uuid.UUID, req request_models.ActivityRequest) (*response_models.ActivityResponse, error) {
	existing, err := s.activityRepo.FindByIDForCreator(ctx, activityID, requesterID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrActivityNotFound
	}
	if existing.Strikethrough {
		// A superseded record is frozen; its replacement carries the schedule.
		return nil, utils.ErrActivitySuperseded
	}

	payload, days, err := buildActivityFromRequest(req, requesterID)
	if err != nil {
		return nil, err
	}

	conflict, err := s.activityRepo.HasConflict(ctx, payload.EmployeeID, payload.Date, payload.Time, existing.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if conflict {
		return nil, utils.ErrScheduleConflict
	}

	existing.Title = payload.Title
	existing.Description = payload.Description
	existing.Date = payload.Date
	existing.Time = payload.Time
	existing.ActivityType = payload.ActivityType
	existing.BranchID = payload.BranchID
	existing.EmployeeID = payload.EmployeeID
	existing.Trip = payload.Trip
	existing.DailyActivities = nil

	updated, err := s.activityRepo.Update(ctx, existing, days)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := toActivityResponse(updated)
	return &out, nil
}

func (s *ActivityService) Delete(ctx context.Context, activityID, requesterID uuid.UUID) error {
	existing, err := s.activityRepo.FindByIDForCreator(ctx, activityID, requesterID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrActivityNotFound
	}

	if err := s.activityRepo.Delete(ctx, existing.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ActivityService) Reschedule(ctx context.Context, activityID, requesterID uuid.UUID, req request_models.RescheduleRequest) (*response_models.RescheduleResponse, error) {
	newDate, err := utils.ParseDateWIB(req.Date)
	if err != nil || !utils.ValidClock(req.Time) {
		return nil, utils.ErrInvalidInput
	}
	if err := validateRescheduleSlot(newDate, req.Time); err != nil {
		return nil, err
	}

	original, err := s.activityRepo.FindByIDForCreator(ctx, activityID, requesterID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if original == nil {
		return nil, utils.ErrActivityNotFound
	}

	// The conflict check runs against the activity's assigned employee and
	// before the transaction starts. No id is excluded: the replica always
	// gets a fresh identity. Two concurrent reschedules into the same free
	// slot can both pass this check; see DESIGN.md.
	conflict, err := s.activityRepo.HasConflict(ctx, original.EmployeeID, newDate, req.Time, uuid.Nil)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if conflict {
		return nil, utils.ErrScheduleConflict
	}

	updated, replica, err := s.activityRepo.Reschedule(ctx, original, newDate, req.Time, requesterID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RescheduleResponse{
		UpdatedOriginal: toActivityResponse(updated),
		NewActivity:     toActivityResponse(replica),
	}, nil
}

// validateRescheduleSlot rejects slots in the past, WIB-local. A same-day
// slot must start after the current hour.
func validateRescheduleSlot(date time.Time, clock string) error {
	now := time.Now().In(utils.LocationWIB())
	today := utils.StartOfDayWIB(now)

	switch {
	case date.Before(today):
		return utils.ErrPastSchedule
	case date.Equal(today) && utils.ClockHour(clock) <= now.Hour():
		return utils.ErrPastSchedule
	}
	return nil
}

func parseOptionalID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
	maxItemNameLen    = 200
)

// buildActivityFromRequest validates the payload against its activity type
// and materializes the record plus trip days. Non-trip types require title
// and description; the trip type requires the full traveler/logistics field
// group and at least one day with at least one item.
func buildActivityFromRequest(req request_models.ActivityRequest, requesterID uuid.UUID) (*db_models.Activity, []db_models.DailyActivity, error) {
	date, err := utils.ParseDateWIB(req.Date)
	if err != nil || !utils.ValidClock(req.Time) {
		return nil, nil, utils.ErrInvalidInput
	}

	activityType := db_models.ActivityType(req.ActivityType)
	if !activityType.Valid() {
		return nil, nil, utils.ErrInvalidInput
	}

	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, nil, utils.ErrInvalidInput
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, nil, utils.ErrInvalidInput
	}

	activity := &db_models.Activity{
		Date:         date,
		Time:         req.Time,
		ActivityType: activityType,
		BranchID:     branchID,
		EmployeeID:   employeeID,
		CreatedBy:    requesterID,
	}

	if !activityType.IsTrip() {
		if req.Title == "" || req.Description == "" {
			return nil, nil, utils.ErrInvalidInput
		}
		if len(req.Title) > maxTitleLen || len(req.Description) > maxDescriptionLen {
			return nil, nil, utils.ErrInvalidInput
		}
		activity.Title = req.Title
		activity.Description = req.Description
		return activity, nil, nil
	}

	trip, err := buildTripDetails(req)
	if err != nil {
		return nil, nil, err
	}
	activity.Trip = *trip
	activity.Title = req.Title
	activity.Description = req.Description

	days, err := buildDailyActivities(req.DailyActivities)
	if err != nil {
		return nil, nil, err
	}
	return activity, days, nil
}

func buildTripDetails(req request_models.ActivityRequest) (*db_models.TripDetails, error) {
	transport := db_models.TransportationType(req.TransportationType)
	if !transport.Valid() {
		return nil, utils.ErrInvalidInput
	}
	if req.IDCard == "" || req.TransportationName == "" || req.TransportationFrom == "" ||
		req.Destination == "" || req.DepartureFrom == "" || req.ArrivalTo == "" {
		return nil, utils.ErrInvalidInput
	}

	birthDate, err := utils.ParseDateWIB(req.BirthDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	departureDate, err := utils.ParseDateWIB(req.DepartureDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	return &db_models.TripDetails{
		BirthDate:          &birthDate,
		IDCard:             req.IDCard,
		DepartureDate:      &departureDate,
		TransportationType: transport,
		TransportationName: req.TransportationName,
		TransportationFrom: req.TransportationFrom,
		Destination:        req.Destination,
		BookingFlightNo:    req.BookingFlightNo,
		DepartureFrom:      req.DepartureFrom,
		ArrivalTo:          req.ArrivalTo,
	}, nil
}

func buildDailyActivities(reqs []request_models.DailyActivityRequest) ([]db_models.DailyActivity, error) {
	if len(reqs) == 0 {
		return nil, utils.ErrInvalidInput
	}

	days := make([]db_models.DailyActivity, 0, len(reqs))
	for _, dayReq := range reqs {
		date, err := utils.ParseDateWIB(dayReq.Date)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		if len(dayReq.ActivityItems) == 0 {
			return nil, utils.ErrInvalidInput
		}

		day := db_models.DailyActivity{
			Date:         date,
			NeedHotel:    dayReq.NeedHotel,
			HotelName:    dayReq.HotelName,
			HotelAddress: dayReq.HotelAddress,
		}

		if dayReq.NeedHotel {
			checkIn, err := utils.ParseDateWIB(dayReq.HotelCheckIn)
			if err != nil {
				return nil, utils.ErrInvalidInput
			}
			checkOut, err := utils.ParseDateWIB(dayReq.HotelCheckOut)
			if err != nil {
				return nil, utils.ErrInvalidInput
			}
			if !checkOut.After(checkIn) {
				return nil, utils.ErrInvalidInput
			}
			day.HotelCheckIn = &checkIn
			day.HotelCheckOut = &checkOut
		}

		for idx, itemReq := range dayReq.ActivityItems {
			if itemReq.Name == "" || len(itemReq.Name) > maxItemNameLen {
				return nil, utils.ErrInvalidInput
			}
			day.ActivityItems = append(day.ActivityItems, db_models.ActivityItem{
				Name:  itemReq.Name,
				Order: idx,
			})
		}
		days = append(days, day)
	}
	return days, nil
}

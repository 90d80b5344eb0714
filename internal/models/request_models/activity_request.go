package request_models

type ActivityItemRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

type DailyActivityRequest struct {
	Date          string                `json:"date" binding:"required"`
	NeedHotel     bool                  `json:"needHotel"`
	HotelCheckIn  string                `json:"hotelCheckIn"`
	HotelCheckOut string                `json:"hotelCheckOut"`
	HotelName     string                `json:"hotelName"`
	HotelAddress  string                `json:"hotelAddress"`
	ActivityItems []ActivityItemRequest `json:"activityItems" binding:"required,min=1,dive"`
}

// ActivityRequest carries both creates and full updates. Which fields are
// required depends on activityType; the service enforces the split.
type ActivityRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	ActivityType string `json:"activityType" binding:"required"`
	BranchID     string `json:"branchId" binding:"required"`
	EmployeeID   string `json:"employeeId" binding:"required"`

	// PERJALANAN_DINAS fields
	BirthDate          string `json:"birthDate"`
	IDCard             string `json:"idCard"`
	DepartureDate      string `json:"departureDate"`
	TransportationType string `json:"transportationType"`
	TransportationName string `json:"transportationName"`
	TransportationFrom string `json:"transportationFrom"`
	Destination        string `json:"destination"`
	BookingFlightNo    string `json:"bookingFlightNo"`
	DepartureFrom      string `json:"departureFrom"`
	ArrivalTo          string `json:"arrivalTo"`

	DailyActivities []DailyActivityRequest `json:"dailyActivities"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

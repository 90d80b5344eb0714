package response_models

type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EmployeeRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Position string `json:"position,omitempty"`
}

type BranchRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ActivityItemResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type DailyActivityResponse struct {
	ID            string                 `json:"id"`
	Date          string                 `json:"date"`
	NeedHotel     bool                   `json:"needHotel"`
	HotelCheckIn  string                 `json:"hotelCheckIn,omitempty"`
	HotelCheckOut string                 `json:"hotelCheckOut,omitempty"`
	HotelName     string                 `json:"hotelName,omitempty"`
	HotelAddress  string                 `json:"hotelAddress,omitempty"`
	ActivityItems []ActivityItemResponse `json:"activityItems"`
}

type ActivityResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	ActivityType string `json:"activityType"`

	Strikethrough       bool   `json:"strikethrough"`
	RescheduledFrom     string `json:"rescheduledFrom,omitempty"`
	RescheduledTimeFrom string `json:"rescheduledTimeFrom,omitempty"`
	RescheduledTo       string `json:"rescheduledTo,omitempty"`
	RescheduledTimeTo   string `json:"rescheduledTimeTo,omitempty"`

	BirthDate          string `json:"birthDate,omitempty"`
	IDCard             string `json:"idCard,omitempty"`
	DepartureDate      string `json:"departureDate,omitempty"`
	TransportationType string `json:"transportationType,omitempty"`
	TransportationName string `json:"transportationName,omitempty"`
	TransportationFrom string `json:"transportationFrom,omitempty"`
	Destination        string `json:"destination,omitempty"`
	BookingFlightNo    string `json:"bookingFlightNo,omitempty"`
	DepartureFrom      string `json:"departureFrom,omitempty"`
	ArrivalTo          string `json:"arrivalTo,omitempty"`

	User     *UserRef     `json:"user,omitempty"`
	Branch   *BranchRef   `json:"branch,omitempty"`
	Employee *EmployeeRef `json:"employee,omitempty"`

	DailyActivities []DailyActivityResponse `json:"dailyActivities,omitempty"`
}

type RescheduleResponse struct {
	UpdatedOriginal ActivityResponse `json:"updatedOriginal"`
	NewActivity     ActivityResponse `json:"newActivity"`
}

package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrActivitySuperseded = errors.New("activity already rescheduled")
	ErrScheduleConflict   = errors.New("employee already has an activity at that slot")
	ErrPastSchedule       = errors.New("schedule is in the past")
	ErrNotBusinessTrip    = errors.New("activity is not a business trip")
	ErrDatabaseError      = errors.New("database error")
)

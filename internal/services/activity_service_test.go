package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"agenda/internal/infra"
	dbm "agenda/internal/models/db_models"
	"agenda/internal/models/request_models"
	"agenda/internal/repositories"
	"agenda/pkg/utils"
)

type activityFixture struct {
	db       *gorm.DB
	service  ActivityServiceInterface
	creator  uuid.UUID
	employee uuid.UUID
	branch   uuid.UUID
}

func newActivityFixture(t *testing.T) *activityFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := dbm.User{Name: "Scheduler", Email: "scheduler@example.com", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	emp := dbm.Employee{Name: "Budi Santoso", Email: "budi@example.com", Position: "Account Officer"}
	if err := db.Create(&emp).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	br := dbm.Branch{Name: "Cabang Surabaya"}
	if err := db.Create(&br).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}

	return &activityFixture{
		db:       db,
		service:  NewActivityService(repositories.NewActivityRepository(db)),
		creator:  user.ID,
		employee: emp.ID,
		branch:   br.ID,
	}
}

// futureDate returns a date string daysAhead days from now, WIB-local, so the
// past-slot guard never trips.
func futureDate(daysAhead int) string {
	return time.Now().In(utils.LocationWIB()).AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func (f *activityFixture) meetingRequest(date, clock string) request_models.ActivityRequest {
	return request_models.ActivityRequest{
		Title:        "Rapat koordinasi",
		Description:  "Review pipeline mingguan",
		Date:         date,
		Time:         clock,
		ActivityType: string(dbm.ActivityTypeProspectMeeting),
		BranchID:     f.branch.String(),
		EmployeeID:   f.employee.String(),
	}
}

func (f *activityFixture) tripRequest(date, clock string) request_models.ActivityRequest {
	return request_models.ActivityRequest{
		Date:               date,
		Time:               clock,
		ActivityType:       string(dbm.ActivityTypeBusinessTrip),
		BranchID:           f.branch.String(),
		EmployeeID:         f.employee.String(),
		BirthDate:          "1990-04-12",
		IDCard:             "3578011204900001",
		DepartureDate:      date,
		TransportationType: string(dbm.TransportationFlight),
		TransportationName: "Garuda Indonesia",
		TransportationFrom: "Surabaya",
		Destination:        "Jakarta",
		BookingFlightNo:    "GA-321",
		DepartureFrom:      "SUB",
		ArrivalTo:          "CGK",
		DailyActivities: []request_models.DailyActivityRequest{
			{
				Date: date,
				ActivityItems: []request_models.ActivityItemRequest{
					{Name: "Meeting"},
					{Name: "Site Visit"},
				},
			},
		},
	}
}

func TestActivityService_Create_RejectsOccupiedSlot(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	if _, err := f.service.Create(ctx, f.creator, f.meetingRequest(date, "08:00")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := f.service.Create(ctx, f.creator, f.meetingRequest(date, "08:00"))
	if !errors.Is(err, utils.ErrScheduleConflict) {
		t.Fatalf("expected schedule conflict, got %v", err)
	}

	var count int64
	if err := f.db.Model(&dbm.Activity{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rejected create must not write, found %d activities", count)
	}
}

func TestActivityService_Create_ValidatesByType(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	noTitle := f.meetingRequest(date, "08:00")
	noTitle.Title = ""
	if _, err := f.service.Create(ctx, f.creator, noTitle); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input for untitled meeting, got %v", err)
	}

	noDays := f.tripRequest(date, "08:00")
	noDays.DailyActivities = nil
	if _, err := f.service.Create(ctx, f.creator, noDays); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input for trip without days, got %v", err)
	}

	badTransport := f.tripRequest(date, "08:00")
	badTransport.TransportationType = "BECAK"
	if _, err := f.service.Create(ctx, f.creator, badTransport); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown transport, got %v", err)
	}

	badClock := f.meetingRequest(date, "25:00")
	if _, err := f.service.Create(ctx, f.creator, badClock); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad clock, got %v", err)
	}
}

func TestActivityService_Create_TripCarriesItinerary(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	created, err := f.service.Create(ctx, f.creator, f.tripRequest(date, "08:00"))
	if err != nil {
		t.Fatalf("create trip: %v", err)
	}

	if created.ActivityType != string(dbm.ActivityTypeBusinessTrip) {
		t.Fatalf("unexpected type %q", created.ActivityType)
	}
	if created.TransportationName != "Garuda Indonesia" || created.BookingFlightNo != "GA-321" {
		t.Fatalf("trip fields missing from response: %+v", created)
	}
	if len(created.DailyActivities) != 1 || len(created.DailyActivities[0].ActivityItems) != 2 {
		t.Fatalf("itinerary missing from response: %+v", created.DailyActivities)
	}
	if created.Employee == nil || created.Employee.Name != "Budi Santoso" {
		t.Fatalf("employee ref missing: %+v", created.Employee)
	}
}

func TestActivityService_Reschedule_MovesSlotAndLinksRecords(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.creator, f.tripRequest(futureDate(7), "08:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	newDate := futureDate(10)
	result, err := f.service.Reschedule(ctx, id, f.creator, request_models.RescheduleRequest{
		Date: newDate,
		Time: "09:00",
	})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	if !result.UpdatedOriginal.Strikethrough {
		t.Fatal("original must be struck through")
	}
	if result.UpdatedOriginal.RescheduledTo != newDate || result.UpdatedOriginal.RescheduledTimeTo != "09:00" {
		t.Fatalf("forward link wrong: %q %q", result.UpdatedOriginal.RescheduledTo, result.UpdatedOriginal.RescheduledTimeTo)
	}

	if result.NewActivity.ID == result.UpdatedOriginal.ID {
		t.Fatal("replacement must be a distinct record")
	}
	if result.NewActivity.Date != newDate || result.NewActivity.Time != "09:00" {
		t.Fatalf("replacement slot wrong: %q %q", result.NewActivity.Date, result.NewActivity.Time)
	}
	if result.NewActivity.RescheduledFrom != created.Date || result.NewActivity.RescheduledTimeFrom != "08:00" {
		t.Fatalf("back link wrong: %q %q", result.NewActivity.RescheduledFrom, result.NewActivity.RescheduledTimeFrom)
	}
	if len(result.NewActivity.DailyActivities) != 1 ||
		len(result.NewActivity.DailyActivities[0].ActivityItems) != 2 {
		t.Fatalf("itinerary not cloned onto replacement: %+v", result.NewActivity.DailyActivities)
	}
}

func TestActivityService_Reschedule_RejectsOccupiedSlot(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	if _, err := f.service.Create(ctx, f.creator, f.meetingRequest(date, "08:00")); err != nil {
		t.Fatalf("create blocker: %v", err)
	}
	moved, err := f.service.Create(ctx, f.creator, f.meetingRequest(date, "10:00"))
	if err != nil {
		t.Fatalf("create movable: %v", err)
	}

	_, err = f.service.Reschedule(ctx, uuid.MustParse(moved.ID), f.creator, request_models.RescheduleRequest{
		Date: date,
		Time: "08:00",
	})
	if !errors.Is(err, utils.ErrScheduleConflict) {
		t.Fatalf("expected schedule conflict, got %v", err)
	}

	// The rejected reschedule must leave the record untouched.
	after, err := f.service.GetByID(ctx, uuid.MustParse(moved.ID), f.creator)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if after.Strikethrough || after.Time != "10:00" {
		t.Fatalf("record mutated by rejected reschedule: %+v", after)
	}

	var count int64
	if err := f.db.Model(&dbm.Activity{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected no replica after rejection, found %d activities", count)
	}
}

func TestActivityService_Reschedule_RejectsPastSlot(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.creator, f.meetingRequest(futureDate(7), "08:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	yesterday := time.Now().In(utils.LocationWIB()).AddDate(0, 0, -1).Format("2006-01-02")
	_, err = f.service.Reschedule(ctx, uuid.MustParse(created.ID), f.creator, request_models.RescheduleRequest{
		Date: yesterday,
		Time: "08:00",
	})
	if !errors.Is(err, utils.ErrPastSchedule) {
		t.Fatalf("expected past schedule rejection, got %v", err)
	}
}

func TestActivityService_Reschedule_NotFoundForOtherRequester(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.creator, f.meetingRequest(futureDate(7), "08:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stranger := dbm.User{Name: "Stranger", Email: "stranger@example.com", PasswordHash: "x"}
	if err := f.db.Create(&stranger).Error; err != nil {
		t.Fatalf("seed stranger: %v", err)
	}

	_, err = f.service.Reschedule(ctx, uuid.MustParse(created.ID), stranger.ID, request_models.RescheduleRequest{
		Date: futureDate(10),
		Time: "09:00",
	})
	if !errors.Is(err, utils.ErrActivityNotFound) {
		t.Fatalf("expected not found for another requester, got %v", err)
	}
}

func TestActivityService_Reschedule_InvalidPayload(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()

	_, err := f.service.Reschedule(ctx, uuid.New(), f.creator, request_models.RescheduleRequest{
		Date: "15-03-2026",
		Time: "09:00",
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad date, got %v", err)
	}

	_, err = f.service.Reschedule(ctx, uuid.New(), f.creator, request_models.RescheduleRequest{
		Date: futureDate(10),
		Time: "9am",
	})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad clock, got %v", err)
	}
}

func TestActivityService_Update_BlocksSupersededRecord(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	created, err := f.service.Create(ctx, f.creator, f.meetingRequest(date, "08:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	if _, err := f.service.Reschedule(ctx, id, f.creator, request_models.RescheduleRequest{
		Date: futureDate(10),
		Time: "09:00",
	}); err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	_, err = f.service.Update(ctx, id, f.creator, f.meetingRequest(date, "11:00"))
	if !errors.Is(err, utils.ErrActivitySuperseded) {
		t.Fatalf("expected superseded rejection, got %v", err)
	}
}

func TestActivityService_Update_KeepingOwnSlotIsNotAConflict(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	created, err := f.service.Create(ctx, f.creator, f.meetingRequest(date, "08:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edited := f.meetingRequest(date, "08:00")
	edited.Title = "Rapat koordinasi (revisi)"
	updated, err := f.service.Update(ctx, uuid.MustParse(created.ID), f.creator, edited)
	if err != nil {
		t.Fatalf("update in place: %v", err)
	}
	if updated.Title != "Rapat koordinasi (revisi)" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
}

func TestActivityService_ListByDay(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()
	date := futureDate(7)

	if _, err := f.service.Create(ctx, f.creator, f.meetingRequest(date, "10:00")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.service.Create(ctx, f.creator, f.meetingRequest(date, "08:00")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.service.Create(ctx, f.creator, f.meetingRequest(futureDate(8), "08:00")); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := f.service.ListByDay(ctx, f.creator, date, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 activities on the day, got %d", len(list))
	}
	if list[0].Time != "08:00" || list[1].Time != "10:00" {
		t.Fatalf("expected time ordering, got %q then %q", list[0].Time, list[1].Time)
	}
}

func TestActivityService_Delete_ScopedToCreator(t *testing.T) {
	f := newActivityFixture(t)
	ctx := context.Background()

	created, err := f.service.Create(ctx, f.creator, f.meetingRequest(futureDate(7), "08:00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	stranger := dbm.User{Name: "Stranger", Email: "stranger@example.com", PasswordHash: "x"}
	if err := f.db.Create(&stranger).Error; err != nil {
		t.Fatalf("seed stranger: %v", err)
	}

	if err := f.service.Delete(ctx, id, stranger.ID); !errors.Is(err, utils.ErrActivityNotFound) {
		t.Fatalf("expected not found for stranger, got %v", err)
	}
	if err := f.service.Delete(ctx, id, f.creator); err != nil {
		t.Fatalf("delete by creator: %v", err)
	}
	if _, err := f.service.GetByID(ctx, id, f.creator); !errors.Is(err, utils.ErrActivityNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "agenda/internal/models/db_models"
)

type ActivityRepository interface {
	// HasConflict reports whether the employee already holds the exact
	// (date, time) slot. excludeID skips one activity id, pass uuid.Nil to
	// exclude nothing. Superseded records still count as occupying their slot.
	HasConflict(ctx context.Context, employeeID uuid.UUID, date time.Time, clock string, excludeID uuid.UUID) (bool, error)

	// FindByIDForCreator loads an activity scoped to its creator, with
	// daily activities ordered by date and items ordered by index.
	// Returns (nil, nil) when no record matches the scope.
	FindByIDForCreator(ctx context.Context, id, creatorID uuid.UUID) (*dbm.Activity, error)

	// FindTripByID loads a business-trip activity regardless of creator,
	// for itinerary export. Returns (nil, nil) when absent or not a trip.
	FindTripByID(ctx context.Context, id uuid.UUID) (*dbm.Activity, error)

	ListForCreatorOnDay(ctx context.Context, creatorID uuid.UUID, day time.Time, employeeID uuid.UUID) ([]dbm.Activity, error)
	ListForCreatorInMonth(ctx context.Context, creatorID uuid.UUID, year int, month time.Month, employeeID uuid.UUID) ([]dbm.Activity, error)

	Create(ctx context.Context, activity *dbm.Activity, days []dbm.DailyActivity) (*dbm.Activity, error)
	Update(ctx context.Context, activity *dbm.Activity, days []dbm.DailyActivity) (*dbm.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Reschedule supersedes the original and inserts a replica at the new
	// slot, cloning the daily structure, as one transaction. Returns the
	// updated original and the replica, both with resolved references.
	Reschedule(ctx context.Context, original *dbm.Activity, newDate time.Time, newClock string, actorID uuid.UUID) (*dbm.Activity, *dbm.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) HasConflict(ctx context.Context, employeeID uuid.UUID, date time.Time, clock string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&dbm.Activity{}).
		Where("employee_id = ? AND date = ? AND time = ?", employeeID, date, clock)

	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func withOrderedChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("DailyActivities", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC")
		}).
		Preload("DailyActivities.ActivityItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_order ASC")
		})
}

func withRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Branch").Preload("Employee")
}

func (r *activityRepository) FindByIDForCreator(ctx context.Context, id, creatorID uuid.UUID) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := withOrderedChildren(withRefs(r.db.WithContext(ctx))).
		Where("id = ? AND created_by = ?", id, creatorID).
		First(&activity).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) FindTripByID(ctx context.Context, id uuid.UUID) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := withOrderedChildren(withRefs(r.db.WithContext(ctx))).
		Where("id = ? AND activity_type = ?", id, dbm.ActivityTypeBusinessTrip).
		First(&activity).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) findWithRefs(ctx context.Context, id uuid.UUID) (*dbm.Activity, error) {
	var activity dbm.Activity
	err := withOrderedChildren(withRefs(r.db.WithContext(ctx))).
		Where("id = ?", id).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListForCreatorOnDay(ctx context.Context, creatorID uuid.UUID, day time.Time, employeeID uuid.UUID) ([]dbm.Activity, error) {
	end := day.Add(24 * time.Hour)

	query := withOrderedChildren(withRefs(r.db.WithContext(ctx))).
		Where("created_by = ? AND date >= ? AND date < ?", creatorID, day, end)
	if employeeID != uuid.Nil {
		query = query.Where("employee_id = ?", employeeID)
	}

	var activities []dbm.Activity
	if err := query.Order("time ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) ListForCreatorInMonth(ctx context.Context, creatorID uuid.UUID, year int, month time.Month, employeeID uuid.UUID) ([]dbm.Activity, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, wibLoc)
	end := start.AddDate(0, 1, 0)

	query := withOrderedChildren(withRefs(r.db.WithContext(ctx))).
		Where("created_by = ? AND date >= ? AND date < ?", creatorID, start, end)
	if employeeID != uuid.Nil {
		query = query.Where("employee_id = ?", employeeID)
	}

	var activities []dbm.Activity
	if err := query.Order("date ASC, time ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Create(ctx context.Context, activity *dbm.Activity, days []dbm.DailyActivity) (*dbm.Activity, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(activity).Error; err != nil {
			return err
		}
		return createDailyStructure(tx, activity.ID, days)
	})
	if err != nil {
		return nil, err
	}
	return r.findWithRefs(ctx, activity.ID)
}

func (r *activityRepository) Update(ctx context.Context, activity *dbm.Activity, days []dbm.DailyActivity) (*dbm.Activity, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(activity).Error; err != nil {
			return err
		}

		// The day list is replaced wholesale on every edit.
		if err := deleteDailyStructure(tx, activity.ID); err != nil {
			return err
		}
		return createDailyStructure(tx, activity.ID, days)
	})
	if err != nil {
		return nil, err
	}
	return r.findWithRefs(ctx, activity.ID)
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteDailyStructure(tx, id); err != nil {
			return err
		}
		return tx.Delete(&dbm.Activity{}, "id = ?", id).Error
	})
}

func (r *activityRepository) Reschedule(ctx context.Context, original *dbm.Activity, newDate time.Time, newClock string, actorID uuid.UUID) (*dbm.Activity, *dbm.Activity, error) {
	replica := buildReplica(original, newDate, newClock, actorID)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbm.Activity{}).
			Where("id = ?", original.ID).
			Updates(map[string]interface{}{
				"strikethrough":       true,
				"rescheduled_to":      newDate,
				"rescheduled_time_to": newClock,
			}).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(replica).Error; err != nil {
			return err
		}

		return cloneDailyStructure(tx, original.DailyActivities, replica.ID)
	})
	if err != nil {
		return nil, nil, err
	}

	updated, err := r.findWithRefs(ctx, original.ID)
	if err != nil {
		return nil, nil, err
	}
	created, err := r.findWithRefs(ctx, replica.ID)
	if err != nil {
		return nil, nil, err
	}
	return updated, created, nil
}

// buildReplica copies every domain field onto a fresh record at the new slot.
// The replica points back at the original's pre-reschedule slot and belongs to
// the acting user.
func buildReplica(original *dbm.Activity, newDate time.Time, newClock string, actorID uuid.UUID) *dbm.Activity {
	origDate := original.Date
	return &dbm.Activity{
		Title:        original.Title,
		Description:  original.Description,
		Date:         newDate,
		Time:         newClock,
		ActivityType: original.ActivityType,
		BranchID:     original.BranchID,
		EmployeeID:   original.EmployeeID,
		CreatedBy:    actorID,

		RescheduledFrom:     &origDate,
		RescheduledTimeFrom: original.Time,

		Trip: original.Trip,
	}
}

// cloneDailyStructure re-creates every source day row and its item rows under
// targetID, preserving day order and re-assigning contiguous item indices.
// Runs inside the caller's transaction; any failure aborts the whole unit.
func cloneDailyStructure(tx *gorm.DB, source []dbm.DailyActivity, targetID uuid.UUID) error {
	for _, day := range source {
		clone := dbm.DailyActivity{
			ActivityID:    targetID,
			Date:          day.Date,
			NeedHotel:     day.NeedHotel,
			HotelCheckIn:  day.HotelCheckIn,
			HotelCheckOut: day.HotelCheckOut,
			HotelName:     day.HotelName,
			HotelAddress:  day.HotelAddress,
		}
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}

		if len(day.ActivityItems) == 0 {
			continue
		}
		items := make([]dbm.ActivityItem, 0, len(day.ActivityItems))
		for idx, item := range day.ActivityItems {
			items = append(items, dbm.ActivityItem{
				DailyActivityID: clone.ID,
				Name:            item.Name,
				Order:           idx,
			})
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

func createDailyStructure(tx *gorm.DB, parentID uuid.UUID, days []dbm.DailyActivity) error {
	for i := range days {
		day := days[i]
		day.ActivityID = parentID
		items := day.ActivityItems
		day.ActivityItems = nil

		if err := tx.Create(&day).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			continue
		}
		for idx := range items {
			items[idx].DailyActivityID = day.ID
			items[idx].Order = idx
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteDailyStructure(tx *gorm.DB, parentID uuid.UUID) error {
	// Subquery keeps the item delete join-free, which also works for
	// soft-delete updates.
	dayIDs := tx.Model(&dbm.DailyActivity{}).
		Select("id").
		Where("activity_id = ?", parentID)

	if err := tx.Where("daily_activity_id IN (?)", dayIDs).
		Delete(&dbm.ActivityItem{}).Error; err != nil {
		return err
	}
	return tx.Where("activity_id = ?", parentID).
		Delete(&dbm.DailyActivity{}).Error
}

var wibLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}()

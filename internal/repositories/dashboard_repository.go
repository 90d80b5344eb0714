package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "agenda/internal/models/db_models"
)

type StatRow struct {
	Label string
	Total int64
}

type DashboardRepository interface {
	CountByEmployee(ctx context.Context, creatorID, employeeID uuid.UUID) ([]StatRow, error)
	CountByBranch(ctx context.Context, creatorID, employeeID uuid.UUID) ([]StatRow, error)
	CountByType(ctx context.Context, creatorID, employeeID uuid.UUID) ([]StatRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) scoped(ctx context.Context, creatorID, employeeID uuid.UUID) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&dbm.Activity{}).
		Where("activities.created_by = ?", creatorID)
	if employeeID != uuid.Nil {
		query = query.Where("activities.employee_id = ?", employeeID)
	}
	return query
}

func (r *dashboardRepository) CountByEmployee(ctx context.Context, creatorID, employeeID uuid.UUID) ([]StatRow, error) {
	var rows []StatRow
	err := r.scoped(ctx, creatorID, employeeID).
		Select("employees.name AS label, COUNT(activities.id) AS total").
		Joins("JOIN employees ON employees.id = activities.employee_id").
		Group("employees.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dashboardRepository) CountByBranch(ctx context.Context, creatorID, employeeID uuid.UUID) ([]StatRow, error) {
	var rows []StatRow
	err := r.scoped(ctx, creatorID, employeeID).
		Select("branches.name AS label, COUNT(activities.id) AS total").
		Joins("JOIN branches ON branches.id = activities.branch_id").
		Group("branches.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dashboardRepository) CountByType(ctx context.Context, creatorID, employeeID uuid.UUID) ([]StatRow, error) {
	var rows []StatRow
	err := r.scoped(ctx, creatorID, employeeID).
		Select("activities.activity_type AS label, COUNT(activities.id) AS total").
		Group("activities.activity_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

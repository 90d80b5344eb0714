package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	dbm "agenda/internal/models/db_models"
)

type EmployeeRepository interface {
	Search(ctx context.Context, search string, page int, limit int) ([]dbm.Employee, int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Search(ctx context.Context, search string, page int, limit int) ([]dbm.Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&dbm.Employee{})
	if search != "" {
		// LOWER keeps the match case-insensitive on both postgres and the
		// sqlite test database.
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(position) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []dbm.Employee
	err := query.
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&employees).Error
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

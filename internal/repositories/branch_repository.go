package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	dbm "agenda/internal/models/db_models"
)

type BranchRepository interface {
	Search(ctx context.Context, search string, page int, limit int) ([]dbm.Branch, int64, error)
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Search(ctx context.Context, search string, page int, limit int) ([]dbm.Branch, int64, error) {
	query := r.db.WithContext(ctx).Model(&dbm.Branch{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var branches []dbm.Branch
	err := query.
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&branches).Error
	if err != nil {
		return nil, 0, err
	}

	return branches, total, nil
}

package services

import (
	"context"

	"github.com/google/uuid"

	"agenda/internal/models/response_models"
	"agenda/internal/repositories"
	"agenda/pkg/utils"
)

type DashboardServiceInterface interface {
	ActivityStats(ctx context.Context, requesterID uuid.UUID, employeeID string) (*response_models.ActivityStatsReport, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

func (s *DashboardService) ActivityStats(ctx context.Context, requesterID uuid.UUID, employeeID string) (*response_models.ActivityStatsReport, error) {
	employeeFilter, err := parseOptionalID(employeeID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	employeeRows, err := s.dashboardRepo.CountByEmployee(ctx, requesterID, employeeFilter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	branchRows, err := s.dashboardRepo.CountByBranch(ctx, requesterID, employeeFilter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	typeRows, err := s.dashboardRepo.CountByType(ctx, requesterID, employeeFilter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ActivityStatsReport{
		EmployeeStats: statMap(employeeRows),
		BranchStats:   statMap(branchRows),
		TypeStats:     statMap(typeRows),
	}, nil
}

func statMap(rows []repositories.StatRow) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.Total
	}
	return out
}

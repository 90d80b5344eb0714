package services

import (
	"context"

	"agenda/internal/models/response_models"
	"agenda/internal/repositories"
	"agenda/pkg/utils"
)

type EmployeeServiceInterface interface {
	Search(ctx context.Context, search string, page int, limit int) (*response_models.EmployeeSearchResponse, error)
}

type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository) EmployeeServiceInterface {
	return &EmployeeService{employeeRepo: employeeRepo}
}

func (s *EmployeeService) Search(ctx context.Context, search string, page int, limit int) (*response_models.EmployeeSearchResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	employees, total, err := s.employeeRepo.Search(ctx, search, page, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.EmployeeSearchResponse{
		Employees: make([]response_models.EmployeeRef, 0, len(employees)),
		Total:     total,
		Page:      page,
		Limit:     limit,
	}
	for _, e := range employees {
		out.Employees = append(out.Employees, response_models.EmployeeRef{
			ID:       e.ID.String(),
			Name:     e.Name,
			Email:    e.Email,
			Position: e.Position,
		})
	}

	out.HasMore = int64(page*limit) < total
	if out.HasMore {
		next := page + 1
		out.NextPage = &next
	}
	return out, nil
}

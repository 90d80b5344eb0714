package services

import (
	"context"

	"agenda/internal/models/response_models"
	"agenda/internal/repositories"
	"agenda/pkg/utils"
)

type BranchServiceInterface interface {
	Search(ctx context.Context, search string, page int, limit int) (*response_models.BranchSearchResponse, error)
}

type BranchService struct {
	branchRepo repositories.BranchRepository
}

func NewBranchService(branchRepo repositories.BranchRepository) BranchServiceInterface {
	return &BranchService{branchRepo: branchRepo}
}

func (s *BranchService) Search(ctx context.Context, search string, page int, limit int) (*response_models.BranchSearchResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	branches, total, err := s.branchRepo.Search(ctx, search, page, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.BranchSearchResponse{
		Branches: make([]response_models.BranchRef, 0, len(branches)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
	for _, b := range branches {
		out.Branches = append(out.Branches, response_models.BranchRef{
			ID:   b.ID.String(),
			Name: b.Name,
		})
	}

	out.HasMore = int64(page*limit) < total
	if out.HasMore {
		next := page + 1
		out.NextPage = &next
	}
	return out, nil
}

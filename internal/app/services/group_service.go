package services

import (
	"context"
	"math"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// GroupService handles academic group operations
type GroupService struct {
	groupRepo repositories.GroupRepository
}

// NewGroupService creates a new group service instance
func NewGroupService(groupRepo repositories.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// Search returns the page of groups matching the filters.
func (s *GroupService) Search(ctx context.Context, filters models.GroupFilters, params search.Params) (search.Page[models.Group], error) {
	return s.groupRepo.Search(ctx, filters, params)
}

// Available returns the page of active groups with spare capacity.
func (s *GroupService) Available(ctx context.Context, filters models.GroupFilters, params search.Params) (search.Page[models.Group], error) {
	filters.AvailableOnly = true
	active := true
	filters.IsActive = &active
	return s.groupRepo.Search(ctx, filters, params)
}

// GetByPublicID returns one group.
func (s *GroupService) GetByPublicID(ctx context.Context, publicID string) (models.Group, error) {
	return s.groupRepo.GetByPublicID(ctx, publicID)
}

// Create registers a new group. The occupancy counter always starts at zero;
// it only moves through enrollment bookkeeping.
func (s *GroupService) Create(ctx context.Context, group models.Group) (models.Group, error) {
	if group.MaxStudents <= 0 {
		return models.Group{}, apperrors.NewValidationError("maxStudents must be greater than zero")
	}
	group.StudentsCount = 0
	group.IsActive = true
	return s.groupRepo.Create(ctx, group)
}

// Patch merges the present fields into the stored group.
func (s *GroupService) Patch(ctx context.Context, publicID string, patch dto.UpdateGroupRequest) (models.Group, error) {
	if patch.MaxStudents != nil && *patch.MaxStudents <= 0 {
		return models.Group{}, apperrors.NewValidationError("maxStudents must be greater than zero")
	}
	return s.groupRepo.Patch(ctx, publicID, patch)
}

// Replace swaps the stored group for the given record.
func (s *GroupService) Replace(ctx context.Context, publicID string, group models.Group) (models.Group, error) {
	if group.MaxStudents <= 0 {
		return models.Group{}, apperrors.NewValidationError("maxStudents must be greater than zero")
	}
	return s.groupRepo.Replace(ctx, publicID, group)
}

// Delete removes the group.
func (s *GroupService) Delete(ctx context.Context, publicID string) error {
	return s.groupRepo.Delete(ctx, publicID)
}

// AdjustStudentCount shifts the group's occupancy counter by increment.
func (s *GroupService) AdjustStudentCount(ctx context.Context, publicID string, increment int) (models.Group, error) {
	if increment == 0 {
		return models.Group{}, apperrors.NewValidationError("increment must not be zero")
	}
	return s.groupRepo.AdjustStudentCount(ctx, publicID, increment)
}

// Stats aggregates occupancy over every group. The aggregate is computed here
// from an unpaginated search so both data source variants serve it.
func (s *GroupService) Stats(ctx context.Context) (models.GroupStats, error) {
	page, err := s.groupRepo.Search(ctx, models.GroupFilters{}, search.Params{Unpaginated: true})
	if err != nil {
		return models.GroupStats{}, err
	}

	stats := models.GroupStats{TotalGroups: page.TotalElements}
	var capacity int
	for _, g := range page.Content {
		stats.TotalStudents += g.StudentsCount
		capacity += g.MaxStudents
		if g.Full() {
			stats.FullGroups++
		}
	}
	if capacity > 0 {
		stats.AverageOccupancy = math.Round(float64(stats.TotalStudents)/float64(capacity)*10000) / 100
	}
	return stats, nil
}

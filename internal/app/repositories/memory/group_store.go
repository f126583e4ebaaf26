package memory

import (
	"context"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// GroupStore is the in-memory academic group data source
type GroupStore struct {
	records *Collection[models.Group]
}

// NewGroupStore creates an empty in-memory group store
func NewGroupStore() *GroupStore {
	return &GroupStore{
		records: NewCollection(
			func(g *models.Group) (int64, string) { return g.ID, g.PublicID },
			func(g *models.Group, id int64, publicID string) {
				g.ID = id
				g.PublicID = publicID
			},
		),
	}
}

// Search runs the filter/sort/paginate pipeline over all groups.
func (r *GroupStore) Search(_ context.Context, filters models.GroupFilters, params search.Params) (search.Page[models.Group], error) {
	return r.records.Search(filters.Matches, models.GroupSchema, params), nil
}

// GetByPublicID returns one group by public id.
func (r *GroupStore) GetByPublicID(_ context.Context, publicID string) (models.Group, error) {
	g, ok := r.records.Find(publicID)
	if !ok {
		return models.Group{}, apperrors.ErrGroupNotFound
	}
	return g, nil
}

// Create stores a new group.
func (r *GroupStore) Create(_ context.Context, group models.Group) (models.Group, error) {
	return r.records.Insert(group), nil
}

// Patch merges the present fields of the request into the stored group.
func (r *GroupStore) Patch(_ context.Context, publicID string, patch dto.UpdateGroupRequest) (models.Group, error) {
	g, err := r.records.Mutate(publicID, func(g *models.Group) error {
		patch.ApplyTo(g)
		return nil
	})
	if err != nil {
		return models.Group{}, apperrors.ErrGroupNotFound
	}
	return g, nil
}

// Replace swaps the stored group for the given one, keeping its identity and
// derived occupancy counter.
func (r *GroupStore) Replace(_ context.Context, publicID string, group models.Group) (models.Group, error) {
	g, err := r.records.Mutate(publicID, func(g *models.Group) error {
		studentsCount := g.StudentsCount
		*g = group
		g.StudentsCount = studentsCount
		return nil
	})
	if err != nil {
		return models.Group{}, apperrors.ErrGroupNotFound
	}
	return g, nil
}

// Delete removes the group permanently.
func (r *GroupStore) Delete(_ context.Context, publicID string) error {
	if err := r.records.Remove(publicID); err != nil {
		return apperrors.ErrGroupNotFound
	}
	return nil
}

// AdjustStudentCount shifts the occupancy counter by increment, clamping at
// zero. The counter may exceed maxStudents; capacity is a soft rule.
func (r *GroupStore) AdjustStudentCount(_ context.Context, publicID string, increment int) (models.Group, error) {
	g, err := r.records.Mutate(publicID, func(g *models.Group) error {
		g.StudentsCount += increment
		if g.StudentsCount < 0 {
			g.StudentsCount = 0
		}
		return nil
	})
	if err != nil {
		return models.Group{}, apperrors.ErrGroupNotFound
	}
	return g, nil
}

package services

import (
	"context"
	"errors"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
)

// resolveReferences hydrates a list of entity references through lookup. The
// result keeps the caller's order with duplicates collapsed to their first
// occurrence; each id is looked up at most once. Ids that do not resolve are
// collected and reported alongside the hydrated records, never dropped
// silently. Any other lookup failure aborts the whole resolution.
func resolveReferences[T any](ctx context.Context, refs []models.Reference, lookup func(context.Context, string) (T, error)) ([]T, []string, error) {
	resolved := make([]T, 0, len(refs))
	var missing []string
	seen := make(map[string]bool, len(refs))

	for _, ref := range refs {
		if seen[ref.PublicID] {
			continue
		}
		seen[ref.PublicID] = true

		record, err := lookup(ctx, ref.PublicID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				missing = append(missing, ref.PublicID)
				continue
			}
			return nil, nil, err
		}
		resolved = append(resolved, record)
	}
	return resolved, missing, nil
}

// validateReferences rejects reference lists that name the same entity twice.
func validateReferences(refs []models.Reference, field string) error {
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if ref.PublicID == "" {
			return apperrors.NewValidationError(field + " contains a reference without an id")
		}
		if seen[ref.PublicID] {
			return apperrors.NewValidationError(field + " contains duplicate reference " + ref.PublicID)
		}
		seen[ref.PublicID] = true
	}
	return nil
}

package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
)

func TestEnrollmentTransitionTable(t *testing.T) {
	all := []models.EnrollmentStatus{
		models.EnrollmentPending,
		models.EnrollmentConfirmed,
		models.EnrollmentCompleted,
		models.EnrollmentCancelled,
	}
	allowed := map[models.EnrollmentStatus]map[models.EnrollmentStatus]bool{
		models.EnrollmentPending:   {models.EnrollmentConfirmed: true, models.EnrollmentCancelled: true},
		models.EnrollmentConfirmed: {models.EnrollmentCompleted: true, models.EnrollmentCancelled: true},
	}

	for _, from := range all {
		for _, to := range all {
			e := models.Enrollment{Status: from, IsActive: true}
			err := e.Transition(to)
			if allowed[from][to] {
				require.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, e.Status)
			} else {
				require.Error(t, err, "%s -> %s should be rejected", from, to)
				assert.True(t, errors.Is(err, apperrors.ErrInvalidStateTransition))
				assert.Equal(t, from, e.Status, "a rejected transition must not move the state")
			}
		}
	}
}

func TestEnrollmentCancelDeactivates(t *testing.T) {
	e := models.Enrollment{Status: models.EnrollmentConfirmed, IsActive: true}
	require.NoError(t, e.Cancel())
	assert.Equal(t, models.EnrollmentCancelled, e.Status)
	assert.False(t, e.IsActive)
}

func TestEnrollmentConfirmThenComplete(t *testing.T) {
	e := models.Enrollment{Status: models.EnrollmentPending, IsActive: true}
	require.NoError(t, e.Confirm())
	require.NoError(t, e.Complete())
	assert.Equal(t, models.EnrollmentCompleted, e.Status)
	assert.True(t, e.IsActive)

	err := e.Cancel()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidStateTransition))
}

func TestEnrollmentStatusValid(t *testing.T) {
	assert.True(t, models.EnrollmentPending.Valid())
	assert.True(t, models.EnrollmentCancelled.Valid())
	assert.False(t, models.EnrollmentStatus("ACTIVA").Valid())
	assert.False(t, models.EnrollmentStatus("").Valid())
}

func TestEnrollmentFiltersMatches(t *testing.T) {
	e := models.Enrollment{
		PublicID:        "enr-001",
		StudentPublicID: "std-001",
		StudentFullName: "Ana García",
		GroupPublicID:   "grp-001",
		GroupFullName:   "Primero A (2024-2025)",
		AcademicYear:    "2024-2025",
		Status:          models.EnrollmentConfirmed,
		IsActive:        true,
	}

	assert.True(t, models.EnrollmentFilters{}.Matches(e))
	assert.True(t, models.EnrollmentFilters{SearchText: "garcía"}.Matches(e))
	assert.True(t, models.EnrollmentFilters{Status: models.EnrollmentConfirmed}.Matches(e))
	assert.False(t, models.EnrollmentFilters{Status: models.EnrollmentPending}.Matches(e))
	assert.True(t, models.EnrollmentFilters{StudentID: "std-001", GroupID: "grp-001"}.Matches(e))
	assert.False(t, models.EnrollmentFilters{StudentID: "std-002"}.Matches(e))

	inactive := false
	assert.False(t, models.EnrollmentFilters{IsActive: &inactive}.Matches(e))
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

func newStudentService(t *testing.T) (*StudentService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewMemoryRepositories()
	return NewStudentService(repos.Students, repos.Tutors, repos.EmergencyContacts), repos
}

func validStudent() models.Student {
	return models.Student{
		FirstName:      "Ana",
		LastName:       "García",
		Email:          "ana.garcia@example.com",
		DateOfBirth:    "2017-03-12",
		Grade:          "Primero",
		Section:        "A",
		EnrollmentDate: "2024-02-01",
	}
}

func TestStudentServiceCreateStartsActive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStudentService(t)

	created, err := svc.Create(ctx, validStudent())
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.PublicID)
}

func TestStudentServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStudentService(t)

	tests := []struct {
		name   string
		mutate func(*models.Student)
	}{
		{"bad date of birth", func(s *models.Student) { s.DateOfBirth = "12/03/2017" }},
		{"bad enrollment date", func(s *models.Student) { s.EnrollmentDate = "2024-13-99" }},
		{"bad email", func(s *models.Student) { s.Email = "not-an-address" }},
		{"duplicate tutor reference", func(s *models.Student) {
			s.Tutors = []models.Reference{{PublicID: "tut-001"}, {PublicID: "tut-001"}}
		}},
		{"empty reference id", func(s *models.Student) {
			s.EmergencyContacts = []models.Reference{{PublicID: ""}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := validStudent()
			tt.mutate(&student)
			_, err := svc.Create(ctx, student)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
}

func TestStudentServiceSearchByText(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStudentService(t)

	for _, s := range []models.Student{
		{FirstName: "Ana", LastName: "García", DateOfBirth: "2017-03-12", EnrollmentDate: "2024-02-01"},
		{FirstName: "Carlos", LastName: "López", DateOfBirth: "2016-07-22", EnrollmentDate: "2024-02-01"},
		{FirstName: "Lucía", LastName: "Santana", DateOfBirth: "2017-01-05", EnrollmentDate: "2024-02-01"},
	} {
		_, err := svc.Create(ctx, s)
		require.NoError(t, err)
	}

	page, err := svc.Search(ctx, models.StudentFilters{SearchText: "ana"}, search.Params{SortBy: "firstName", Size: 10})
	require.NoError(t, err)

	// "ana" matches Ana García and Lucía Santana (last name substring)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Ana", page.Content[0].FirstName)
	assert.Equal(t, "Lucía", page.Content[1].FirstName)
}

func TestStudentServicePatchRejectsDuplicateReferences(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStudentService(t)

	created, err := svc.Create(ctx, validStudent())
	require.NoError(t, err)

	refs := []models.Reference{{PublicID: "tut-001"}, {PublicID: "tut-001"}}
	_, err = svc.Patch(ctx, created.PublicID, dto.UpdateStudentRequest{Tutors: &refs})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestStudentServicePatchValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStudentService(t)

	created, err := svc.Create(ctx, validStudent())
	require.NoError(t, err)

	tests := []struct {
		name  string
		patch dto.UpdateStudentRequest
	}{
		{"bad date of birth", dto.UpdateStudentRequest{DateOfBirth: strPtr("12/03/2017")}},
		{"bad enrollment date", dto.UpdateStudentRequest{EnrollmentDate: strPtr("2024-13-99")}},
		{"bad email", dto.UpdateStudentRequest{Email: strPtr("not-an-address")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Patch(ctx, created.PublicID, tt.patch)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}

	// the rejected patches must not have touched the record
	stored, err := svc.GetByPublicID(ctx, created.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "2017-03-12", stored.DateOfBirth)
	assert.Equal(t, "ana.garcia@example.com", stored.Email)
}

func strPtr(s string) *string { return &s }

func TestStudentServiceResolveTutors(t *testing.T) {
	ctx := context.Background()
	svc, repos := newStudentService(t)

	tutorA, err := repos.Tutors.Create(ctx, models.Tutor{PublicID: "tut-001", FirstName: "María", IsActive: true})
	require.NoError(t, err)
	tutorB, err := repos.Tutors.Create(ctx, models.Tutor{PublicID: "tut-002", FirstName: "Pedro", IsActive: true})
	require.NoError(t, err)

	student := validStudent()
	student.Tutors = []models.Reference{
		{PublicID: tutorB.PublicID},
		{PublicID: "tut-gone"},
		{PublicID: tutorA.PublicID},
	}
	created, err := svc.Create(ctx, student)
	require.NoError(t, err)

	resolved, missing, err := svc.ResolveTutors(ctx, created.PublicID)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "Pedro", resolved[0].FirstName, "resolution keeps reference order")
	assert.Equal(t, "María", resolved[1].FirstName)
	assert.Equal(t, []string{"tut-gone"}, missing)
}

func TestStudentServiceResolveTutorsUnknownStudent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStudentService(t)

	_, _, err := svc.ResolveTutors(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResolveReferencesCollapsesDuplicates(t *testing.T) {
	ctx := context.Background()
	lookups := 0
	lookup := func(_ context.Context, id string) (string, error) {
		lookups++
		return "record-" + id, nil
	}

	refs := []models.Reference{{PublicID: "a"}, {PublicID: "b"}, {PublicID: "a"}}
	resolved, missing, err := resolveReferences(ctx, refs, lookup)
	require.NoError(t, err)
	assert.Equal(t, []string{"record-a", "record-b"}, resolved)
	assert.Empty(t, missing)
	assert.Equal(t, 2, lookups, "each id is looked up once")
}

func TestResolveReferencesAbortsOnOtherErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")
	lookup := func(_ context.Context, _ string) (string, error) { return "", boom }

	_, _, err := resolveReferences(ctx, []models.Reference{{PublicID: "a"}}, lookup)
	assert.ErrorIs(t, err, boom)
}

func TestResolveReferencesEmptyList(t *testing.T) {
	ctx := context.Background()
	resolved, missing, err := resolveReferences(ctx, nil, func(_ context.Context, id string) (string, error) {
		return id, nil
	})
	require.NoError(t, err)
	assert.NotNil(t, resolved, "an empty resolution serializes as [] not null")
	assert.Empty(t, resolved)
	assert.Empty(t, missing)
}

package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 2*time.Second), srv
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestStudentSearchPushesQueryDown(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		writeJSON(w, http.StatusOK, search.Page[models.Student]{
			Content:       []models.Student{{PublicID: "std-001", FirstName: "Ana"}},
			TotalElements: 1,
			TotalPages:    1,
			Size:          10,
			First:         true,
			Last:          true,
		})
	}))
	defer srv.Close()

	store := NewStudentStore(client)
	active := true
	page, err := store.Search(context.Background(), models.StudentFilters{
		SearchText: "ana",
		Grade:      "Primero",
		IsActive:   &active,
	}, search.Params{Page: 2, Size: 20, SortBy: "lastName", SortDir: search.Desc})
	require.NoError(t, err)

	assert.Equal(t, "/students", gotPath)
	assert.Equal(t, map[string]string{
		"search":   "ana",
		"grade":    "Primero",
		"isActive": "true",
		"page":     "2",
		"size":     "20",
		"sortBy":   "lastName",
		"sortDir":  "desc",
	}, gotQuery)

	require.Len(t, page.Content, 1)
	assert.Equal(t, "Ana", page.Content[0].FirstName)
	assert.Equal(t, 1, page.TotalElements)
}

func TestUnpaginatedQueryOmitsPageAndSize(t *testing.T) {
	var gotQuery map[string][]string

	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(w, http.StatusOK, search.Page[models.Student]{First: true, Last: true, TotalPages: 1})
	}))
	defer srv.Close()

	store := NewStudentStore(client)
	_, err := store.Search(context.Background(), models.StudentFilters{}, search.Params{Unpaginated: true})
	require.NoError(t, err)

	assert.Equal(t, "true", gotQuery["unpaginated"][0])
	assert.NotContains(t, gotQuery, "page")
	assert.NotContains(t, gotQuery, "size")
}

func TestNotFoundMapsToNotFoundError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "student not found upstream"),
		})
	}))
	defer srv.Close()

	store := NewStudentStore(client)
	_, err := store.GetByPublicID(context.Background(), "std-999")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.EqualError(t, err, "student not found upstream")
}

func TestConflictMapsToInvalidTransition(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/enrollments/enr-001/confirm", r.URL.Path)
		writeJSON(w, http.StatusConflict, dto.ErrorResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidTransition, "cannot transition enrollment from COMPLETADA to CONFIRMADA"),
		})
	}))
	defer srv.Close()

	store := NewEnrollmentStore(client)
	_, err := store.Confirm(context.Background(), "enr-001")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
}

func TestBadRequestMapsToValidationError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "maxStudents must be greater than zero"),
		})
	}))
	defer srv.Close()

	store := NewGroupStore(client)
	_, err := store.Create(context.Background(), models.Group{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestServerErrorMapsToTransportError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewStudentStore(client)
	_, err := store.GetByPublicID(context.Background(), "std-001")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransport)
}

func TestConnectionFailureMapsToTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := NewClient(srv.URL, time.Second)
	srv.Close()

	store := NewStudentStore(client)
	_, err := store.GetByPublicID(context.Background(), "std-001")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransport)
}

func TestNonStandardErrorBodyFallsBackToStatus(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("plain text nobody expects"))
	}))
	defer srv.Close()

	store := NewStudentStore(client)
	_, err := store.GetByPublicID(context.Background(), "std-001")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "404")
}

func TestCreateSendsJSONBody(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody models.Tutor

	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		gotBody.PublicID = "tut-001"
		writeJSON(w, http.StatusCreated, gotBody)
	}))
	defer srv.Close()

	store := NewTutorStore(client)
	created, err := store.Create(context.Background(), models.Tutor{FirstName: "María", Relationship: "Madre"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "María", gotBody.FirstName)
	assert.Equal(t, "tut-001", created.PublicID)
}

func TestAdjustStudentCountSendsIncrement(t *testing.T) {
	var gotBody dto.AdjustStudentCountRequest

	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/groups/grp-001/student-count", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusOK, models.Group{PublicID: "grp-001", StudentsCount: 21})
	}))
	defer srv.Close()

	store := NewGroupStore(client)
	got, err := store.AdjustStudentCount(context.Background(), "grp-001", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, gotBody.Increment)
	assert.Equal(t, 21, got.StudentsCount)
}

func TestDeleteIssuesDelete(t *testing.T) {
	var gotMethod, gotPath string

	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	store := NewPaymentStore(client)
	require.NoError(t, store.Delete(context.Background(), "pay-001"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/payments/pay-001", gotPath)
}

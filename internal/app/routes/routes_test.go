package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar/escolar-backend/internal/app/controllers"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/app/routes"
	"github.com/escolar/escolar-backend/internal/app/services"
	"github.com/escolar/escolar-backend/internal/seed"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos := repositories.NewMemoryRepositories()
	require.NoError(t, seed.CreateDefaultData(context.Background(), repos))
	svcs := services.NewServices(repos)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewStudentController(svcs.Student),
		controllers.NewTutorController(svcs.Tutor),
		controllers.NewEmergencyContactController(svcs.EmergencyContact),
		controllers.NewGroupController(svcs.Group),
		controllers.NewEnrollmentController(svcs.Enrollment),
		controllers.NewPaymentController(svcs.Payment),
		controllers.NewCatalogController(svcs.Grade, svcs.Dashboard),
	)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSearchStudentsEnvelopeFieldNames(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/students", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, field := range []string{"content", "totalElements", "totalPages", "number", "size", "first", "last"} {
		assert.Contains(t, body, field)
	}
}

func TestSearchStudentsPagination(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/students?page=1&size=1&sortBy=firstName", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Content       []json.RawMessage `json:"content"`
		TotalElements int               `json:"totalElements"`
		TotalPages    int               `json:"totalPages"`
		Number        int               `json:"number"`
		First         bool              `json:"first"`
		Last          bool              `json:"last"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Content, 1)
	assert.Equal(t, 2, body.TotalElements)
	assert.Equal(t, 2, body.TotalPages)
	assert.Equal(t, 1, body.Number)
	assert.False(t, body.First)
	assert.True(t, body.Last)
}

func TestSearchStudentsMalformedPage(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/students?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestGetStudentNotFound(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/students/std-999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RES_001")
}

func TestResolveStudentTutors(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/students/std-001/tutors", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Content []struct {
			ID        string `json:"id"`
			FirstName string `json:"firstName"`
		} `json:"content"`
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Content, 2)
	assert.Equal(t, "tut-001", body.Content[0].ID)
	assert.Equal(t, "tut-003", body.Content[1].ID)
	assert.Empty(t, body.Missing)
}

func TestEnrollmentTransitionEndpoints(t *testing.T) {
	router := newTestRouter(t)

	// enr-002 is seeded pending
	w := doRequest(router, http.MethodPatch, "/api/v1/enrollments/enr-002/confirm", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CONFIRMADA")

	// confirming twice violates the state machine
	w = doRequest(router, http.MethodPatch, "/api/v1/enrollments/enr-002/confirm", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "STA_001")
}

func TestAvailableGroupsExcludesFullAndInactive(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/groups/available?unpaginated=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Content []struct {
			ID            string `json:"id"`
			StudentsCount int    `json:"studentsCount"`
			MaxStudents   int    `json:"maxStudents"`
			IsActive      bool   `json:"isActive"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Content)
	for _, g := range body.Content {
		assert.True(t, g.IsActive)
		assert.Less(t, g.StudentsCount, g.MaxStudents)
		assert.NotEqual(t, "grp-004", g.ID, "grp-004 is inactive")
	}
}

func TestGroupStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/groups/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalGroups      int     `json:"totalGroups"`
		TotalStudents    int     `json:"totalStudents"`
		FullGroups       int     `json:"fullGroups"`
		AverageOccupancy float64 `json:"averageOccupancy"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.TotalGroups)
	assert.Positive(t, stats.TotalStudents)
	assert.Positive(t, stats.AverageOccupancy)
}

func TestCreateStudentValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/students", `{"lastName":"García"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "firstName is required")

	payload := `{"firstName":"Eva","lastName":"Núñez","dateOfBirth":"31/12/2017","grade":"Primero","section":"A","enrollmentDate":"2024-02-01"}`
	w = doRequest(router, http.MethodPost, "/api/v1/students", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code, "dates must be ISO-8601")
}

func TestCreateAndDeleteTutor(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"firstName":"Laura","lastName":"Vega","phone":"555-0104","relationship":"Madre"}`
	w := doRequest(router, http.MethodPost, "/api/v1/tutors", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doRequest(router, http.MethodDelete, "/api/v1/tutors/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	// tutors are soft-deleted and stay retrievable
	w = doRequest(router, http.MethodGet, "/api/v1/tutors/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isActive":false`)

	// but they leave the default listing until isActive is filtered explicitly
	w = doRequest(router, http.MethodGet, "/api/v1/tutors?unpaginated=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), created.ID)

	w = doRequest(router, http.MethodGet, "/api/v1/tutors?isActive=false&unpaginated=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)
}

func TestEnrollmentCountByStatus(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/enrollments/stats/count-by-status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var counts map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	assert.Equal(t, 1, counts["CONFIRMADA"])
	assert.Equal(t, 1, counts["PENDIENTE"])
	assert.Contains(t, counts, "COMPLETADA")
	assert.Contains(t, counts, "CANCELADA")
}

func TestGradesCatalog(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/grades", "")
	require.Equal(t, http.StatusOK, w.Code)

	var grades []struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Sections []string `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grades))
	require.NotEmpty(t, grades)
	assert.Equal(t, "Preescolar", grades[0].Name)
	assert.NotEmpty(t, grades[0].Sections)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(router, http.MethodGet, "/api/v1/dashboard/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalStudents  int `json:"totalStudents"`
		ActiveStudents int `json:"activeStudents"`
		TotalPayments  int `json:"totalPayments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 2, stats.ActiveStudents)
	assert.Equal(t, 3, stats.TotalPayments)
}

func TestAdjustStudentCountEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPatch, "/api/v1/groups/grp-003/student-count", `{"increment":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"studentsCount":17`)

	w = doRequest(router, http.MethodPatch, "/api/v1/groups/grp-003/student-count", `{"increment":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

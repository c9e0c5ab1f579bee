package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juko/registry/internal/app/analytics"
	"github.com/juko/registry/internal/app/models"
	"github.com/juko/registry/internal/app/models/dto"
	"github.com/juko/registry/internal/pkg/apperrors"
)

// stubRegistry implements services.StudentRegistry with canned responses.
type stubRegistry struct {
	students []models.Student
	student  *models.Student
	err      error
}

func (s *stubRegistry) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.students, s.err
}

func (s *stubRegistry) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubRegistry) CreateStudent(ctx context.Context, input dto.StudentInput) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubRegistry) UpdateStudent(ctx context.Context, id string, input dto.StudentInput) (*models.Student, error) {
	return s.student, s.err
}

func (s *stubRegistry) DeleteStudent(ctx context.Context, id string) error {
	return s.err
}

// stubAnalytics implements services.AnalyticsSource.
type stubAnalytics struct {
	summary analytics.Summary
	err     error
}

func (s *stubAnalytics) Summary(ctx context.Context) (analytics.Summary, error) {
	return s.summary, s.err
}

func newTestRouter(registry *stubRegistry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	studentController := NewStudentController(registry)
	analyticsController := NewAnalyticsController(&stubAnalytics{})

	api := router.Group("/api")
	students := api.Group("/students")
	students.GET("", studentController.ListStudents)
	students.POST("", studentController.CreateStudent)
	students.GET("/export", studentController.ExportStudents)
	students.GET("/:id", studentController.GetStudent)
	students.PUT("/:id", studentController.UpdateStudent)
	students.DELETE("/:id", studentController.DeleteStudent)
	api.GET("/analytics", analyticsController.GetSummary)

	return router
}

func sampleStudent() models.Student {
	return models.Student{
		ID:        "8f2b9a44-1c3e-4d8a-9f0b-2e6c7d5a1b90",
		StudentID: "2023-001",
		Name:      "Maria Santos",
		Email:     "maria.santos@juko.edu",
		College:   "College of Computer Studies",
		Course:    "BS Information Technology",
		GWA:       1.75,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func messageOf(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp.Message
}

func TestListStudents(t *testing.T) {
	router := newTestRouter(&stubRegistry{students: []models.Student{sampleStudent()}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var students []models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, "2023-001", students[0].StudentID)
}

func TestListStudentsStoreUnavailable(t *testing.T) {
	router := newTestRouter(&stubRegistry{err: apperrors.ErrStoreUnavailable})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Could not connect to database", messageOf(t, w.Body))
}

func TestGetStudentNotFound(t *testing.T) {
	router := newTestRouter(&stubRegistry{err: apperrors.ErrStudentNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/unknown", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found", messageOf(t, w.Body))
}

func TestCreateStudent(t *testing.T) {
	student := sampleStudent()
	router := newTestRouter(&stubRegistry{student: &student})

	body := `{"studentId":"2023-001","name":"Maria Santos","email":"maria.santos@juko.edu","college":"College of Computer Studies","course":"BS Information Technology","gwa":1.75}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, student.ID, created.ID)
}

func TestCreateStudentValidationFailure(t *testing.T) {
	verr := apperrors.NewValidationError(apperrors.FieldError{Field: "name", Reason: "Name is required"})
	router := newTestRouter(&stubRegistry{err: verr})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name is required", messageOf(t, w.Body))
}

func TestCreateStudentMalformedBody(t *testing.T) {
	router := newTestRouter(&stubRegistry{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewBufferString(`{"gwa":"high"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", messageOf(t, w.Body))
}

func TestUpdateStudentNotFound(t *testing.T) {
	router := newTestRouter(&stubRegistry{err: apperrors.ErrStudentNotFound})

	body := `{"studentId":"2023-001"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/students/missing", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteStudent(t *testing.T) {
	router := newTestRouter(&stubRegistry{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/students/8f2b9a44-1c3e-4d8a-9f0b-2e6c7d5a1b90", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Student deleted successfully", messageOf(t, w.Body))
}

func TestExportStudents(t *testing.T) {
	students := []models.Student{
		{StudentID: "2023-001", Name: "Bea", GWA: 2.5},
		{StudentID: "2023-002", Name: "alex", GWA: 1.5},
	}
	router := newTestRouter(&stubRegistry{students: students})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/export?sortBy=name&order=asc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ExportFilename)

	lines := bytes.Split(bytes.TrimSpace(w.Body.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "Student ID,Name,Email,College,Course,GWA", string(lines[0]))
	// Case-insensitive name sort puts alex first
	assert.Contains(t, string(lines[1]), "alex")
}

func TestExportStudentsInvalidSortKey(t *testing.T) {
	router := newTestRouter(&stubRegistry{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/export?sortBy=email", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAnalyticsSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	summary := analytics.Summarize([]models.Student{
		{College: "College of Business", GWA: 2.0},
		{College: "College of Business", GWA: 4.0},
	})
	router.GET("/api/analytics", NewAnalyticsController(&stubAnalytics{summary: summary}).GetSummary)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got analytics.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 2, got.TotalCount)
	assert.Equal(t, "3.00", got.AverageGwa)
	assert.Equal(t, 1, got.AtRiskCount)
	assert.Equal(t, "College of Business", got.TopCollege)
}

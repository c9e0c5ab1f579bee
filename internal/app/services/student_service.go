package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/juko/registry/internal/app/models"
	"github.com/juko/registry/internal/app/models/dto"
	"github.com/juko/registry/internal/pkg/apperrors"
	"github.com/juko/registry/internal/pkg/validation"
)

// GWA bounds for a valid record.
const (
	GwaMin = 1.0
	GwaMax = 5.0
)

// StudentStore is the persistence interface the service depends on.
type StudentStore interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// StudentService handles student record operations
type StudentService struct {
	store  StudentStore
	logger zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(store StudentStore, logger zerolog.Logger) *StudentService {
	return &StudentService{
		store:  store,
		logger: logger,
	}
}

// ListStudents retrieves all student records, newest first
func (s *StudentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list students")
		return nil, err
	}
	return students, nil
}

// GetStudent retrieves a single student record by ID
func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	// A malformed identifier can never match a record
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.store.GetByID(ctx, id)
}

// CreateStudent validates and normalizes the input, then persists a new
// record with a fresh identifier and timestamps.
func (s *StudentService) CreateStudent(ctx context.Context, input dto.StudentInput) (*models.Student, error) {
	if err := ValidateStudentInput(input); err != nil {
		return nil, err
	}

	student := NormalizeStudent(input)

	s.logger.Info().Str("name", student.Name).Msg("Saving student record")

	if err := s.store.Create(ctx, &student); err != nil {
		return nil, mapUniquenessError(err)
	}

	return &student, nil
}

// UpdateStudent validates and normalizes the input, then replaces all
// mutable fields of the identified record.
func (s *StudentService) UpdateStudent(ctx context.Context, id string, input dto.StudentInput) (*models.Student, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if err := ValidateStudentInput(input); err != nil {
		return nil, err
	}

	student := NormalizeStudent(input)
	student.ID = id

	s.logger.Info().Str("id", id).Str("name", student.Name).Msg("Updating student record")

	if err := s.store.Update(ctx, &student); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, err
		}
		return nil, mapUniquenessError(err)
	}

	return &student, nil
}

// DeleteStudent removes exactly one record by ID
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrStudentNotFound
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("Student record deleted")
	return nil
}

// ValidateStudentInput checks every field constraint and returns a
// ValidationError listing all violations, or nil when the input is valid.
// Catalog membership (college, and course within college) is enforced here
// rather than trusting the form's cascading dropdowns.
func ValidateStudentInput(input dto.StudentInput) error {
	verr := apperrors.NewValidationError()

	if validation.IsBlank(input.StudentID) {
		verr.Add("studentId", "Student ID is required")
	}

	if validation.IsBlank(input.Name) {
		verr.Add("name", "Name is required")
	} else if len(strings.TrimSpace(input.Name)) > validation.NameMaxLength {
		verr.Add("name", fmt.Sprintf("Name must be at most %d characters", validation.NameMaxLength))
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		verr.Add("email", "Email is required")
	} else if !validation.IsValidEmail(email) {
		verr.Add("email", "Email format is invalid")
	}

	college := strings.TrimSpace(input.College)
	if college == "" {
		verr.Add("college", "College is required")
	} else if !models.IsValidCollege(college) {
		verr.Add("college", "College must be one of the registered colleges")
	}

	course := strings.TrimSpace(input.Course)
	switch {
	case course == "":
		verr.Add("course", "Course is required")
	case models.IsValidCollege(college) && !models.IsValidCourse(college, course):
		verr.Add("course", "Course does not belong to the selected college")
	}

	switch {
	case input.GWA == nil:
		verr.Add("gwa", "GWA is required")
	case *input.GWA < GwaMin || *input.GWA > GwaMax:
		verr.Add("gwa", "GWA must be between 1.0 and 5.0")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// NormalizeStudent maps a validated input to a record: strings trimmed,
// email lower-cased, GWA rounded. Normalization always runs before the store
// write and is idempotent.
func NormalizeStudent(input dto.StudentInput) models.Student {
	var gwa float64
	if input.GWA != nil {
		gwa = RoundGwa(*input.GWA)
	}
	return models.Student{
		StudentID: strings.TrimSpace(input.StudentID),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		College:   strings.TrimSpace(input.College),
		Course:    strings.TrimSpace(input.Course),
		GWA:       gwa,
	}
}

// RoundGwa rounds a GWA to two decimal places. math.Round rounds halves away
// from zero, so an exact .005 input rounds up.
func RoundGwa(gwa float64) float64 {
	return math.Round(gwa*100) / 100
}

// mapUniquenessError folds duplicate-key store errors into the validation
// error kind so uniqueness collisions surface as 400s, matching every other
// constraint violation.
func mapUniquenessError(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		return apperrors.NewValidationError(apperrors.FieldError{
			Field: "studentId", Reason: apperrors.ErrStudentIDAlreadyExists.Error(),
		})
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return apperrors.NewValidationError(apperrors.FieldError{
			Field: "email", Reason: apperrors.ErrEmailAlreadyExists.Error(),
		})
	default:
		return err
	}
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juko/registry/internal/app/models"
	"github.com/juko/registry/internal/app/models/dto"
	"github.com/juko/registry/internal/pkg/apperrors"
)

// fakeStore is an in-memory StudentStore that mirrors the repository's error
// contract, including duplicate-key detection.
type fakeStore struct {
	students []models.Student
	failWith error
}

func (f *fakeStore) GetAll(ctx context.Context) ([]models.Student, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	// Newest first, matching the repository's ordering
	result := make([]models.Student, len(f.students))
	for i, s := range f.students {
		result[len(f.students)-1-i] = s
	}
	return result, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*models.Student, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, s := range f.students {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStore) Create(ctx context.Context, student *models.Student) error {
	if f.failWith != nil {
		return f.failWith
	}
	if err := f.checkUnique(*student, ""); err != nil {
		return err
	}
	student.ID = uuid.NewString()
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	f.students = append(f.students, *student)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, student *models.Student) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, s := range f.students {
		if s.ID == student.ID {
			if err := f.checkUnique(*student, student.ID); err != nil {
				return err
			}
			student.CreatedAt = s.CreatedAt
			student.UpdatedAt = time.Now()
			f.students[i] = *student
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, s := range f.students {
		if s.ID == id {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeStore) checkUnique(student models.Student, excludeID string) error {
	for _, s := range f.students {
		if s.ID == excludeID {
			continue
		}
		if s.StudentID == student.StudentID {
			return apperrors.ErrStudentIDAlreadyExists
		}
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	return nil
}

func newTestService() (*StudentService, *fakeStore) {
	store := &fakeStore{}
	return NewStudentService(store, zerolog.Nop()), store
}

func validInput() dto.StudentInput {
	gwa := 1.75
	return dto.StudentInput{
		StudentID: "2023-001",
		Name:      "Maria Santos",
		Email:     "maria.santos@juko.edu",
		College:   "College of Computer Studies",
		Course:    "BS Information Technology",
		GWA:       &gwa,
	}
}

func TestValidateStudentInput(t *testing.T) {
	gwa := func(v float64) *float64 { return &v }

	tests := []struct {
		name       string
		mutate     func(*dto.StudentInput)
		wantField  string
		wantReason string
	}{
		{"missing student id", func(in *dto.StudentInput) { in.StudentID = "  " }, "studentId", "Student ID is required"},
		{"missing name", func(in *dto.StudentInput) { in.Name = "" }, "name", "Name is required"},
		{"missing email", func(in *dto.StudentInput) { in.Email = "" }, "email", "Email is required"},
		{"malformed email", func(in *dto.StudentInput) { in.Email = "not-an-email" }, "email", "Email format is invalid"},
		{"missing college", func(in *dto.StudentInput) { in.College = "" }, "college", "College is required"},
		{"unknown college", func(in *dto.StudentInput) { in.College = "College of Magic" }, "college", "College must be one of the registered colleges"},
		{"missing course", func(in *dto.StudentInput) { in.Course = "" }, "course", "Course is required"},
		{"course from another college", func(in *dto.StudentInput) { in.Course = "BS Accountancy" }, "course", "Course does not belong to the selected college"},
		{"missing gwa", func(in *dto.StudentInput) { in.GWA = nil }, "gwa", "GWA is required"},
		{"gwa below range", func(in *dto.StudentInput) { in.GWA = gwa(0.99) }, "gwa", "GWA must be between 1.0 and 5.0"},
		{"gwa above range", func(in *dto.StudentInput) { in.GWA = gwa(5.01) }, "gwa", "GWA must be between 1.0 and 5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			err := ValidateStudentInput(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.wantField, verr.Fields[0].Field)
			assert.Equal(t, tt.wantReason, verr.Fields[0].Reason)
		})
	}
}

func TestValidateStudentInputValid(t *testing.T) {
	assert.NoError(t, ValidateStudentInput(validInput()))
}

func TestValidateStudentInputCollectsAllViolations(t *testing.T) {
	err := ValidateStudentInput(dto.StudentInput{})
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 6)
}

func TestRoundGwa(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.567, 2.57},
		{1.004, 1.0},
		{1.75, 1.75},
		{3.14159, 3.14},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundGwa(tt.in), 1e-9)
	}
}

func TestRoundGwaIdempotent(t *testing.T) {
	for _, g := range []float64{1.0, 1.239, 2.505, 3.14159, 4.999, 5.0} {
		once := RoundGwa(g)
		assert.Equal(t, once, RoundGwa(once), "rounding an already-rounded value must change nothing")
	}
}

func TestNormalizeStudent(t *testing.T) {
	gwa := 2.567
	input := dto.StudentInput{
		StudentID: "  2023-001 ",
		Name:      " Maria Santos ",
		Email:     " Maria.Santos@JUKO.edu ",
		College:   " College of Computer Studies ",
		Course:    " BS Information Technology ",
		GWA:       &gwa,
	}

	student := NormalizeStudent(input)

	assert.Equal(t, "2023-001", student.StudentID)
	assert.Equal(t, "Maria Santos", student.Name)
	assert.Equal(t, "maria.santos@juko.edu", student.Email)
	assert.Equal(t, "College of Computer Studies", student.College)
	assert.Equal(t, "BS Information Technology", student.Course)
	assert.InDelta(t, 2.57, student.GWA, 1e-9)
}

func TestCreateStudent(t *testing.T) {
	svc, store := newTestService()

	input := validInput()
	g := 2.005
	input.GWA = &g

	student, err := svc.CreateStudent(context.Background(), input)
	require.NoError(t, err)

	assert.NotEmpty(t, student.ID)
	assert.InDelta(t, RoundGwa(2.005), student.GWA, 1e-9, "gwa must be rounded before the store write")
	require.Len(t, store.students, 1)
	assert.Equal(t, student.GWA, store.students[0].GWA)
}

func TestCreateStudentInvalid(t *testing.T) {
	svc, store := newTestService()

	input := validInput()
	input.Name = ""

	_, err := svc.CreateStudent(context.Background(), input)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Empty(t, store.students, "invalid input must never reach the store")
}

func TestCreateStudentDuplicateStudentID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateStudent(ctx, validInput())
	require.NoError(t, err)

	second := validInput()
	second.Email = "other@juko.edu"
	_, err = svc.CreateStudent(ctx, second)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "duplicate keys surface as validation failures")
	assert.Contains(t, err.Error(), "Student ID already exists")
}

func TestCreateStudentDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateStudent(ctx, validInput())
	require.NoError(t, err)

	second := validInput()
	second.StudentID = "2023-099"
	second.Email = "MARIA.SANTOS@juko.edu" // lower-cased during normalization
	_, err = svc.CreateStudent(ctx, second)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "Email already exists")
}

func TestCreateThenResubmitGwaUnchanged(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	g := 2.678
	input := validInput()
	input.GWA = &g

	created, err := svc.CreateStudent(ctx, input)
	require.NoError(t, err)

	// Re-submitting the persisted value must change nothing
	resubmit := validInput()
	resubmit.GWA = &created.GWA
	updated, err := svc.UpdateStudent(ctx, created.ID, resubmit)
	require.NoError(t, err)
	assert.Equal(t, created.GWA, updated.GWA)
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStudent(context.Background(), uuid.NewString(), validInput())
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestUpdateStudentMalformedID(t *testing.T) {
	svc, store := newTestService()
	store.failWith = errors.New("store must not be reached")

	_, err := svc.UpdateStudent(context.Background(), "not-a-uuid", validInput())
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestGetStudentMalformedID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetStudent(context.Background(), "abc123")
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestDeleteStudent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStudent(ctx, created.ID))

	students, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	assert.Empty(t, students, "deleted record must not appear in a subsequent list")
}

func TestDeleteStudentNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.DeleteStudent(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestListStudentsStoreUnavailable(t *testing.T) {
	svc, store := newTestService()
	store.failWith = apperrors.NewStoreUnavailableError(errors.New("connection refused"))

	_, err := svc.ListStudents(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrStoreUnavailable))
}

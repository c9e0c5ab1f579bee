package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juko/registry/internal/app/models"
	"github.com/juko/registry/internal/pkg/apperrors"
	"github.com/juko/registry/internal/pkg/dberrors"
)

// Unique constraint names from the students table definition.
const (
	constraintStudentID = "students_student_id_key"
	constraintEmail     = "students_email_key"
)

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetAll retrieves all student records, newest first
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, student_id, name, email, college, course, gwa, created_at, updated_at
		FROM students
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError(err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.StudentID,
			&student.Name,
			&student.Email,
			&student.College,
			&student.Course,
			&student.GWA,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError(err)
	}

	return students, nil
}

// GetByID retrieves a student record by its system-generated identifier
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query := `
		SELECT id, student_id, name, email, college, course, gwa, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.StudentID,
		&student.Name,
		&student.Email,
		&student.College,
		&student.Course,
		&student.GWA,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Create persists a new student record, assigning its id and timestamps
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	student.ID = uuid.NewString()

	query := `
		INSERT INTO students (id, student_id, name, email, college, course, gwa)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.ID,
		student.StudentID,
		student.Name,
		student.Email,
		student.College,
		student.Course,
		student.GWA,
	).Scan(&student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		return mapWriteError(err)
	}

	return nil
}

// Update replaces all mutable fields of an existing record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET student_id = $1, name = $2, email = $3, college = $4, course = $5, gwa = $6, updated_at = $7
		WHERE id = $8
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentID,
		student.Name,
		student.Email,
		student.College,
		student.Course,
		student.GWA,
		time.Now().UTC(),
		student.ID,
	).Scan(&student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrStudentNotFound
		}
		return mapWriteError(err)
	}

	return nil
}

// Delete removes a student record by ID
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// mapWriteError translates duplicate-key violations into the matching
// application error; anything else is surfaced as a store failure.
func mapWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, constraintStudentID):
		return apperrors.ErrStudentIDAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, constraintEmail):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsConnectionError(err):
		return apperrors.NewStoreUnavailableError(err)
	default:
		return fmt.Errorf("error writing student: %w", err)
	}
}

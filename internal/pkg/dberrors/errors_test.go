package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}

	assert.True(t, IsDuplicateConstraintError(err, "students_email_key"))
	assert.False(t, IsDuplicateConstraintError(err, "students_student_id_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("plain error"), "students_email_key"))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "students_student_id_key"}

	assert.True(t, IsUniqueViolation(dup))
	// Matching must survive wrapping, as transaction helpers wrap the cause
	assert.True(t, IsUniqueViolation(fmt.Errorf("seeding failed: %w", dup)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, IsConnectionError(&pgconn.PgError{Code: "08006"}))
	assert.False(t, IsConnectionError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsConnectionError(errors.New("plain error")))
}

package services

import (
	"context"

	"github.com/juko/registry/internal/app/analytics"
	"github.com/juko/registry/internal/app/models"
	"github.com/juko/registry/internal/app/models/dto"
)

// StudentRegistry is the student CRUD surface consumed by the controllers.
type StudentRegistry interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, input dto.StudentInput) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, input dto.StudentInput) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

// AnalyticsSource provides the aggregated analytics view.
type AnalyticsSource interface {
	Summary(ctx context.Context) (analytics.Summary, error)
}

var (
	_ StudentRegistry = (*StudentService)(nil)
	_ AnalyticsSource = (*AnalyticsService)(nil)
)

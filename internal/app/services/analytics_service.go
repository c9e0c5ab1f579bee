package services

import (
	"context"

	"github.com/juko/registry/internal/app/analytics"
)

// AnalyticsService computes the analytics summary from the current student
// collection. The summary is recomputed in full on every call; there is no
// cached or incremental state.
type AnalyticsService struct {
	store StudentStore
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(store StudentStore) *AnalyticsService {
	return &AnalyticsService{
		store: store,
	}
}

// Summary fetches the full collection and aggregates it
func (s *AnalyticsService) Summary(ctx context.Context) (analytics.Summary, error) {
	students, err := s.store.GetAll(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(students), nil
}

// Package domain defines the business logic for the school activities service.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when no activity exists under the given name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the student is already on the activity roster.
	ErrAlreadyRegistered = errors.New("student already signed up for activity")
	// ErrNotRegistered indicates the student is not on the activity roster.
	ErrNotRegistered = errors.New("student not signed up for activity")
	// ErrActivityFull indicates the roster is at capacity.
	ErrActivityFull = errors.New("activity is at capacity")
)

// ActivityRepository captures roster storage operations. Implementations must
// apply each mutation atomically so the capacity and uniqueness invariants
// hold under concurrent requests.
type ActivityRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	Signup(ctx context.Context, name, email string) (*Activity, error)
	Unregister(ctx context.Context, name, email string) (*Activity, error)
	Reset(ctx context.Context) error
}

// Service orchestrates roster workflows.
type Service struct {
	repo ActivityRepository
}

// NewService constructs a Service.
func NewService(repo ActivityRepository) *Service {
	return &Service{repo: repo}
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// GetActivity fetches a single activity by name.
func (s *Service) GetActivity(ctx context.Context, name string) (*Activity, error) {
	activity, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// Signup enrolls the email in the named activity and returns the updated
// record.
func (s *Service) Signup(ctx context.Context, name, email string) (*Activity, error) {
	return s.repo.Signup(ctx, name, email)
}

// Unregister removes the email from the named activity and returns the
// updated record.
func (s *Service) Unregister(ctx context.Context, name, email string) (*Activity, error) {
	return s.repo.Unregister(ctx, name, email)
}

// Reset restores the seeded rosters. Used to isolate test cases.
func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}

// Package store provides the in-memory activity repository.
package store

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
)

// InMemoryRepository keeps activity rosters in process memory. All mutations
// are validated and applied under a single write lock so participant counts
// never exceed capacity and emails stay unique per activity.
type InMemoryRepository struct {
	mu         sync.RWMutex
	seed       map[string]domain.Activity
	activities map[string]domain.Activity
}

// NewInMemoryRepository constructs a repository populated with the school's
// seed catalog.
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithSeed(seedActivities())
}

// NewInMemoryRepositoryWithSeed constructs a repository with a caller-provided
// catalog. Reset restores this exact catalog.
func NewInMemoryRepositoryWithSeed(seed map[string]domain.Activity) *InMemoryRepository {
	repo := &InMemoryRepository{seed: cloneCatalog(seed)}
	repo.activities = cloneCatalog(repo.seed)
	return repo
}

// List returns a deep copy of the full catalog keyed by activity name.
func (r *InMemoryRepository) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneCatalog(r.activities), nil
}

// Get returns a copy of the named activity, or nil when absent.
func (r *InMemoryRepository) Get(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, nil
	}
	out := activity.Clone()
	return &out, nil
}

// Signup adds the email to the named activity's roster and returns the
// updated record.
func (r *InMemoryRepository) Signup(ctx context.Context, name, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return nil, domain.ErrAlreadyRegistered
	}
	if activity.IsFull() {
		return nil, domain.ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity

	out := activity.Clone()
	return &out, nil
}

// Unregister removes the email from the named activity's roster and returns
// the updated record.
func (r *InMemoryRepository) Unregister(ctx context.Context, name, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	index := -1
	for i, participant := range activity.Participants {
		if participant == email {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, domain.ErrNotRegistered
	}

	activity.Participants = append(activity.Participants[:index:index], activity.Participants[index+1:]...)
	r.activities[name] = activity

	out := activity.Clone()
	return &out, nil
}

// Reset restores the seeded catalog, discarding every mutation since start.
func (r *InMemoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = cloneCatalog(r.seed)
	return nil
}

func cloneCatalog(in map[string]domain.Activity) map[string]domain.Activity {
	out := make(map[string]domain.Activity, len(in))
	for name, activity := range in {
		out[name] = activity.Clone()
	}
	return out
}

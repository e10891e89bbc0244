// internal/directory/memory.go
// In-memory repository for development and tests. Holds the same
// contract as the Postgres implementation, one process only.

package directory

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu       sync.RWMutex
	profiles map[int64]*UserProfile
	nextID   int64
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		profiles: make(map[int64]*UserProfile),
		nextID:   1,
	}
}

func (r *memoryRepository) Create(ctx context.Context, profile *UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if profile.ID == 0 {
		profile.ID = r.nextID
	}
	if profile.ID >= r.nextID {
		r.nextID = profile.ID + 1
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now

	stored := *profile
	r.profiles[profile.ID] = &stored
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id int64) (*UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}

	copied := *profile
	return &copied, nil
}

func (r *memoryRepository) GetAll(ctx context.Context) ([]*UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*UserProfile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		copied := *profile
		profiles = append(profiles, &copied)
	}

	return profiles, nil
}

func (r *memoryRepository) Update(ctx context.Context, profile *UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[profile.ID]
	if !ok {
		return ErrProfileNotFound
	}

	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = time.Now()

	stored := *profile
	r.profiles[profile.ID] = &stored
	return nil
}

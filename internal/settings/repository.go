package settings

import "sync"

// Repository provides access to the settings singleton. Update receives only
// the fields the caller provided; a missing row is created (upsert).
type Repository interface {
	Get() (Settings, error)
	Update(fields map[string]*string) (Settings, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	current Settings
}

func NewInMemoryRepository(seed Settings) *InMemoryRepository {
	seed.ID = singletonID
	return &InMemoryRepository{current: seed}
}

func (r *InMemoryRepository) Get() (Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, nil
}

func (r *InMemoryRepository) Update(fields map[string]*string) (Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := fields["logoURL"]; ok {
		r.current.LogoURL = v
	}
	if v, ok := fields["lineOfTheMonth"]; ok {
		r.current.LineOfTheMonth = v
	}
	return r.current, nil
}

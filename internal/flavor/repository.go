package flavor

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("flavor not found")
)

// Repository provides access to catalog entries. Write operations accept
// storage records (see ToRecord) so partial updates only touch provided keys.
type Repository interface {
	List() ([]Flavor, error)
	GetByID(id string) (Flavor, error)
	ListByTypeAndCategory(variantType, category string) ([]Flavor, error)
	ListNewest(limit int) ([]Flavor, error)
	Search(query string) ([]Flavor, error)
	Create(rec Record) (Flavor, error)
	Update(id string, rec Record) (Flavor, error)
	Delete(id string) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Flavor
}

func NewInMemoryRepository(seed []Flavor) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Flavor, 0, len(seed))}
	for _, f := range seed {
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		r.storage = append(r.storage, f)
	}
	return r
}

func (r *InMemoryRepository) List() ([]Flavor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Flavor, len(r.storage))
	copy(out, r.storage)
	sortByDateDesc(out)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Flavor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.storage {
		if f.ID == id {
			return f, nil
		}
	}
	return Flavor{}, ErrNotFound
}

func (r *InMemoryRepository) ListByTypeAndCategory(variantType, category string) ([]Flavor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Flavor, 0)
	for _, f := range r.storage {
		if f.Type != variantType && f.Type != TypeBoth {
			continue
		}
		for _, c := range f.Categories {
			if c == category {
				out = append(out, f)
				break
			}
		}
	}
	sortByName(out)
	return out, nil
}

func (r *InMemoryRepository) ListNewest(limit int) ([]Flavor, error) {
	all, _ := r.List()
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *InMemoryRepository) Search(query string) ([]Flavor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]Flavor, 0)
	for _, f := range r.storage {
		if strings.Contains(strings.ToLower(f.FlavorName), q) ||
			strings.Contains(strings.ToLower(f.Manufacturer), q) ||
			strings.Contains(strings.ToLower(f.Description), q) {
			out = append(out, f)
		}
	}
	sortByName(out)
	return out, nil
}

func (r *InMemoryRepository) Create(rec Record) (Flavor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := FromRecord(ToRecord(rec))
	f.ID = uuid.NewString()
	r.storage = append(r.storage, f)
	return f, nil
}

func (r *InMemoryRepository) Update(id string, rec Record) (Flavor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.storage {
		if existing.ID != id {
			continue
		}
		merged := existing.Record()
		for key, value := range ToRecord(rec) {
			merged[key] = value
		}
		updated := FromRecord(merged)
		updated.ID = id
		if _, ok := merged["dateAdded"]; !ok {
			updated.DateAdded = existing.DateAdded
		}
		r.storage[i] = updated
		return updated, nil
	}
	return Flavor{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.storage {
		if f.ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func sortByDateDesc(flavors []Flavor) {
	sort.SliceStable(flavors, func(i, j int) bool {
		return flavors[i].DateAdded.After(flavors[j].DateAdded)
	})
}

func sortByName(flavors []Flavor) {
	sort.SliceStable(flavors, func(i, j int) bool {
		return flavors[i].FlavorName < flavors[j].FlavorName
	})
}

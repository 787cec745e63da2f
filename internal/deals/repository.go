package deals

import (
	"sort"
	"sync"

	"github.com/vaporhub/vape-shop-backend/internal/flavor"
)

// Repository provides the catalog lookups behind the Deals view: flavors of
// a promoted manufacturer and the distinct manufacturer names offered to the
// admin picker.
type Repository interface {
	ListByManufacturer(manufacturer string) ([]flavor.Flavor, error)
	ListManufacturers() ([]string, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	flavors []flavor.Flavor
}

func NewInMemoryRepository(seed []flavor.Flavor) *InMemoryRepository {
	r := &InMemoryRepository{flavors: make([]flavor.Flavor, 0, len(seed))}
	r.flavors = append(r.flavors, seed...)
	return r
}

func (r *InMemoryRepository) ListByManufacturer(manufacturer string) ([]flavor.Flavor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]flavor.Flavor, 0)
	for _, f := range r.flavors {
		if f.Manufacturer == manufacturer {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FlavorName < out[j].FlavorName
	})
	return out, nil
}

func (r *InMemoryRepository) ListManufacturers() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, f := range r.flavors {
		if f.Manufacturer == "" {
			continue
		}
		if _, ok := seen[f.Manufacturer]; ok {
			continue
		}
		seen[f.Manufacturer] = struct{}{}
		out = append(out, f.Manufacturer)
	}
	sort.Strings(out)
	return out, nil
}

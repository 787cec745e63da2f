package favorite

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/vaporhub/vape-shop-backend/internal/flavor"
)

var (
	ErrNotFavorite = errors.New("flavor not in favorites")
)

// Repository holds the ordered list of favorited flavor snapshots, unique
// by id.
type Repository interface {
	List() []flavor.Flavor
	Add(f flavor.Flavor) ([]flavor.Flavor, error)
	Remove(id string) ([]flavor.Flavor, error)
}

// FileRepository mirrors the favorites list to a durable JSON slot. The slot
// is read once at startup and rewritten in full on every mutation; corrupt or
// unreadable content is discarded and treated as an empty list.
type FileRepository struct {
	mu    sync.Mutex
	path  string
	items []flavor.Flavor
}

func NewFileRepository(path string) *FileRepository {
	r := &FileRepository{path: path, items: []flavor.Flavor{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return r
	}
	var items []flavor.Flavor
	if err := json.Unmarshal(data, &items); err != nil {
		return r
	}
	r.items = items
	return r
}

func (r *FileRepository) List() []flavor.Flavor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// Add appends a snapshot in insertion order. Adding an id that is already
// present is a no-op returning the unchanged list (set semantics).
func (r *FileRepository) Add(f flavor.Flavor) ([]flavor.Flavor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ID == f.ID {
			return r.snapshot(), nil
		}
	}

	r.items = append(r.items, f)
	if err := r.persist(); err != nil {
		r.items = r.items[:len(r.items)-1]
		return nil, err
	}
	return r.snapshot(), nil
}

func (r *FileRepository) Remove(id string) ([]flavor.Flavor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.items {
		if existing.ID != id {
			continue
		}
		kept := make([]flavor.Flavor, 0, len(r.items)-1)
		kept = append(kept, r.items[:i]...)
		kept = append(kept, r.items[i+1:]...)
		previous := r.items
		r.items = kept
		if err := r.persist(); err != nil {
			r.items = previous
			return nil, err
		}
		return r.snapshot(), nil
	}
	return nil, ErrNotFavorite
}

func (r *FileRepository) snapshot() []flavor.Flavor {
	out := make([]flavor.Flavor, len(r.items))
	copy(out, r.items)
	return out
}

func (r *FileRepository) persist() error {
	data, err := json.Marshal(r.items)
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}

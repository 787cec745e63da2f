package favorite

import (
	"errors"

	"github.com/vaporhub/vape-shop-backend/internal/flavor"
)

var (
	ErrMissingID = errors.New("favorite requires a flavor id")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []flavor.Flavor {
	return s.repo.List()
}

// Add stores a point-in-time snapshot of the flavor. The snapshot is not
// refreshed if the catalog entry changes later.
func (s *Service) Add(rec flavor.Record) ([]flavor.Flavor, error) {
	snapshot := flavor.FromRecord(rec)
	if snapshot.ID == "" {
		return nil, ErrMissingID
	}
	return s.repo.Add(snapshot)
}

func (s *Service) Remove(id string) ([]flavor.Flavor, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	return s.repo.Remove(id)
}

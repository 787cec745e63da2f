package deals

import (
	"github.com/vaporhub/vape-shop-backend/internal/flavor"
	"github.com/vaporhub/vape-shop-backend/internal/settings"
)

// Service resolves the Deals view: the flavors of the manufacturer promoted
// as line of the month in the settings singleton.
type Service struct {
	settings *settings.Service
	repo     Repository
}

func NewService(settingsService *settings.Service, repo Repository) *Service {
	return &Service{settings: settingsService, repo: repo}
}

// LineOfTheMonth returns the promoted manufacturer's flavors, name ascending.
// An unset promotion yields an empty list, not an error.
func (s *Service) LineOfTheMonth() ([]flavor.Flavor, error) {
	current, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	if current.LineOfTheMonth == nil {
		return []flavor.Flavor{}, nil
	}
	return s.repo.ListByManufacturer(*current.LineOfTheMonth)
}

func (s *Service) Manufacturers() ([]string, error) {
	return s.repo.ListManufacturers()
}

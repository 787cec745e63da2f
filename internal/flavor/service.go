package flavor

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Flavor, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Flavor, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByTypeAndCategory(variantType, category string) ([]Flavor, error) {
	return s.repo.ListByTypeAndCategory(variantType, category)
}

func (s *Service) ListNewest(limit int) ([]Flavor, error) {
	return s.repo.ListNewest(limit)
}

func (s *Service) Search(query string) ([]Flavor, error) {
	return s.repo.Search(query)
}

func (s *Service) Create(f Flavor) (Flavor, error) {
	return s.repo.Create(f.Record())
}

func (s *Service) Update(id string, f Flavor) (Flavor, error) {
	return s.repo.Update(id, f.Record())
}

// Patch applies a partial record update; only the keys present on the record
// reach storage.
func (s *Service) Patch(id string, rec Record) (Flavor, error) {
	return s.repo.Update(id, rec)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

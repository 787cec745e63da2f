package settings

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get() (Settings, error) {
	return s.repo.Get()
}

// Update accepts the loose client payload and keeps only the known settings
// keys. Empty strings and nulls both clear a field (stored as NULL).
func (s *Service) Update(payload map[string]any) (Settings, error) {
	fields := map[string]*string{}
	for _, key := range []string{"logoURL", "lineOfTheMonth"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		if str, isString := raw.(string); isString && str != "" {
			value := str
			fields[key] = &value
		} else {
			fields[key] = nil
		}
	}
	return s.repo.Update(fields)
}

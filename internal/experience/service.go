package experience

import "context"

type Service interface {
	ListExperiences(ctx context.Context) ([]Experience, error)
	GetExperienceDetail(ctx context.Context, id int) (*Detail, error)
	CreateExperience(ctx context.Context, req CreateExperienceRequest) (*Experience, error)
	CreateSlot(ctx context.Context, experienceID int, req CreateSlotRequest) (*Slot, error)
}

type service struct {
	repo  Repository
	cache *Cache
}

// NewService wires the catalog reads through an optional cache; pass a nil
// cache to serve straight from Postgres.
func NewService(repo Repository, cache *Cache) Service {
	return &service{repo: repo, cache: cache}
}

func (s *service) ListExperiences(ctx context.Context) ([]Experience, error) {
	if cached, ok := s.cache.GetList(ctx); ok {
		return cached, nil
	}

	experiences, err := s.repo.GetAllExperiences(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetList(ctx, experiences)
	return experiences, nil
}

func (s *service) GetExperienceDetail(ctx context.Context, id int) (*Detail, error) {
	if cached, ok := s.cache.GetDetail(ctx, id); ok {
		return cached, nil
	}

	exp, err := s.repo.GetExperienceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slots, err := s.repo.GetSlotsByExperience(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Experience: *exp, Slots: slots}
	s.cache.SetDetail(ctx, detail)
	return detail, nil
}

func (s *service) CreateExperience(ctx context.Context, req CreateExperienceRequest) (*Experience, error) {
	exp, err := s.repo.CreateExperience(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return exp, nil
}

func (s *service) CreateSlot(ctx context.Context, experienceID int, req CreateSlotRequest) (*Slot, error) {
	if _, err := s.repo.GetExperienceByID(ctx, experienceID); err != nil {
		return nil, err
	}

	slot, err := s.repo.CreateSlot(ctx, experienceID, req)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, experienceID)
	return slot, nil
}

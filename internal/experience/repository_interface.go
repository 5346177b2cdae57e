package experience

import "context"

type Repository interface {
	CreateExperience(ctx context.Context, req CreateExperienceRequest) (*Experience, error)
	GetAllExperiences(ctx context.Context) ([]Experience, error)
	GetExperienceByID(ctx context.Context, id int) (*Experience, error)
	CountExperiences(ctx context.Context) (int, error)
	CreateSlot(ctx context.Context, experienceID int, req CreateSlotRequest) (*Slot, error)
	GetSlotsByExperience(ctx context.Context, experienceID int) ([]Slot, error)
	GetSlotByID(ctx context.Context, id int) (*Slot, error)
}

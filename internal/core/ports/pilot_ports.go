package ports

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
)

type PilotRepository interface {
	GetAll(ctx context.Context) ([]domain.Pilot, error)
	GetByID(ctx context.Context, id string) (*domain.Pilot, error)
	Save(ctx context.Context, pilot *domain.Pilot) error
	Update(ctx context.Context, pilot *domain.Pilot) error
	Delete(ctx context.Context, id string) error
}

type PilotInput struct {
	Name     string
	Callsign string
	Notes    string
}

type PilotService interface {
	Create(ctx context.Context, input PilotInput) (*domain.Pilot, error)
	Get(ctx context.Context, id string) (*domain.Pilot, error)
	List(ctx context.Context) ([]domain.Pilot, error)
	Update(ctx context.Context, id string, input PilotInput) (*domain.Pilot, error)
	Delete(ctx context.Context, id string) error
}

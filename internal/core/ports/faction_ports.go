package ports

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
)

type FactionRepository interface {
	GetAll(ctx context.Context) ([]domain.Faction, error)
	GetByID(ctx context.Context, id string) (*domain.Faction, error)
	Save(ctx context.Context, faction *domain.Faction) error
	Update(ctx context.Context, faction *domain.Faction) error
	Delete(ctx context.Context, id string) error
}

type FactionInput struct {
	Name        string
	Description string
	Emblem      string
}

type FactionService interface {
	Create(ctx context.Context, input FactionInput) (*domain.Faction, error)
	Get(ctx context.Context, id string) (*domain.Faction, error)
	List(ctx context.Context) ([]domain.Faction, error)
	Update(ctx context.Context, id string, input FactionInput) (*domain.Faction, error)
	Delete(ctx context.Context, id string) error
}

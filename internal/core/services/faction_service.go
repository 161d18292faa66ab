package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

type factionService struct {
	repo ports.FactionRepository
}

func NewFactionService(repo ports.FactionRepository) ports.FactionService {
	return &factionService{repo: repo}
}

func (s *factionService) Create(ctx context.Context, input ports.FactionInput) (*domain.Faction, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}

	faction := &domain.Faction{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Emblem:      input.Emblem,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, faction); err != nil {
		return nil, fmt.Errorf("failed to save faction: %w", err)
	}
	return faction, nil
}

func (s *factionService) Get(ctx context.Context, id string) (*domain.Faction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *factionService) List(ctx context.Context) ([]domain.Faction, error) {
	return s.repo.GetAll(ctx)
}

func (s *factionService) Update(ctx context.Context, id string, input ports.FactionInput) (*domain.Faction, error) {
	faction, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}

	faction.Name = input.Name
	faction.Description = input.Description
	if input.Emblem != "" {
		faction.Emblem = input.Emblem
	}

	if err := s.repo.Update(ctx, faction); err != nil {
		return nil, fmt.Errorf("failed to update faction: %w", err)
	}
	return faction, nil
}

func (s *factionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

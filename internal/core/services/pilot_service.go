package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

type pilotService struct {
	repo ports.PilotRepository
}

func NewPilotService(repo ports.PilotRepository) ports.PilotService {
	return &pilotService{repo: repo}
}

func (s *pilotService) Create(ctx context.Context, input ports.PilotInput) (*domain.Pilot, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}

	pilot := &domain.Pilot{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Callsign:  input.Callsign,
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, pilot); err != nil {
		return nil, fmt.Errorf("failed to save pilot: %w", err)
	}
	return pilot, nil
}

func (s *pilotService) Get(ctx context.Context, id string) (*domain.Pilot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *pilotService) List(ctx context.Context) ([]domain.Pilot, error) {
	return s.repo.GetAll(ctx)
}

func (s *pilotService) Update(ctx context.Context, id string, input ports.PilotInput) (*domain.Pilot, error) {
	pilot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}

	pilot.Name = input.Name
	pilot.Callsign = input.Callsign
	pilot.Notes = input.Notes

	if err := s.repo.Update(ctx, pilot); err != nil {
		return nil, fmt.Errorf("failed to update pilot: %w", err)
	}
	return pilot, nil
}

func (s *pilotService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

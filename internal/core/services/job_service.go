package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

type jobService struct {
	repo        ports.JobRepository
	factionRepo ports.FactionRepository
}

func NewJobService(repo ports.JobRepository, factionRepo ports.FactionRepository) ports.JobService {
	return &jobService{
		repo:        repo,
		factionRepo: factionRepo,
	}
}

func (s *jobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}

	state := input.State
	if state == "" {
		state = domain.JobActive
	}
	if !domain.ValidJobState(state) {
		return nil, fmt.Errorf("unknown job state %q: %w", state, domain.ErrInvalidInput)
	}

	if input.FactionID != "" {
		if _, err := s.factionRepo.GetByID(ctx, input.FactionID); err != nil {
			return nil, err
		}
	}

	job := &domain.Job{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		FactionID:   input.FactionID,
		Reward:      input.Reward,
		State:       state,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	return job, nil
}

func (s *jobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *jobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.repo.GetAll(ctx)
}

func (s *jobService) Update(ctx context.Context, id string, input ports.UpdateJobInput) (*domain.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title == "" {
		return nil, fmt.Errorf("title is required: %w", domain.ErrInvalidInput)
	}
	if !domain.ValidJobState(input.State) {
		return nil, fmt.Errorf("unknown job state %q: %w", input.State, domain.ErrInvalidInput)
	}
	if input.FactionID != "" && input.FactionID != job.FactionID {
		if _, err := s.factionRepo.GetByID(ctx, input.FactionID); err != nil {
			return nil, err
		}
	}

	job.Title = input.Title
	job.Description = input.Description
	job.FactionID = input.FactionID
	job.Reward = input.Reward
	job.State = input.State

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

package ports

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
)

type JobRepository interface {
	GetAll(ctx context.Context) ([]domain.Job, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	Save(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id string) error
}

type CreateJobInput struct {
	Title       string
	Description string
	FactionID   string
	Reward      string
	State       domain.JobState
}

type UpdateJobInput struct {
	Title       string
	Description string
	FactionID   string
	Reward      string
	State       domain.JobState
}

type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, id string, input UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}

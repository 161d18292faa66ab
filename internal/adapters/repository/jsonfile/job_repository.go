package jsonfile

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

const jobsFile = "jobs.json"

type jobsDoc struct {
	Jobs []domain.Job `json:"jobs"`
}

type jobRepository struct {
	store *Store
}

func NewJobRepository(store *Store) ports.JobRepository {
	return &jobRepository{store: store}
}

func (r *jobRepository) readDoc() jobsDoc {
	var doc jobsDoc
	if !r.store.read(jobsFile, &doc) || doc.Jobs == nil {
		return jobsDoc{Jobs: []domain.Job{}}
	}
	return doc
}

func (r *jobRepository) GetAll(_ context.Context) ([]domain.Job, error) {
	return r.readDoc().Jobs, nil
}

func (r *jobRepository) GetByID(_ context.Context, id string) (*domain.Job, error) {
	doc := r.readDoc()
	for i := range doc.Jobs {
		if doc.Jobs[i].ID == id {
			return &doc.Jobs[i], nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *jobRepository) Save(_ context.Context, job *domain.Job) error {
	doc := r.readDoc()
	doc.Jobs = append(doc.Jobs, *job)
	return r.store.write(jobsFile, doc)
}

func (r *jobRepository) Update(_ context.Context, job *domain.Job) error {
	doc := r.readDoc()
	for i := range doc.Jobs {
		if doc.Jobs[i].ID == job.ID {
			doc.Jobs[i] = *job
			return r.store.write(jobsFile, doc)
		}
	}
	return domain.ErrJobNotFound
}

func (r *jobRepository) Delete(_ context.Context, id string) error {
	doc := r.readDoc()
	for i := range doc.Jobs {
		if doc.Jobs[i].ID == id {
			doc.Jobs = append(doc.Jobs[:i], doc.Jobs[i+1:]...)
			return r.store.write(jobsFile, doc)
		}
	}
	return domain.ErrJobNotFound
}

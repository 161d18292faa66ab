package jsonfile

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

const pilotsFile = "pilots.json"

type pilotsDoc struct {
	Pilots []domain.Pilot `json:"pilots"`
}

type pilotRepository struct {
	store *Store
}

func NewPilotRepository(store *Store) ports.PilotRepository {
	return &pilotRepository{store: store}
}

func (r *pilotRepository) readDoc() pilotsDoc {
	var doc pilotsDoc
	if !r.store.read(pilotsFile, &doc) || doc.Pilots == nil {
		return pilotsDoc{Pilots: []domain.Pilot{}}
	}
	return doc
}

func (r *pilotRepository) GetAll(_ context.Context) ([]domain.Pilot, error) {
	return r.readDoc().Pilots, nil
}

func (r *pilotRepository) GetByID(_ context.Context, id string) (*domain.Pilot, error) {
	doc := r.readDoc()
	for i := range doc.Pilots {
		if doc.Pilots[i].ID == id {
			return &doc.Pilots[i], nil
		}
	}
	return nil, domain.ErrPilotNotFound
}

func (r *pilotRepository) Save(_ context.Context, pilot *domain.Pilot) error {
	doc := r.readDoc()
	doc.Pilots = append(doc.Pilots, *pilot)
	return r.store.write(pilotsFile, doc)
}

func (r *pilotRepository) Update(_ context.Context, pilot *domain.Pilot) error {
	doc := r.readDoc()
	for i := range doc.Pilots {
		if doc.Pilots[i].ID == pilot.ID {
			doc.Pilots[i] = *pilot
			return r.store.write(pilotsFile, doc)
		}
	}
	return domain.ErrPilotNotFound
}

func (r *pilotRepository) Delete(_ context.Context, id string) error {
	doc := r.readDoc()
	for i := range doc.Pilots {
		if doc.Pilots[i].ID == id {
			doc.Pilots = append(doc.Pilots[:i], doc.Pilots[i+1:]...)
			return r.store.write(pilotsFile, doc)
		}
	}
	return domain.ErrPilotNotFound
}

package jsonfile

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

const factionsFile = "factions.json"

type factionsDoc struct {
	Factions []domain.Faction `json:"factions"`
}

type factionRepository struct {
	store *Store
}

func NewFactionRepository(store *Store) ports.FactionRepository {
	return &factionRepository{store: store}
}

func (r *factionRepository) readDoc() factionsDoc {
	var doc factionsDoc
	if !r.store.read(factionsFile, &doc) || doc.Factions == nil {
		return factionsDoc{Factions: []domain.Faction{}}
	}
	return doc
}

func (r *factionRepository) GetAll(_ context.Context) ([]domain.Faction, error) {
	return r.readDoc().Factions, nil
}

func (r *factionRepository) GetByID(_ context.Context, id string) (*domain.Faction, error) {
	doc := r.readDoc()
	for i := range doc.Factions {
		if doc.Factions[i].ID == id {
			return &doc.Factions[i], nil
		}
	}
	return nil, domain.ErrFactionNotFound
}

func (r *factionRepository) Save(_ context.Context, faction *domain.Faction) error {
	doc := r.readDoc()
	doc.Factions = append(doc.Factions, *faction)
	return r.store.write(factionsFile, doc)
}

func (r *factionRepository) Update(_ context.Context, faction *domain.Faction) error {
	doc := r.readDoc()
	for i := range doc.Factions {
		if doc.Factions[i].ID == faction.ID {
			doc.Factions[i] = *faction
			return r.store.write(factionsFile, doc)
		}
	}
	return domain.ErrFactionNotFound
}

func (r *factionRepository) Delete(_ context.Context, id string) error {
	doc := r.readDoc()
	for i := range doc.Factions {
		if doc.Factions[i].ID == id {
			doc.Factions = append(doc.Factions[:i], doc.Factions[i+1:]...)
			return r.store.write(factionsFile, doc)
		}
	}
	return domain.ErrFactionNotFound
}

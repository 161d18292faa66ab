package jsonfile

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

const periodsFile = "voting-periods.json"

// periodsDoc is the owned on-disk shape of voting-periods.json.
type periodsDoc struct {
	Periods []domain.VotingPeriod `json:"periods"`
}

type votingPeriodRepository struct {
	store *Store
}

func NewVotingPeriodRepository(store *Store) ports.VotingPeriodRepository {
	return &votingPeriodRepository{store: store}
}

func (r *votingPeriodRepository) GetAll(_ context.Context) ([]domain.VotingPeriod, error) {
	var doc periodsDoc
	if !r.store.read(periodsFile, &doc) || doc.Periods == nil {
		return []domain.VotingPeriod{}, nil
	}
	return doc.Periods, nil
}

func (r *votingPeriodRepository) SaveAll(_ context.Context, periods []domain.VotingPeriod) error {
	if periods == nil {
		periods = []domain.VotingPeriod{}
	}
	return r.store.write(periodsFile, periodsDoc{Periods: periods})
}

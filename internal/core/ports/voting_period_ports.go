package ports

import (
	"context"

	"github.com/pellam/jobboard/internal/core/domain"
)

// VotingPeriodRepository persists the period collection as a unit;
// individual periods are not separately addressable.
type VotingPeriodRepository interface {
	GetAll(ctx context.Context) ([]domain.VotingPeriod, error)
	SaveAll(ctx context.Context, periods []domain.VotingPeriod) error
}

type CreatePeriodInput struct {
	// EndTime is the raw ISO-8601 string, or nil for an unbounded period.
	EndTime *string
	// JobIDs seed the period's jobVotes with empty vote lists.
	JobIDs []string
}

type CastVoteInput struct {
	JobID   string
	PilotID string
}

type VotingPeriodService interface {
	Create(ctx context.Context, input CreatePeriodInput) (*domain.VotingPeriod, error)
	CastVote(ctx context.Context, input CastVoteInput) (*domain.VotingPeriod, error)
	Archive(ctx context.Context, id string) (*domain.VotingPeriod, error)
	Ongoing(ctx context.Context) (*domain.VotingPeriod, error)
	List(ctx context.Context) ([]domain.VotingPeriod, error)
}

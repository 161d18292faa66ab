package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

type votingPeriodService struct {
	periodRepo ports.VotingPeriodRepository
	jobRepo    ports.JobRepository
	pilotRepo  ports.PilotRepository
}

func NewVotingPeriodService(periodRepo ports.VotingPeriodRepository, jobRepo ports.JobRepository, pilotRepo ports.PilotRepository) ports.VotingPeriodService {
	return &votingPeriodService{
		periodRepo: periodRepo,
		jobRepo:    jobRepo,
		pilotRepo:  pilotRepo,
	}
}

// Create opens a new voting period. The single-ongoing invariant is enforced
// here: creation fails while another period is still Ongoing.
func (s *votingPeriodService) Create(ctx context.Context, input ports.CreatePeriodInput) (*domain.VotingPeriod, error) {
	periods, err := s.periodRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voting periods: %w", err)
	}
	if domain.OngoingPeriod(periods) != nil {
		return nil, domain.ErrOngoingPeriodExists
	}

	if !domain.ValidEndTime(input.EndTime) {
		return nil, fmt.Errorf("end time %q is not a parseable date: %w", *input.EndTime, domain.ErrInvalidPeriod)
	}

	jobVotes := make([]domain.JobVote, 0, len(input.JobIDs))
	for _, jobID := range input.JobIDs {
		jobVotes = append(jobVotes, domain.JobVote{JobID: jobID, Votes: []string{}})
	}

	jobs, err := s.jobRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	if err := domain.ValidateJobVotes(jobVotes, jobs); err != nil {
		return nil, err
	}

	period := domain.VotingPeriod{
		ID:       uuid.NewString(),
		State:    domain.PeriodOngoing,
		JobVotes: jobVotes,
		EndTime:  input.EndTime,
	}
	if err := domain.ValidateVotingPeriod(period); err != nil {
		return nil, err
	}

	periods = append(periods, period)
	if err := s.periodRepo.SaveAll(ctx, periods); err != nil {
		return nil, fmt.Errorf("failed to save voting periods: %w", err)
	}
	return &period, nil
}

// CastVote records a vote by a pilot for a job in the ongoing period. A
// pilot gets one vote per period, across all jobs.
func (s *votingPeriodService) CastVote(ctx context.Context, input ports.CastVoteInput) (*domain.VotingPeriod, error) {
	periods, err := s.periodRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voting periods: %w", err)
	}
	period := domain.OngoingPeriod(periods)
	if period == nil {
		return nil, domain.ErrNoOngoingPeriod
	}

	if _, err := s.pilotRepo.GetByID(ctx, input.PilotID); err != nil {
		return nil, err
	}
	job, err := s.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job.State != domain.JobActive {
		return nil, fmt.Errorf("job %q is not active (state %q): %w", job.ID, job.State, domain.ErrInvalidPeriod)
	}

	target := -1
	for i, jv := range period.JobVotes {
		for _, pilot := range jv.Votes {
			if pilot == input.PilotID {
				return nil, domain.ErrAlreadyVoted
			}
		}
		if jv.JobID == input.JobID {
			target = i
		}
	}
	if target < 0 {
		return nil, domain.ErrJobNotInPeriod
	}

	period.JobVotes[target].Votes = append(period.JobVotes[target].Votes, input.PilotID)
	if err := s.periodRepo.SaveAll(ctx, periods); err != nil {
		return nil, fmt.Errorf("failed to save voting periods: %w", err)
	}
	return period, nil
}

// Archive closes a period. Archived is terminal; there is no way back to
// Ongoing.
func (s *votingPeriodService) Archive(ctx context.Context, id string) (*domain.VotingPeriod, error) {
	periods, err := s.periodRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voting periods: %w", err)
	}
	for i := range periods {
		if periods[i].ID != id {
			continue
		}
		if periods[i].State == domain.PeriodArchived {
			return nil, domain.ErrPeriodArchived
		}
		periods[i].State = domain.PeriodArchived
		if err := s.periodRepo.SaveAll(ctx, periods); err != nil {
			return nil, fmt.Errorf("failed to save voting periods: %w", err)
		}
		return &periods[i], nil
	}
	return nil, domain.ErrPeriodNotFound
}

func (s *votingPeriodService) Ongoing(ctx context.Context) (*domain.VotingPeriod, error) {
	periods, err := s.periodRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voting periods: %w", err)
	}
	period := domain.OngoingPeriod(periods)
	if period == nil {
		return nil, domain.ErrNoOngoingPeriod
	}
	return period, nil
}

func (s *votingPeriodService) List(ctx context.Context) ([]domain.VotingPeriod, error) {
	periods, err := s.periodRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voting periods: %w", err)
	}
	return periods, nil
}

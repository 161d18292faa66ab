// Package memory provides in-memory repository implementations used by
// service tests.
package memory

import (
	"context"
	"sync"

	"github.com/pellam/jobboard/internal/core/domain"
	"github.com/pellam/jobboard/internal/core/ports"
)

type VotingPeriodRepository struct {
	mu      sync.RWMutex
	periods []domain.VotingPeriod

	// SaveErr, when set, is returned by SaveAll. Lets tests exercise the
	// write-failure path.
	SaveErr error
}

func NewVotingPeriodRepository() *VotingPeriodRepository {
	return &VotingPeriodRepository{periods: []domain.VotingPeriod{}}
}

func (r *VotingPeriodRepository) GetAll(_ context.Context) ([]domain.VotingPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.VotingPeriod, len(r.periods))
	copy(out, r.periods)
	return out, nil
}

func (r *VotingPeriodRepository) SaveAll(_ context.Context, periods []domain.VotingPeriod) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.periods = make([]domain.VotingPeriod, len(periods))
	copy(r.periods, periods)
	return nil
}

type JobRepository struct {
	mu   sync.RWMutex
	jobs []domain.Job
}

func NewJobRepository(jobs ...domain.Job) *JobRepository {
	return &JobRepository{jobs: append([]domain.Job{}, jobs...)}
}

func (r *JobRepository) GetAll(_ context.Context) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *JobRepository) GetByID(_ context.Context, id string) (*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, j := range r.jobs {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *JobRepository) Save(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *JobRepository) Update(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == job.ID {
			r.jobs[i] = *job
			return nil
		}
	}
	return domain.ErrJobNotFound
}

func (r *JobRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return domain.ErrJobNotFound
}

type PilotRepository struct {
	mu     sync.RWMutex
	pilots []domain.Pilot
}

func NewPilotRepository(pilots ...domain.Pilot) *PilotRepository {
	return &PilotRepository{pilots: append([]domain.Pilot{}, pilots...)}
}

func (r *PilotRepository) GetAll(_ context.Context) ([]domain.Pilot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Pilot, len(r.pilots))
	copy(out, r.pilots)
	return out, nil
}

func (r *PilotRepository) GetByID(_ context.Context, id string) (*domain.Pilot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pilots {
		if p.ID == id {
			pilot := p
			return &pilot, nil
		}
	}
	return nil, domain.ErrPilotNotFound
}

func (r *PilotRepository) Save(_ context.Context, pilot *domain.Pilot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pilots = append(r.pilots, *pilot)
	return nil
}

func (r *PilotRepository) Update(_ context.Context, pilot *domain.Pilot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.pilots {
		if r.pilots[i].ID == pilot.ID {
			r.pilots[i] = *pilot
			return nil
		}
	}
	return domain.ErrPilotNotFound
}

func (r *PilotRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.pilots {
		if r.pilots[i].ID == id {
			r.pilots = append(r.pilots[:i], r.pilots[i+1:]...)
			return nil
		}
	}
	return domain.ErrPilotNotFound
}

type FactionRepository struct {
	mu       sync.RWMutex
	factions []domain.Faction
}

func NewFactionRepository(factions ...domain.Faction) *FactionRepository {
	return &FactionRepository{factions: append([]domain.Faction{}, factions...)}
}

func (r *FactionRepository) GetAll(_ context.Context) ([]domain.Faction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Faction, len(r.factions))
	copy(out, r.factions)
	return out, nil
}

func (r *FactionRepository) GetByID(_ context.Context, id string) (*domain.Faction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.factions {
		if f.ID == id {
			faction := f
			return &faction, nil
		}
	}
	return nil, domain.ErrFactionNotFound
}

func (r *FactionRepository) Save(_ context.Context, faction *domain.Faction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factions = append(r.factions, *faction)
	return nil
}

func (r *FactionRepository) Update(_ context.Context, faction *domain.Faction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.factions {
		if r.factions[i].ID == faction.ID {
			r.factions[i] = *faction
			return nil
		}
	}
	return domain.ErrFactionNotFound
}

func (r *FactionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.factions {
		if r.factions[i].ID == id {
			r.factions = append(r.factions[:i], r.factions[i+1:]...)
			return nil
		}
	}
	return domain.ErrFactionNotFound
}

type SettingsRepository struct {
	mu       sync.RWMutex
	settings domain.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) Get(_ context.Context) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	settings := r.settings
	return &settings, nil
}

func (r *SettingsRepository) Save(_ context.Context, settings *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = *settings
	return nil
}

var (
	_ ports.VotingPeriodRepository = (*VotingPeriodRepository)(nil)
	_ ports.JobRepository          = (*JobRepository)(nil)
	_ ports.PilotRepository        = (*PilotRepository)(nil)
	_ ports.FactionRepository      = (*FactionRepository)(nil)
	_ ports.SettingsRepository     = (*SettingsRepository)(nil)
)

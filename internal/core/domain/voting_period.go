package domain

import (
	"fmt"
	"time"
)

type PeriodState string

const (
	PeriodOngoing  PeriodState = "Ongoing"
	PeriodArchived PeriodState = "Archived"
)

// VotingPeriod is a bounded or unbounded window during which pilots cast
// votes for jobs. At most one period in the collection may be Ongoing; that
// invariant is enforced by the service layer, not here.
type VotingPeriod struct {
	ID       string      `json:"id"`
	State    PeriodState `json:"state"`
	JobVotes []JobVote   `json:"jobVotes"`
	// EndTime is the raw ISO-8601 string as submitted, or nil for an
	// unbounded period. No timezone normalization is applied.
	EndTime *string `json:"endTime"`
}

// JobVote holds the pilots who voted for one job within a period.
type JobVote struct {
	JobID string   `json:"jobId"`
	Votes []string `json:"votes"`
}

// endTimeLayouts are the accepted end-time formats, most specific first.
var endTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ValidVotingPeriodState reports whether state is one of the two known
// period states.
func ValidVotingPeriodState(state PeriodState) bool {
	return state == PeriodOngoing || state == PeriodArchived
}

// ValidEndTime reports whether value is nil (unbounded period) or a
// parseable date/time string.
func ValidEndTime(value *string) bool {
	if value == nil {
		return true
	}
	for _, layout := range endTimeLayouts {
		if _, err := time.Parse(layout, *value); err == nil {
			return true
		}
	}
	return false
}

// ValidateJobVotes checks the structural and uniqueness constraints of a
// period's jobVotes list: every entry needs a job id, and a pilot may appear
// in at most one votes list across the whole slice. Entries are scanned in
// insertion order and the first violation found is the one reported.
//
// When jobs is non-nil it acts as a cross-reference context: every jobId
// must exist in it and the referenced job must be Active. A nil jobs slice
// skips both checks.
func ValidateJobVotes(jobVotes []JobVote, jobs []Job) error {
	var states map[string]JobState
	if jobs != nil {
		states = make(map[string]JobState, len(jobs))
		for _, j := range jobs {
			states[j.ID] = j.State
		}
	}

	seen := make(map[string]string)
	for i, jv := range jobVotes {
		if jv.JobID == "" {
			return fmt.Errorf("job vote entry %d has no job id: %w", i, ErrInvalidPeriod)
		}
		if states != nil {
			state, ok := states[jv.JobID]
			if !ok {
				return fmt.Errorf("job vote references unknown job %q: %w", jv.JobID, ErrInvalidPeriod)
			}
			if state != JobActive {
				return fmt.Errorf("job %q is not active (state %q): %w", jv.JobID, state, ErrInvalidPeriod)
			}
		}
		for _, pilot := range jv.Votes {
			if other, dup := seen[pilot]; dup {
				return fmt.Errorf("pilot %q voted for both job %q and job %q: %w", pilot, other, jv.JobID, ErrInvalidPeriod)
			}
			seen[pilot] = jv.JobID
		}
	}
	return nil
}

// ValidateVotingPeriod checks a single period's internal consistency:
// state, then end time, then job votes. Checks short-circuit, so the first
// failure is the one reported. Job existence is not checked here.
func ValidateVotingPeriod(period VotingPeriod) error {
	if !ValidVotingPeriodState(period.State) {
		return fmt.Errorf("unknown voting period state %q: %w", period.State, ErrInvalidPeriod)
	}
	if !ValidEndTime(period.EndTime) {
		return fmt.Errorf("end time %q is not a parseable date: %w", *period.EndTime, ErrInvalidPeriod)
	}
	return ValidateJobVotes(period.JobVotes, nil)
}

// OngoingPeriod returns the first period whose state is Ongoing, or nil.
// It is a pure query: it does not verify that only one such period exists.
func OngoingPeriod(periods []VotingPeriod) *VotingPeriod {
	for i := range periods {
		if periods[i].State == PeriodOngoing {
			return &periods[i]
		}
	}
	return nil
}

package domain

import "time"

type JobState string

const (
	JobActive   JobState = "Active"
	JobPending  JobState = "Pending"
	JobComplete JobState = "Complete"
	JobFailed   JobState = "Failed"
)

// Job is a posted contract the group can take on. Only Active jobs are
// eligible for voting.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	FactionID   string    `json:"factionId,omitempty"`
	Reward      string    `json:"reward,omitempty"`
	State       JobState  `json:"state"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ValidJobState(state JobState) bool {
	switch state {
	case JobActive, JobPending, JobComplete, JobFailed:
		return true
	}
	return false
}

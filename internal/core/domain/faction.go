package domain

import "time"

type Faction struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Emblem is a relative path set by the upload handler; stored verbatim.
	Emblem    string    `json:"emblem,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

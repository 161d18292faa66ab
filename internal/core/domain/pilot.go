package domain

import "time"

type Pilot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Callsign  string    `json:"callsign,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

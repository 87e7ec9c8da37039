package domain

import (
	"time"

	"github.com/google/uuid"
)

// Candidate runs for a single position. VoteCount is a materialized
// cache of the ledger count for this candidate and must match it
// after every mutation.
type Candidate struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Party     string    `json:"party"`
	Manifesto string    `json:"manifesto"`
	VoteCount int64     `json:"vote_count"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

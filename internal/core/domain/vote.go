package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one append-only ledger entry. Encrypted is a display label
// only; no cryptography is involved.
type Vote struct {
	ID          uuid.UUID `json:"id"`
	VoterID     string    `json:"voter_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Position    string    `json:"position"`
	Timestamp   time.Time `json:"timestamp"`
	Encrypted   bool      `json:"encrypted"`
}

// VotingRecord proves a completed ballot. It is the authoritative
// eligibility ledger, keyed by voter email.
type VotingRecord struct {
	VoterEmail string               `json:"voter_email"`
	VoterID    string               `json:"voter_id"`
	Timestamp  time.Time            `json:"timestamp"`
	Votes      map[string]uuid.UUID `json:"votes"`
}

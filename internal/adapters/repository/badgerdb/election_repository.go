package badgerdb

import (
	"context"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

type electionRepository struct {
	store *Store
}

func NewElectionRepository(store *Store) ports.ElectionRepository {
	return &electionRepository{
		store: store,
	}
}

func (r *electionRepository) SaveCandidate(ctx context.Context, candidate *domain.Candidate) error {
	err := r.store.db.Update(func(txn *badger.Txn) error {
		var roster []*domain.Candidate
		if _, err := getJSON(txn, keyCandidateRoster, &roster); err != nil {
			return err
		}

		replaced := false
		for i, c := range roster {
			if c.ID == candidate.ID {
				roster[i] = candidate
				replaced = true
				break
			}
		}
		if !replaced {
			roster = append(roster, candidate)
		}

		return setJSON(txn, keyCandidateRoster, roster)
	})
	if err != nil {
		return fmt.Errorf("failed to save candidate: %w", err)
	}
	return nil
}

func (r *electionRepository) GetCandidate(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	var candidate *domain.Candidate
	err := r.store.db.View(func(txn *badger.Txn) error {
		var roster []*domain.Candidate
		if _, err := getJSON(txn, keyCandidateRoster, &roster); err != nil {
			return err
		}
		for _, c := range roster {
			if c.ID == id {
				candidate = c
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

func (r *electionRepository) ListCandidates(ctx context.Context) ([]*domain.Candidate, error) {
	var roster []*domain.Candidate
	err := r.store.db.View(func(txn *badger.Txn) error {
		_, err := getJSON(txn, keyCandidateRoster, &roster)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return roster, nil
}

func (r *electionRepository) AppendVote(ctx context.Context, vote *domain.Vote) error {
	err := r.store.db.Update(func(txn *badger.Txn) error {
		return appendVotes(txn, []*domain.Vote{vote})
	})
	if err != nil {
		return fmt.Errorf("failed to append vote: %w", err)
	}
	return nil
}

func (r *electionRepository) ListVotes(ctx context.Context) ([]*domain.Vote, error) {
	var ledger []*domain.Vote
	err := r.store.db.View(func(txn *badger.Txn) error {
		_, err := getJSON(txn, keyVoteLedger, &ledger)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return ledger, nil
}

func (r *electionRepository) SetVotingOpen(ctx context.Context, open bool) error {
	err := r.store.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, keyVotingOpenFlag, open)
	})
	if err != nil {
		return fmt.Errorf("failed to set voting flag: %w", err)
	}
	return nil
}

func (r *electionRepository) VotingOpen(ctx context.Context) (bool, error) {
	// Voting starts open; the flag only exists once an admin toggles it.
	open := true
	err := r.store.db.View(func(txn *badger.Txn) error {
		_, err := getJSON(txn, keyVotingOpenFlag, &open)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to read voting flag: %w", err)
	}
	return open, nil
}

func (r *electionRepository) HasVotingRecord(ctx context.Context, voterEmail string) (bool, error) {
	records, err := r.ListVotingRecords(ctx)
	if err != nil {
		return false, err
	}
	for _, record := range records {
		if record.VoterEmail == voterEmail {
			return true, nil
		}
	}
	return false, nil
}

func (r *electionRepository) ListVotingRecords(ctx context.Context) ([]*domain.VotingRecord, error) {
	var records []*domain.VotingRecord
	err := r.store.db.View(func(txn *badger.Txn) error {
		_, err := getJSON(txn, keyEligibilityRecords, &records)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list voting records: %w", err)
	}
	return records, nil
}

// CommitBallot lands the whole ballot in one transaction: all votes,
// all count increments and the eligibility record, or nothing.
func (r *electionRepository) CommitBallot(ctx context.Context, votes []*domain.Vote, record *domain.VotingRecord) error {
	err := r.store.db.Update(func(txn *badger.Txn) error {
		if err := appendVotes(txn, votes); err != nil {
			return err
		}

		var records []*domain.VotingRecord
		if _, err := getJSON(txn, keyEligibilityRecords, &records); err != nil {
			return err
		}
		records = append(records, record)
		return setJSON(txn, keyEligibilityRecords, records)
	})
	if err != nil {
		return fmt.Errorf("failed to commit ballot: %w", err)
	}
	return nil
}

// appendVotes appends to the ledger and bumps the materialized counts
// within the caller's transaction.
func appendVotes(txn *badger.Txn, votes []*domain.Vote) error {
	var ledger []*domain.Vote
	if _, err := getJSON(txn, keyVoteLedger, &ledger); err != nil {
		return err
	}
	var roster []*domain.Candidate
	if _, err := getJSON(txn, keyCandidateRoster, &roster); err != nil {
		return err
	}

	byID := make(map[uuid.UUID]*domain.Candidate, len(roster))
	for _, c := range roster {
		byID[c.ID] = c
	}

	for _, vote := range votes {
		candidate, ok := byID[vote.CandidateID]
		if !ok {
			return domain.ErrCandidateNotFound
		}
		candidate.VoteCount++
		ledger = append(ledger, vote)
	}

	if err := setJSON(txn, keyVoteLedger, ledger); err != nil {
		return err
	}
	return setJSON(txn, keyCandidateRoster, roster)
}

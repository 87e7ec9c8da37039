package badgerdb

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
)

// The storage model mirrors the original app: a flat key namespace
// where each key holds one JSON document.
const (
	keyCurrentIdentity    = "current-identity"
	keyCandidateRoster    = "candidate-roster"
	keyVoteLedger         = "vote-ledger"
	keyVotingOpenFlag     = "voting-open-flag"
	keyEligibilityRecords = "voter-eligibility-records"
)

type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database at path and reconciles every
// candidate's vote count against the ledger.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	store := &Store{db: db}
	if err := store.recountVotes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reconcile vote counts: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// recountVotes rewrites every materialized count from the ledger, the
// way the original recounted on every load. Heals any drift left by
// a previous run.
func (s *Store) recountVotes() error {
	return s.db.Update(func(txn *badger.Txn) error {
		var roster []*domain.Candidate
		found, err := getJSON(txn, keyCandidateRoster, &roster)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}

		var ledger []*domain.Vote
		if _, err := getJSON(txn, keyVoteLedger, &ledger); err != nil {
			return err
		}

		counts := make(map[uuid.UUID]int64)
		for _, vote := range ledger {
			counts[vote.CandidateID]++
		}
		for _, candidate := range roster {
			candidate.VoteCount = counts[candidate.ID]
		}

		return setJSON(txn, keyCandidateRoster, roster)
	})
}

// getJSON reads the document under key into out. Returns false when
// the key is absent.
func getJSON(txn *badger.Txn, key string, out any) (bool, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	}); err != nil {
		return false, err
	}
	return true, nil
}

func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}

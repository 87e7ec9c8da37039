package badgerdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
	"github.com/vncsmyrnk/voteverse/internal/core/ports"
)

type sessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) ports.SessionRepository {
	return &sessionRepository{
		store: store,
	}
}

func (r *sessionRepository) SaveIdentity(ctx context.Context, identity *domain.Identity) error {
	err := r.store.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, keyCurrentIdentity, identity)
	})
	if err != nil {
		return fmt.Errorf("failed to save identity: %w", err)
	}
	return nil
}

func (r *sessionRepository) LoadIdentity(ctx context.Context) (*domain.Identity, error) {
	var identity *domain.Identity
	err := r.store.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyCurrentIdentity))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		var stored domain.Identity
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		}); err != nil {
			// Corrupt snapshot: discard it and start unauthenticated.
			return txn.Delete([]byte(keyCurrentIdentity))
		}

		identity = &stored
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}
	return identity, nil
}

func (r *sessionRepository) ClearIdentity(ctx context.Context) error {
	err := r.store.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyCurrentIdentity))
	})
	if err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	return nil
}

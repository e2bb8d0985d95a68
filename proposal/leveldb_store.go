package proposal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
)

const pendingProposalKey = "pending_proposal"

var _ Store = (*LevelDBStore)(nil)

// LevelDBStore keeps the proposal under a single key of a leveldb database.
// Useful for operators who already keep a leveldb state directory next to
// their signer node; the record value is the same JSON the file store writes.
type LevelDBStore struct {
	sync.Mutex
	stateDb     *leveldb.DB
	stateDbPath string
}

func NewLevelDBStore(stateDbPath string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(stateDbPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open stateDB: %w", err)
	}

	return &LevelDBStore{
		stateDb:     db,
		stateDbPath: stateDbPath,
	}, nil
}

func (s *LevelDBStore) Exists() (bool, error) {
	s.Lock()
	defer s.Unlock()

	has, err := s.stateDb.Has([]byte(pendingProposalKey), nil)
	if err != nil {
		return false, fmt.Errorf("failed to check key {%s} in leveldb storage: %w", pendingProposalKey, err)
	}
	return has, nil
}

func (s *LevelDBStore) Load() (*PendingProposal, error) {
	s.Lock()
	defer s.Unlock()

	data, err := s.stateDb.Get([]byte(pendingProposalKey), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNoPendingProposal
		}
		return nil, fmt.Errorf("failed to get value with key {%s} from leveldb storage: %w", pendingProposalKey, err)
	}

	var p PendingProposal
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored proposal: %w", err)
	}
	if p.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("unsupported proposal schema version %d (supported: %d)", p.SchemaVersion, SchemaVersion)
	}
	return &p, nil
}

func (s *LevelDBStore) Save(p *PendingProposal) error {
	s.Lock()
	defer s.Unlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal proposal: %w", err)
	}

	if err := s.stateDb.Put([]byte(pendingProposalKey), data, nil); err != nil {
		return fmt.Errorf("failed to save value with key %s: %w", pendingProposalKey, err)
	}
	return nil
}

func (s *LevelDBStore) Delete() error {
	s.Lock()
	defer s.Unlock()

	err := s.stateDb.Delete([]byte(pendingProposalKey), nil)
	if err != nil && !errors.Is(err, leveldb.ErrNotFound) {
		return fmt.Errorf("failed to delete value with key {%s}: %w", pendingProposalKey, err)
	}
	return nil
}

func (s *LevelDBStore) Close() error {
	return s.stateDb.Close()
}

package proposal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/juju/fslock"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps the proposal as an indented JSON file so an operator can
// read or repair it with a plain text editor. Writes go to a temp file in
// the same directory followed by a rename, so a crash mid-write never
// leaves a truncated record behind.
type FileStore struct {
	lockFile *fslock.Lock
	path     string
}

// NewFileStore initializes a file-backed proposal store.
// It takes two arguments: filename - path to the proposal file,
// lockFilename (optional) - path to a lock file.
func NewFileStore(filename string, lockFilename ...string) *FileStore {
	fs := &FileStore{path: filename}
	if len(lockFilename) > 0 {
		fs.lockFile = fslock.New(lockFilename[0])
	} else {
		fs.lockFile = fslock.New(filename + ".lock")
	}
	return fs
}

func (fs *FileStore) Exists() (bool, error) {
	if _, err := os.Stat(fs.path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat proposal file: %w", err)
	}
	return true, nil
}

func (fs *FileStore) Load() (*PendingProposal, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoPendingProposal
		}
		return nil, fmt.Errorf("failed to read proposal file: %w", err)
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

func (fs *FileStore) Save(p *PendingProposal) error {
	if err := fs.lockFile.Lock(); err != nil {
		return fmt.Errorf("failed to lock proposal file: %w", err)
	}
	defer fs.lockFile.Unlock()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal proposal: %w", err)
	}

	tmpPath := fs.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write proposal temp file: %w", err)
	}
	if err := os.Rename(tmpPath, fs.path); err != nil {
		return fmt.Errorf("failed to rename proposal temp file: %w", err)
	}
	return nil
}

func (fs *FileStore) Delete() error {
	if err := fs.lockFile.Lock(); err != nil {
		return fmt.Errorf("failed to lock proposal file: %w", err)
	}
	defer fs.lockFile.Unlock()

	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove proposal file: %w", err)
	}
	return nil
}

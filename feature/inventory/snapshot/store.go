package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"inventory-manager/feature/inventory/models"
)

// CorruptStateError reports a snapshot file that exists but cannot be parsed.
// The caller decides whether to start from an empty inventory or abort.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt inventory snapshot %q: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

// Store persists the inventory as a single JSON snapshot and keeps an
// append-only transaction log next to it.
type Store struct {
	path    string
	logPath string
}

// NewStore creates a store for the given snapshot and transaction log paths.
func NewStore(snapshotPath, transactionsPath string) *Store {
	return &Store{path: snapshotPath, logPath: transactionsPath}
}

// Load reads the persisted collection. A missing file yields an empty
// inventory; an unparseable file yields a *CorruptStateError.
func (s *Store) Load() (map[string]models.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]models.Product{}, nil
		}
		return nil, &CorruptStateError{Path: s.path, Err: err}
	}

	var products map[string]models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, &CorruptStateError{Path: s.path, Err: err}
	}
	if products == nil {
		products = map[string]models.Product{}
	}
	return products, nil
}

// Save serializes the full collection as one atomic snapshot. The new state
// is written to a temp file in the same directory and renamed over the old
// one, so a concurrent reader never observes a torn file.
func (s *Store) Save(products map[string]models.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".inventory-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// AppendTransaction appends one JSON line per transaction to the log file.
// Prior content is never rewritten.
func (s *Store) AppendTransaction(tx models.Transaction) error {
	line, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to encode transaction: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.logPath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open transaction log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

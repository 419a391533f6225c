// Package file provides the default DedupStore backend: an in-memory set
// of processed payment ids mirrored to a JSON file for crash recovery.
// The in-memory set is authoritative for the life of the process; the
// file is a best-effort side effect.
package file

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// DedupStore implements ports.DedupStore on top of a JSON file.
type DedupStore struct {
	path string
	log  zerolog.Logger

	mu  sync.Mutex
	ids map[string]struct{}

	// persistMu serializes file writes so snapshots land whole.
	persistMu sync.Mutex
}

// NewDedupStore creates the store and loads any previously persisted set.
// A missing or corrupt file yields an empty set, never an error.
func NewDedupStore(path string, log zerolog.Logger) *DedupStore {
	s := &DedupStore{
		path: path,
		log:  log,
		ids:  make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("dedup store: cannot read persisted set, starting empty")
		}
		return s
	}

	var loaded []string
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("dedup store: persisted set is corrupt, starting empty")
		return s
	}

	for _, id := range loaded {
		s.ids[id] = struct{}{}
	}
	log.Info().Int("count", len(loaded)).Str("path", path).Msg("dedup store: loaded persisted set")
	return s
}

// Contains reports whether the payment id has already been processed.
func (s *DedupStore) Contains(ctx context.Context, paymentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[paymentID]
	return ok, nil
}

// MarkProcessed atomically checks and inserts the id, then persists the
// set outside the lock. A persist failure is logged and swallowed: the
// in-memory set stays authoritative.
func (s *DedupStore) MarkProcessed(ctx context.Context, paymentID string) (bool, error) {
	s.mu.Lock()
	if _, ok := s.ids[paymentID]; ok {
		s.mu.Unlock()
		return false, nil
	}
	s.ids[paymentID] = struct{}{}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if err := s.persistSnapshot(snapshot); err != nil {
		s.log.Error().Err(err).Str("payment_id", paymentID).Msg("dedup store: persist failed, continuing with in-memory set")
	}
	return true, nil
}

// Persist flushes the current set to disk.
func (s *DedupStore) Persist() error {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	return s.persistSnapshot(snapshot)
}

// snapshotLocked copies the set as a sorted slice. Caller holds mu.
func (s *DedupStore) snapshotLocked() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *DedupStore) persistSnapshot(ids []string) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write cannot corrupt the set.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

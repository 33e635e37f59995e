package storage

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"deckgrip/internal/domain"
)

// SnapshotKey is the key the presentation snapshot is stored under
const SnapshotKey = "deckgrip-presentation-storage"

// SnapshotStore persists the notes/settings snapshot as TOML in a KV
type SnapshotStore struct {
	kv  KV
	key string
}

// NewSnapshotStore stores snapshots in kv under SnapshotKey
func NewSnapshotStore(kv KV) *SnapshotStore {
	return &SnapshotStore{kv: kv, key: SnapshotKey}
}

// Load decodes the stored snapshot. Fields missing from the stored
// document keep their default values.
func (s *SnapshotStore) Load() (domain.Snapshot, bool, error) {
	data, found, err := s.kv.Get(s.key)
	if err != nil {
		return domain.DefaultSnapshot(), false, err
	}
	if !found {
		return domain.DefaultSnapshot(), false, nil
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		return domain.DefaultSnapshot(), false, err
	}
	return snap, true, nil
}

// Save encodes and stores snap
func (s *SnapshotStore) Save(snap domain.Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, data)
}

// Clear removes the stored snapshot
func (s *SnapshotStore) Clear() error {
	return s.kv.Delete(s.key)
}

// EncodeSnapshot renders snap as TOML
func EncodeSnapshot(snap domain.Snapshot) ([]byte, error) {
	data, err := toml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a TOML snapshot on top of the defaults
func DecodeSnapshot(data []byte) (domain.Snapshot, error) {
	snap := domain.DefaultSnapshot()
	if err := toml.Unmarshal(data, &snap); err != nil {
		return domain.DefaultSnapshot(), fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Notes == nil {
		snap.Notes = make(map[string]domain.Note)
	}
	for id, n := range snap.Notes {
		if n.SlideID == "" {
			n.SlideID = id
			snap.Notes[id] = n
		}
	}
	return snap, nil
}

package storage

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/blackcoderx/weburl/pkg/environment"
)

// Store owns the persisted environment configuration for a host process.
// The engine never locks; the store hands out snapshots so every render pass
// sees one consistent configuration.
type Store struct {
	path string

	mu  sync.RWMutex
	cfg *environment.Config
}

// OpenStore loads the configuration at path, creating an in-memory default
// when the file is missing.
func OpenStore(path string) (*Store, error) {
	cfg, err := LoadOrCreateConfig(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("environment configuration loaded", "path", path, "environments", len(cfg.Environments))
	return &Store{path: path, cfg: cfg}, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns an expanded copy of the current configuration.
func (s *Store) Snapshot() *environment.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ExpandConfig(s.cfg)
}

// Raw returns an unexpanded copy of the current configuration.
func (s *Store) Raw() *environment.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Snapshot()
}

// Update applies fn to the configuration and saves it when fn succeeds.
// A failed fn leaves both memory and disk unchanged.
func (s *Store) Update(fn func(cfg *environment.Config) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cfg.Snapshot()
	if err := fn(next); err != nil {
		return err
	}
	next.Repair()
	if err := SaveConfig(next, s.path); err != nil {
		return fmt.Errorf("failed to save environments: %w", err)
	}
	s.cfg = next
	slog.Debug("environment configuration saved", "path", s.path)
	return nil
}

// Reload re-reads the backing file, e.g. after an external edit.
func (s *Store) Reload() error {
	cfg, err := LoadOrCreateConfig(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

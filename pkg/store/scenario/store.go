package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/re-tools/property-atlas/pkg/models/domain"
)

var ErrNotFound = errors.New("scenario not found")

// Store persists saved calculation scenarios.
type Store interface {
	List(ctx context.Context) ([]domain.Scenario, error)
	Get(ctx context.Context, id string) (domain.Scenario, error)
	Put(ctx context.Context, scenario domain.Scenario) error
	Delete(ctx context.Context, id string) error
}

// fileStore keeps scenarios in a single JSON file, loading it once on open
// and rewriting it on every mutation.
type fileStore struct {
	path string

	mu        sync.Mutex
	scenarios map[string]domain.Scenario
}

// NewFileStore opens the scenario file at path, creating parent directories
// as needed. A missing file is treated as an empty store.
func NewFileStore(path string) (Store, error) {
	store := &fileStore{
		path:      path,
		scenarios: make(map[string]domain.Scenario),
	}
	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *fileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read scenario file %s: %w", s.path, err)
	}

	var scenarios map[string]domain.Scenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return fmt.Errorf("failed to parse scenario file %s: %w", s.path, err)
	}
	for id, sc := range scenarios {
		// the mapping key is authoritative for the id
		sc.ID = id
		s.scenarios[id] = sc
	}
	return nil
}

func (s *fileStore) persist() error {
	data, err := json.MarshalIndent(s.scenarios, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scenarios: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create scenario dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario file %s: %w", s.path, err)
	}
	return nil
}

func (s *fileStore) List(_ context.Context) ([]domain.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scenarios := make([]domain.Scenario, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		scenarios = append(scenarios, sc)
	}
	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].CreatedAt.Before(scenarios[j].CreatedAt)
	})
	return scenarios, nil
}

func (s *fileStore) Get(_ context.Context, id string) (domain.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.scenarios[id]
	if !ok {
		return domain.Scenario{}, ErrNotFound
	}
	return sc, nil
}

func (s *fileStore) Put(_ context.Context, scenario domain.Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios[scenario.ID] = scenario
	return s.persist()
}

func (s *fileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scenarios[id]; !ok {
		return ErrNotFound
	}
	delete(s.scenarios, id)
	return s.persist()
}

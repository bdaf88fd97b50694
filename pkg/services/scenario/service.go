package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/re-tools/property-atlas/pkg/models/domain"
	scenariostore "github.com/re-tools/property-atlas/pkg/store/scenario"
)

// Service owns scenario identity and timestamps. The store only persists
// what the service hands it.
type Service struct {
	store scenariostore.Store
	now   func() time.Time
}

func NewService(store scenariostore.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]domain.Scenario, error) {
	scenarios, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return scenarios, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Scenario, error) {
	return s.store.Get(ctx, id)
}

// Save persists a new scenario under a freshly assigned id.
func (s *Service) Save(ctx context.Context, name string, data map[string]any) (domain.Scenario, error) {
	now := s.now().UTC()
	scenario := domain.Scenario{
		ID:           uuid.NewString(),
		Name:         name,
		Data:         data,
		CreatedAt:    now,
		LastModified: now,
	}
	if err := s.store.Put(ctx, scenario); err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to save scenario %s: %w", name, err)
	}
	return scenario, nil
}

// Update replaces the data of an existing scenario, bumping LastModified
// and keeping the original creation time.
func (s *Service) Update(ctx context.Context, id string, data map[string]any) (domain.Scenario, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Scenario{}, err
	}

	existing.Data = data
	existing.LastModified = s.now().UTC()
	if err := s.store.Put(ctx, existing); err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to update scenario %s: %w", id, err)
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

package scenario

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scenariostore "github.com/re-tools/property-atlas/pkg/store/scenario"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := scenariostore.NewFileStore(filepath.Join(t.TempDir(), "scenarios.json"))
	require.NoError(t, err)
	return NewService(store)
}

func TestService_SaveAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	saved, err := service.Save(ctx, "duplex on main", map[string]any{"purchase_price": 250000.0})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "duplex on main", saved.Name)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.LastModified)

	got, err := service.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, 250000.0, got.Data["purchase_price"])
}

func TestService_SaveDistinctIDs(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	first, err := service.Save(ctx, "same name", nil)
	require.NoError(t, err)
	second, err := service.Save(ctx, "same name", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	scenarios, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, scenarios, 2)
}

func TestService_UpdateBumpsLastModified(t *testing.T) {
	ctx := context.Background()
	service := newTestService(t)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return created }
	saved, err := service.Save(ctx, "duplex on main", map[string]any{"monthly_rent": 1800.0})
	require.NoError(t, err)

	service.now = func() time.Time { return created.Add(time.Hour) }
	updated, err := service.Update(ctx, saved.ID, map[string]any{"monthly_rent": 1950.0})
	require.NoError(t, err)

	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, created.Add(time.Hour), updated.LastModified)
	assert.Equal(t, 1950.0, updated.Data["monthly_rent"])
}

func TestService_DeleteMissing(t *testing.T) {
	service := newTestService(t)
	err := service.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, scenariostore.ErrNotFound)
}

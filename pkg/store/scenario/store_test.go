package scenario

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/re-tools/property-atlas/pkg/models/domain"
)

func testScenario(id, name string, createdAt time.Time) domain.Scenario {
	return domain.Scenario{
		ID:           id,
		Name:         name,
		Data:         map[string]any{"purchase_price": 250000.0},
		CreatedAt:    createdAt,
		LastModified: createdAt,
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Put(ctx, testScenario("a", "duplex on main", now)))
	require.NoError(t, store.Put(ctx, testScenario("b", "lake house", now.Add(time.Minute))))

	// a fresh store reads back what the first one wrote
	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	scenarios, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "duplex on main", scenarios[0].Name)
	assert.Equal(t, "lake house", scenarios[1].Name)

	got, err := reopened.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 250000.0, got.Data["purchase_price"])
}

func TestFileStore_FileIsKeyedByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, testScenario("a", "duplex on main", time.Now())))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// the file is a mapping of id -> scenario with snake_case fields
	var onDisk map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Contains(t, onDisk, "a")
	assert.Equal(t, "duplex on main", onDisk["a"]["name"])
	assert.Contains(t, onDisk["a"], "data")
	assert.Contains(t, onDisk["a"], "created_at")
	assert.Contains(t, onDisk["a"], "last_modified")
}

func TestFileStore_LoadsKeyedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.json")
	content := `{
		"f3b9": {
			"name": "lake house",
			"data": {"purchase_price": 420000},
			"created_at": "2026-03-01T12:00:00Z",
			"last_modified": "2026-03-01T12:00:00Z"
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "f3b9")
	require.NoError(t, err)
	assert.Equal(t, "f3b9", got.ID, "the mapping key supplies the id")
	assert.Equal(t, "lake house", got.Name)
	assert.Equal(t, 420000.0, got.Data["purchase_price"])
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "scenarios.json"))
	require.NoError(t, err)

	scenarios, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, scenarios)
}

func TestFileStore_GetNotFound(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "scenarios.json"))
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, testScenario("a", "duplex on main", time.Now())))

	require.NoError(t, store.Delete(ctx, "a"))
	assert.ErrorIs(t, store.Delete(ctx, "a"), ErrNotFound)

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	scenarios, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, scenarios)
}

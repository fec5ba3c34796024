package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotsBot_Go/internal/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "user_data.json")
	store := NewStore(path)
	ctx := context.Background()

	snap := domain.Snapshot{
		42: {
			Balance:        1337,
			LastBonusClaim: "2026-05-01T10:00:00Z",
			Stats:          domain.SpinStats{Spins: 3, TotalBet: 30, TotalWin: 20},
			DisplayName:    "Zoë 🍒",
			Settings:       domain.UserSettings{DefaultBet: 5},
		},
		7: {Balance: 1000, Settings: domain.UserSettings{DefaultBet: 10}},
	}
	require.NoError(t, store.Save(ctx, snap))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)
}

func TestStore_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.json")
	store := NewStore(path)

	require.NoError(t, store.Save(context.Background(), domain.Snapshot{
		1: {Balance: 900, DisplayName: "Zoë", Settings: domain.UserSettings{DefaultBet: 10}},
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"1": {
			"balance": 900,
			"last_bonus_claim": "",
			"stats": {"spins": 0, "total_bet": 0, "total_win": 0},
			"display_name": "Zoë",
			"settings": {"default_bet": 10}
		}
	}`, string(raw))
	assert.Contains(t, string(raw), "Zoë", "non-ASCII names are not escaped")
	assert.Contains(t, string(raw), "\n  ", "output is indented")
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	snap, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestStore_SaveReplacesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_data.json")
	store := NewStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Snapshot{1: {Balance: 1}, 2: {Balance: 2}}))
	require.NoError(t, store.Save(ctx, domain.Snapshot{1: {Balance: 5}}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{1: {Balance: 5}}, loaded)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user_data.json", entries[0].Name())
	assert.Equal(t, BackendName, store.Name())
	assert.Equal(t, path, store.Path())
}

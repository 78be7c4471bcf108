package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtrainer/internal/training"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"busy_timeout", "5000"},
		{"synchronous", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.pragma, func(t *testing.T) {
			var got string
			err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_CreatesKVTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv", name)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.ConfigRepo().Save(ctx, training.Configuration{ProblemCount: 12, SelectedNumbers: []int{4}}))
	require.NoError(t, s.Close())

	s, err = Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	cfg, err := s.ConfigRepo().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.ProblemCount)
	assert.Equal(t, []int{4}, cfg.SelectedNumbers)
}

func TestKV_GetPutDelete(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Put(ctx, "k", "v1"))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, kv.Put(ctx, "k", "v2"))
	got, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, kv.Delete(ctx, "k"))
}

func TestConfigRepo_DefaultWhenAbsent(t *testing.T) {
	s := openTestStore(t)

	cfg, err := s.ConfigRepo().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, training.Default(), cfg)
}

func TestConfigRepo_LoadsStoredRecord(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.KV().Put(ctx, ConfigKey,
		`{"problemCount":5,"selectedNumbers":[1,2,3,4,5,6,7,8,9,10]}`))

	cfg, err := s.ConfigRepo().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.ProblemCount)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, cfg.SelectedNumbers)
}

func TestConfigRepo_SaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConfigRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, training.Default()))
	require.NoError(t, repo.Save(ctx, training.Configuration{ProblemCount: 20, SelectedNumbers: []int{3, 7}}))

	raw, err := s.KV().Get(ctx, ConfigKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"problemCount":20,"selectedNumbers":[3,7]}`, raw)

	cfg, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, cfg.SelectedNumbers)
}

func TestConfigRepo_EmptySelectionRoundTrips(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConfigRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, training.Configuration{ProblemCount: 10}))

	raw, err := s.KV().Get(ctx, ConfigKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"problemCount":10,"selectedNumbers":[]}`, raw)

	cfg, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.ProblemCount)
	assert.Empty(t, cfg.SelectedNumbers)
}

func TestConfigRepo_MalformedFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{problemCount:`},
		{"wrong type", `{"problemCount":"five","selectedNumbers":[1]}`},
		{"missing field", `{"problemCount":5}`},
		{"count out of range", `{"problemCount":500,"selectedNumbers":[1]}`},
		{"table out of range", `{"problemCount":5,"selectedNumbers":[0,16]}`},
		{"not an object", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t)
			ctx := context.Background()
			require.NoError(t, s.KV().Put(ctx, ConfigKey, tt.raw))

			cfg, err := s.ConfigRepo().Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, training.Default(), cfg)
		})
	}
}

func TestDecodeConfig_ReportsMalformed(t *testing.T) {
	_, err := DecodeConfig(`{"problemCount":0,"selectedNumbers":[]}`)
	assert.ErrorIs(t, err, ErrMalformedConfig)
}

func TestConfigRepo_Reset(t *testing.T) {
	s := openTestStore(t)
	repo := s.ConfigRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, training.Configuration{ProblemCount: 3, SelectedNumbers: []int{9}}))
	require.NoError(t, repo.Reset(ctx))

	cfg, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, training.Default(), cfg)
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "nested", "custom.db")
		t.Setenv("MATHTRAINER_DB", p)

		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.DirExists(t, filepath.Dir(p))
	})

	t.Run("xdg data home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("MATHTRAINER_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)

		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "mathtrainer", "mathtrainer.db"), got)
	})
}

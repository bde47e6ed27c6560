package maintenance

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damataprodutora/portfolio-backend/internal/portfolio"
	"github.com/damataprodutora/portfolio-backend/internal/session"
)

func writeUpload(t *testing.T, dir, name string, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestSweepOnce(t *testing.T) {
	dir := t.TempDir()
	store := portfolio.NewStore(filepath.Join(t.TempDir(), "portfolio.json"))

	require.NoError(t, store.SaveAll([]portfolio.Project{
		{ID: 1, Title: "Kept", ImageURLs: []string{"/uploads/kept.jpg"}},
	}))

	writeUpload(t, dir, "kept.jpg", 48*time.Hour)
	writeUpload(t, dir, "orphan-old.jpg", 48*time.Hour)
	writeUpload(t, dir, "orphan-fresh.jpg", time.Minute)

	removed, err := NewSweeper(store, dir, nil).SweepOnce()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(filepath.Join(dir, "kept.jpg"))
	assert.NoError(t, err, "referenced file must survive")

	_, err = os.Stat(filepath.Join(dir, "orphan-old.jpg"))
	assert.True(t, os.IsNotExist(err), "old orphan must be removed")

	_, err = os.Stat(filepath.Join(dir, "orphan-fresh.jpg"))
	assert.NoError(t, err, "fresh uploads are protected until saved")
}

func TestSweepOnceMissingUploadDir(t *testing.T) {
	store := portfolio.NewStore(filepath.Join(t.TempDir(), "portfolio.json"))

	removed, err := NewSweeper(store, filepath.Join(t.TempDir(), "nope"), nil).SweepOnce()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSweepSessions(t *testing.T) {
	store := portfolio.NewStore(filepath.Join(t.TempDir(), "portfolio.json"))
	sessions := session.NewMemoryStore(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		_, err := sessions.Create(context.Background())
		require.NoError(t, err)
	}

	time.Sleep(30 * time.Millisecond)

	sweeper := NewSweeper(store, t.TempDir(), sessions)
	assert.Equal(t, 3, sweeper.SweepSessions())
	assert.Equal(t, 0, sweeper.SweepSessions())
}

func TestSweepSessionsWithoutStore(t *testing.T) {
	store := portfolio.NewStore(filepath.Join(t.TempDir(), "portfolio.json"))

	assert.Zero(t, NewSweeper(store, t.TempDir(), nil).SweepSessions())
}

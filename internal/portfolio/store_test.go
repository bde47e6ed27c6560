package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "portfolio.json"))
}

func sampleProjects() []Project {
	return []Project{
		{
			ID:          1700000000001,
			Title:       "Launch film",
			Client:      "Acme",
			Category:    "Commercial",
			Description: "60s spot",
			ImageURLs:   []string{"/uploads/images-1-a.jpg", "/uploads/images-1-b.jpg"},
			VideoID:     "dQw4w9WgXcQ",
		},
		{
			ID:        1700000000000,
			Title:     "Backstage",
			Client:    "Acme",
			Category:  "Documentary",
			ImageURLs: []string{"/uploads/images-2-a.jpg"},
		},
	}
}

func TestLoadMissingFile(t *testing.T) {
	projects, err := testStore(t).Load()
	require.NoError(t, err)
	assert.Equal(t, []Project{}, projects, "missing file means empty portfolio, not an error")
}

func TestSaveAllLoadRoundTrip(t *testing.T) {
	store := testStore(t)
	want := sampleProjects()

	require.NoError(t, store.SaveAll(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveAllEmpty(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.SaveAll([]Project{}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []Project{}, got)
}

func TestSaveAllNilBecomesEmptyArray(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.SaveAll(nil))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []Project{}, got)
}

func TestSaveAllLastWriteWins(t *testing.T) {
	store := testStore(t)
	first := sampleProjects()
	second := []Project{{ID: 42, Title: "Only one", ImageURLs: []string{"/uploads/x.jpg"}}}

	require.NoError(t, store.SaveAll(first))
	require.NoError(t, store.SaveAll(second))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second, got, "later full-file save replaces the earlier one wholesale")
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

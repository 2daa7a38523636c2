package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/adventures/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_MissingFileMeansNoSnapshot(t *testing.T) {
	s := NewSnapshotStore(filepath.Join(t.TempDir(), "adventures.json"))

	snap, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestSnapshotStore_SaveLoadRoundTrip(t *testing.T) {
	s := NewSnapshotStore(filepath.Join(t.TempDir(), "adventures.json"))

	in := map[string][]models.Adventure{
		models.CategoryCountries: {
			{ID: "Japan", Name: "Japan", Visited: true, DateVisited: "2024-07-14", Memories: "sushi"},
			{ID: "Norway", Name: "Norway"},
		},
	}
	require.NoError(t, s.Save(in))

	out, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestSnapshotStore_SaveOverwrites(t *testing.T) {
	s := NewSnapshotStore(filepath.Join(t.TempDir(), "adventures.json"))

	require.NoError(t, s.Save(map[string][]models.Adventure{
		models.CategoryCountries: {{ID: "Japan", Name: "Japan", Visited: true}},
	}))
	require.NoError(t, s.Save(map[string][]models.Adventure{
		models.CategoryCountries: {{ID: "Japan", Name: "Japan"}},
	}))

	out, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, out[models.CategoryCountries][0].Visited)
}

func TestSnapshotStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adventures.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewSnapshotStore(path)
	_, ok, err := s.Load()
	assert.Error(t, err)
	assert.False(t, ok)
}

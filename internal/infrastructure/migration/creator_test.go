package migration

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/Olpagroup25/insa/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"Add pickup notes":     "add_pickup_notes",
		"add--pickup__notes":   "add_pickup_notes",
		"  leading and trail ": "leading_and_trail",
		"Índice_portal 2":      "ndice_portal_2",
		"!!!":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeName(in), in)
	}
}

func TestCreateMigration(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "migrations")

	first, err := CreateMigration(dir, "init schema")
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.Version)
	assert.Equal(t, filepath.Join(dir, "000001_init_schema.up.sql"), first.UpPath)
	assert.FileExists(t, first.UpPath)
	assert.FileExists(t, first.DownPath)

	second, err := CreateMigration(dir, "Add pickup notes")
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.Version)
	assert.Equal(t, "add_pickup_notes", second.Name)

	_, err = CreateMigration(dir, "???")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"000002_second.up.sql":     {},
		"000001_first.up.sql":      {},
		"000001_first.down.sql":    {},
		"README.md":                {},
		"notes_without_number.sql": {},
		"sub/000003_x.up.sql":      {},
	}

	list, err := ListMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, Migration{Version: 1, Name: "first", HasDown: true}, list[0])
	assert.Equal(t, Migration{Version: 2, Name: "second", HasDown: false}, list[1])
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	list, err := ListMigrations(os.DirFS(filepath.Join(t.TempDir(), "nope")))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	list, err := ListMigrations(migrations.FS)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for i, m := range list {
		assert.Equal(t, uint(i+1), m.Version, "versions must be contiguous")
		assert.True(t, m.HasDown, "migration %d has no down file", m.Version)
	}
}

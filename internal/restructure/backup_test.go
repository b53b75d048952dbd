package restructure

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
}

func TestCreateBackup(t *testing.T) {
	t.Run("snapshots the source tree", func(t *testing.T) {
		root := t.TempDir()
		writeFixtureFile(t, root, "src/a.txt", "alpha")
		writeFixtureFile(t, root, "src/nested/b.txt", "beta")

		backupDir, err := CreateBackup(root, false, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "src_backup_20260314_150926"), backupDir)

		content, err := os.ReadFile(filepath.Join(backupDir, "nested/b.txt"))
		require.NoError(t, err)
		assert.Equal(t, "beta", string(content))
	})

	t.Run("skipped in dry-run mode", func(t *testing.T) {
		root := t.TempDir()
		writeFixtureFile(t, root, "src/a.txt", "alpha")

		backupDir, err := CreateBackup(root, true, fixedNow)

		require.NoError(t, err)
		assert.Empty(t, backupDir)

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("fails when source tree is missing", func(t *testing.T) {
		_, err := CreateBackup(t.TempDir(), false, fixedNow)

		assert.Error(t, err)
	})
}

func TestRestoreFromBackup(t *testing.T) {
	t.Run("replaces the modified tree", func(t *testing.T) {
		root := t.TempDir()
		writeFixtureFile(t, root, "src/a.txt", "original")

		backupDir, err := CreateBackup(root, false, fixedNow)
		require.NoError(t, err)

		// Mangle the tree the way a half-finished migration would.
		require.NoError(t, os.WriteFile(filepath.Join(root, "src/a.txt"), []byte("mangled"), 0o644))
		writeFixtureFile(t, root, "src/stray.txt", "should disappear")

		require.NoError(t, RestoreFromBackup(root, backupDir))

		content, err := os.ReadFile(filepath.Join(root, "src/a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "original", string(content))

		assert.NoFileExists(t, filepath.Join(root, "src/stray.txt"))

		// The snapshot survives the restore.
		assert.DirExists(t, backupDir)
	})

	t.Run("fails when the backup is gone", func(t *testing.T) {
		root := t.TempDir()

		assert.Error(t, RestoreFromBackup(root, filepath.Join(root, "src_backup_nope")))
	})
}

func TestDiscardBackup(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "src/a.txt", "alpha")

	backupDir, err := CreateBackup(root, false, fixedNow)
	require.NoError(t, err)

	require.NoError(t, DiscardBackup(backupDir))
	assert.NoDirExists(t, backupDir)

	// Empty identifier (dry run) is a no-op.
	assert.NoError(t, DiscardBackup(""))
}

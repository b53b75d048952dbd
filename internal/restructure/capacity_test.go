package restructure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedStatfs(free uint64) statfsFunc {
	return func(string) (uint64, uint64, error) {
		return free * 2, free, nil
	}
}

func TestCheckDiskSpace(t *testing.T) {
	// 1000 bytes of tree; with backup the requirement is 1000 * 2 * 1.2.
	root := t.TempDir()
	writeFixtureFile(t, root, "src/data.bin", string(make([]byte, 1000)))

	t.Run("enough space with backup", func(t *testing.T) {
		assert.NoError(t, checkDiskSpace(root, true, fixedStatfs(2400)))
	})

	t.Run("too little space with backup", func(t *testing.T) {
		err := checkDiskSpace(root, true, fixedStatfs(2399))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient disk space")
	})

	t.Run("enough space without backup", func(t *testing.T) {
		assert.NoError(t, checkDiskSpace(root, false, fixedStatfs(1200)))
	})

	t.Run("too little space without backup", func(t *testing.T) {
		assert.Error(t, checkDiskSpace(root, false, fixedStatfs(1199)))
	})

	t.Run("statfs failure", func(t *testing.T) {
		broken := func(string) (uint64, uint64, error) {
			return 0, 0, errors.New("no such volume")
		}

		assert.Error(t, checkDiskSpace(root, true, broken))
	})
}

func TestCheckDiskSpaceOnlyCountsSourceTree(t *testing.T) {
	// Only src/ gets duplicated, so files elsewhere in the project root
	// (dependency trees, a backup retained from an earlier failed run) must
	// not inflate the requirement.
	root := t.TempDir()
	writeFixtureFile(t, root, "src/data.bin", string(make([]byte, 1000)))
	writeFixtureFile(t, root, "node_modules/blob.bin", string(make([]byte, 100000)))
	writeFixtureFile(t, root, "src_backup_20260101_000000/data.bin", string(make([]byte, 1000)))

	assert.NoError(t, checkDiskSpace(root, true, fixedStatfs(2400)))
	assert.Error(t, checkDiskSpace(root, true, fixedStatfs(2399)))
}

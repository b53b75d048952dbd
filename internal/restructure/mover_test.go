package restructure

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTargetDirs(t *testing.T) {
	t.Run("creates missing directories with ancestors", func(t *testing.T) {
		root := t.TempDir()
		tracker := NewTracker(&bytes.Buffer{})

		EnsureTargetDirs(root, []string{"src/types", "src/types/factions"}, false, tracker)

		assert.DirExists(t, filepath.Join(root, "src/types/factions"))
		assert.Empty(t, tracker.Errors())
	})

	t.Run("existing directories are a no-op", func(t *testing.T) {
		root := t.TempDir()
		makeFixtureDirs(t, root, "src/types")

		tracker := NewTracker(&bytes.Buffer{})
		EnsureTargetDirs(root, []string{"src/types"}, false, tracker)
		EnsureTargetDirs(root, []string{"src/types"}, false, tracker)

		assert.Empty(t, tracker.Errors())
	})

	t.Run("dry run creates nothing", func(t *testing.T) {
		root := t.TempDir()
		tracker := NewTracker(&bytes.Buffer{})

		EnsureTargetDirs(root, []string{"src/types"}, true, tracker)

		assert.NoDirExists(t, filepath.Join(root, "src/types"))
	})
}

func TestMoveFile(t *testing.T) {
	t.Run("moves and creates destination parent", func(t *testing.T) {
		root := t.TempDir()
		writeFixtureFile(t, root, "a/old.ts", "contents")

		tracker := NewTracker(&bytes.Buffer{})
		MoveFile(root, Move{"a/old.ts", "b/new.ts"}, false, tracker)

		assert.NoFileExists(t, filepath.Join(root, "a/old.ts"))

		content, err := os.ReadFile(filepath.Join(root, "b/new.ts"))
		require.NoError(t, err)
		assert.Equal(t, "contents", string(content))

		assert.Equal(t, 1, tracker.Completed())
		assert.Empty(t, tracker.Errors())
		assert.Empty(t, tracker.Warnings())
	})

	t.Run("missing source is a warning and a skip", func(t *testing.T) {
		root := t.TempDir()
		tracker := NewTracker(&bytes.Buffer{})

		MoveFile(root, Move{"a/old.ts", "b/new.ts"}, false, tracker)

		assert.Equal(t, 0, tracker.Completed())
		assert.Empty(t, tracker.Errors())

		require.Len(t, tracker.Warnings(), 1)
		assert.Contains(t, tracker.Warnings()[0], "Source file not found")
	})

	t.Run("failure is captured against the pair", func(t *testing.T) {
		root := t.TempDir()
		writeFixtureFile(t, root, "a/old.ts", "x")
		writeFixtureFile(t, root, "b", "file blocking the destination directory")

		tracker := NewTracker(&bytes.Buffer{})
		MoveFile(root, Move{"a/old.ts", "b/new.ts"}, false, tracker)

		assert.Equal(t, 0, tracker.Completed())
		require.NotEmpty(t, tracker.Errors())

		// The source is untouched after the failure.
		assert.FileExists(t, filepath.Join(root, "a/old.ts"))
	})

	t.Run("dry run counts but does not mutate", func(t *testing.T) {
		root := t.TempDir()
		writeFixtureFile(t, root, "a/old.ts", "contents")

		tracker := NewTracker(&bytes.Buffer{})
		MoveFile(root, Move{"a/old.ts", "b/new.ts"}, true, tracker)

		assert.Equal(t, 1, tracker.Completed())
		assert.FileExists(t, filepath.Join(root, "a/old.ts"))
		assert.NoFileExists(t, filepath.Join(root, "b/new.ts"))
		assert.NoDirExists(t, filepath.Join(root, "b"))
	})
}

func TestProcessFileMoves(t *testing.T) {
	t.Run("single ready move", func(t *testing.T) {
		root := t.TempDir()
		writeFixtureFile(t, root, "a/old.ts", "original contents")

		tracker := NewTracker(&bytes.Buffer{})
		ProcessFileMoves(root, []Move{{"a/old.ts", "b/new.ts"}}, false, tracker)

		assert.DirExists(t, filepath.Join(root, "b"))

		content, err := os.ReadFile(filepath.Join(root, "b/new.ts"))
		require.NoError(t, err)
		assert.Equal(t, "original contents", string(content))

		assert.NoFileExists(t, filepath.Join(root, "a/old.ts"))

		assert.Equal(t, 1, tracker.Total())
		assert.Equal(t, 1, tracker.Completed())
		assert.Empty(t, tracker.Errors())
		assert.Empty(t, tracker.Warnings())
	})

	t.Run("only actionable entries count toward the total", func(t *testing.T) {
		root := t.TempDir()
		writeFixtureFile(t, root, "a/ready.ts", "x")
		writeFixtureFile(t, root, "b/done.ts", "y")

		moves := []Move{
			{"a/ready.ts", "b/ready.ts"},   // actionable
			{"a/done.ts", "b/done.ts"},     // already migrated
			{"a/absent.ts", "b/absent.ts"}, // not created upstream yet
		}

		tracker := NewTracker(&bytes.Buffer{})
		ProcessFileMoves(root, moves, false, tracker)

		assert.Equal(t, 1, tracker.Total())
		assert.Equal(t, 1, tracker.Completed())
	})

	t.Run("one bad move does not stop the batch", func(t *testing.T) {
		root := t.TempDir()
		writeFixtureFile(t, root, "a/first.ts", "1")
		writeFixtureFile(t, root, "blocked", "file blocking a destination directory")
		writeFixtureFile(t, root, "a/second.ts", "2")

		moves := []Move{
			{"a/first.ts", "blocked/first.ts"},
			{"a/second.ts", "b/second.ts"},
		}

		tracker := NewTracker(&bytes.Buffer{})
		ProcessFileMoves(root, moves, false, tracker)

		require.Len(t, tracker.Errors(), 1)
		assert.FileExists(t, filepath.Join(root, "b/second.ts"))
		assert.Equal(t, 1, tracker.Completed())
	})
}

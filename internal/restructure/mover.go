package restructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/galaxysprawl/devtools/internal"
)

// EnsureTargetDirs creates the new directory skeleton. Existing directories
// are a no-op, so this is safe to run repeatedly. Individual creation
// failures are recorded and do not stop the loop.
func EnsureTargetDirs(root string, dirs []string, dryRun bool, tracker *Tracker) {
	log.Info("Creating new directory structure ...")

	for _, dir := range dirs {
		path := filepath.Join(root, dir)

		if info, err := os.Stat(path); err == nil && info.IsDir() {
			log.Info("Directory already exists", "dir", dir)
			continue
		}

		if dryRun {
			log.Info("[DRY RUN] Would create directory", "dir", dir)
			continue
		}

		if err := os.MkdirAll(path, 0o755); err != nil {
			tracker.AddError(fmt.Sprintf("Error creating directory %s: %v", dir, err))
			continue
		}

		log.Info("Created directory", "dir", dir)
	}
}

// MoveFile relocates one file, creating the destination's parent directory if
// needed. A missing source is a warning and a skip, not an error. A failure
// while actually moving is recorded against this pair only; the batch keeps
// going. In dry-run mode every step is logged, nothing is touched, and the
// move still counts as completed so the report totals match a real run.
func MoveFile(root string, move Move, dryRun bool, tracker *Tracker) {
	source := filepath.Join(root, move.From)
	destination := filepath.Join(root, move.To)

	if !pathExists(source) {
		tracker.AddWarning(fmt.Sprintf("Source file not found (skipped): %s", move.From))
		return
	}

	destinationDir := filepath.Dir(destination)

	if !isDir(destinationDir) {
		if dryRun {
			log.Info("[DRY RUN] Would create directory for destination", "dir", filepath.Dir(move.To))
		} else if err := os.MkdirAll(destinationDir, 0o755); err != nil {
			tracker.AddError(fmt.Sprintf("Error creating destination directory %s: %v", filepath.Dir(move.To), err))
			return
		} else {
			log.Info("Created directory for destination", "dir", filepath.Dir(move.To))
		}
	}

	if dryRun {
		log.Info("[DRY RUN] Would move", "from", move.From, "to", move.To)
		tracker.Increment()
		return
	}

	if err := relocate(source, destination); err != nil {
		tracker.AddError(fmt.Sprintf("Error moving %s to %s: %v", move.From, move.To, err))
		return
	}

	log.Info("Moved", "from", move.From, "to", move.To)
	tracker.Increment()
}

// ProcessFileMoves applies the explicit move table. Only actionable entries
// (source present, destination absent) count toward the progress total;
// everything else was either already migrated or is not yet created upstream.
func ProcessFileMoves(root string, moves []Move, dryRun bool, tracker *Tracker) {
	log.Info("Processing explicit file moves ...")

	var actionable []Move

	for _, move := range moves {
		if pathExists(filepath.Join(root, move.From)) && !pathExists(filepath.Join(root, move.To)) {
			actionable = append(actionable, move)
		}
	}

	tracker.AddTotal(len(actionable))

	for _, move := range actionable {
		MoveFile(root, move, dryRun, tracker)
	}

	if skipped := len(moves) - len(actionable); skipped > 0 {
		log.Info("Skipped files that were already moved or missing", "count", skipped)
	}
}

// relocate renames source to destination, falling back to copy-then-delete
// when the rename fails (moves across filesystems).
func relocate(source string, destination string) error {
	if err := os.Rename(source, destination); err == nil {
		return nil
	}

	info, err := os.Stat(source)

	if err != nil {
		return err
	}

	if err = internal.CopyFileContents(source, destination, info.Mode().Perm()); err != nil {
		return err
	}

	return os.Remove(source)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

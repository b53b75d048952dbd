package restructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ValidateEnvironment confirms the run starts from the project root by
// checking that every required directory exists under root. It is read-only;
// a failure aborts the run before anything else happens.
func ValidateEnvironment(root string) error {
	for _, dir := range RequiredDirs {
		info, err := os.Stat(filepath.Join(root, dir))

		if err != nil || !info.IsDir() {
			return fmt.Errorf("required directory not found: %s (are you in the project root?)", dir)
		}
	}

	return nil
}

// ValidateFileMoves classifies every entry in the move table and reports the
// result. It returns true when no structural conflicts were found. The result
// is informational: the caller logs it but does not abort on conflicts, which
// stay in the report for manual review.
func ValidateFileMoves(root string, moves []Move, tracker *Tracker) bool {
	conflictFree := true

	var alreadyMoved []Move
	var missingSources []string

	for _, move := range moves {
		sourceExists := pathExists(filepath.Join(root, move.From))
		destinationExists := pathExists(filepath.Join(root, move.To))

		switch {
		case destinationExists && !sourceExists:
			alreadyMoved = append(alreadyMoved, move)
			continue
		case !sourceExists && !destinationExists:
			missingSources = append(missingSources, move.From)
			continue
		case sourceExists && destinationExists:
			tracker.AddError(fmt.Sprintf("Both source and destination exist: %s -> %s", move.From, move.To))
			conflictFree = false
		}

		// A destination ancestor that is a plain file can never become a
		// parent directory.
		for parent := filepath.Dir(move.To); parent != "." && parent != string(filepath.Separator); parent = filepath.Dir(parent) {
			if info, err := os.Stat(filepath.Join(root, parent)); err == nil && !info.IsDir() {
				tracker.AddError(fmt.Sprintf("Parent path is a file: %s", parent))
				conflictFree = false
				break
			}
		}
	}

	if len(alreadyMoved) > 0 {
		log.Info("Files that appear to be already moved", "count", len(alreadyMoved))

		for _, move := range alreadyMoved {
			log.Info("Already moved", "from", move.From, "to", move.To)
		}
	}

	for _, source := range missingSources {
		tracker.AddWarning(fmt.Sprintf("Source file missing, needs to be created: %s", source))
	}

	return conflictFree
}

// CheckReviewFiles flags files on the manual-review list that still exist.
func CheckReviewFiles(root string, files []string, tracker *Tracker) {
	log.Info("Checking for files that need manual review ...")

	for _, file := range files {
		if pathExists(filepath.Join(root, file)) {
			tracker.AddWarning(fmt.Sprintf("Needs review: %s (consider removing or relocating this file)", file))
		} else {
			log.Info("Review file not found (OK)", "file", file)
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

package restructure

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/galaxysprawl/devtools/internal"
)

// BackupPrefix names snapshot directories: <prefix>_<timestamp>, created as
// siblings of the source tree.
const BackupPrefix = "src_backup"

const backupTimestampLayout = "20060102_150405"

// CreateBackup snapshots the entire source tree before any destructive step
// and returns the snapshot path. In dry-run mode no snapshot is taken and the
// returned path is empty. A non-empty snapshot is the run's only rollback
// mechanism, so a creation failure must abort the run before anything moves.
func CreateBackup(root string, dryRun bool, now func() time.Time) (string, error) {
	if dryRun {
		log.Info("Dry run, skipping backup")
		return "", nil
	}

	backupDir := filepath.Join(root, fmt.Sprintf("%s_%s", BackupPrefix, now().Format(backupTimestampLayout)))

	if err := internal.CopyTree(filepath.Join(root, "src"), backupDir); err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}

	log.Info("Created backup", "path", backupDir)

	return backupDir, nil
}

// RestoreFromBackup throws away the current (possibly half-migrated) source
// tree and replaces it with a copy of the snapshot. The snapshot itself is
// left in place so a failed restore still leaves something to recover from.
func RestoreFromBackup(root string, backupDir string) error {
	if !pathExists(backupDir) {
		return fmt.Errorf("restoring from backup: %s does not exist", backupDir)
	}

	if err := os.RemoveAll(filepath.Join(root, "src")); err != nil {
		return fmt.Errorf("restoring from backup: removing modified tree: %w", err)
	}

	if err := internal.CopyTree(backupDir, filepath.Join(root, "src")); err != nil {
		return fmt.Errorf("restoring from backup: %w", err)
	}

	log.Info("Restored from backup", "path", backupDir)

	return nil
}

// DiscardBackup deletes the snapshot after a fully successful run.
func DiscardBackup(backupDir string) error {
	if backupDir == "" {
		return nil
	}

	if err := os.RemoveAll(backupDir); err != nil {
		return fmt.Errorf("removing backup: %w", err)
	}

	log.Info("Removed backup directory", "path", backupDir)

	return nil
}

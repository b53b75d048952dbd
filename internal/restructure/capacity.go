package restructure

import (
	"fmt"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/galaxysprawl/devtools/internal"
)

// diskSpaceMargin pads the space estimate so a run that dies mid-move cannot
// exhaust the volume.
const diskSpaceMargin = 1.2

type statfsFunc func(path string) (total uint64, free uint64, err error)

// checkDiskSpace verifies the volume holding root has room for the run. Only
// the source tree counts toward the estimate: src/ is all the backup and the
// moves can ever duplicate, and the project root also holds things like
// node_modules and retained backups from earlier failed runs. The
// restructuring may duplicate the source tree once for the backup and again
// transiently while moving across filesystems, so the requirement is the tree
// size doubled when a backup will be made, plus a 20% margin.
func checkDiskSpace(root string, withBackup bool, statfs statfsFunc) error {
	treeSize, err := internal.CalculateDirSize(filepath.Join(root, "src"))

	if err != nil {
		return fmt.Errorf("checking disk space: sizing source tree: %w", err)
	}

	factor := 1.0

	if withBackup {
		factor = 2.0
	}

	required := uint64(float64(treeSize) * factor * diskSpaceMargin)

	_, free, err := statfs(root)

	if err != nil {
		return fmt.Errorf("checking disk space: %w", err)
	}

	if free < required {
		return fmt.Errorf("insufficient disk space: need %s, have %s free",
			internal.PrettyPrintBytes(required), internal.PrettyPrintBytes(free))
	}

	log.Info("Disk space check passed",
		"treeSize", internal.PrettyPrintBytes(uint64(treeSize)),
		"required", internal.PrettyPrintBytes(required),
		"free", internal.PrettyPrintBytes(free))

	return nil
}

func realStatfs(path string) (uint64, uint64, error) {
	var stat syscall.Statfs_t

	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}

	total := stat.Blocks * uint64(stat.Bsize)
	free := stat.Bavail * uint64(stat.Bsize)

	return total, free, nil
}

package restructure

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is where a run currently is in its lifecycle. A run walks
// Validating -> BackingUp -> Migrating -> Reporting -> Success, or jumps to
// RolledBack when something unexpected escapes the migration phase.
type Phase string

const (
	PhaseValidating Phase = "validating"
	PhaseBackingUp  Phase = "backing-up"
	PhaseMigrating  Phase = "migrating"
	PhaseReporting  Phase = "reporting"
	PhaseSuccess    Phase = "success"
	PhaseRolledBack Phase = "rolled-back"
)

// Runner executes one restructuring run to completion. It is single use: the
// Tracker it holds accumulates state for exactly one invocation.
type Runner struct {
	root      string
	dryRun    bool
	tracker   *Tracker
	statfs    statfsFunc
	now       func() time.Time
	migrate   func() error
	phase     Phase
	backupDir string
}

// NewRunner builds a Runner for the project rooted at root. With dryRun set,
// every step is logged and counted but the filesystem is never touched.
func NewRunner(root string, dryRun bool, tracker *Tracker) *Runner {
	runner := &Runner{
		root:    root,
		dryRun:  dryRun,
		tracker: tracker,
		statfs:  realStatfs,
		now:     time.Now,
	}

	runner.migrate = runner.migrateTree

	return runner
}

// Phase reports the phase the run last entered.
func (r *Runner) Phase() Phase {
	return r.phase
}

// BackupDir returns the snapshot path, empty for dry runs and runs that never
// got as far as the backup.
func (r *Runner) BackupDir() string {
	return r.backupDir
}

// Run executes the whole restructuring. Precondition failures (wrong
// directory, not enough disk, backup failure) abort before anything is
// mutated. An unexpected failure during migration restores the source tree
// from the snapshot and keeps the snapshot on disk. The caller prints the
// tracker's report afterwards regardless of the returned error.
func (r *Runner) Run() error {
	r.setPhase(PhaseValidating)

	if err := ValidateEnvironment(r.root); err != nil {
		return fmt.Errorf("environment validation failed: %w", err)
	}

	if ValidateFileMoves(r.root, FileMoves, r.tracker) {
		log.Info("Move-set validation found no conflicts")
	} else {
		log.Warn("Move-set validation found conflicts, see the final report")
	}

	if err := checkDiskSpace(r.root, !r.dryRun, r.statfs); err != nil {
		return err
	}

	r.setPhase(PhaseBackingUp)

	backupDir, err := CreateBackup(r.root, r.dryRun, r.now)

	if err != nil {
		return err
	}

	r.backupDir = backupDir

	r.setPhase(PhaseMigrating)

	if err = r.runMigration(); err != nil {
		r.tracker.AddError(fmt.Sprintf("An error occurred during restructuring: %v", err))
		r.rollback()
		return err
	}

	r.setPhase(PhaseReporting)

	if r.dryRun {
		log.Info("Dry run completed. No changes were made.")
	} else {
		log.Info("Restructuring completed successfully")

		if err = DiscardBackup(r.backupDir); err != nil {
			r.tracker.AddWarning(fmt.Sprintf("Could not remove backup directory: %v", err))
		}
	}

	r.setPhase(PhaseSuccess)

	return nil
}

// runMigration funnels both returned errors and panics from the migration
// phase into one error so a single recovery path handles them.
func (r *Runner) runMigration() (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("unexpected failure: %v", recovered)
		}
	}()

	return r.migrate()
}

func (r *Runner) migrateTree() error {
	EnsureTargetDirs(r.root, TargetDirs, r.dryRun, r.tracker)

	ProcessFileMoves(r.root, FileMoves, r.dryRun, r.tracker)

	if err := ReorganizeStyles(r.root, StyleBuckets, r.dryRun, r.tracker); err != nil {
		return err
	}

	CheckReviewFiles(r.root, ReviewFiles, r.tracker)

	return nil
}

func (r *Runner) rollback() {
	r.setPhase(PhaseRolledBack)

	if r.backupDir == "" || r.dryRun {
		return
	}

	log.Info("Attempting to restore from backup ...")

	if err := RestoreFromBackup(r.root, r.backupDir); err != nil {
		log.Error("Failed to restore, backup retained for manual recovery",
			"backup", r.backupDir, "error", err)
		return
	}

	log.Info("Successfully restored from backup", "backup", r.backupDir)
}

func (r *Runner) setPhase(phase Phase) {
	r.phase = phase
	log.Debug("Entering phase", "phase", phase)
}

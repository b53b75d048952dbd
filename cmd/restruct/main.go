package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/galaxysprawl/devtools/internal/restructure"
	"github.com/galaxysprawl/devtools/internal/version"
)

func main() {
	var dryRunParam = flag.Bool("dry-run", false, "simulate the restructuring without moving any files")
	var showVersion = flag.Bool("version", false, "show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `restruct - Source Tree Restructurer

Reorganize the project's src/ directory into the new layout: create the new
directory skeleton, move files from their old locations to their new ones,
and sort loose stylesheets under src/styles into effects/ui/components.

USAGE:
    restruct [-dry-run]

OPTIONS:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
EXAMPLES:
    # See what would happen without touching anything
    restruct -dry-run

    # Actually perform the restructuring
    restruct

NOTES:
    - Must be run from the project root (the directory containing src/)
    - The whole src/ tree is backed up before any move; the backup is removed
      after a successful run and kept if anything goes wrong
    - A final report lists every warning and error at the end of the run
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("restruct"))
		os.Exit(0)
	}

	tracker := restructure.NewTracker(os.Stdout)
	runner := restructure.NewRunner(".", *dryRunParam, tracker)

	err := runner.Run()

	fmt.Println(tracker.Report())

	if err != nil {
		log.Fatal("Restructuring failed", "error", err)
	}
}

package restructure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/galaxysprawl/devtools/internal"
)

// BucketRule routes a loose stylesheet into a bucket subdirectory when any of
// its keywords appears in the lowercased filename.
type BucketRule struct {
	Keywords []string
	Subdir   string
}

func (r BucketRule) matches(lowerName string) bool {
	for _, keyword := range r.Keywords {
		if internal.ContainsNameChecker(keyword)(lowerName) {
			return true
		}
	}

	return false
}

var cssNameChecker = internal.HasSuffixNameChecker(".css")

// classifyStyle returns the bucket subdirectory for a stylesheet filename.
// Rules are checked in order and the first match wins, so a name matching
// more than one group lands in the earlier bucket.
func classifyStyle(name string, rules []BucketRule) string {
	lowerName := strings.ToLower(name)

	for _, rule := range rules {
		if rule.matches(lowerName) {
			return rule.Subdir
		}
	}

	return DefaultStyleBucket
}

// ReorganizeStyles sorts the loose stylesheets sitting directly in the styles
// directory into their bucket subdirectories. The scan is not recursive:
// files already inside a bucket stay where they are.
func ReorganizeStyles(root string, rules []BucketRule, dryRun bool, tracker *Tracker) error {
	log.Info("Reorganizing CSS files ...")

	stylesRoot := filepath.Join(root, StylesDir)

	if !isDir(stylesRoot) {
		tracker.AddWarning(fmt.Sprintf("Styles folder not found: %s", StylesDir))
		return nil
	}

	entries, err := os.ReadDir(stylesRoot)

	if err != nil {
		return fmt.Errorf("reorganizing styles: %w", err)
	}

	var loose []string

	for _, entry := range entries {
		if !entry.IsDir() && cssNameChecker(strings.ToLower(entry.Name())) {
			loose = append(loose, entry.Name())
		}
	}

	tracker.AddTotal(len(loose))

	for _, name := range loose {
		bucket := classifyStyle(name, rules)

		move := Move{
			From: filepath.Join(StylesDir, name),
			To:   filepath.Join(StylesDir, bucket, name),
		}

		MoveFile(root, move, dryRun, tracker)
	}

	return nil
}

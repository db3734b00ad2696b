// Package cleanup removes source directories left empty by a move (spec
// §4.5): a move operation never leaves directory scaffolding behind once
// every file beneath it has been relocated.
package cleanup

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/franz/tidysic/internal/report"
	"github.com/franz/tidysic/internal/util"
)

// Run removes every directory under root that is empty after a move,
// deepest first, stopping at root itself (root is never removed). Run does
// not know the run mode: it removes every empty directory it finds, so the
// organize command calls it only after a move that was not a dry run.
func Run(root string, logger *report.EventLogger) {
	dirs := collectDirs(root)

	// Deepest paths first so a parent empties out only after its children
	// have already been considered.
	sort.Slice(dirs, func(i, j int) bool {
		return len(dirs[i]) > len(dirs[j])
	})

	for _, dir := range dirs {
		if dir == root {
			continue
		}
		removed, err := removeIfEmpty(dir)
		if err != nil {
			util.WarnLog("cleanup: %v", err)
			logger.LogCleanup(dir, err)
			continue
		}
		if removed {
			logger.LogCleanup(dir, nil)
		}
	}
}

func collectDirs(root string) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d == nil || !d.IsDir() {
			return nil
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs
}

func removeIfEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	if len(entries) != 0 {
		return false, nil
	}
	if err := os.Remove(dir); err != nil {
		return false, err
	}
	return true, nil
}
</content>

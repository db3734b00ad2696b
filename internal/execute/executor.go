// Package execute performs the filesystem operations planned by package
// plan: copy or move, one at a time, creating parent directories lazily
// and never overwriting an existing destination.
package execute

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/franz/tidysic/internal/plan"
	"github.com/franz/tidysic/internal/report"
	"github.com/franz/tidysic/internal/util"
)

// Progress is the subset of schollz/progressbar's API the executor needs;
// callers pass their own bar (or nil) so this package stays decoupled from
// any particular terminal UI.
type Progress interface {
	Add(int) error
}

// Config controls how operations are carried out.
type Config struct {
	DryRun   bool
	Logger   *report.EventLogger
	Progress Progress
}

// Result tallies the outcome of executing an operation list.
type Result struct {
	Succeeded int
	Failed    int
	Errors    []error
}

// Run executes every operation in order. A per-operation failure
// is recorded and execution continues with the remaining operations; the
// final Result.Failed count drives the caller's exit code.
func Run(ops []plan.Operation, cfg Config) Result {
	var result Result

	for _, op := range ops {
		err := execute(op, cfg)
		if err != nil {
			util.ErrorLog("%s -> %s: %v", op.Source, op.Target, err)
			result.Failed++
			result.Errors = append(result.Errors, err)
		} else {
			result.Succeeded++
		}
		if cfg.Logger != nil {
			cfg.Logger.LogOperation(op.Source, op.Target, actionName(op.Kind, cfg.DryRun), err)
		}
		if cfg.Progress != nil {
			cfg.Progress.Add(1)
		}
	}

	return result
}

func actionName(kind plan.OpKind, dryRun bool) string {
	name := "copy"
	if kind == plan.Move {
		name = "move"
	}
	if dryRun {
		return "would-" + name
	}
	return name
}

func execute(op plan.Operation, cfg Config) error {
	if cfg.DryRun {
		util.InfoLog("DRY-RUN: would %s %s -> %s", actionName(op.Kind, false), op.Source, op.Target)
		return nil
	}

	if _, err := os.Stat(op.Target); err == nil {
		return fmt.Errorf("destination already exists: %s", op.Target)
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(op.Target), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	switch op.Kind {
	case plan.Copy:
		if op.IsDirectory {
			return copyDir(op.Source, op.Target)
		}
		return copyFile(op.Source, op.Target)
	case plan.Move:
		return move(op)
	default:
		return fmt.Errorf("unknown operation kind")
	}
}

// move renames the source into place; if that fails because source and
// target are on different devices, it falls back to copy-then-remove.
func move(op plan.Operation) error {
	err := os.Rename(op.Source, op.Target)
	if err == nil {
		return nil
	}

	sameFS, fsErr := util.IsSameFilesystem(op.Source, filepath.Dir(op.Target))
	if fsErr == nil && sameFS {
		// Same filesystem but rename still failed: a real error.
		return fmt.Errorf("moving %s: %w", op.Source, err)
	}

	if op.IsDirectory {
		if err := copyDir(op.Source, op.Target); err != nil {
			return err
		}
		return os.RemoveAll(op.Source)
	}

	if err := copyFile(op.Source, op.Target); err != nil {
		return err
	}
	return os.Remove(op.Source)
}

// copyFile copies src to dest atomically: write to a ".part" sibling, then
// rename into place, mirroring a copy-via-temp-file pattern.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	tmp := dest + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("copying: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}

// copyDir recursively copies a promoted clutter subdirectory's contents,
// preserving file contents and names (metadata preservation is
// best-effort, not required).
func copyDir(src, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}
</content>

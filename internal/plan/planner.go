// Package plan turns a parse tree and a structure into a validated list of
// filesystem operations: one per tagged file, with destination
// collisions detected before anything touches disk.
package plan

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/franz/tidysic/internal/structure"
	"github.com/franz/tidysic/internal/template"
	"github.com/franz/tidysic/internal/tree"
)

// OpKind is the filesystem action an Operation performs.
type OpKind int

const (
	Copy OpKind = iota
	Move
)

// Operation is one planned filesystem action.
type Operation struct {
	Source      string
	Target      string
	Kind        OpKind
	IsDirectory bool
}

// CollisionError reports two or more operations sharing a destination
// path: fatal, and nothing runs.
type CollisionError struct {
	Target  string
	Sources []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf(
		"%d files would all be written to %s: %s (extend the structure with a more specific tag to disambiguate)",
		len(e.Sources), e.Target, strings.Join(e.Sources, ", "),
	)
}

// Plan walks every tagged file in tree, renders its destination path
// against structure, and returns the resulting operation list. It fails
// with a CollisionError if any two operations share a target, before any
// operation runs.
func Plan(root *tree.Node, targetRoot string, s structure.Structure, kind OpKind) ([]Operation, error) {
	var ops []Operation
	var renderErr error

	root.Walk(func(f tree.TaggedFile) {
		if renderErr != nil {
			return
		}

		path := targetRoot
		for _, step := range s.Folders {
			component, err := step.Template.Render(f.Tags)
			if err != nil {
				var emptyRender *template.EmptyRenderError
				if errors.As(err, &emptyRender) {
					component = fmt.Sprintf("Unknown %s", string(step.Tag))
				} else {
					renderErr = err
					return
				}
			}
			path = filepath.Join(path, sanitizeComponent(component))
		}

		var last string
		switch f.Kind {
		case tree.Audio:
			name, err := s.Track.Render(f.Tags)
			if err != nil {
				renderErr = err
				return
			}
			last = sanitizeComponent(name) + filepath.Ext(f.Path)
		default:
			last = filepath.Base(f.Path)
		}

		target := filepath.Join(path, last)
		ops = append(ops, Operation{
			Source:      f.Path,
			Target:      target,
			Kind:        kind,
			IsDirectory: f.IsDir,
		})
	})

	if renderErr != nil {
		return nil, renderErr
	}

	if err := detectCollisions(ops); err != nil {
		return nil, err
	}

	return ops, nil
}

// sanitizeComponent replaces the OS path separator inside a rendered path
// component with '-', so a single template output can't create accidental
// sub-levels. No other sanitation is performed.
func sanitizeComponent(s string) string {
	return strings.ReplaceAll(s, string(filepath.Separator), "-")
}

// detectCollisions groups operations by target path and fails if any
// group has more than one member.
func detectCollisions(ops []Operation) error {
	byTarget := make(map[string][]string, len(ops))
	order := make([]string, 0, len(ops))
	for _, op := range ops {
		if _, seen := byTarget[op.Target]; !seen {
			order = append(order, op.Target)
		}
		byTarget[op.Target] = append(byTarget[op.Target], op.Source)
	}

	for _, target := range order {
		sources := byTarget[target]
		if len(sources) > 1 {
			return &CollisionError{Target: target, Sources: sources}
		}
	}
	return nil
}
</content>

// Package structure parses and represents the structure file:
// an ordered list of folder steps plus one track template, governing the
// shape of the destination tree.
package structure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/franz/tidysic/internal/tags"
	"github.com/franz/tidysic/internal/template"
	"github.com/franz/tidysic/internal/util"
)

// Step is one folder level: the tag name (consulted only for the
// Unknown-fallback name) paired with its level template.
type Step struct {
	Tag      tags.Name
	Template template.Template
}

// Structure is the ordered folder steps plus the track template.
type Structure struct {
	Folders []Step
	Track   template.Template
}

// ParseError reports a malformed structure file.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse structure: %s", e.Reason)
}

// DefaultText is the built-in default structure's raw text,
// exposed so --dump-config can print exactly what Default() parses.
const DefaultText = `artist {{artist}}
album {({date}) }{{album}}
{{tracknumber:02d}. }{{title}}
`

// Default returns the built-in default structure.
func Default() Structure {
	s, err := Parse(DefaultText)
	if err != nil {
		panic(fmt.Sprintf("built-in default structure failed to parse: %v", err))
	}
	return s
}

// Parse compiles a structure file's text. One step per non-empty,
// non-comment line; the last line is the track template, every preceding
// line is "<tagname> <template>". Zero lines is a parse error.
func Parse(raw string) (Structure, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, trimmed)
	}

	if len(lines) == 0 {
		return Structure{}, &ParseError{Reason: "nothing to parse"}
	}

	var folders []Step
	for _, line := range lines[:len(lines)-1] {
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			return Structure{}, &ParseError{Reason: fmt.Sprintf("line %q: expected tag name followed by template", line)}
		}

		name, ok := tags.ParseName(parts[0])
		if !ok {
			return Structure{}, &ParseError{Reason: fmt.Sprintf("unknown tag %q", parts[0])}
		}

		tmpl, err := template.Parse(parts[1])
		if err != nil {
			return Structure{}, err
		}

		folders = append(folders, Step{Tag: name, Template: tmpl})
	}

	trackLine := lines[len(lines)-1]
	trackTemplate, err := template.Parse(trackLine)
	if err != nil {
		return Structure{}, err
	}

	return Structure{Folders: folders, Track: trackTemplate}, nil
}

// Resolve determines the structure to use: an explicit path, then
// "<target>/.tidysic", then the built-in default.
func Resolve(explicitPath, targetRoot string) (Structure, error) {
	path := explicitPath
	if path == "" {
		path = filepath.Join(targetRoot, ".tidysic")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if explicitPath == "" {
				return Default(), nil
			}
			return Structure{}, fmt.Errorf("reading structure file %s: %w", path, util.ErrNotFound)
		}
		return Structure{}, fmt.Errorf("reading structure file %s: %w", path, err)
	}

	return Parse(string(data))
}
</content>

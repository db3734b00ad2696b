// Package template implements the small structure-template DSL: a
// sequence of literal text and braced segments, each naming a tag, with
// an optional required-marker and numeric format spec.
package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/franz/tidysic/internal/tags"
)

// SyntaxError reports a malformed template string, carrying the column at
// which the violation was found.
type SyntaxError struct {
	Template string
	Column   int
	Reason   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error in %q (col %d): %s", e.Template, e.Column, e.Reason)
}

// UnknownTagError reports a segment naming a tag outside the closed set.
type UnknownTagError struct {
	Template string
	TagName  string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag %q in template %q", e.TagName, e.Template)
}

// EmptyRenderError reports a template that rendered to the empty string.
// The message intentionally suggests the `*` required-marker.
type EmptyRenderError struct {
	Template string
	Bag      tags.Bag
}

func (e *EmptyRenderError) Error() string {
	return fmt.Sprintf(
		"template %q rendered to an empty string; use the '*' required marker (e.g. {*{tag}}) to force a visible fallback",
		e.Template,
	)
}

// unit is either literal text or a compiled segment.
type unit struct {
	literal string // valid iff segment == nil
	segment *segment
}

type segment struct {
	required bool
	prefix   string
	tag      tags.Name
	format   string
	suffix   string
}

// Template is the compiled form of a template string.
type Template struct {
	raw   string
	units []unit
}

// Parse validates and compiles a template string. Brace depth never
// exceeds 2 and must be balanced; unknown tag names are rejected.
func Parse(raw string) (Template, error) {
	units, err := split(raw)
	if err != nil {
		return Template{}, err
	}
	return Template{raw: raw, units: units}, nil
}

// MustParse is like Parse but panics on error; useful for built-in
// constant templates (e.g. the default structure).
func MustParse(raw string) Template {
	t, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the original template text.
func (t Template) String() string {
	return t.raw
}

// split walks raw once, validating brace balance/depth and splitting it
// into alternating literal and segment units.
func split(raw string) ([]unit, error) {
	var units []unit
	var lit strings.Builder

	depth := 0
	var segBuf strings.Builder

	flushLiteral := func() {
		if lit.Len() > 0 {
			units = append(units, unit{literal: lit.String()})
			lit.Reset()
		}
	}

	for i, r := range raw {
		switch r {
		case '{':
			depth++
			if depth > 2 {
				return nil, &SyntaxError{Template: raw, Column: i, Reason: "too many opening brackets"}
			}
			if depth == 1 {
				flushLiteral()
				segBuf.Reset()
			} else {
				segBuf.WriteRune(r)
			}
		case '}':
			depth--
			if depth < 0 {
				return nil, &SyntaxError{Template: raw, Column: i, Reason: "too many closing brackets"}
			}
			if depth == 0 {
				seg, err := parseSegment(raw, segBuf.String())
				if err != nil {
					return nil, err
				}
				units = append(units, unit{segment: seg})
			} else {
				segBuf.WriteRune(r)
			}
		default:
			if depth == 0 {
				lit.WriteRune(r)
			} else {
				segBuf.WriteRune(r)
			}
		}
	}

	if depth != 0 {
		return nil, &SyntaxError{Template: raw, Column: len(raw), Reason: "mismatched brackets"}
	}
	flushLiteral()
	return units, nil
}

// parseSegment parses the content between a segment's outer braces
// (everything already stripped of the outer pair), e.g. for
// "{*{tracknumber:02d}. }" the inner content is
// "*{tracknumber:02d}. ".
func parseSegment(raw, inner string) (*segment, error) {
	body := inner
	required := false
	if strings.HasPrefix(body, "*") {
		required = true
		body = body[1:]
	}

	open := strings.IndexByte(body, '{')
	closeIdx := strings.IndexByte(body, '}')
	if open < 0 || closeIdx < 0 || closeIdx < open {
		return nil, &SyntaxError{Template: raw, Column: 0, Reason: "malformed segment"}
	}

	prefix := body[:open]
	tagAndFormat := body[open+1 : closeIdx]
	suffix := body[closeIdx+1:]

	tagName := tagAndFormat
	format := ""
	if idx := strings.IndexByte(tagAndFormat, ':'); idx >= 0 {
		tagName = tagAndFormat[:idx]
		format = tagAndFormat[idx+1:]
	}

	name, ok := tags.ParseName(tagName)
	if !ok {
		return nil, &UnknownTagError{Template: raw, TagName: tagName}
	}

	return &segment{
		required: required,
		prefix:   prefix,
		tag:      name,
		format:   format,
		suffix:   suffix,
	}, nil
}

// Render renders the template against a tag bag. If the resulting string
// is empty, Render returns an EmptyRenderError carrying the template text
// and bag.
func (t Template) Render(bag tags.Bag) (string, error) {
	var out strings.Builder
	for _, u := range t.units {
		if u.segment == nil {
			out.WriteString(u.literal)
			continue
		}
		rendered, err := u.segment.render(bag)
		if err != nil {
			return "", err
		}
		out.WriteString(rendered)
	}

	result := out.String()
	if result == "" {
		return "", &EmptyRenderError{Template: t.raw, Bag: bag}
	}
	return result, nil
}

func (s *segment) render(bag tags.Bag) (string, error) {
	value, present := bag.Get(s.tag)
	if !present {
		if s.required {
			return s.prefix + fmt.Sprintf("Unknown %s", string(s.tag)) + s.suffix, nil
		}
		return "", nil
	}

	formatted, err := s.format_(value)
	if err != nil {
		return "", err
	}
	return s.prefix + formatted + s.suffix, nil
}

// format_ applies the segment's format spec to a present, non-empty value.
func (s *segment) format_(value string) (string, error) {
	if tags.IsNumeric(s.tag) {
		n, err := strconv.Atoi(tags.NormalizeTrackNumber(value))
		if err != nil {
			// A malformed numeric tag value renders as-is rather than
			// failing the whole template; the source data is at fault,
			// not the template.
			return value, nil
		}
		if s.format == "" {
			return strconv.Itoa(n), nil
		}
		return formatInt(n, s.format), nil
	}

	if s.format == "" {
		return value, nil
	}
	return formatString(value, s.format), nil
}

// formatInt implements the numeric minilanguage's width/zero-pad subset,
// e.g. "02d" -> zero-padded to width 2.
func formatInt(n int, spec string) string {
	zeroPad := strings.HasPrefix(spec, "0")
	widthStr := strings.TrimSuffix(spec, "d")
	widthStr = strings.TrimPrefix(widthStr, "0")
	width, err := strconv.Atoi(widthStr)
	if err != nil || width <= 0 {
		return strconv.Itoa(n)
	}
	verb := "%d"
	if zeroPad {
		verb = fmt.Sprintf("%%0%dd", width)
	} else {
		verb = fmt.Sprintf("%%%dd", width)
	}
	return fmt.Sprintf(verb, n)
}

// formatString implements the textual format minilanguage's width subset:
// a spec that is a plain integer is a minimum field width, left-padded with
// spaces the way fmt treats "%Ns" (longer values are not truncated); any
// other spec leaves the value unchanged.
func formatString(value, spec string) string {
	width, err := strconv.Atoi(spec)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%*s", width, value)
}
</content>

package template

import (
	"errors"
	"testing"

	"github.com/franz/tidysic/internal/tags"
)

func bagWith(pairs ...string) tags.Bag {
	b := tags.NewBag()
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _ := tags.ParseName(pairs[i])
		b.Set(name, pairs[i+1])
	}
	return b
}

func TestRenderLiteralOnly(t *testing.T) {
	tmpl := MustParse("Music")
	out, err := tmpl.Render(tags.NewBag())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Music" {
		t.Errorf("got %q, want %q", out, "Music")
	}
}

func TestRenderRequiredPresent(t *testing.T) {
	tmpl := MustParse("{*{artist}}")
	out, err := tmpl.Render(bagWith("artist", "Boards of Canada"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Boards of Canada" {
		t.Errorf("got %q", out)
	}
}

func TestRenderRequiredAbsentFallsBackToUnknown(t *testing.T) {
	tmpl := MustParse("{*{artist}}")
	out, err := tmpl.Render(tags.NewBag())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Unknown artist" {
		t.Errorf("got %q, want %q", out, "Unknown artist")
	}
}

func TestRenderOptionalAbsentElidesWholeUnit(t *testing.T) {
	tmpl := MustParse("{({date}) }{{album}}")
	out, err := tmpl.Render(bagWith("album", "Geogaddi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Geogaddi" {
		t.Errorf("optional segment should elide entirely when absent, got %q", out)
	}
}

func TestRenderOptionalPresentKeepsPrefixSuffix(t *testing.T) {
	tmpl := MustParse("{({date}) }{{album}}")
	out, err := tmpl.Render(bagWith("date", "2002", "album", "Geogaddi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "(2002) Geogaddi" {
		t.Errorf("got %q", out)
	}
}

func TestRenderEmptyResultIsFatal(t *testing.T) {
	tmpl := MustParse("{{album}}")
	_, err := tmpl.Render(tags.NewBag())
	var emptyErr *EmptyRenderError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyRenderError, got %v", err)
	}
}

func TestRenderNumericFormatting(t *testing.T) {
	tmpl := MustParse("{{tracknumber:02d}. }{{title}}")
	out, err := tmpl.Render(bagWith("tracknumber", "3", "title", "Roygbiv"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "03. Roygbiv" {
		t.Errorf("got %q", out)
	}
}

func TestRenderNumericWithTotalIsNormalized(t *testing.T) {
	tmpl := MustParse("{{tracknumber:02d}}")
	out, err := tmpl.Render(bagWith("tracknumber", "3/12"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "03" {
		t.Errorf("got %q", out)
	}
}

func TestRenderMalformedNumericFallsBackToRawValue(t *testing.T) {
	tmpl := MustParse("{{tracknumber:02d}}")
	out, err := tmpl.Render(bagWith("tracknumber", "unknown"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "unknown" {
		t.Errorf("got %q", out)
	}
}

func TestParseUnknownTag(t *testing.T) {
	_, err := Parse("{{notatag}}")
	var unknownErr *UnknownTagError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownTagError, got %v", err)
	}
}

func TestParseUnbalancedBraces(t *testing.T) {
	_, err := Parse("{{artist}")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
}

func TestParseTooDeepNesting(t *testing.T) {
	_, err := Parse("{{{artist}}}")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
}

func TestStringReturnsOriginalText(t *testing.T) {
	raw := "{{artist}} - {{title}}"
	tmpl := MustParse(raw)
	if tmpl.String() != raw {
		t.Errorf("got %q, want %q", tmpl.String(), raw)
	}
}
</content>

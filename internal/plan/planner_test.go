package plan

import (
	"path/filepath"
	"testing"

	"github.com/franz/tidysic/internal/structure"
	"github.com/franz/tidysic/internal/tags"
	"github.com/franz/tidysic/internal/template"
	"github.com/franz/tidysic/internal/tree"
)

func bagWith(pairs ...string) tags.Bag {
	b := tags.NewBag()
	for i := 0; i+1 < len(pairs); i += 2 {
		name, _ := tags.ParseName(pairs[i])
		b.Set(name, pairs[i+1])
	}
	return b
}

func mustStep(tag tags.Name, raw string) structure.Step {
	return structure.Step{Tag: tag, Template: template.MustParse(raw)}
}

func leaf(path string, kind tree.Kind, isDir bool, bag tags.Bag) *tree.Node {
	n := &tree.Node{RootPath: filepath.Dir(path)}
	tf := tree.TaggedFile{Path: path, Tags: bag, Kind: kind, IsDir: isDir}
	if kind == tree.Audio {
		n.Audio = append(n.Audio, tf)
	} else {
		n.Clutter = append(n.Clutter, tf)
	}
	return n
}

func TestPlanBuildsDestinationPath(t *testing.T) {
	root := leaf("/src/a.mp3", tree.Audio, false, bagWith("artist", "Boards of Canada", "album", "Geogaddi", "title", "Alpha and Omega"))

	s := structure.Structure{
		Folders: []structure.Step{mustStep(tags.Artist, "{{artist}}")},
		Track:   template.MustParse("{{title}}"),
	}

	ops, err := Plan(root, "/dst", s, Copy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}

	want := filepath.Join("/dst", "Boards of Canada", "Alpha and Omega.mp3")
	if ops[0].Target != want {
		t.Errorf("got target %q, want %q", ops[0].Target, want)
	}
}

func TestPlanFolderStepFallsBackToUnknown(t *testing.T) {
	root := leaf("/src/a.mp3", tree.Audio, false, bagWith("title", "Alpha and Omega"))

	s := structure.Structure{
		Folders: []structure.Step{mustStep(tags.Artist, "{{artist}}")},
		Track:   template.MustParse("{{title}}"),
	}

	ops, err := Plan(root, "/dst", s, Copy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join("/dst", "Unknown artist", "Alpha and Omega.mp3")
	if ops[0].Target != want {
		t.Errorf("got target %q, want %q", ops[0].Target, want)
	}
}

func TestPlanTrackTemplateEmptyRenderIsFatal(t *testing.T) {
	root := leaf("/src/a.mp3", tree.Audio, false, bagWith("artist", "Boards of Canada"))

	s := structure.Structure{
		Folders: []structure.Step{mustStep(tags.Artist, "{{artist}}")},
		Track:   template.MustParse("{{title}}"),
	}

	_, err := Plan(root, "/dst", s, Copy)
	if err == nil {
		t.Fatal("expected an error when the track template renders empty")
	}
}

func TestPlanClutterUsesBaseName(t *testing.T) {
	root := leaf("/src/cover.jpg", tree.Clutter, false, tags.NewBag())

	s := structure.Structure{Track: template.MustParse("{{title}}")}

	ops, err := Plan(root, "/dst", s, Copy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join("/dst", "cover.jpg")
	if ops[0].Target != want {
		t.Errorf("got target %q, want %q", ops[0].Target, want)
	}
}

func TestPlanDetectsCollision(t *testing.T) {
	root := &tree.Node{RootPath: "/src"}
	root.Audio = []tree.TaggedFile{
		{Path: "/src/a.mp3", Kind: tree.Audio, Tags: bagWith("title", "Same")},
		{Path: "/src/b.mp3", Kind: tree.Audio, Tags: bagWith("title", "Same")},
	}

	s := structure.Structure{Track: template.MustParse("{{title}}")}

	_, err := Plan(root, "/dst", s, Copy)
	if err == nil {
		t.Fatal("expected a collision error")
	}
	if _, ok := err.(*CollisionError); !ok {
		t.Fatalf("expected *CollisionError, got %T", err)
	}
}

func TestSanitizeComponentReplacesSeparator(t *testing.T) {
	got := sanitizeComponent("AC" + string(filepath.Separator) + "DC")
	if got != "AC-DC" {
		t.Errorf("got %q, want %q", got, "AC-DC")
	}
}
</content>

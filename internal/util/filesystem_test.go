package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsSameFilesystem(t *testing.T) {
	tempDir := t.TempDir()

	a := filepath.Join(tempDir, "a")
	b := filepath.Join(tempDir, "b")
	if err := os.Mkdir(a, 0o755); err != nil {
		t.Fatalf("mkdir a: %v", err)
	}
	if err := os.Mkdir(b, 0o755); err != nil {
		t.Fatalf("mkdir b: %v", err)
	}

	same, err := IsSameFilesystem(a, b)
	if err != nil {
		t.Fatalf("IsSameFilesystem: %v", err)
	}
	if !same {
		t.Errorf("expected sibling directories under the same temp dir to share a filesystem")
	}
}

func TestIsSameFilesystemMissingPath(t *testing.T) {
	tempDir := t.TempDir()
	if _, err := IsSameFilesystem(filepath.Join(tempDir, "missing"), tempDir); err == nil {
		t.Errorf("expected an error when one path does not exist")
	}
}
</content>

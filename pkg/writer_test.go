package updateversions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteIfChanged(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "AssemblyInfo.cs")

	original := []byte("[assembly: AssemblyVersion(\"1.2.0.0\")]\r\n")
	if err := os.WriteFile(path, original, 0644); err != nil {
		t.Fatal(err)
	}

	updated := []byte("[assembly: AssemblyVersion(\"1.2.7434.0\")]\r\n")
	wrote, err := WriteIfChanged(path, original, updated)
	if err != nil {
		t.Fatalf("WriteIfChanged failed: %v", err)
	}
	if !wrote {
		t.Error("expected a write to happen")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(updated) {
		t.Errorf("file content = %q, expected %q", got, updated)
	}
}

func TestWriteIfChangedSkipsIdenticalContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "AssemblyInfo.cs")

	content := []byte("[assembly: AssemblyVersion(\"1.2.3.4\")]\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	wrote, err := WriteIfChanged(path, content, append([]byte(nil), content...))
	if err != nil {
		t.Fatalf("WriteIfChanged failed: %v", err)
	}
	if wrote {
		t.Error("expected no write for identical content")
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("modification time changed on a no-op write")
	}
}

func TestWriteIfChangedPreservesBOMAndNewlines(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "AssemblyInfo.cs")

	original := []byte("\xEF\xBB\xBF[assembly: AssemblyVersion(\"1.2.0.0\")]\r\n")
	if err := os.WriteFile(path, original, 0644); err != nil {
		t.Fatal(err)
	}

	m := NewMatcher(BothAttributes)
	updated := Substitute(original, m.Find(original), Replacements{Build: intPtr(7434)})
	if _, err := WriteIfChanged(path, original, updated); err != nil {
		t.Fatalf("WriteIfChanged failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "\xEF\xBB\xBF[assembly: AssemblyVersion(\"1.2.7434.0\")]\r\n"
	if string(got) != want {
		t.Errorf("file content = %q, expected %q", got, want)
	}
}

func TestWriteIfChangedStatFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "AssemblyInfo.cs")

	wrote, err := WriteIfChanged(path, []byte("old"), []byte("new"))
	if wrote {
		t.Error("no write should be reported when the target cannot be statted")
	}
	if err == nil {
		t.Fatal("expected an error for an unstattable path")
	}
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a *FileError, got %T: %v", err, err)
	}
	if fe.Op != "write" || fe.Path != path {
		t.Errorf("unexpected error details: op=%q path=%q", fe.Op, fe.Path)
	}
}

func TestWriteIfChangedPreservesMode(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "AssemblyInfo.cs")

	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteIfChanged(path, []byte("old"), []byte("new")); err != nil {
		t.Fatalf("WriteIfChanged failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %v, expected 0600", perm)
	}
}

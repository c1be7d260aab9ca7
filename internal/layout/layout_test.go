package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppm-tools/ppm/internal/writer"
	"github.com/spf13/afero"
)

func TestCreateNested(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/work"
	if err := fs.MkdirAll(root, DirPerm); err != nil {
		t.Fatal(err)
	}

	l, err := Create(fs, root, "myapp", true)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	want := []string{
		"/work/myapp",
		"/work/myapp/myapp",
		"/work/myapp/myapp/src",
		"/work/myapp/myapp/src/include",
	}
	if diff := cmp.Diff(want, l.Created); diff != "" {
		t.Errorf("Created mismatch (-want +got):\n%s", diff)
	}
	for _, dir := range want {
		assertDir(t, fs, dir)
	}

	if l.WorkspaceDir != "/work/myapp" {
		t.Errorf("WorkspaceDir = %q", l.WorkspaceDir)
	}
	if l.IncludeDir != "/work/myapp/myapp/src/include" {
		t.Errorf("IncludeDir = %q", l.IncludeDir)
	}
}

func TestCreateFlat(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/ws"
	if err := fs.MkdirAll(root, DirPerm); err != nil {
		t.Fatal(err)
	}

	l, err := Create(fs, root, "core", false)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	want := []string{"/ws/core", "/ws/core/src", "/ws/core/src/include"}
	if diff := cmp.Diff(want, l.Created); diff != "" {
		t.Errorf("Created mismatch (-want +got):\n%s", diff)
	}
	if l.WorkspaceDir != root {
		t.Errorf("WorkspaceDir = %q, want %q", l.WorkspaceDir, root)
	}
	if exists, _ := afero.DirExists(fs, "/ws/core/core"); exists {
		t.Error("flat layout should not nest the project directory")
	}
}

func TestCreateIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := Create(fs, "/w", "p", true); err != nil {
		t.Fatalf("first Create() error: %v", err)
	}

	l, err := Create(fs, "/w", "p", true)
	if err != nil {
		t.Fatalf("second Create() error: %v", err)
	}
	if len(l.Created) != 0 {
		t.Errorf("second run created %v, want nothing", l.Created)
	}
	if len(l.Existing) != 4 {
		t.Errorf("Existing = %v, want 4 entries", l.Existing)
	}
}

func TestCreateFileInTheWay(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/w/p", []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Create(fs, "/w", "p", false)
	var ioErr *writer.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *writer.IOError", err)
	}
	if ioErr.Path != "/w/p" {
		t.Errorf("IOError.Path = %q", ioErr.Path)
	}
}

func TestCreatePartialFailureKeepsPrefix(t *testing.T) {
	root := t.TempDir()
	fs := afero.NewOsFs()

	// A file where src/ should go stops the build after the project dir.
	projectDir := filepath.Join(root, "p")
	if err := os.Mkdir(projectDir, DirPerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, SrcDir), nil, 0644); err != nil {
		t.Fatal(err)
	}

	l, err := Create(fs, root, "p", false)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(l.Existing) != 1 || l.Existing[0] != projectDir {
		t.Errorf("Existing = %v, want [%s]", l.Existing, projectDir)
	}
	assertDir(t, fs, projectDir)
}

func TestPlan(t *testing.T) {
	l := Plan(".", "demo", false)
	if l.ProjectDir != "demo" || l.SrcDir != filepath.Join("demo", "src") {
		t.Errorf("unexpected plan: %+v", l)
	}
}

func assertDir(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	ok, err := afero.DirExists(fs, path)
	if err != nil || !ok {
		t.Errorf("directory %s does not exist (err=%v)", path, err)
	}
}

// Package layout creates the fixed directory tree of a generated project.
//
// A new workspace nests the project one level inside a workspace directory
// of the same name:
//
//	<name>/
//	<name>/<name>/
//	<name>/<name>/src/
//	<name>/<name>/src/include/
//
// A project appended to an existing workspace lives directly under the
// working root:
//
//	<name>/
//	<name>/src/
//	<name>/src/include/
package layout

import (
	"os"
	"path/filepath"

	"github.com/ppm-tools/ppm/internal/writer"
	"github.com/spf13/afero"
)

// DirPerm is the permission used for generated directories.
const DirPerm os.FileMode = 0755

// Directory names inside a project.
const (
	SrcDir     = "src"
	IncludeDir = "include"
)

// Layout holds the resolved paths of a project tree.
type Layout struct {
	WorkspaceDir string // Directory holding premake5.lua
	ProjectDir   string
	SrcDir       string
	IncludeDir   string

	// Created lists the directories this call made, in creation order.
	Created []string
	// Existing lists directories that were already present.
	Existing []string
}

// Plan resolves the layout paths without touching the filesystem.
func Plan(root, name string, nested bool) *Layout {
	l := &Layout{WorkspaceDir: root}
	if nested {
		l.WorkspaceDir = filepath.Join(root, name)
	}
	l.ProjectDir = filepath.Join(l.WorkspaceDir, name)
	l.SrcDir = filepath.Join(l.ProjectDir, SrcDir)
	l.IncludeDir = filepath.Join(l.SrcDir, IncludeDir)
	return l
}

// Dirs returns the directories Create makes, parents first.
func (l *Layout) Dirs(nested bool) []string {
	var dirs []string
	if nested {
		dirs = append(dirs, l.WorkspaceDir)
	}
	return append(dirs, l.ProjectDir, l.SrcDir, l.IncludeDir)
}

// Create builds the layout for name under root. Directories that already
// exist are left alone. There is no rollback: on failure the directories
// made so far remain and the error names the path that failed.
func Create(fs afero.Fs, root, name string, nested bool) (*Layout, error) {
	l := Plan(root, name, nested)
	for _, dir := range l.Dirs(nested) {
		info, err := fs.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return l, &writer.IOError{Op: "mkdir", Path: dir, Err: os.ErrExist}
			}
			l.Existing = append(l.Existing, dir)
			continue
		}
		if err := fs.Mkdir(dir, DirPerm); err != nil {
			return l, &writer.IOError{Op: "mkdir", Path: dir, Err: err}
		}
		l.Created = append(l.Created, dir)
	}
	return l, nil
}

// Package writer creates and appends generated files through an afero
// filesystem, optionally prefixing the precompiled-header include line.
package writer

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// StandardInclude is written before content when requested.
const StandardInclude = `#include "pch.h"`

// FilePerm is the permission used for generated files.
const FilePerm os.FileMode = 0644

// Mode selects how the target file is opened.
type Mode int

const (
	Overwrite Mode = iota
	Append
)

func (m Mode) String() string {
	switch m {
	case Overwrite:
		return "overwrite"
	case Append:
		return "append"
	default:
		return "unknown"
	}
}

func (m Mode) flags() int {
	if m == Append {
		return os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	return os.O_CREATE | os.O_WRONLY | os.O_TRUNC
}

// IOError records a failed filesystem operation on a path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// WriteFile writes content to path. With withInclude the standard include
// line and a newline go first, and content follows on the same handle. The
// handle is closed on every path; a failed close is reported like a failed
// write.
func WriteFile(fs afero.Fs, path, content string, mode Mode, withInclude bool) (err error) {
	f, err := fs.OpenFile(path, mode.flags(), FilePerm)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if withInclude {
		if _, err := f.WriteString(StandardInclude + "\n"); err != nil {
			return &IOError{Op: "write", Path: path, Err: err}
		}
	}
	if _, err := f.WriteString(content); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

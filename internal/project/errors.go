package project

import "errors"

var (
	// ErrUnsupportedKind is returned by ParseKind for unknown aliases.
	ErrUnsupportedKind = errors.New("unsupported project type")
	// ErrInvalidName is returned by ValidateName.
	ErrInvalidName = errors.New("invalid project name")
	// ErrNoWorkspace means add was run outside a workspace.
	ErrNoWorkspace = errors.New("no " + WorkspaceFile + " in the current directory")
	// ErrProjectExists means the workspace already has a stanza for the name.
	ErrProjectExists = errors.New("project already exists in " + WorkspaceFile)
)

// PreconditionError is reported when add cannot run for a project.
type PreconditionError struct {
	Name string
	Err  error
}

func (e *PreconditionError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// Package project generates premake5 workspaces and projects.
//
// InitProject creates a workspace directory holding premake5.lua and one
// project; AppendProject adds a project stanza and source tree to the
// workspace in the working root. Build-script templates and default sources
// are embedded and filled with ordered token substitution.
package project

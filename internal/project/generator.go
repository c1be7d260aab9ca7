package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/ppm-tools/ppm/internal/branding"
	"github.com/ppm-tools/ppm/internal/layout"
	"github.com/ppm-tools/ppm/internal/report"
	"github.com/ppm-tools/ppm/internal/vcs"
	"github.com/ppm-tools/ppm/internal/writer"
	"github.com/spf13/afero"
)

// WorkspaceFile is the premake build script at the workspace root.
const WorkspaceFile = "premake5.lua"

// Options holds the settings that vary between users.
type Options struct {
	Architecture   string
	CommitMessage  string
	AttributionURL string
}

// DefaultOptions returns the built-in settings.
func DefaultOptions() Options {
	return Options{
		Architecture:   "x64",
		CommitMessage:  vcs.DefaultCommitMessage,
		AttributionURL: branding.ProjectURL(),
	}
}

// Generator writes workspaces and projects to a filesystem.
type Generator struct {
	fs       afero.Fs
	root     string
	opts     Options
	vcs      vcs.Initializer
	reporter *report.Reporter
}

// Option configures a Generator.
type Option func(*Generator)

// WithRoot sets the working root; the default is ".".
func WithRoot(root string) Option {
	return func(g *Generator) { g.root = root }
}

// WithOptions replaces the default settings. Empty fields keep their defaults.
func WithOptions(o Options) Option {
	return func(g *Generator) {
		if o.Architecture != "" {
			g.opts.Architecture = o.Architecture
		}
		if o.CommitMessage != "" {
			g.opts.CommitMessage = o.CommitMessage
		}
		if o.AttributionURL != "" {
			g.opts.AttributionURL = o.AttributionURL
		}
	}
}

// WithVCS sets the repository initializer used by InitProject.
func WithVCS(v vcs.Initializer) Option {
	return func(g *Generator) { g.vcs = v }
}

// WithReporter sets where progress is printed.
func WithReporter(r *report.Reporter) Option {
	return func(g *Generator) { g.reporter = r }
}

// New creates a Generator on fs.
func New(fs afero.Fs, opts ...Option) *Generator {
	g := &Generator{
		fs:       fs,
		root:     ".",
		opts:     DefaultOptions(),
		vcs:      vcs.Git{},
		reporter: report.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result holds the outcome of a generation.
type Result struct {
	WorkspaceDir string
	ProjectDir   string
	Files        []string // Paths written, relative to the working root
	Warnings     []string
}

// InitProject creates a new workspace directory named after the project,
// writes premake5.lua with the workspace header and the project stanza, and
// fills in the default sources. With cfg.InitRepo it also writes .gitignore
// and README.md and commits everything with git.
//
// A layout failure stops generation. Later failures are collected so that
// independent files are still written; the joined error is returned.
func (g *Generator) InitProject(ctx context.Context, cfg *Config) (*Result, error) {
	l, err := g.createLayout(cfg.Name, true)
	res := g.newResult(l)
	if err != nil {
		return res, err
	}

	var errs []error
	wsPath := filepath.Join(l.WorkspaceDir, WorkspaceFile)
	header := RenderWorkspace(cfg.Name, g.opts.Architecture)
	if err := g.write(res, wsPath, header, writer.Overwrite, false); err != nil {
		errs = append(errs, err)
	} else if err := g.write(res, wsPath, RenderProject(cfg), writer.Append, false); err != nil {
		errs = append(errs, err)
	}

	errs = append(errs, g.writeStubs(res, cfg, l)...)

	if cfg.InitRepo {
		errs = append(errs, g.writeRepoFiles(res, cfg, l)...)
		if len(errs) > 0 {
			g.warn(res, "skipping git initialization: generation failed")
		} else {
			g.initRepo(ctx, res, l.WorkspaceDir)
		}
	}

	return res, errors.Join(errs...)
}

// AppendProject adds a project to the workspace in the working root. The
// workspace file must exist and must not already declare the project;
// otherwise a *PreconditionError is returned and nothing is written.
// cfg.InitRepo is ignored.
func (g *Generator) AppendProject(ctx context.Context, cfg *Config) (*Result, error) {
	wsPath := filepath.Join(g.root, WorkspaceFile)
	if err := g.checkWorkspace(wsPath, cfg.Name); err != nil {
		var pre *PreconditionError
		if !errors.As(err, &pre) {
			g.reporter.Error(err)
		}
		return nil, err
	}

	l, err := g.createLayout(cfg.Name, false)
	res := g.newResult(l)
	if err != nil {
		return res, err
	}

	var errs []error
	if err := g.write(res, wsPath, RenderProject(cfg), writer.Append, false); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, g.writeStubs(res, cfg, l)...)

	return res, errors.Join(errs...)
}

func (g *Generator) checkWorkspace(wsPath, name string) error {
	data, err := afero.ReadFile(g.fs, wsPath)
	if err != nil {
		exists, statErr := afero.Exists(g.fs, wsPath)
		if statErr == nil && !exists {
			return &PreconditionError{Name: name, Err: ErrNoWorkspace}
		}
		return &writer.IOError{Op: "read", Path: wsPath, Err: err}
	}
	if declaresProject(string(data), name) {
		return &PreconditionError{Name: name, Err: ErrProjectExists}
	}
	return nil
}

// projectDecl matches a project "<name>" or project("<name>") line.
var projectDecl = regexp.MustCompile(`(?m)^\s*project\s*\(?\s*"([^"\n]*)"`)

// declaresProject reports whether script contains a project line for name.
func declaresProject(script, name string) bool {
	for _, m := range projectDecl.FindAllStringSubmatch(script, -1) {
		if m[1] == name {
			return true
		}
	}
	return false
}

func (g *Generator) createLayout(name string, nested bool) (*layout.Layout, error) {
	l, err := layout.Create(g.fs, g.root, name, nested)
	for _, dir := range l.Existing {
		g.reporter.Skipped(dir)
	}
	for _, dir := range l.Created {
		g.reporter.Created(dir)
	}
	if err != nil {
		g.reporter.Error(err)
		return l, fmt.Errorf("creating layout for %s: %w", name, err)
	}
	return l, nil
}

func (g *Generator) writeStubs(res *Result, cfg *Config, l *layout.Layout) []error {
	var errs []error
	for _, s := range stubsFor(cfg) {
		path := filepath.Join(l.ProjectDir, s.dest)
		withInclude := s.include && cfg.UsePCH
		if err := g.write(res, path, mustAsset(s.asset), writer.Overwrite, withInclude); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (g *Generator) writeRepoFiles(res *Result, cfg *Config, l *layout.Layout) []error {
	var errs []error
	ignorePath := filepath.Join(l.WorkspaceDir, GitignoreFile)
	if err := g.write(res, ignorePath, mustAsset("stubs/repo/gitignore"), writer.Overwrite, false); err != nil {
		errs = append(errs, err)
	}
	readmePath := filepath.Join(l.WorkspaceDir, ReadmeFile)
	readme := RenderReadme(cfg.Name, g.opts.AttributionURL)
	if err := g.write(res, readmePath, readme, writer.Overwrite, false); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// initRepo runs the git boundary. Its failure is a warning, never an error.
func (g *Generator) initRepo(ctx context.Context, res *Result, dir string) {
	g.reporter.Infof("Initializing git repository in %s", dir)
	if err := g.vcs.InitRepo(ctx, dir, g.opts.CommitMessage); err != nil {
		g.warn(res, "git initialization failed: %v", err)
		return
	}
	g.reporter.Created(filepath.Join(dir, ".git"))
}

func (g *Generator) write(res *Result, path, content string, mode writer.Mode, withInclude bool) error {
	existed, _ := afero.Exists(g.fs, path)
	if err := writer.WriteFile(g.fs, path, content, mode, withInclude); err != nil {
		g.reporter.Error(err)
		return err
	}
	if mode == writer.Append && existed {
		g.reporter.Appended(path)
	} else {
		g.reporter.Created(path)
	}
	res.addFile(g.root, path)
	return nil
}

func (g *Generator) warn(res *Result, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.reporter.Warnf("%s", msg)
	res.Warnings = append(res.Warnings, msg)
}

func (g *Generator) newResult(l *layout.Layout) *Result {
	return &Result{WorkspaceDir: l.WorkspaceDir, ProjectDir: l.ProjectDir}
}

func (r *Result) addFile(root, path string) {
	if rel, err := filepath.Rel(root, path); err == nil {
		path = rel
	}
	for _, f := range r.Files {
		if f == path {
			return
		}
	}
	r.Files = append(r.Files, path)
}

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ppm-tools/ppm/internal/config"
	"github.com/ppm-tools/ppm/internal/project"
	"github.com/ppm-tools/ppm/internal/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	pchDescription = "Add a precompiled header (pch.h, pch.cpp) and enable it in the build"
	gitDescription = "Initialize a git repository with .gitignore, README.md and a first commit (init only)"
)

// runGenerate parses `<kind> <name> [-pch] [-git]` and runs init or add.
// Usage problems are reported before anything touches the filesystem.
func runGenerate(cmd *cobra.Command, raw []string, appendProject bool) error {
	r := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	p := newSubParser(cmd, raw)
	p.RegisterCommand("-pch", switchPCH, pchDescription)
	p.RegisterCommand("-git", switchGit, gitDescription)
	p.ConsumeFlags()

	if !p.RequireParams(3) {
		printUsage(p)
		return &usageError{msg: fmt.Sprintf("%s needs a kind and a name", cmd.Name())}
	}

	kind, err := project.ParseKind(p.GetParam(2))
	if err != nil {
		r.Error(err)
		printUsage(p)
		return &usageError{msg: err.Error()}
	}

	cfg, err := project.NewConfig(p.GetParam(3), kind, p.HasCommand(switchPCH), p.HasCommand(switchGit))
	if err != nil {
		r.Error(err)
		return &usageError{msg: err.Error()}
	}

	// Settings come from the config file and PPM_* variables as well as
	// config set, and end up inside premake5.lua.
	if err := validateSettings(); err != nil {
		r.Error(err)
		return &usageError{msg: err.Error()}
	}

	settings := config.Current()
	gen := project.New(afero.NewOsFs(),
		project.WithReporter(r),
		project.WithOptions(project.Options{
			Architecture:   settings.Architecture,
			CommitMessage:  settings.CommitMessage,
			AttributionURL: settings.AttributionURL,
		}),
	)

	var res *project.Result
	if appendProject {
		res, err = gen.AppendProject(cmd.Context(), cfg)
	} else {
		res, err = gen.InitProject(cmd.Context(), cfg)
	}

	var pre *project.PreconditionError
	if errors.As(err, &pre) {
		// Reported, but the command still succeeds.
		r.Error(pre)
		return nil
	}
	if res != nil {
		printResult(cmd.OutOrStdout(), cfg, res)
	}
	if err != nil {
		// Each failure was printed by the reporter as it happened.
		return &reportedError{err: fmt.Errorf("generating %s: %w", cfg.Name, err)}
	}
	return nil
}

func validateSettings() error {
	result, err := config.ValidateCurrent()
	if err != nil {
		return fmt.Errorf("validating settings: %w", err)
	}
	if !result.Valid {
		return &config.InvalidError{Issues: result.Issues}
	}
	return nil
}

func printResult(w io.Writer, cfg *project.Config, res *project.Result) {
	fmt.Fprintf(w, "\nCreated %s project %s in %s/\n", cfg.Kind, cfg.Name, res.ProjectDir)
	for _, f := range res.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warn := range res.Warnings {
			fmt.Fprintf(w, "  - %s\n", warn)
		}
	}
}

package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/Masterminds/semver/v3"
	"github.com/ppm-tools/ppm/internal/args"
	"github.com/ppm-tools/ppm/internal/branding"
	"github.com/ppm-tools/ppm/internal/config"
	"github.com/ppm-tools/ppm/internal/project"
	"github.com/ppm-tools/ppm/internal/report"
	"github.com/spf13/cobra"
)

var (
	buildVersion *semver.Version
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// Switch names queried through args.Parser.
const (
	switchVersion = "version"
	switchHelp    = "help"
	switchPCH     = "pch"
	switchGit     = "git"
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds premake5 C++ workspaces: a build script, a source tree
and starter files for console apps, static and shared libraries, and
wxWidgets GUI applications.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runRoot,
}

// usageError is returned once usage has been printed. Execute exits
// non-zero without printing it again.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// reportedError wraps a failure whose details were already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// alreadyReported reports whether err needs no further output.
func alreadyReported(err error) bool {
	var ue *usageError
	var re *reportedError
	return errors.As(err, &ue) || errors.As(err, &re)
}

// Execute runs the root command with build info injected via ldflags. A
// version that is not valid semver falls back to the embedded one.
func Execute(version, commit, date string) error {
	buildVersion = branding.Version()
	if v, err := semver.NewVersion(version); err == nil {
		buildVersion = v
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	err := rootCmd.Execute()
	if err != nil && !alreadyReported(err) {
		report.New(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).Error(err)
	}
	return err
}

func runRoot(cmd *cobra.Command, raw []string) error {
	p := newParser(cmd, raw)
	p.RegisterCommand("-v", switchVersion, "Print the version and build info")
	p.RegisterCommand("-version", switchVersion, "Print the version and build info")
	p.RegisterCommand("-help", switchHelp, "Print this help")
	p.ConsumeFlags()

	switch {
	case p.HasCommand(switchVersion):
		printVersion(cmd.OutOrStdout())
		return nil
	case p.HasCommand(switchHelp):
		printHelp(cmd, p)
		return nil
	}

	printUsage(p)
	if p.RequireParams(1) {
		return &usageError{msg: fmt.Sprintf("unknown command %q", p.GetParam(1))}
	}
	return &usageError{msg: "no command given"}
}

// newParser builds an args.Parser over the program name and raw.
func newParser(cmd *cobra.Command, raw []string) *args.Parser {
	argv := append([]string{branding.CLIName()}, raw...)
	p := args.New(argv)
	p.SetOutput(cmd.OutOrStdout())
	return p
}

// newSubParser builds a parser whose params follow the program/subcommand
// convention: param 1 is the subcommand, 2 the kind, 3 the name.
func newSubParser(cmd *cobra.Command, raw []string) *args.Parser {
	return newParser(cmd, append([]string{cmd.Name()}, raw...))
}

func printUsage(p *args.Parser) {
	p.PrintUsage("init/add", "<"+project.KindAliases()+">", "<name>")
}

func printHelp(cmd *cobra.Command, p *args.Parser) {
	w := cmd.OutOrStdout()
	printUsage(p)

	fmt.Fprintln(w, "\nProject kinds:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range project.Kinds {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", k.Alias(), k, k.Description())
	}
	tw.Flush()

	fmt.Fprintln(w, "\nFlags:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %s\t%s\n", "-pch", pchDescription)
	fmt.Fprintf(tw, "  %s\t%s\n", "-git", gitDescription)
	for _, f := range p.Flags() {
		fmt.Fprintf(tw, "  %s\t%s\n", f.Alias, f.Description)
	}
	tw.Flush()

	fmt.Fprintln(w, "\nOther commands:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range cmd.Root().Commands() {
		if c.Name() == "init" || c.Name() == "add" || c.Hidden {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\n", c.Name(), c.Short)
	}
	tw.Flush()
}

package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <app|lib|dll|win> <name> [-pch] [-git]",
	Short: "Create a new workspace with one project",
	Long: `Create a new premake5 workspace in ./<name>/ holding a single project.

The workspace directory gets premake5.lua (workspace header plus the project
stanza) and the project lives in <name>/<name>/src with default sources for
its kind. -pch adds a precompiled header; -git also writes .gitignore and
README.md and makes a first commit.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, false)
	},
}

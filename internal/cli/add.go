package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <app|lib|dll|win> <name> [-pch]",
	Short: "Add a project to the workspace in the current directory",
	Long: `Append a project stanza to ./premake5.lua and create ./<name>/src with
default sources for its kind. The workspace file must already exist and must
not declare a project with the same name. -git is accepted but has no effect.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args, true)
	},
}

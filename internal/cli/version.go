package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ppm-tools/ppm/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, currentVersion())
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"name":    branding.CLIName(),
				"version": currentVersion(),
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		printVersion(out)
		return nil
	},
}

// currentVersion returns the version without the leading "v".
func currentVersion() string {
	if buildVersion == nil {
		buildVersion = branding.Version()
	}
	return buildVersion.String()
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s, v%s\n", branding.CLIName(), currentVersion())
	fmt.Fprintf(w, "commit: %s, built: %s\n", buildCommit, buildDate)
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

func newVersionCmd(env env) *cobra.Command {
	var short bool
	var asJSON bool
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(env.stdout(), buildVersion)
				return nil
			}
			if asJSON {
				info := map[string]string{
					"version": buildVersion,
					"commit":  buildCommit,
					"date":    buildDate,
				}
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return wrapErrorwithSourceLocf(err, "marshaling version info")
				}
				fmt.Fprintln(env.stdout(), string(out))
				return nil
			}
			fmt.Fprintf(env.stdout(), "rust_ldflags version %s (commit: %s, built: %s)\n",
				buildVersion, buildCommit, buildDate)
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&asJSON, "json", false, "Print version info as JSON")
	return versionCmd
}

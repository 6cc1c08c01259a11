package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// newFilterCmd exposes the ldflags filter on its own, reading a raw
// link command line from an argsfile or stdin. Lets a build system
// reprocess a captured argsfile without spawning rustc again.
func newFilterCmd(env env) *cobra.Command {
	var format string
	filterCmd := &cobra.Command{
		Use:   "filter [argsfile]",
		Short: "Filter a captured linker command line without running rustc",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 0 || args[0] == "-" {
				data, err = io.ReadAll(env.stdin())
				if err != nil {
					return wrapErrorwithSourceLocf(err, "failed to read stdin")
				}
			} else {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return newUserErrorf("failed to read argsfile %s: %s", args[0], err)
				}
			}
			ldflags := calcLdflags(strings.Split(string(data), "\n"))
			return writeLdflags(env.stdout(), ldflags, format)
		},
	}
	filterCmd.Flags().StringVar(&format, "format", "lines", "Output format: lines, json or yaml")
	return filterCmd
}

func writeLdflags(w io.Writer, ldflags []string, format string) error {
	switch format {
	case "lines":
		if _, err := io.WriteString(w, strings.Join(ldflags, "\n")); err != nil {
			return wrapErrorwithSourceLocf(err, "failed to write ldflags")
		}
	case "json":
		if err := json.NewEncoder(w).Encode(ldflags); err != nil {
			return wrapErrorwithSourceLocf(err, "failed to encode ldflags")
		}
	case "yaml":
		data, err := yaml.Marshal(ldflags)
		if err != nil {
			return wrapErrorwithSourceLocf(err, "failed to encode ldflags")
		}
		if _, err := w.Write(data); err != nil {
			return wrapErrorwithSourceLocf(err, "failed to write ldflags")
		}
	default:
		return newUserErrorf("unknown format %q, expected lines, json or yaml", format)
	}
	return nil
}

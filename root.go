package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the orchestrator command. Flag parsing is disabled
// on the root so that every argument, flag-looking ones included,
// reaches rustc untouched; subcommands are still dispatched when named
// as the first argument.
func newRootCmd(env env, cfg *config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rust_ldflags [rustc arguments...]",
		Short: "Report the linker flags a rustc invocation would use",
		Long: `rust_ldflags runs rustc with itself injected as the linker, captures
the arguments rustc passes to that linker and prints the subset a
downstream link step still needs, one flag per line.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode, err := callRustc(env, cfg, args)
			if err != nil {
				printCmdError(env.stderr(), err)
			}
			if exitCode != 0 {
				return newExitCodeError(exitCode)
			}
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(newFilterCmd(env))
	rootCmd.AddCommand(newDoctorCmd(env, cfg))
	rootCmd.AddCommand(newVersionCmd(env))
	return rootCmd
}

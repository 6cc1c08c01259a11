// rust_ldflags wraps a rustc invocation to report the linker flags it
// would use. It runs rustc with itself injected as the linker via
// `-Clinker=`, captures the arguments rustc passes to that fake linker
// and prints the filtered result, one flag per line.
//
// The same binary serves both sides of the trick: when ARGSFILE_PATH
// is present in the environment the process is the fake linker and
// only records its arguments (capture role), otherwise it is the
// orchestrator that spawns rustc.
//
// Version information can be injected at build time:
//
//	go build -ldflags "-X main.buildVersion=1.0.0 -X main.buildCommit=$(git rev-parse --short HEAD)"
package main

import (
	"errors"
	"log"
	"os"
)

func main() {
	// The capture role must stay free of config loading and CLI
	// parsing: rustc invokes it with arbitrary linker arguments, and
	// any extra failure mode here would turn into a confusing rustc
	// error.
	if os.Getenv(argsfileEnvKey) != "" {
		os.Exit(captureMain())
	}

	env, err := newProcessEnv()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := loadConfig(env)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(runMain(env, cfg, os.Args[1:]))
}

func runMain(env env, cfg *config, args []string) int {
	rootCmd := newRootCmd(env, cfg)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		var exitErr exitCodeError
		if errors.As(err, &exitErr) {
			// Message already printed, only the code is left to forward.
			return exitErr.code
		}
		printCmdError(env.stderr(), err)
		return 1
	}
	return 0
}

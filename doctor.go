package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
)

func newDoctorCmd(env env, cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that rustc and the environment are usable",
		Long:  `Run diagnostic checks on the rustc toolchain and the wrapper's own environment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorChecks(env, cfg)
		},
	}
}

// runDoctorChecks verifies everything an orchestrator run needs: a
// reachable rustc of a supported version, a resolvable linker entry
// point, a writable temp dir and, when configured, a schema-clean
// config file.
func runDoctorChecks(env env, cfg *config) error {
	w := env.stdout()
	failed := 0
	ok := func(format string, v ...interface{}) {
		fmt.Fprintf(w, "  [ OK ] "+format+"\n", v...)
	}
	fail := func(format string, v ...interface{}) {
		failed++
		fmt.Fprintf(w, "  [FAIL] "+format+"\n", v...)
	}

	fmt.Fprintln(w, "rustc check:")
	rustcPath, err := exec.LookPath(cfg.rustc)
	if err != nil {
		fail("%s not found: %s", cfg.rustc, err)
	} else {
		ok("%s found at %s", cfg.rustc, rustcPath)
		version, err := queryRustcVersion(env, cfg)
		if err != nil {
			fail("version probe failed: %s", err)
		} else if err := checkRustcVersion(version); err != nil {
			fail("%s", err)
		} else {
			ok("rustc %s (minimum %s)", version, minRustcVersion)
		}
	}

	fmt.Fprintln(w, "wrapper check:")
	wrapperExe, err := wrapperExecutable()
	if err != nil {
		fail("cannot resolve own executable: %s", err)
	} else {
		ok("linker entry point %s", linkerEntryPoint(runtime.GOOS, wrapperExe))
	}
	argsfile, err := os.CreateTemp("", "rust_ldflags_args")
	if err != nil {
		fail("cannot create a temp argsfile: %s", err)
	} else {
		argsfile.Close()
		os.Remove(argsfile.Name())
		ok("temp argsfile writable")
	}

	fmt.Fprintln(w, "config check:")
	if cfg.configFile == "" {
		ok("no config file, using defaults")
	} else {
		data, err := os.ReadFile(cfg.configFile)
		if err != nil {
			fail("cannot read %s: %s", cfg.configFile, err)
		} else if err := validateConfigBytes(data); err != nil {
			fail("%s: %s", cfg.configFile, err)
		} else {
			ok("%s matches the schema", cfg.configFile)
		}
	}

	if failed > 0 {
		return newUserErrorf("%d check(s) failed", failed)
	}
	return nil
}

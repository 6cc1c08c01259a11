package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// callRustc spawns rustc with this executable injected as its linker,
// reads back the link arguments captured by the self-invocation and
// prints the filtered ldflags to stdout. The returned exit code is
// rustc's own when rustc failed.
func callRustc(env env, cfg *config, rustcArgs []string) (exitCode int, err error) {
	wrapperExe, err := wrapperExecutable()
	if err != nil {
		return 1, err
	}

	// The argsfile carries the captured link command line from the
	// capture invocation back to this process. CreateTemp picks a
	// collision-free name, so parallel builds stay isolated.
	argsfile, err := os.CreateTemp("", "rust_ldflags_args")
	if err != nil {
		return 1, wrapErrorwithSourceLocf(err, "failed to create argsfile")
	}
	argsfilePath := argsfile.Name()
	defer func() {
		argsfile.Close()
		os.Remove(argsfilePath)
	}()

	rustcCmd := calcRustcCommand(env, cfg, runtime.GOOS, wrapperExe, argsfilePath, rustcArgs)
	runEnv := env
	if cfg.verbose {
		runEnv = &printingEnv{env}
	}
	if err := runEnv.run(rustcCmd, env.stdin(), env.stdout(), env.stderr()); err != nil {
		if code, ok := getExitCode(err); ok {
			return code, newUserErrorf("rustc exited with status %d", code)
		}
		return 1, wrapSubprocessErrorWithSourceLoc(rustcCmd, err)
	}

	data, err := os.ReadFile(argsfilePath)
	if err != nil {
		return 1, wrapErrorwithSourceLocf(err, "failed to read argsfile %s", argsfilePath)
	}

	ldflags := calcLdflags(strings.Split(string(data), "\n"))
	if _, err := io.WriteString(env.stdout(), strings.Join(ldflags, "\n")); err != nil {
		return 1, wrapErrorwithSourceLocf(err, "failed to write ldflags")
	}
	return 0, nil
}

// calcRustcCommand builds the rustc invocation: the linker override and
// `-Csave-temps` first, then configured extra flags, then the user
// arguments verbatim. `-Csave-temps` keeps the intermediate objects
// alive that the captured link line refers to.
func calcRustcCommand(env env, cfg *config, goos string, wrapperExe string, argsfilePath string, rustcArgs []string) *command {
	builder := newCommandBuilder(env, cfg, rustcArgs)
	builder.addPreUserArgs("-Clinker="+linkerEntryPoint(goos, wrapperExe), "-Csave-temps")
	builder.addPreUserArgs(cfg.rustcFlags...)
	builder.updateEnv(argsfileEnvKey + "=" + argsfilePath)
	builder.updateEnv(selfInvokeEnvUpdates(goos, wrapperExe, env.getenv("PATH"))...)
	return builder.build()
}

func printCmdError(writer io.Writer, err error) {
	if _, ok := err.(userError); ok {
		fmt.Fprintf(writer, "%s\n", err)
	} else {
		fmt.Fprintf(writer,
			"Internal error. Please report to https://github.com/qdwudongyu/rust_ldflags/issues.\n%s\n",
			err)
	}
}

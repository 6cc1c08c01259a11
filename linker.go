package main

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// argsfileEnvKey selects the capture role: when set, the process is
	// being invoked by rustc as its linker and writes its arguments to
	// the named file instead of linking.
	argsfileEnvKey = "ARGSFILE_PATH"

	// linkerExeEnvKey names this executable for the Windows .cmd shim,
	// which re-invokes it without relying on PATH resolution.
	linkerExeEnvKey = "RUST_LDFLAGS_EXE"
)

// wrapperExecutable resolves the running binary, following symlinks so
// the path handed to rustc via `-Clinker=` stays valid regardless of how
// the wrapper itself was invoked.
func wrapperExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", wrapErrorwithSourceLocf(err, "failed to resolve own executable")
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", wrapErrorwithSourceLocf(err, "failed to resolve symlinks for %s", exe)
	}
	return resolved, nil
}

// linkerEntryPoint returns the path rustc should invoke as its linker:
// the companion .cmd shim next to the executable on Windows, the
// executable itself elsewhere.
func linkerEntryPoint(goos string, wrapperExe string) string {
	if goos == "windows" {
		return strings.TrimSuffix(wrapperExe, filepath.Ext(wrapperExe)) + ".cmd"
	}
	return wrapperExe
}

// selfInvokeEnvUpdates prepares the subprocess environment so that the
// capture role re-invocation resolves back to this same binary: on
// Windows the .cmd shim reads the executable path from the environment,
// elsewhere the executable's directory is prepended to PATH.
func selfInvokeEnvUpdates(goos string, wrapperExe string, pathVal string) []string {
	if goos == "windows" {
		return []string{linkerExeEnvKey + "=" + wrapperExe}
	}
	return []string{"PATH=" + filepath.Dir(wrapperExe) + string(os.PathListSeparator) + pathVal}
}

package main

import (
	"bytes"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Oldest rustc whose save-temps artifacts carry the names the ldflags
// filter understands.
const minRustcVersion = "1.26.0"

// queryRustcVersion runs `rustc --version` and parses the reported
// version.
func queryRustcVersion(env env, cfg *config) (*semver.Version, error) {
	stdoutBuffer := &bytes.Buffer{}
	stderrBuffer := &bytes.Buffer{}
	versionCmd := &command{Path: cfg.rustc, Args: []string{"--version"}}
	if err := env.run(versionCmd, nil, stdoutBuffer, stderrBuffer); err != nil {
		return nil, wrapSubprocessErrorWithSourceLoc(versionCmd, err)
	}
	return parseRustcVersion(stdoutBuffer.String())
}

// parseRustcVersion extracts the semantic version from `rustc --version`
// output, e.g. "rustc 1.74.0 (79e9716c9 2023-11-13)".
func parseRustcVersion(out string) (*semver.Version, error) {
	fields := strings.Fields(out)
	if len(fields) < 2 || fields[0] != "rustc" {
		return nil, newUserErrorf("unexpected rustc version output: %q", out)
	}
	version, err := semver.NewVersion(strings.TrimPrefix(fields[1], "v"))
	if err != nil {
		return nil, newUserErrorf("failed to parse rustc version %q: %s", fields[1], err)
	}
	return version, nil
}

func checkRustcVersion(version *semver.Version) error {
	if version.LessThan(semver.MustParse(minRustcVersion)) {
		return newUserErrorf("rustc %s is too old, need at least %s", version, minRustcVersion)
	}
	return nil
}

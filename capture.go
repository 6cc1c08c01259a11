package main

import (
	"fmt"
	"os"
	"strings"
)

// captureLinkArgs is the linker side of the wrapper. rustc invokes this
// executable in place of a real linker; instead of linking we write the
// argument list to the argsfile and exit.
func captureLinkArgs(argsfilePath string, args []string) error {
	if err := os.WriteFile(argsfilePath, []byte(strings.Join(args, "\n")), 0644); err != nil {
		return wrapErrorwithSourceLocf(err, "failed to write argsfile %s", argsfilePath)
	}
	return nil
}

func captureMain() int {
	if err := captureLinkArgs(os.Getenv(argsfileEnvKey), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

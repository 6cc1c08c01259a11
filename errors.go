package main

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// userError is an error caused by the way the wrapper was invoked or
// configured. It is printed without a source location.
type userError struct {
	err string
}

var _ error = userError{}

func (err userError) Error() string {
	return err.err
}

func newUserErrorf(format string, v ...interface{}) userError {
	return userError{err: fmt.Sprintf(format, v...)}
}

// exitCodeError carries a process exit status through the command layer.
// The message has already been printed by the time it is created.
type exitCodeError struct {
	code int
}

var _ error = exitCodeError{}

func (err exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", err.code)
}

func newExitCodeError(code int) exitCodeError {
	return exitCodeError{code: code}
}

func newErrorwithSourceLocf(format string, v ...interface{}) error {
	return newErrorwithSourceLocfInternal(2, format, v...)
}

func wrapErrorwithSourceLocf(err error, format string, v ...interface{}) error {
	return newErrorwithSourceLocfInternal(2, "%s: %s", fmt.Sprintf(format, v...), err.Error())
}

func wrapSubprocessErrorWithSourceLoc(cmd *command, subprocessErr error) error {
	if subprocessErr == nil {
		return nil
	}
	return newErrorwithSourceLocfInternal(2, "failed to execute %s %s: %s", cmd.Path, strings.Join(cmd.Args, " "), subprocessErr)
}

// Based on the implementation of log.Output
func newErrorwithSourceLocfInternal(skip int, format string, v ...interface{}) error {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "???"
		line = 0
	}
	if lastSlash := strings.LastIndex(file, "/"); lastSlash >= 0 {
		file = file[lastSlash+1:]
	}

	return fmt.Errorf("%s:%d: %s", file, line, fmt.Sprintf(format, v...))
}

// getExitCode reports the exit status of a finished subprocess. It
// returns ok == false for errors that happened before or instead of an
// exit, e.g. a binary that could not be spawned.
func getExitCode(err error) (exitCode int, ok bool) {
	if err == nil {
		return 0, true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, true
		}
	}
	return 0, false
}

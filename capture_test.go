package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCaptureWritesArgsNewlineJoined(t *testing.T) {
	argsfilePath := filepath.Join(t.TempDir(), "argsfile")
	if err := captureLinkArgs(argsfilePath, []string{"-L", "/usr/lib", "main.o"}); err != nil {
		t.Fatalf("capture failed: %s", err)
	}
	data, err := os.ReadFile(argsfilePath)
	if err != nil {
		t.Fatalf("failed to read back argsfile: %s", err)
	}
	if string(data) != "-L\n/usr/lib\nmain.o" {
		t.Errorf("argsfile content incorrect. Got: %q", string(data))
	}
}

func TestCaptureWritesNoTrailingNewline(t *testing.T) {
	argsfilePath := filepath.Join(t.TempDir(), "argsfile")
	if err := captureLinkArgs(argsfilePath, []string{"main.o"}); err != nil {
		t.Fatalf("capture failed: %s", err)
	}
	data, err := os.ReadFile(argsfilePath)
	if err != nil {
		t.Fatalf("failed to read back argsfile: %s", err)
	}
	if string(data) != "main.o" {
		t.Errorf("argsfile content incorrect. Got: %q", string(data))
	}
}

func TestCaptureWithoutArgsWritesEmptyFile(t *testing.T) {
	argsfilePath := filepath.Join(t.TempDir(), "argsfile")
	if err := captureLinkArgs(argsfilePath, nil); err != nil {
		t.Fatalf("capture failed: %s", err)
	}
	data, err := os.ReadFile(argsfilePath)
	if err != nil {
		t.Fatalf("failed to read back argsfile: %s", err)
	}
	if len(data) != 0 {
		t.Errorf("argsfile content incorrect. Got: %q", string(data))
	}
}

func TestCaptureFailsOnUnwritableArgsfile(t *testing.T) {
	argsfilePath := filepath.Join(t.TempDir(), "missing", "argsfile")
	err := captureLinkArgs(argsfilePath, []string{"main.o"})
	if err == nil {
		t.Fatal("expected an error writing to a nonexistent directory")
	}
}

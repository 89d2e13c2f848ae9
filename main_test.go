package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

// runApp runs the CLI with exit and stderr captured.
func runApp(t *testing.T, args ...string) (exitCode int, stderr string, err error) {
	t.Helper()

	var errBuf bytes.Buffer
	exitCode = -1

	oldExiter, oldErrWriter := cli.OsExiter, cli.ErrWriter
	cli.OsExiter = func(code int) { exitCode = code }
	cli.ErrWriter = &errBuf
	t.Cleanup(func() {
		cli.OsExiter = oldExiter
		cli.ErrWriter = oldErrWriter
	})

	app := newApp()
	app.ErrWriter = &errBuf
	app.Writer = &bytes.Buffer{}

	err = app.Run(append([]string{"wordfreq"}, args...))
	return exitCode, errBuf.String(), err
}

func TestApp_WrongArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "one argument", args: []string{"in"}},
		{name: "three arguments", args: []string{"in", "out", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stderr, err := runApp(t, tt.args...)

			var exitErr cli.ExitCoder
			if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
				t.Fatalf("Run() error = %v, want exit code 1", err)
			}
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr, "Usage:") {
				t.Errorf("stderr = %q, want usage message", stderr)
			}
		})
	}
}

func TestApp_Run(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "a.html"), []byte("cat cat dog"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	code, _, err := runApp(t, "--run-id", "cli", "--quiet", in, out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if code != -1 {
		t.Errorf("exit called with %d, want no exit", code)
	}

	data, err := os.ReadFile(filepath.Join(out, "consolidated_frequency.txt"))
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if string(data) != "\xEF\xBB\xBFcat: 2\ndog: 1\n" {
		t.Errorf("frequency report = %q", data)
	}
	if _, err := os.Stat(filepath.Join(out, "timing_cli.txt")); err != nil {
		t.Errorf("timing log missing: %v", err)
	}
}

func TestApp_FileErrorsStillSucceed(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing")

	code, stderr, err := runApp(t, t.TempDir(), out)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if code != -1 {
		t.Errorf("exit called with %d, want no exit", code)
	}
	if !strings.Contains(stderr, "Failed to save report") {
		t.Errorf("stderr = %q, want report diagnostic", stderr)
	}
}

package acceptance_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// runNanoid executes the nanoid binary in dir and returns stdout, stderr and
// exit code. HOME points at dir so no user configuration leaks in.
func runNanoid(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(nanoidBinary, args...)
	cmd.Dir = dir
	cmd.Env = append(cleanEnv(), "HOME="+dir)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run nanoid: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), exitCode
}

// runNanoidSuccess runs nanoid expecting exit code 0 and returns stdout.
func runNanoidSuccess(t *testing.T, dir string, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runNanoid(t, dir, args...)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\nargs: %v\nstdout: %s\nstderr: %s", exitCode, args, stdout, stderr)
	}
	return stdout
}

// decodeJSON parses stdout into a generic map.
func decodeJSON(t *testing.T, stdout string) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\noutput: %s", err, stdout)
	}
	return result
}

// lines splits output into non-empty lines.
func lines(s string) []string {
	return strings.Fields(s)
}

func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "NANOID_") || strings.HasPrefix(kv, "HOME=") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

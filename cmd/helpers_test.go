package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// testSeed is a fixed 64-hex-character ChaCha8 seed.
var testSeed = strings.Repeat("ab", 32)

// isolate runs the test in an empty working directory with an empty HOME so
// that no nanoid.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

// runNanoid executes args against a fresh command tree and returns stdout,
// stderr and the exit code.
func runNanoid(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

// lines splits output into non-empty lines.
func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

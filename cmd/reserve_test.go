package cmd

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hustcer/nanoid/internal/ledger"
	"github.com/hustcer/nanoid/internal/lock"
)

func TestReserve_IssuesDistinctIDs(t *testing.T) {
	isolate(t)

	first, stderr, code := runNanoid(t, "reserve")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	second, _, code := runNanoid(t, "reserve")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	a, b := strings.TrimSpace(first), strings.TrimSpace(second)
	if len(a) != 21 || len(b) != 21 || a == b {
		t.Errorf("reserved %q and %q, want two distinct 21-character ids", a, b)
	}

	listed, _, code := runNanoid(t, "reserve", "--list")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	got := lines(listed)
	if len(got) != 2 {
		t.Errorf("--list printed %v, want both ids", got)
	}
}

func TestReserve_ExhaustsSmallSpace(t *testing.T) {
	isolate(t)
	args := []string{"reserve", "--alphabet", "ab", "--size", "1", "--attempts", "50"}

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		stdout, stderr, code := runNanoid(t, args...)
		if code != 0 {
			t.Fatalf("reservation %d: exit code = %d, stderr %q", i, code, stderr)
		}
		seen[strings.TrimSpace(stdout)] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("reserved %v, want a and b", seen)
	}

	_, stderr, code := runNanoid(t, args...)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "already reserved") {
		t.Errorf("stderr = %q, want exhaustion message", stderr)
	}
}

func TestReserve_CustomDirAndJSON(t *testing.T) {
	dir := isolate(t)
	ledgerDir := filepath.Join(dir, "custom")

	stdout, _, code := runNanoid(t, "reserve", "--dir", ledgerDir, "--preset", "hex", "--size", "12", "--format", "json")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var out reserveOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if len(out.ID) != 12 || out.Dir != ledgerDir {
		t.Errorf("output = %+v", out)
	}

	ids, err := (&ledger.Store{Dir: ledgerDir}).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 1 || ids[0] != out.ID {
		t.Errorf("ledger holds %v, want [%s]", ids, out.ID)
	}
}

func TestReserve_BusyLedger(t *testing.T) {
	dir := isolate(t)
	store := &ledger.Store{Dir: filepath.Join(dir, ".nanoid")}
	if err := store.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	holder := lock.NewFromPath(store.LockPath())
	if err := holder.TryLock(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = holder.Unlock() }()

	_, stderr, code := runNanoid(t, "reserve", "--wait", "20ms")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "already using the ledger") {
		t.Errorf("stderr = %q, want lock message", stderr)
	}
}

func TestReserve_InvalidAlphabet(t *testing.T) {
	isolate(t)

	_, _, code := runNanoid(t, "reserve", "--alphabet", "xx")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestReserve_LedgerDirFromConfig(t *testing.T) {
	dir := isolate(t)
	t.Setenv("NANOID_LEDGER_DIR", "from-env")

	if _, _, code := runNanoid(t, "reserve"); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	ids, err := (&ledger.Store{Dir: filepath.Join(dir, "from-env")}).List(context.Background())
	if err != nil || len(ids) != 1 {
		t.Errorf("ledger from env holds %v (err %v), want one id", ids, err)
	}
}

func TestReserve_LongIDs(t *testing.T) {
	isolate(t)

	stdout, stderr, code := runNanoid(t, "reserve", "--size", "200")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	id := strings.TrimSpace(stdout)
	if len(id) != 200 {
		t.Errorf("reserved id has length %d, want 200", len(id))
	}

	listed, _, code := runNanoid(t, "reserve", "--list")
	if code != 0 || strings.TrimSpace(listed) != id {
		t.Errorf("--list printed %q (exit %d), want the reserved id", listed, code)
	}
}

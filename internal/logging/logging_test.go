package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hustcer/nanoid/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"warn", zerolog.WarnLevel},
		{"bogus", zerolog.WarnLevel},
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := logging.ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Config{Level: "debug"})

	logger.Debug().Str("alphabet", "abc").Msg("validated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "validated" || entry["alphabet"] != "abc" || entry["level"] != "debug" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Config{})

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at default level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Config{Level: "warn", Pretty: true})

	logger.Warn().Msg("alphabet is not NFC")

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Errorf("pretty output looks like JSON: %q", out)
	}
	if !strings.Contains(out, "alphabet is not NFC") {
		t.Errorf("message missing: %q", out)
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Config{Level: "warn"})

	ctx := logging.WithLogger(context.Background(), logger)
	l := logging.Ctx(ctx)
	l.Warn().Msg("from context")
	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("logger from context did not write: %q", buf.String())
	}

	nop := logging.Ctx(context.Background())
	if nop.GetLevel() != zerolog.Disabled {
		t.Errorf("fallback logger level = %v, want disabled", nop.GetLevel())
	}
}

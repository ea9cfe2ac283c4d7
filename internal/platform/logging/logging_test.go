package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevelDefaultsToInfo(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("  ")
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	if level != zerolog.InfoLevel {
		t.Fatalf("level = %v, want %v", level, zerolog.InfoLevel)
	}
}

func TestParseLevelRejectsUnknownName(t *testing.T) {
	t.Parallel()

	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected unknown level to fail")
	}
}

func TestNewWritesServiceTaggedJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, "web", "debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug().Str("path", "/register").Msg("request")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["service"] != "web" {
		t.Fatalf("service = %v, want web", line["service"])
	}
	if line["path"] != "/register" {
		t.Fatalf("path = %v, want /register", line["path"])
	}
	if line["message"] != "request" {
		t.Fatalf("message = %v, want request", line["message"])
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, "web", "warn")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info line to be filtered, got %q", buf.String())
	}
}

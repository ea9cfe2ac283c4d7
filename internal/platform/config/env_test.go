package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port   int    `env:"CYNTAS_TEST_PORT" envDefault:"123"`
	DBPath string `env:"CYNTAS_TEST_DB_PATH" envDefault:"cyntas.db"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.DBPath != "cyntas.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("CYNTAS_TEST_DB_PATH", "/var/lib/cyntas/site.db")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DBPath != "/var/lib/cyntas/site.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CYNTAS_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

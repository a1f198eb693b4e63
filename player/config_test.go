package player

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]string{"127.0.0.1", "9100", "Alice"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Local != (Endpoint{IP: "127.0.0.1", Port: 9100}) {
		t.Fatalf("unexpected local endpoint %v", cfg.Local)
	}
	if cfg.Name != "Alice" {
		t.Fatalf("expected Alice, actual %s", cfg.Name)
	}
	if cfg.LogLevel != logrus.InfoLevel || cfg.APIListenAddr != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestParseConfigFlags(t *testing.T) {
	args := []string{"-log-level", "debug", "-api", "localhost:8080", "127.0.0.1", "9100", "Alice"}
	cfg, err := ParseConfig(args, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != logrus.DebugLevel {
		t.Fatalf("expected debug level, actual %s", cfg.LogLevel)
	}
	if cfg.APIListenAddr != "localhost:8080" {
		t.Fatalf("unexpected api address %s", cfg.APIListenAddr)
	}
}

func TestParseConfigVersion(t *testing.T) {
	cfg, err := ParseConfig([]string{"-version"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.ShowVersion {
		t.Fatal("expected ShowVersion")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"127.0.0.1", "9100"},
		{"127.0.0.1", "9100", "Alice", "extra"},
		{"127.0.0", "9100", "Alice"},
		{"127.0.0.1", "65536", "Alice"},
		{"+127.0.0.1", "9100", "Alice"},
		{"127.0.0.1", "+9100", "Alice"},
		{"-log-level", "loud", "127.0.0.1", "9100", "Alice"},
		{"-nope", "127.0.0.1", "9100", "Alice"},
	}
	for _, args := range tests {
		if _, err := ParseConfig(args, io.Discard); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
	if _, err := ParseConfig([]string{"127.0.0.1"}, io.Discard); !errors.Is(err, ErrArguments) {
		t.Fatalf("expected ErrArguments, actual %v", err)
	}
}

// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

// resetLogger restores the package defaults once a test that calls Init ends.
func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { Init(DefaultConfig()) })
}

func TestInit(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})

	Debug().Str("run_id", "r1").Msg("tree built")

	output := buf.String()
	if !strings.Contains(output, "tree built") {
		t.Errorf("expected output to contain 'tree built', got: %s", output)
	}
	if !strings.Contains(output, `"level":"debug"`) {
		t.Errorf("expected debug level in output, got: %s", output)
	}
	if !strings.Contains(output, `"run_id":"r1"`) {
		t.Errorf("expected run_id field in output, got: %s", output)
	}
	if strings.Contains(output, `"time"`) {
		t.Errorf("expected no timestamp when Timestamp is false, got: %s", output)
	}
}

func TestInit_LevelFilters(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})

	Info().Msg("hidden")
	Warn().Msg("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("info message written at warn level: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("warn message missing: %s", output)
	}
	if IsLevelEnabled(zerolog.InfoLevel) {
		t.Error("IsLevelEnabled(info) = true at warn level")
	}
}

func TestInit_Console(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})

	Info().Msg("console output")

	output := buf.String()
	if !strings.Contains(output, "console output") {
		t.Errorf("expected console output, got: %s", output)
	}
	if strings.Contains(output, `"message"`) {
		t.Errorf("console format should not be JSON, got: %s", output)
	}
}

func TestSetLevelString(t *testing.T) {
	resetLogger(t)

	SetLevelString("error")
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Errorf("GlobalLevel() = %v, want error", zerolog.GlobalLevel())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"DEBUG", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if result := parseLevel(tt.input); result != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSetLogger(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))

	Err(errTest).Msg("store failed")
	component := WithComponent("store")
	component.Info().Msg("component entry")

	output := buf.String()
	if !strings.Contains(output, `"error":"test error"`) {
		t.Errorf("expected error field, got: %s", output)
	}
	if !strings.Contains(output, `"component":"store"`) {
		t.Errorf("expected component field, got: %s", output)
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("test error")

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	// Test debug mode
	SetupLogger(true, false)
	if !IsDebugEnabled() {
		t.Error("expected debug to be enabled")
	}

	// Test non-debug mode
	SetupLogger(false, false)
	if debugEnabled {
		t.Error("expected debug to be disabled")
	}
}

func TestIsDebugEnabledEnvVar(t *testing.T) {
	// Save and restore original value
	original := os.Getenv(EnvDebug)
	defer os.Setenv(EnvDebug, original)

	// Test with env var set
	SetupLogger(false, false)
	os.Setenv(EnvDebug, "true")
	if !IsDebugEnabled() {
		t.Error("expected debug to be enabled via env var")
	}

	// Test with env var unset
	os.Setenv(EnvDebug, "")
	if IsDebugEnabled() {
		t.Error("expected debug to be disabled")
	}
}

func TestLogOutputText(t *testing.T) {
	var buf bytes.Buffer

	// Create a fresh logger writing to our buffer
	SetupLoggerWithWriter(&buf, true, false)

	Debug("probed variant", "variant", "EdgeHeadless")

	output := buf.String()
	if !strings.Contains(output, "probed variant") {
		t.Errorf("expected log output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "variant=EdgeHeadless") {
		t.Errorf("expected log output to contain variant=EdgeHeadless, got: %s", output)
	}
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer

	// Create a fresh logger writing to our buffer
	SetupLoggerWithWriter(&buf, false, true)

	Info("browser started", "pid", 4242)

	output := buf.String()
	if !strings.Contains(output, `"msg":"browser started"`) {
		t.Errorf("expected JSON output with msg field, got: %s", output)
	}
	if !strings.Contains(output, `"pid":4242`) {
		t.Errorf("expected JSON output with pid field, got: %s", output)
	}
}

func TestLogger(t *testing.T) {
	SetupLogger(false, false)
	logger := Logger()
	if logger == nil {
		t.Error("Logger() returned nil")
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	Warn("no remote pid recovered", "variant", "Edge")

	output := buf.String()
	if !strings.Contains(output, "no remote pid recovered") {
		t.Errorf("expected output to contain warning message, got: %s", output)
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	Error("browser did not start", "command", "/nonexistent/msedge")

	output := buf.String()
	if !strings.Contains(output, "browser did not start") {
		t.Errorf("expected output to contain error message, got: %s", output)
	}
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	Info("killed browser", "variant", "EdgeCanary")

	output := buf.String()
	if !strings.Contains(output, "killed browser") {
		t.Errorf("expected output to contain info message, got: %s", output)
	}
}

func TestDebugWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	// Clear EDGE_LAUNCHER_DEBUG env var
	original := os.Getenv(EnvDebug)
	defer os.Setenv(EnvDebug, original)
	os.Setenv(EnvDebug, "")

	Debug("should not appear")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Errorf("debug message should not appear when debug is disabled, got: %s", output)
	}
}

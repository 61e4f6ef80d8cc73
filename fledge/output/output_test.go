package output

import (
	"bytes"
	"strings"
	"testing"
)

// captureOutput captures everything written during f
func captureOutput(f func()) string {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	f()

	return buf.String()
}

func TestSuccess(t *testing.T) {
	output := captureOutput(func() {
		Success("Test message")
	})

	if !strings.Contains(output, "🐣") {
		t.Error("Success output should contain hatchling emoji")
	}
	if !strings.Contains(output, "Test message") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	output := captureOutput(func() {
		Error("Error message")
	})

	if !strings.Contains(output, "❌") {
		t.Error("Error output should contain X emoji")
	}
	if !strings.Contains(output, "Error message") {
		t.Error("Error output should contain the message")
	}
}

func TestWarn(t *testing.T) {
	output := captureOutput(func() {
		Warn("npm install -D tailwindcss postcss autoprefixer")
	})

	if !strings.Contains(output, "⚠️") {
		t.Error("Warn output should contain warning emoji")
	}
	if !strings.Contains(output, "npm install -D tailwindcss") {
		t.Error("Warn output should contain the message")
	}
}

func TestInfo(t *testing.T) {
	output := captureOutput(func() {
		Info("Info message")
	})

	if !strings.Contains(output, "ℹ️") {
		t.Error("Info output should contain info emoji")
	}
	if !strings.Contains(output, "Info message") {
		t.Error("Info output should contain the message")
	}
}

func TestStep(t *testing.T) {
	output := captureOutput(func() {
		Step("Step message")
	})

	if !strings.Contains(output, "   ") {
		t.Error("Step output should contain indentation")
	}
	if !strings.Contains(output, "Step message") {
		t.Error("Step output should contain the message")
	}
}

func TestVerbose(t *testing.T) {
	output := captureOutput(func() {
		Verbose("Debug message")
	})

	if output != "" {
		t.Error("Verbose output should be empty when verbose mode is off")
	}

	SetVerbose(true)
	defer SetVerbose(false)

	output = captureOutput(func() {
		Verbose("Debug message")
	})

	if !strings.Contains(output, "🔍") {
		t.Error("Verbose output should contain magnifying glass emoji when enabled")
	}
	if !strings.Contains(output, "Debug message") {
		t.Error("Verbose output should contain the message when enabled")
	}
}

func TestSetWriter_NilRestoresStdout(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	if Writer() != &buf {
		t.Error("SetWriter should redirect output")
	}

	SetWriter(nil)
	if Writer() == &buf {
		t.Error("SetWriter(nil) should restore the default writer")
	}
}

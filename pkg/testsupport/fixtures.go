package testsupport

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-signup/pkg/model"
)

// Inputs that pass every validation rule.
const (
	ValidEmail    = "ada@example.com"
	ValidPassword = "Str0ng!Pass"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// ValidState returns a form state that passes validation.
func ValidState() model.FormState {
	state := model.NewFormState()
	state.SetEmail(ValidEmail)
	state.SetPassword(ValidPassword)
	state.SetCheckbox(true)
	return state
}

// ObservedLogger returns a logger that records entries at debug level and
// above, plus the recorder used to assert on them.
func ObservedLogger(t *testing.T) (*zap.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// AssertContains fails the test when any of the fragments is missing from
// output.
func AssertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected output to contain %q\noutput:\n%s", fragment, output)
		}
	}
}

// AssertNotContains fails the test when any of the fragments is present in
// output.
func AssertNotContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(output, fragment) {
			t.Fatalf("expected output not to contain %q\noutput:\n%s", fragment, output)
		}
	}
}

package tui

import (
	"io"

	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/component"
)

// OutputFormat controls how the accepted submission is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// DefaultCompactColumns is the terminal width at or below which the brand
// banner is skipped.
const DefaultCompactColumns = 79

// DefaultMaxAttempts bounds how many times the form is re-prompted.
const DefaultMaxAttempts = 5

// Theme captures optional formatting hints the driver can apply when printing
// messages. Keep minimal to avoid coupling renderer logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// SubmitTransformer mutates collected values before serialization.
type SubmitTransformer func(map[string]any) (map[string]any, error)

// WidthFunc reports the current terminal width. ok is false when unknown.
type WidthFunc func() (width int, ok bool)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets the writer used by the default survey driver for messages.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		r.out = out
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithSubmitTransformer allows callers to mutate collected values prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithLogger sets the logger handed to the underlying component.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSuccessHandler runs fn after a valid submission.
func WithSuccessHandler(fn component.SuccessHandler) Option {
	return func(r *Renderer) {
		r.onSuccess = fn
	}
}

// WithWidth overrides how the terminal width is read.
func WithWidth(fn WidthFunc) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.width = fn
		}
	}
}

// WithCompactColumns sets the compact breakpoint in terminal columns.
func WithCompactColumns(columns int) Option {
	return func(r *Renderer) {
		if columns > 0 {
			r.compactColumns = columns
		}
	}
}

// WithMaxAttempts bounds how many invalid submissions are re-prompted. Zero
// keeps DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// Package signup renders and validates a sign-up form: email, password, a
// terms checkbox and optional preferences, laid out compact or wide depending
// on the viewport width.
package signup

import (
	"context"

	"github.com/goliatone/go-signup/pkg/component"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/orchestrator"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/validation"
)

// FormState aliases model.FormState for callers that only import the root
// package.
type FormState = model.FormState

// Submission aliases model.Submission.
type Submission = model.Submission

// RenderOptions describes per-request overrides that renderers can use to
// surface server-side errors, hidden fields and themes.
type RenderOptions = render.RenderOptions

// Result aliases validation.Result.
type Result = validation.Result

// NewFormState returns an empty form.
func NewFormState() FormState {
	return model.NewFormState()
}

// Validate runs the field rules against raw input.
func Validate(email, password string, checkboxAccepted bool) Result {
	return validation.Validate(email, password, checkboxAccepted)
}

// NewComponent exposes the component constructor from the top-level module.
func NewComponent(options ...component.Option) *component.Component {
	return component.New(options...)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders state for a viewport of the given width (zero when
// unknown) with the default vanilla renderer. It is the simplest entry point
// for callers that just want HTML output.
func GenerateHTML(ctx context.Context, state FormState, width int, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		State: &state,
		Width: width,
	})
}

// WithThemeSelector passes a theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector render.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithTranslator forwards a translator to the orchestrator.
func WithTranslator(t render.Translator) orchestrator.Option {
	return orchestrator.WithTranslator(t)
}

package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/component"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/renderers/vanilla"
	"github.com/goliatone/go-signup/pkg/viewport"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves Request.ThemeName/ThemeVariant into the
// renderer's theme configuration.
func WithThemeSelector(selector render.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithTranslator sets the translator used when a request does not carry one.
func WithTranslator(t render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = t
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates state preparation, theme resolution and rendering.
// It applies sensible defaults (vanilla renderer, embedded templates) while
// remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	themeSelector   render.ThemeSelector
	translator      render.Translator
	logger          *zap.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one page render.
type Request struct {
	// State seeds the form. Nil renders a fresh form.
	State *model.FormState

	// Width is the viewport width used to pick the layout. Zero keeps the
	// state's current layout.
	Width int

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are resolved through the theme selector.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions (locale, errors, hidden
	// fields) passed through to the renderer.
	RenderOptions render.RenderOptions
}

// Generate prepares the state and renders it, returning the renderer output
// (HTML for the default vanilla renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	state, err := o.prepareState(req)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Translator == nil {
		opts.Translator = o.translator
	}
	if opts.Theme == nil && o.themeSelector != nil {
		themeCfg, err := render.ResolveTheme(o.themeSelector, req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
		opts.Theme = themeCfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("rendering sign-up form",
		zap.String("renderer", renderer.Name()),
		zap.Bool("compact", state.CompactLayout),
		zap.String("locale", opts.LocaleFor(state.Locale)),
	)

	output, err := renderer.Render(ctx, state, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// prepareState applies the request width through a mounted component so the
// compact flag follows the same rule as a live viewport.
func (o *Orchestrator) prepareState(req Request) (model.FormState, error) {
	state := model.NewFormState()
	if req.State != nil {
		state = *req.State
	}
	if req.Width <= 0 {
		return state, nil
	}

	breakpoint := req.RenderOptions.Breakpoint
	if breakpoint <= 0 {
		breakpoint = viewport.DefaultBreakpoint
	}
	comp := component.New(
		component.WithState(state),
		component.WithBreakpoint(breakpoint),
		component.WithLogger(o.logger),
	)
	if err := comp.Mount(viewport.NewWindow(req.Width)); err != nil {
		return model.FormState{}, fmt.Errorf("orchestrator: %w", err)
	}
	defer comp.Unmount()
	return comp.State(), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	if len(o.registry.List()) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get("")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: fallback renderer: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register default renderer: %w", err)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

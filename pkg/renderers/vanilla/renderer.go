package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	rendertemplate "github.com/goliatone/go-signup/pkg/render/template"
	gotemplate "github.com/goliatone/go-signup/pkg/render/template/gotemplate"
	"github.com/goliatone/go-signup/pkg/viewport"
)

const pageTemplate = "signup.tpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	templateFuncs    map[string]any
	logoMarkup       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide signup.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateFuncs registers helpers (see render.TemplateI18nFuncs) with the
// default template engine.
func WithTemplateFuncs(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.templateFuncs == nil {
			cfg.templateFuncs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFuncs[name] = fn
		}
	}
}

// WithLogoMarkup replaces the inline logo SVG. The markup is sanitized before
// it reaches the page.
func WithLogoMarkup(markup string) Option {
	return func(cfg *config) {
		cfg.logoMarkup = markup
	}
}

// Renderer produces the full HTML sign-up page.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	logo      string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), logoMarkup: defaultLogo()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
			gotemplate.WithTemplateFunc(cfg.templateFuncs),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		logo:      sanitizeSVG(cfg.logoMarkup),
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the page template for state.
func (r *Renderer) Render(ctx context.Context, state model.FormState, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(pageTemplate, r.view(state, opts))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type preferenceRow struct {
	Group string
	Label string
	Yes   bool
	No    bool
}

type localeOption struct {
	Value    string
	Label    string
	Selected bool
}

func (r *Renderer) view(state model.FormState, opts render.RenderOptions) map[string]any {
	locale := opts.LocaleFor(state.Locale)
	pageCopy := render.CopyFor(state, opts)

	mapping := render.MapErrors(state, opts.Errors)
	fieldErrors := make(map[string][]string, len(mapping.Fields))
	for field, messages := range mapping.Fields {
		translated := make([]string, 0, len(messages))
		for _, message := range messages {
			translated = append(translated, render.TranslateMessage(locale, message, opts.Translator, opts.OnMissing))
		}
		fieldErrors[field] = translated
	}

	rows := make([]preferenceRow, 0, len(pageCopy.Preferences))
	for _, pref := range pageCopy.Preferences {
		choice, _ := state.Preferences.Get(pref.Group)
		rows = append(rows, preferenceRow{
			Group: string(pref.Group),
			Label: pref.Label,
			Yes:   choice == model.ChoiceYes,
			No:    choice == model.ChoiceNo,
		})
	}

	breakpoint := opts.Breakpoint
	if breakpoint <= 0 {
		breakpoint = viewport.DefaultBreakpoint
	}

	optionsExpanded := "0"
	if state.OptionsExpanded {
		optionsExpanded = "1"
	}
	hidden := render.MergeHiddenFields(opts.HiddenFields, render.Hidden(model.FieldOptionsExpanded, optionsExpanded))

	return map[string]any{
		"locale":      locale,
		"state":       state,
		"copy":        pageCopy,
		"errors":      fieldErrors,
		"form_errors": mapping.Form,
		"preferences": rows,
		"locales": []localeOption{
			{Value: model.LocaleEnglish, Label: pageCopy.LanguageEnglish, Selected: locale == model.LocaleEnglish},
			{Value: model.LocaleSpanish, Label: pageCopy.LanguageSpanish, Selected: locale == model.LocaleSpanish},
		},
		"hidden":     render.SortedHiddenFields(hidden),
		"css_vars":   opts.Theme.CSSVarList(),
		"action":     opts.ActionOrDefault(),
		"breakpoint": breakpoint,
		"submitted":  opts.Submitted,
		"logo_svg":   r.logo,
		"assets": map[string]string{
			"image":      opts.AssetURL(ImageName),
			"logo":       opts.AssetURL(LogoName),
			"stylesheet": opts.AssetURL(StylesheetName),
			"script":     opts.AssetURL(ScriptName),
		},
	}
}

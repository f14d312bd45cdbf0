package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/validation"
	"github.com/goliatone/go-signup/pkg/viewport"
)

// Defaults applied to the generated document.
const (
	DefaultTitle   = "Sign-up form"
	DefaultVersion = "1.0.0"
	PagePath       = "/"
	SubmitPath     = "/signup"
	HealthPath     = "/healthz"
	FormMediaType  = "application/x-www-form-urlencoded"
	HTMLMediaType  = "text/html"
)

// SubmitOperationID names the POST operation.
const SubmitOperationID = "submitSignup"

// Option customises the generated document.
type Option func(*config)

type config struct {
	title      string
	version    string
	server     string
	submitPath string
}

// WithTitle overrides the document title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if title != "" {
			cfg.title = title
		}
	}
}

// WithVersion overrides the document version.
func WithVersion(version string) Option {
	return func(cfg *config) {
		if version != "" {
			cfg.version = version
		}
	}
}

// WithServerURL adds a server entry.
func WithServerURL(url string) Option {
	return func(cfg *config) {
		cfg.server = url
	}
}

// WithSubmitPath changes the path of the submit operation.
func WithSubmitPath(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.submitPath = path
		}
	}
}

// Build assembles and validates the document.
func Build(ctx context.Context, options ...Option) (*openapi3.T, error) {
	cfg := config{title: DefaultTitle, version: DefaultVersion, submitPath: SubmitPath}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   cfg.title,
			Version: cfg.version,
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(PagePath, &openapi3.PathItem{Get: pageOperation()}),
			openapi3.WithPath(cfg.submitPath, &openapi3.PathItem{Post: submitOperation()}),
			openapi3.WithPath(HealthPath, &openapi3.PathItem{Get: healthOperation()}),
		),
	}
	if cfg.server != "" {
		doc.Servers = openapi3.Servers{{URL: cfg.server}}
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// MarshalJSON builds the document and encodes it as JSON.
func MarshalJSON(ctx context.Context, options ...Option) ([]byte, error) {
	doc, err := Build(ctx, options...)
	if err != nil {
		return nil, err
	}
	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("openapi: encode document: %w", err)
	}
	return data, nil
}

// Load parses a serialized document and validates it.
func Load(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: raw document is empty")
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// SubmitFields lists the form properties accepted by the submit operation of
// doc, sorted by name.
func SubmitFields(doc *openapi3.T, path string) ([]string, error) {
	if doc == nil || doc.Paths == nil {
		return nil, errors.New("openapi: document has no paths")
	}
	item := doc.Paths.Find(path)
	if item == nil || item.Post == nil {
		return nil, fmt.Errorf("openapi: no POST operation at %q", path)
	}
	body := item.Post.RequestBody
	if body == nil || body.Value == nil {
		return nil, fmt.Errorf("openapi: POST %q has no request body", path)
	}
	media := body.Value.Content.Get(FormMediaType)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("openapi: POST %q has no %s schema", path, FormMediaType)
	}

	names := make([]string, 0, len(media.Schema.Value.Properties))
	for name := range media.Schema.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func pageOperation() *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = "renderSignup"
	op.Summary = "Render the sign-up page"
	op.AddParameter(openapi3.NewQueryParameter(viewport.QueryWidth).
		WithDescription("Viewport width in CSS pixels; selects the compact layout when at or below the breakpoint.").
		WithSchema(openapi3.NewIntegerSchema().WithMin(1)))
	op.AddParameter(openapi3.NewQueryParameter(model.FieldLocale).
		WithSchema(localeSchema()))
	op.AddParameter(openapi3.NewHeaderParameter(viewport.HeaderViewportWidth).
		WithDescription("Client hint carrying the viewport width.").
		WithSchema(openapi3.NewIntegerSchema().WithMin(1)))
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, htmlResponse("Sign-up page")),
	)
	return op
}

func submitOperation() *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = SubmitOperationID
	op.Summary = "Submit the sign-up form"
	op.Description = "Validates the form. A valid submission is logged and the page is re-rendered with a success banner; an invalid one is re-rendered with inline errors."
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(openapi3.Content{
				FormMediaType: openapi3.NewMediaType().WithSchema(submitSchema()),
			}),
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, htmlResponse("Accepted submission")),
		openapi3.WithStatus(422, htmlResponse("Submission with validation errors")),
	)
	return op
}

func healthOperation() *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = "health"
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Service is up").
				WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"text/plain"})),
		}),
	)
	return op
}

func submitSchema() *openapi3.Schema {
	choice := func() *openapi3.Schema {
		return openapi3.NewStringSchema().WithEnum(string(model.ChoiceYes), string(model.ChoiceNo))
	}

	schema := openapi3.NewObjectSchema().
		WithProperty(model.FieldEmail, described(openapi3.NewStringSchema(),
			validation.MsgEmailBlank+" when empty.")).
		WithProperty(model.FieldPassword, described(openapi3.NewStringSchema().
			WithFormat("password").
			WithMinLength(validation.MinPasswordLength),
			"Upper and lower case letter, digit and one of "+validation.PasswordSymbols+"; must differ from the email.")).
		WithProperty(model.FieldTerms, described(openapi3.NewStringSchema(),
			"Present when the terms checkbox is checked.")).
		WithProperty(model.FieldLocale, localeSchema()).
		WithProperty(model.FieldOptionsExpanded, openapi3.NewStringSchema().WithEnum("0", "1")).
		WithProperty(viewport.QueryWidth, openapi3.NewIntegerSchema().WithMin(1))
	for _, group := range model.PreferenceGroups {
		schema = schema.WithProperty(string(group), choice())
	}
	schema.Required = []string{model.FieldEmail, model.FieldPassword}
	return schema
}

func described(schema *openapi3.Schema, description string) *openapi3.Schema {
	schema.Description = description
	return schema
}

func localeSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithEnum(model.LocaleEnglish, model.LocaleSpanish)
}

func htmlResponse(description string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(description).
			WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{HTMLMediaType})),
	}
}

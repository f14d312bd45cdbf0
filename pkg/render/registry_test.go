package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.FormState, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("vanilla"))
	registry.MustRegister(namedRenderer("tui"))

	if err := registry.Register(namedRenderer("tui")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected empty name error")
	}

	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	fallback, err := registry.Get("")
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if fallback.Name() != "vanilla" {
		t.Fatalf("first registered renderer must be the default, got %q", fallback.Name())
	}
	if _, err := registry.Get("preact"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
	if !registry.Has("tui") || registry.Has("preact") {
		t.Fatalf("Has reports wrong membership")
	}
}

func TestRenderOptions_Defaults(t *testing.T) {
	opts := render.RenderOptions{}
	if opts.ActionOrDefault() != render.DefaultAction {
		t.Fatalf("unexpected default action %q", opts.ActionOrDefault())
	}
	if got := opts.AssetURL("/logo.svg"); got != "/assets/logo.svg" {
		t.Fatalf("unexpected asset url %q", got)
	}
	if got := opts.LocaleFor("es"); got != "es" {
		t.Fatalf("state locale must apply without override, got %q", got)
	}
	opts.Locale = "en"
	if got := opts.LocaleFor("es"); got != "en" {
		t.Fatalf("explicit locale must win, got %q", got)
	}
}

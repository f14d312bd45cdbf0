package template_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-signup/pkg/render/template/gotemplate"
	"github.com/goliatone/go-signup/pkg/testsupport"
)

var templatesFS = fstest.MapFS{
	"hello.tpl":      {Data: []byte("Hello {{ name }}!")},
	"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
	"use-filter.tpl": {Data: []byte("{{ name|shout_signup_test }}")},
	"escape.tpl":     {Data: []byte("<p>{{ message }}</p>")},
	"call.tpl":       {Data: []byte("{{ greet(name) }}")},
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if want := "Hello Ada!"; result != want || written != want {
		t.Fatalf("render template mismatch\nwant: %q\n got: %q / %q", want, result, written)
	}
}

func TestGoTemplateEngine_AutoEscapes(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("escape.tpl", map[string]any{"message": "<script>x</script>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(result, "<script>") {
		t.Fatalf("expected escaped output, got %q", result)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)

	err := engine.RegisterFilter("shout_signup_test", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout_signup_test", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_TemplateFunc(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templatesFS),
		gotemplate.WithTemplateFunc(map[string]any{
			"greet": func(name string) string { return "Hola " + name },
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderTemplate("call", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hola Ada" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.RenderString("{{ a }}-{{ b }}", struct {
		A string `json:"a"`
		B string `json:"b"`
	}{A: "x", B: "y"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "x-y" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

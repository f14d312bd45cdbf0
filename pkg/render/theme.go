package render

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// Default theme identifiers.
const (
	DefaultThemeName    = "signup"
	DefaultThemeVariant = "light"
)

// ErrThemeNotFound is returned when neither the requested nor the default
// theme is registered.
var ErrThemeNotFound = theme.ErrThemeNotFound

// ThemeSelector resolves a theme/variant pair into a go-theme selection.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// ThemeConfig is the renderer-facing view of a theme selection.
type ThemeConfig struct {
	Theme    string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	Partials map[string]string
	AssetURL func(name string) string
}

// CSSVar is a single custom property declaration.
type CSSVar struct {
	Name  string
	Value string
}

// CSSVarList returns CSS variables sorted by name for stable output.
func (c *ThemeConfig) CSSVarList() []CSSVar {
	if c == nil {
		return nil
	}
	fields := SortedHiddenFields(c.CSSVars)
	out := make([]CSSVar, 0, len(fields))
	for _, field := range fields {
		out = append(out, CSSVar{Name: field.Name, Value: field.Value})
	}
	return out
}

// DefaultManifest is the built-in theme: black primary button and panel on a
// light surface, with a dark variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":        "#000000",
			"brand-text":   "#ffffff",
			"surface":      "#ffffff",
			"text":         "#374151",
			"error":        "#ef4444",
			"page":         "#d1d5db",
			"border-muted": "#374151",
		},
		Assets: theme.Assets{
			Prefix: "/assets",
			Files: map[string]string{
				"image.webp": "image.webp",
				"logo.svg":   "logo.svg",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"surface": "#111827",
					"text":    "#e5e7eb",
					"page":    "#030712",
				},
			},
		},
	}
}

// NewThemeSelector registers the supplied manifests with a go-theme registry
// and returns a selector that falls back to DefaultThemeName and
// DefaultThemeVariant. With no manifests the DefaultManifest is used.
func NewThemeSelector(manifests ...*theme.Manifest) (ThemeSelector, error) {
	if len(manifests) == 0 {
		manifests = []*theme.Manifest{DefaultManifest()}
	}

	registry := theme.NewRegistry()
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("render: register theme %q: %w", manifest.Name, err)
		}
	}
	return theme.Selector{
		Registry:       registry,
		DefaultTheme:   DefaultThemeName,
		DefaultVariant: DefaultThemeVariant,
	}, nil
}

// ResolveTheme asks selector for name/variant and maps the selection's
// renderer theme onto a ThemeConfig.
func ResolveTheme(selector ThemeSelector, name, variant string) (*ThemeConfig, error) {
	if selector == nil {
		return nil, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}

	resolved := selection.RendererTheme(nil)
	return &ThemeConfig{
		Theme:    resolved.Theme,
		Variant:  resolved.Variant,
		Tokens:   resolved.Tokens,
		CSSVars:  resolved.CSSVars,
		Partials: resolved.Partials,
		AssetURL: resolved.AssetURL,
	}, nil
}

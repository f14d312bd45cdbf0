package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var embeddedCatalogs embed.FS

// DefaultLocale is used when a lookup names no locale.
const DefaultLocale = "en"

var (
	// ErrUnknownLocale is returned when no catalog exists for a locale.
	ErrUnknownLocale = errors.New("locale: unknown locale")
	// ErrMissingKey is returned when a catalog has no entry for a key.
	ErrMissingKey = errors.New("locale: missing key")
)

type document struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds translated messages keyed by locale then message key.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]map[string]string
}

// CatalogsFS exposes the embedded catalogs.
func CatalogsFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalogs, "catalogs")
	if err != nil {
		return embeddedCatalogs
	}
	return sub
}

// Default loads the embedded English and Spanish catalogs.
func Default() (*Catalog, error) {
	return LoadFS(CatalogsFS())
}

// MustDefault panics if the embedded catalogs fail to load.
func MustDefault() *Catalog {
	catalog, err := Default()
	if err != nil {
		panic(err)
	}
	return catalog
}

// LoadFS walks fsys and parses every YAML catalog. Two files declaring the
// same key for the same locale is an error.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	catalog := &Catalog{messages: make(map[string]map[string]string)}
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(name) {
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("locale: read %s: %w", name, err)
		}

		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("locale: parse %s: %w", name, err)
		}

		loc := normalize(doc.Locale)
		if loc == "" {
			loc = normalize(strings.TrimSuffix(path.Base(name), path.Ext(name)))
		}
		if loc == "" {
			return fmt.Errorf("locale: file %s declares no locale", name)
		}

		for key, value := range doc.Messages {
			if err := catalog.add(loc, key, value); err != nil {
				return fmt.Errorf("locale: file %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

// Add registers a single message, replacing any previous value.
func (c *Catalog) Add(locale, key, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	loc := normalize(locale)
	if c.messages == nil {
		c.messages = make(map[string]map[string]string)
	}
	if c.messages[loc] == nil {
		c.messages[loc] = make(map[string]string)
	}
	c.messages[loc][strings.TrimSpace(key)] = message
}

// Translate resolves key for locale. Regional locales fall back to their base
// language ("es-MX" → "es"). When args are supplied the message is used as a
// fmt format string.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	if c == nil {
		return "", ErrUnknownLocale
	}
	key = strings.TrimSpace(key)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var found bool
	for _, candidate := range candidates(locale) {
		messages, ok := c.messages[candidate]
		if !ok {
			continue
		}
		found = true
		if msg, ok := messages[key]; ok {
			if len(args) > 0 {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	if !found {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return "", fmt.Errorf("%w: %q (%s)", ErrMissingKey, key, locale)
}

// Locales lists the loaded locales in sorted order.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.messages))
	for loc := range c.messages {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) add(locale, key, message string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty message key")
	}
	if c.messages[locale] == nil {
		c.messages[locale] = make(map[string]string)
	}
	if _, exists := c.messages[locale][key]; exists {
		return fmt.Errorf("duplicate key %q for locale %q", key, locale)
	}
	c.messages[locale][key] = message
	return nil
}

func candidates(locale string) []string {
	loc := normalize(locale)
	if loc == "" {
		return []string{DefaultLocale}
	}
	out := []string{loc}
	if idx := strings.IndexAny(loc, "-_"); idx > 0 {
		out = append(out, loc[:idx])
	}
	return out
}

func normalize(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

func isCatalogFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

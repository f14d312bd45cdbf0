package locale_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/locale"
)

func TestDefaultCatalogs(t *testing.T) {
	catalog, err := locale.Default()
	if err != nil {
		t.Fatalf("load default catalogs: %v", err)
	}
	if diff := cmp.Diff([]string{"en", "es"}, catalog.Locales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}

	got, err := catalog.Translate("en", "form.submit")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Create my free account" {
		t.Fatalf("unexpected english submit label %q", got)
	}

	got, err = catalog.Translate("es-MX", "options.yes")
	if err != nil {
		t.Fatalf("translate regional: %v", err)
	}
	if got != "Sí" {
		t.Fatalf("expected regional fallback to es, got %q", got)
	}
}

func TestCatalogsShareKeys(t *testing.T) {
	fsys := locale.CatalogsFS()
	en, err := locale.LoadFS(fstest.MapFS{"en.yaml": mustFile(t, fsys, "en.yaml")})
	if err != nil {
		t.Fatalf("load en: %v", err)
	}
	catalog := locale.MustDefault()
	keys := []string{
		"header.have_account", "header.login", "brand.tagline",
		"form.email.placeholder", "form.password.placeholder", "form.terms.label",
		"form.options.toggle", "form.submit", "options.note",
		"errors.email.blank", "errors.password.complexity", "errors.terms.required",
	}
	for _, key := range keys {
		if _, err := en.Translate("en", key); err != nil {
			t.Fatalf("en missing %q: %v", key, err)
		}
		if _, err := catalog.Translate("es", key); err != nil {
			t.Fatalf("es missing %q: %v", key, err)
		}
	}
}

func TestTranslateErrors(t *testing.T) {
	catalog := locale.MustDefault()
	if _, err := catalog.Translate("fr", "form.submit"); !errors.Is(err, locale.ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
	if _, err := catalog.Translate("en", "nope"); !errors.Is(err, locale.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}

func TestLoadFS_DuplicateKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("locale: en\nmessages:\n  hello: Hi\n")},
		"b.yml":  {Data: []byte("locale: en\nmessages:\n  hello: Hello\n")},
	}
	if _, err := locale.LoadFS(fsys); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestLoadFS_LocaleFromFilename(t *testing.T) {
	fsys := fstest.MapFS{
		"nested/de.yaml": {Data: []byte("messages:\n  greeting: Hallo %s\n")},
		"notes.txt":      {Data: []byte("ignored")},
	}
	catalog, err := locale.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got, err := catalog.Translate("de", "greeting", "Ada")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Hallo Ada" {
		t.Fatalf("unexpected formatted message %q", got)
	}
}

func mustFile(t *testing.T, fsys fs.FS, name string) *fstest.MapFile {
	t.Helper()
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return &fstest.MapFile{Data: data}
}

package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/validation"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated. params carries a map with the "default" fallback string.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	for _, param := range params {
		if values, ok := param.(map[string]any); ok {
			if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
				return fallback
			}
		}
	}
	return key
}

// PreferenceCopy is the label set for one radio group.
type PreferenceCopy struct {
	Group model.PreferenceGroup
	Label string
}

// PageCopy is every user-visible string on the sign-up page for one locale.
type PageCopy struct {
	Locale              string
	LanguageEnglish     string
	LanguageSpanish     string
	HaveAccount         string
	LogIn               string
	BrandName           string
	LogoAlt             string
	ImageAlt            string
	Tagline             string
	EmailPlaceholder    string
	PasswordPlaceholder string
	TermsLabel          string
	TermsRequired       string
	OptionsToggle       string
	Preferences         []PreferenceCopy
	Yes                 string
	No                  string
	OptionsNote         string
	Submit              string
	Success             string
}

var defaultCopy = map[string]string{
	"language.en":               "English",
	"language.es":               "Español",
	"header.have_account":       "Already have an account?",
	"header.login":              "Log in",
	"brand.name":                "Typeform",
	"brand.logo_alt":            "Typeform",
	"brand.image_alt":           "Logo",
	"brand.tagline":             "Get better data with conversational forms, surveys, quizzes & more.",
	"form.email.placeholder":    "Enter your email",
	"form.password.placeholder": "Enter your password",
	"form.terms.label":          "I agree to Typeform’s Terms of Service, Privacy Policy and Data Processing Agreement.",
	"form.options.toggle":       "See Options",
	"form.submit":               "Create my free account",
	"form.success":              "Form submitted successfully",
	"options.communication":     "Get useful tips, inspiration, and offers via e-communication.",
	"options.tailor":            "Tailor Typeform to my needs based on my activity.",
	"options.enrich":            "Enrich my data with select third parties for more relevant content.",
	"options.yes":               "Yes",
	"options.no":                "No",
	"options.note":              "You can update your preferences in your Profile at any time",
}

// BuildCopy resolves the page copy for locale. Keys the translator cannot
// resolve go through onMissing with the English text as the default.
func BuildCopy(locale string, t Translator, onMissing MissingTranslationHandler) PageCopy {
	tr := func(key string) string {
		return translate(locale, key, defaultCopy[key], t, onMissing)
	}

	preferences := make([]PreferenceCopy, 0, len(model.PreferenceGroups))
	for _, group := range model.PreferenceGroups {
		preferences = append(preferences, PreferenceCopy{
			Group: group,
			Label: tr("options." + string(group)),
		})
	}

	return PageCopy{
		Locale:              locale,
		LanguageEnglish:     tr("language.en"),
		LanguageSpanish:     tr("language.es"),
		HaveAccount:         tr("header.have_account"),
		LogIn:               tr("header.login"),
		BrandName:           tr("brand.name"),
		LogoAlt:             tr("brand.logo_alt"),
		ImageAlt:            tr("brand.image_alt"),
		Tagline:             tr("brand.tagline"),
		EmailPlaceholder:    tr("form.email.placeholder"),
		PasswordPlaceholder: tr("form.password.placeholder"),
		TermsLabel:          tr("form.terms.label"),
		TermsRequired:       TranslateMessage(locale, validation.MsgTermsRequired, t, onMissing),
		OptionsToggle:       tr("form.options.toggle"),
		Preferences:         preferences,
		Yes:                 tr("options.yes"),
		No:                  tr("options.no"),
		OptionsNote:         tr("options.note"),
		Submit:              tr("form.submit"),
		Success:             tr("form.success"),
	}
}

// CopyFor is BuildCopy driven by RenderOptions and the state's locale.
func CopyFor(state model.FormState, opts RenderOptions) PageCopy {
	return BuildCopy(opts.LocaleFor(state.Locale), opts.Translator, opts.OnMissing)
}

// TranslateMessage localizes one of the validator messages. Messages without a
// known code are returned unchanged.
func TranslateMessage(locale, message string, t Translator, onMissing MissingTranslationHandler) string {
	code := validation.MessageCode(message)
	if code == "" {
		return message
	}
	return translate(locale, "errors."+code, message, t, onMissing)
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	params := []any{map[string]any{"default": fallback}}

	if t == nil {
		return onMissing(locale, key, params, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, params, err)
}

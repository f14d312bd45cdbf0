package model

import (
	"errors"
	"fmt"
	"strings"
)

// Field names used as keys for values, errors and rendered controls.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTerms    = "terms"
	// FieldLocale carries the language selector.
	FieldLocale = "locale"
	// FieldOptionsExpanded round-trips the options panel state through a
	// hidden input.
	FieldOptionsExpanded = "options_expanded"
)

// Supported locales for the language selector.
const (
	LocaleEnglish = "en"
	LocaleSpanish = "es"
)

// ErrUnsupportedLocale is returned when SetLocale receives an unknown locale.
var ErrUnsupportedLocale = errors.New("model: unsupported locale")

// FormState is the live record of input values, error messages and UI flags
// for a single sign-up form instance.
type FormState struct {
	Email            string      `json:"email"`
	Password         string      `json:"-"`
	EmailError       string      `json:"emailError,omitempty"`
	PasswordError    string      `json:"passwordError,omitempty"`
	CheckboxAccepted bool        `json:"checkboxAccepted"`
	OptionsExpanded  bool        `json:"optionsExpanded"`
	CompactLayout    bool        `json:"compactLayout"`
	Preferences      Preferences `json:"preferences"`
	Locale           string      `json:"locale"`
}

// NewFormState returns the mount-time defaults: empty fields, no errors, all
// toggles off and the English locale.
func NewFormState() FormState {
	return FormState{Locale: LocaleEnglish}
}

// SetEmail stores the email value and clears any email error.
func (s *FormState) SetEmail(value string) {
	s.Email = value
	s.EmailError = ""
}

// SetPassword stores the password value and clears any password error.
func (s *FormState) SetPassword(value string) {
	s.Password = value
	s.PasswordError = ""
}

// SetCheckbox records the terms checkbox state.
func (s *FormState) SetCheckbox(accepted bool) {
	s.CheckboxAccepted = accepted
}

// ToggleOptions flips the options panel between open and closed.
func (s *FormState) ToggleOptions() {
	s.OptionsExpanded = !s.OptionsExpanded
}

// SetCompact records the viewport bucket.
func (s *FormState) SetCompact(compact bool) {
	s.CompactLayout = compact
}

// SetPreference selects a choice in one of the option radio groups.
func (s *FormState) SetPreference(group PreferenceGroup, choice Choice) error {
	return s.Preferences.Set(group, choice)
}

// SetLocale switches the display language.
func (s *FormState) SetLocale(locale string) error {
	normalized := strings.ToLower(strings.TrimSpace(locale))
	switch normalized {
	case LocaleEnglish, LocaleSpanish:
		s.Locale = normalized
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
}

// Submission is the payload produced by a successful submit. It carries no
// password and is safe to log.
type Submission struct {
	Email         string      `json:"email"`
	TermsAccepted bool        `json:"termsAccepted"`
	Preferences   Preferences `json:"preferences"`
	Locale        string      `json:"locale"`
}

// Submission snapshots the loggable part of the state.
func (s FormState) Submission() Submission {
	return Submission{
		Email:         strings.TrimSpace(s.Email),
		TermsAccepted: s.CheckboxAccepted,
		Preferences:   s.Preferences,
		Locale:        s.Locale,
	}
}

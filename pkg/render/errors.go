package render

import (
	"strings"

	"github.com/goliatone/go-signup/pkg/model"
)

// ErrorMapping splits messages into field-level and form-level buckets keyed
// by the field names used in the rendered form.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors collects the inline errors held in state plus any extra payload.
// Payload keys that do not name a form field (including "", "form" and
// "non_field_errors") become form-level errors so messages are not lost. The
// terms indicator is not included; renderers show it from the checkbox state.
func MapErrors(state model.FormState, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}

	if state.EmailError != "" {
		mapping.Fields[model.FieldEmail] = []string{state.EmailError}
	}
	if state.PasswordError != "" {
		mapping.Fields[model.FieldPassword] = []string{state.PasswordError}
	}

	for rawKey, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(rawKey))
		if isFormLevelKey(key) || !isFieldKey(key) {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[key] = normalizeMessages(append(mapping.Fields[key], normalized...))
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isFieldKey(key string) bool {
	switch key {
	case model.FieldEmail, model.FieldPassword, model.FieldTerms:
		return true
	default:
		return false
	}
}

func isFormLevelKey(key string) bool {
	switch key {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}

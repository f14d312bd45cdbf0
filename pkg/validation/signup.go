package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-signup/pkg/model"
)

// Messages reported by Validate. They double as the English fallbacks for the
// localized catalog entries keyed by the Code* constants.
const (
	MsgEmailBlank          = "Email cannot be blank"
	MsgPasswordBlank       = "Password cannot be blank"
	MsgPasswordLength      = "Password must be at least 8 characters long"
	MsgPasswordComplexity  = "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"
	MsgPasswordSameAsEmail = "Password cannot be the same as email"
	MsgTermsRequired       = "Checkbox must be checked"
)

// Stable message codes used for translation lookups.
const (
	CodeEmailBlank          = "email.blank"
	CodePasswordBlank       = "password.blank"
	CodePasswordLength      = "password.length"
	CodePasswordComplexity  = "password.complexity"
	CodePasswordSameAsEmail = "password.same_as_email"
	CodeTermsRequired       = "terms.required"
)

// MinPasswordLength is the shortest accepted password, counted in characters.
const MinPasswordLength = 8

// PasswordSymbols is the set of special characters a password must draw from.
const PasswordSymbols = "@$!%*?&"

var messageCodes = map[string]string{
	MsgEmailBlank:          CodeEmailBlank,
	MsgPasswordBlank:       CodePasswordBlank,
	MsgPasswordLength:      CodePasswordLength,
	MsgPasswordComplexity:  CodePasswordComplexity,
	MsgPasswordSameAsEmail: CodePasswordSameAsEmail,
	MsgTermsRequired:       CodeTermsRequired,
}

// Issue describes a single failed rule.
type Issue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result captures the validator outcome. Empty error strings mean the field
// passed.
type Result struct {
	Valid         bool   `json:"valid"`
	EmailError    string `json:"emailError,omitempty"`
	PasswordError string `json:"passwordError,omitempty"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// Validate checks the email, the password and the terms checkbox. Every field
// is evaluated so all applicable errors are reported together; within the
// password rules the first failure wins.
func Validate(email, password string, checkboxAccepted bool) Result {
	result := Result{
		EmailError:    validateEmail(email),
		PasswordError: validatePassword(email, password),
		TermsAccepted: checkboxAccepted,
	}
	result.Valid = result.EmailError == "" && result.PasswordError == "" && checkboxAccepted
	return result
}

// ValidateState runs Validate against the values held in state.
func ValidateState(state model.FormState) Result {
	return Validate(state.Email, state.Password, state.CheckboxAccepted)
}

// Apply copies the error strings onto state so they render inline.
func (r Result) Apply(state *model.FormState) {
	if state == nil {
		return
	}
	state.EmailError = r.EmailError
	state.PasswordError = r.PasswordError
}

// Issues lists every failed rule in field order: email, password, terms.
func (r Result) Issues() []Issue {
	var issues []Issue
	if r.EmailError != "" {
		issues = append(issues, Issue{Field: model.FieldEmail, Code: MessageCode(r.EmailError), Message: r.EmailError})
	}
	if r.PasswordError != "" {
		issues = append(issues, Issue{Field: model.FieldPassword, Code: MessageCode(r.PasswordError), Message: r.PasswordError})
	}
	if !r.TermsAccepted {
		issues = append(issues, Issue{Field: model.FieldTerms, Code: CodeTermsRequired, Message: MsgTermsRequired})
	}
	return issues
}

// FieldErrors groups the issues by field name for renderers. It returns nil
// when the result has no issues.
func (r Result) FieldErrors() map[string][]string {
	issues := r.Issues()
	if len(issues) == 0 {
		return nil
	}
	out := make(map[string][]string, len(issues))
	for _, issue := range issues {
		out[issue.Field] = append(out[issue.Field], issue.Message)
	}
	return out
}

// MessageCode maps one of the Msg* messages to its translation code. Unknown
// messages map to an empty string.
func MessageCode(message string) string {
	return messageCodes[strings.TrimSpace(message)]
}

func validateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return MsgEmailBlank
	}
	return ""
}

func validatePassword(email, password string) string {
	switch {
	case strings.TrimSpace(password) == "":
		return MsgPasswordBlank
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return MsgPasswordLength
	case !IsComplexPassword(password):
		return MsgPasswordComplexity
	case password == email:
		return MsgPasswordSameAsEmail
	default:
		return ""
	}
}

// IsComplexPassword reports whether password contains at least one lowercase
// letter, one uppercase letter, one digit and one symbol from PasswordSymbols,
// and nothing outside those classes.
func IsComplexPassword(password string) bool {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}

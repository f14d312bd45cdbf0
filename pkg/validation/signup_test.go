package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/validation"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		checked  bool
		want     validation.Result
	}{
		{
			name:     "all rules pass",
			email:    "ada@example.com",
			password: "Str0ng!Pass",
			checked:  true,
			want:     validation.Result{Valid: true, TermsAccepted: true},
		},
		{
			name:     "blank email",
			email:    "",
			password: "Str0ng!Pass",
			checked:  true,
			want:     validation.Result{EmailError: validation.MsgEmailBlank, TermsAccepted: true},
		},
		{
			name:     "whitespace email",
			email:    "   \t",
			password: "Str0ng!Pass",
			checked:  true,
			want:     validation.Result{EmailError: validation.MsgEmailBlank, TermsAccepted: true},
		},
		{
			name:     "blank password",
			email:    "ada@example.com",
			password: "",
			checked:  true,
			want:     validation.Result{PasswordError: validation.MsgPasswordBlank, TermsAccepted: true},
		},
		{
			name:     "blank password with blank email reports both",
			email:    "",
			password: "   ",
			checked:  true,
			want: validation.Result{
				EmailError:    validation.MsgEmailBlank,
				PasswordError: validation.MsgPasswordBlank,
				TermsAccepted: true,
			},
		},
		{
			name:     "seven characters",
			email:    "ada@example.com",
			password: "short1!",
			checked:  true,
			want:     validation.Result{PasswordError: validation.MsgPasswordLength, TermsAccepted: true},
		},
		{
			name:     "missing uppercase",
			email:    "ada@example.com",
			password: "alllowercase1!",
			checked:  true,
			want:     validation.Result{PasswordError: validation.MsgPasswordComplexity, TermsAccepted: true},
		},
		{
			name:     "missing symbol",
			email:    "ada@example.com",
			password: "NoSymbol123",
			checked:  true,
			want:     validation.Result{PasswordError: validation.MsgPasswordComplexity, TermsAccepted: true},
		},
		{
			name:     "disallowed character",
			email:    "ada@example.com",
			password: "Str0ng!Pass#",
			checked:  true,
			want:     validation.Result{PasswordError: validation.MsgPasswordComplexity, TermsAccepted: true},
		},
		{
			name:     "password equals email",
			email:    "Ab1@Xy.c",
			password: "Ab1@Xy.c",
			checked:  true,
			want:     validation.Result{PasswordError: validation.MsgPasswordComplexity, TermsAccepted: true},
		},
		{
			name:     "password equals complex email",
			email:    "Ab1@Xy!z",
			password: "Ab1@Xy!z",
			checked:  true,
			want:     validation.Result{PasswordError: validation.MsgPasswordSameAsEmail, TermsAccepted: true},
		},
		{
			name:     "terms unchecked",
			email:    "ada@example.com",
			password: "Str0ng!Pass",
			checked:  false,
			want:     validation.Result{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.Validate(tc.email, tc.password, tc.checked)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_PasswordRuleOrder(t *testing.T) {
	// "a@b.com" is too short, so the length rule wins over the equality rule.
	got := validation.Validate("a@b.com", "a@b.com", true)
	if got.PasswordError != validation.MsgPasswordLength {
		t.Fatalf("expected length error first, got %q", got.PasswordError)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	first := validation.Validate("", "short", false)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, validation.Validate("", "short", false)); diff != "" {
			t.Fatalf("validate must be deterministic (-first +again):\n%s", diff)
		}
	}
}

func TestIsComplexPassword(t *testing.T) {
	cases := map[string]bool{
		"Aa1@aaaa":   true,
		"Aa1$Bb2%":   true,
		"aa1@aaaa":   false,
		"AA1@AAAA":   false,
		"Aaa@aaaa":   false,
		"Aa1aaaaa":   false,
		"Aa1@aa aa":  false,
		"Aa1@ааааа":  false,
		"P4ss?word&": true,
	}
	for input, want := range cases {
		if got := validation.IsComplexPassword(input); got != want {
			t.Fatalf("IsComplexPassword(%q): want %v, got %v", input, want, got)
		}
	}
}

func TestResult_IssuesAndFieldErrors(t *testing.T) {
	result := validation.Validate("", "short1!", false)

	wantIssues := []validation.Issue{
		{Field: model.FieldEmail, Code: validation.CodeEmailBlank, Message: validation.MsgEmailBlank},
		{Field: model.FieldPassword, Code: validation.CodePasswordLength, Message: validation.MsgPasswordLength},
		{Field: model.FieldTerms, Code: validation.CodeTermsRequired, Message: validation.MsgTermsRequired},
	}
	if diff := cmp.Diff(wantIssues, result.Issues()); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	wantFields := map[string][]string{
		model.FieldEmail:    {validation.MsgEmailBlank},
		model.FieldPassword: {validation.MsgPasswordLength},
		model.FieldTerms:    {validation.MsgTermsRequired},
	}
	if diff := cmp.Diff(wantFields, result.FieldErrors()); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	valid := validation.Validate("ada@example.com", "Str0ng!Pass", true)
	if valid.FieldErrors() != nil {
		t.Fatalf("expected nil field errors for a valid result")
	}
}

func TestResult_ApplyAndValidateState(t *testing.T) {
	state := model.NewFormState()
	state.SetPassword("short1!")

	result := validation.ValidateState(state)
	result.Apply(&state)

	if state.EmailError != validation.MsgEmailBlank {
		t.Fatalf("expected email error applied, got %q", state.EmailError)
	}
	if state.PasswordError != validation.MsgPasswordLength {
		t.Fatalf("expected password error applied, got %q", state.PasswordError)
	}
}

func TestMessageCode(t *testing.T) {
	if got := validation.MessageCode(validation.MsgPasswordSameAsEmail); got != validation.CodePasswordSameAsEmail {
		t.Fatalf("unexpected code %q", got)
	}
	if got := validation.MessageCode("something else"); got != "" {
		t.Fatalf("expected empty code for unknown message, got %q", got)
	}
}

func TestValidate_LengthCountsRunes(t *testing.T) {
	// Six runes, eight UTF-16 code units.
	got := validation.Validate("x@example.com", "Ab1!😀😀", true)
	if got.PasswordError != validation.MsgPasswordLength {
		t.Fatalf("expected length error for six runes, got %q", got.PasswordError)
	}
}

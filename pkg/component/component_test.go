package component_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/component"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/testsupport"
	"github.com/goliatone/go-signup/pkg/validation"
	"github.com/goliatone/go-signup/pkg/viewport"
)

func TestComponent_SubmitValidLogsSuccess(t *testing.T) {
	logger, logs := testsupport.ObservedLogger(t)

	var received []model.Submission
	c := component.New(
		component.WithLogger(logger),
		component.WithSuccessHandler(func(_ context.Context, s model.Submission) error {
			received = append(received, s)
			return nil
		}),
	)
	c.ChangeEmail(testsupport.ValidEmail)
	c.ChangePassword(testsupport.ValidPassword)
	c.SetCheckbox(true)
	if err := c.ChoosePreference(model.PreferenceEnrich, model.ChoiceNo); err != nil {
		t.Fatalf("choose preference: %v", err)
	}

	result, err := c.Submit(testsupport.Context())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid result, got %+v", result)
	}

	entries := logs.FilterMessage(component.SuccessMessage).All()
	if len(entries) != 1 {
		t.Fatalf("expected one success log line, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["email"]; got != testsupport.ValidEmail {
		t.Fatalf("expected email field in log, got %v", got)
	}
	if _, ok := entries[0].ContextMap()["password"]; ok {
		t.Fatalf("password must never be logged")
	}

	want := []model.Submission{{
		Email:         testsupport.ValidEmail,
		TermsAccepted: true,
		Preferences:   model.Preferences{Enrich: model.ChoiceNo},
		Locale:        model.LocaleEnglish,
	}}
	if diff := cmp.Diff(want, received); diff != "" {
		t.Fatalf("submission mismatch (-want +got):\n%s", diff)
	}
}

func TestComponent_SubmitInvalidSetsErrors(t *testing.T) {
	logger, logs := testsupport.ObservedLogger(t)
	called := false
	c := component.New(
		component.WithLogger(logger),
		component.WithSuccessHandler(func(context.Context, model.Submission) error {
			called = true
			return nil
		}),
	)
	c.ChangePassword("short1!")

	result, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if called {
		t.Fatalf("success handler must not run for invalid input")
	}
	if logs.FilterMessage(component.SuccessMessage).Len() != 0 {
		t.Fatalf("success must not be logged for invalid input")
	}

	state := c.State()
	if state.EmailError != validation.MsgEmailBlank {
		t.Fatalf("expected email error, got %q", state.EmailError)
	}
	if state.PasswordError != validation.MsgPasswordLength {
		t.Fatalf("expected password length error, got %q", state.PasswordError)
	}

	c.ChangeEmail("a")
	if c.State().EmailError != "" {
		t.Fatalf("typing must clear the email error")
	}
	if c.State().PasswordError == "" {
		t.Fatalf("typing in email must not clear the password error")
	}
}

func TestComponent_CheckboxBlocksSubmission(t *testing.T) {
	c := component.New(component.WithState(testsupport.ValidState()))
	c.SetCheckbox(false)

	result, err := c.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Valid || result.TermsAccepted {
		t.Fatalf("expected unchecked terms to invalidate the form, got %+v", result)
	}
	if got := c.State(); got.EmailError != "" || got.PasswordError != "" {
		t.Fatalf("unchecked terms carry no field error, got %+v", c.State())
	}
}

func TestComponent_SubmitCancelledContext(t *testing.T) {
	c := component.New(component.WithState(testsupport.ValidState()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Submit(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestComponent_SuccessHandlerError(t *testing.T) {
	boom := errors.New("boom")
	c := component.New(
		component.WithState(testsupport.ValidState()),
		component.WithSuccessHandler(func(context.Context, model.Submission) error { return boom }),
	)
	if _, err := c.Submit(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped handler error, got %v", err)
	}
}

func TestComponent_MountTracksViewport(t *testing.T) {
	window := viewport.NewWindow(1280)
	c := component.New()

	if err := c.Mount(window); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := c.Mount(window); !errors.Is(err, component.ErrAlreadyMounted) {
		t.Fatalf("expected ErrAlreadyMounted, got %v", err)
	}
	if c.State().CompactLayout {
		t.Fatalf("1280px must render the wide layout")
	}

	window.Resize(899)
	if !c.State().CompactLayout {
		t.Fatalf("899px must render the compact layout")
	}
	window.Resize(900)
	if c.State().CompactLayout {
		t.Fatalf("900px must render the wide layout")
	}

	c.Unmount()
	c.Unmount()
	if c.Mounted() || window.Listeners() != 0 {
		t.Fatalf("unmount must release the resize listener")
	}
	window.Resize(320)
	if c.State().CompactLayout {
		t.Fatalf("unmounted component must ignore resizes")
	}
}

func TestComponent_ObserveWidthWithBreakpoint(t *testing.T) {
	c := component.New(component.WithBreakpoint(79))
	c.ObserveWidth(80)
	if c.State().CompactLayout {
		t.Fatalf("80 columns must be wide with a 79 breakpoint")
	}
	c.ObserveWidth(79)
	if !c.State().CompactLayout {
		t.Fatalf("79 columns must be compact with a 79 breakpoint")
	}
}

func TestComponent_ToggleAndLocale(t *testing.T) {
	c := component.New()
	c.ToggleOptions()
	if !c.State().OptionsExpanded {
		t.Fatalf("expected options expanded")
	}
	if err := c.ChooseLocale("es"); err != nil {
		t.Fatalf("choose locale: %v", err)
	}
	if err := c.ChooseLocale("de"); !errors.Is(err, model.ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
	if c.State().Locale != model.LocaleSpanish {
		t.Fatalf("expected es locale, got %q", c.State().Locale)
	}
}

package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/component"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/viewport"
)

// Renderer implements render.Renderer for terminal-driven sessions. It walks
// the sign-up form field by field, re-prompts the fields that failed
// validation, and returns the accepted submission serialized in the configured
// format.
type Renderer struct {
	driver            PromptDriver
	out               io.Writer
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	logger            *zap.Logger
	onSuccess         component.SuccessHandler
	width             WidthFunc
	compactColumns    int
	maxAttempts       int
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat:   OutputFormatJSON,
		logger:         zap.NewNop(),
		compactColumns: DefaultCompactColumns,
		maxAttempts:    DefaultMaxAttempts,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	if r.width == nil {
		r.width = func() (int, bool) {
			return viewport.TerminalWidth(int(os.Stdout.Fd()))
		}
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render runs an interactive session seeded with state and returns the
// serialized submission once the form validates.
func (r *Renderer) Render(ctx context.Context, state model.FormState, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	comp := component.New(
		component.WithState(state),
		component.WithBreakpoint(r.compactColumns),
		component.WithLogger(r.logger),
		component.WithSuccessHandler(r.onSuccess),
	)

	width, ok := r.width()
	if !ok {
		width = r.compactColumns + 1
	}
	if err := comp.Mount(viewport.NewWindow(width)); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	defer comp.Unmount()

	locale, err := r.promptLocale(ctx, comp, opts)
	if err != nil {
		return nil, err
	}
	pageCopy := render.BuildCopy(locale, opts.Translator, opts.OnMissing)

	if !comp.State().CompactLayout {
		if err := r.info(ctx, pageCopy.BrandName); err != nil {
			return nil, err
		}
		if err := r.info(ctx, pageCopy.Tagline); err != nil {
			return nil, err
		}
	}

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err := r.promptFields(ctx, comp, pageCopy, attempt == 1); err != nil {
			return nil, err
		}

		result, err := comp.Submit(ctx)
		if err != nil {
			return nil, fmt.Errorf("tui: submit: %w", err)
		}
		if result.Valid {
			if err := r.info(ctx, pageCopy.Success); err != nil {
				return nil, err
			}
			return r.finish(comp.State().Submission())
		}

		r.logger.Debug("tui: re-prompting invalid fields", zap.Int("attempt", attempt))
		for _, issue := range result.Issues() {
			msg := render.TranslateMessage(locale, issue.Message, opts.Translator, opts.OnMissing)
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+msg); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("%w (%d attempts)", ErrTooManyAttempts, r.maxAttempts)
}

func (r *Renderer) promptLocale(ctx context.Context, comp *component.Component, opts render.RenderOptions) (string, error) {
	if opts.Locale != "" {
		if err := comp.ChooseLocale(opts.Locale); err != nil {
			return "", fmt.Errorf("tui: %w", err)
		}
		return comp.State().Locale, nil
	}

	locales := []string{model.LocaleEnglish, model.LocaleSpanish}
	current := comp.State().Locale
	pageCopy := render.BuildCopy(current, opts.Translator, opts.OnMissing)

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.theme.PromptPrefix + "Language",
		Options:      []string{pageCopy.LanguageEnglish, pageCopy.LanguageSpanish},
		DefaultIndex: indexOf(locales, current),
	})
	if err != nil {
		return "", err
	}
	if idx >= 0 && idx < len(locales) {
		if err := comp.ChooseLocale(locales[idx]); err != nil {
			return "", fmt.Errorf("tui: %w", err)
		}
	}
	return comp.State().Locale, nil
}

// promptFields asks for every field on the first pass and afterwards only for
// the fields that failed.
func (r *Renderer) promptFields(ctx context.Context, comp *component.Component, pageCopy render.PageCopy, first bool) error {
	state := comp.State()

	if first || state.EmailError != "" {
		email, err := r.driver.Input(ctx, InputConfig{
			Message: r.theme.PromptPrefix + pageCopy.EmailPlaceholder,
			Default: state.Email,
		})
		if err != nil {
			return err
		}
		comp.ChangeEmail(email)
	}

	if first || state.PasswordError != "" {
		password, err := r.driver.Password(ctx, InputConfig{
			Message: r.theme.PromptPrefix + pageCopy.PasswordPlaceholder,
		})
		if err != nil {
			return err
		}
		comp.ChangePassword(password)
	}

	if first || !state.CheckboxAccepted {
		accepted, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: r.theme.PromptPrefix + pageCopy.TermsLabel,
			Default: state.CheckboxAccepted,
		})
		if err != nil {
			return err
		}
		comp.SetCheckbox(accepted)
	}

	if first {
		return r.promptOptions(ctx, comp, pageCopy)
	}
	return nil
}

func (r *Renderer) promptOptions(ctx context.Context, comp *component.Component, pageCopy render.PageCopy) error {
	state := comp.State()
	expand, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: r.theme.PromptPrefix + pageCopy.OptionsToggle,
		Default: state.OptionsExpanded,
	})
	if err != nil {
		return err
	}
	if expand != state.OptionsExpanded {
		comp.ToggleOptions()
	}
	if !expand {
		return nil
	}

	choices := []model.Choice{model.ChoiceYes, model.ChoiceNo}
	for _, pref := range pageCopy.Preferences {
		current, _ := state.Preferences.Get(pref.Group)
		defaultIndex := 0
		if current == model.ChoiceNo {
			defaultIndex = 1
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      r.theme.PromptPrefix + pref.Label,
			Options:      []string{pageCopy.Yes, pageCopy.No},
			DefaultIndex: defaultIndex,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(choices) {
			continue
		}
		if err := comp.ChoosePreference(pref.Group, choices[idx]); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
	}
	return r.info(ctx, pageCopy.OptionsNote)
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) finish(submission model.Submission) ([]byte, error) {
	values := submissionValues(submission)
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values)
}

func submissionValues(submission model.Submission) map[string]any {
	values := map[string]any{
		model.FieldEmail:  submission.Email,
		model.FieldTerms:  submission.TermsAccepted,
		model.FieldLocale: submission.Locale,
	}
	for _, group := range model.PreferenceGroups {
		if choice, _ := submission.Preferences.Get(group); choice != model.ChoiceUnset {
			values[string(group)] = string(choice)
		}
	}
	return values
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	for key, value := range values {
		flattened.Set(key, fmt.Sprint(value))
	}
	return flattened.Encode()
}

func prettyPrint(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%v\n", key, values[key])
	}
	return b.String()
}

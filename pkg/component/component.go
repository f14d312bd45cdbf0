package component

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/validation"
	"github.com/goliatone/go-signup/pkg/viewport"
)

// SuccessMessage is logged when a submission passes validation.
const SuccessMessage = "Form submitted successfully"

// ErrAlreadyMounted is returned when Mount is called twice without Unmount.
var ErrAlreadyMounted = errors.New("component: already mounted")

// SuccessHandler runs after a valid submission.
type SuccessHandler func(ctx context.Context, submission model.Submission) error

// Option configures a Component.
type Option func(*Component)

// WithLogger sets the logger used for the success action.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Component) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBreakpoint overrides the compact layout breakpoint.
func WithBreakpoint(breakpoint int) Option {
	return func(c *Component) {
		c.watcherOpts = append(c.watcherOpts, viewport.WithBreakpoint(breakpoint))
	}
}

// WithSuccessHandler registers a hook invoked after the success log line.
func WithSuccessHandler(fn SuccessHandler) Option {
	return func(c *Component) {
		c.onSuccess = fn
	}
}

// WithState seeds the component with an existing state instead of the mount
// defaults. Servers use it to rebuild a form from posted values.
func WithState(state model.FormState) Option {
	return func(c *Component) {
		c.state = state
	}
}

// Component owns one FormState and its viewport subscription. It is driven by
// a single goroutine and is not safe for concurrent use.
type Component struct {
	state       model.FormState
	logger      *zap.Logger
	onSuccess   SuccessHandler
	watcherOpts []viewport.Option
	watcher     *viewport.Watcher
	sub         *viewport.Subscription
}

// New constructs a component with mount-time defaults.
func New(options ...Option) *Component {
	c := &Component{
		state:  model.NewFormState(),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.watcher = viewport.NewWatcher(c.watcherOpts...)
	return c
}

// Mount subscribes to src, evaluating the compact flag right away and on every
// resize until Unmount.
func (c *Component) Mount(src viewport.Source) error {
	if c.sub != nil {
		return ErrAlreadyMounted
	}
	sub, err := c.watcher.Attach(src, c.state.SetCompact)
	if err != nil {
		return fmt.Errorf("component: mount: %w", err)
	}
	c.sub = sub
	return nil
}

// Unmount releases the viewport subscription. Calling it on an unmounted
// component is a no-op.
func (c *Component) Unmount() {
	c.sub.Release()
	c.sub = nil
}

// Mounted reports whether the component holds a viewport subscription.
func (c *Component) Mounted() bool {
	return c.sub != nil
}

// ObserveWidth applies a single width reading without a subscription, for
// hosts that only know the width once (server renders, terminal sessions).
func (c *Component) ObserveWidth(width int) {
	c.state.SetCompact(c.watcher.Observe(width))
}

// State returns a copy of the current form state.
func (c *Component) State() model.FormState {
	return c.state
}

// ChangeEmail handles an email keystroke.
func (c *Component) ChangeEmail(value string) {
	c.state.SetEmail(value)
}

// ChangePassword handles a password keystroke.
func (c *Component) ChangePassword(value string) {
	c.state.SetPassword(value)
}

// SetCheckbox handles the terms checkbox.
func (c *Component) SetCheckbox(accepted bool) {
	c.state.SetCheckbox(accepted)
}

// ToggleOptions opens or closes the options panel.
func (c *Component) ToggleOptions() {
	c.state.ToggleOptions()
}

// ChoosePreference selects a radio value in the options panel.
func (c *Component) ChoosePreference(group model.PreferenceGroup, choice model.Choice) error {
	return c.state.SetPreference(group, choice)
}

// ChooseLocale switches the language selector.
func (c *Component) ChooseLocale(locale string) error {
	return c.state.SetLocale(locale)
}

// Submit validates the current values and copies the resulting errors into the
// state. A valid submission logs SuccessMessage and runs the success hook; an
// invalid one has no further effect. The returned error is only non-nil for a
// cancelled context or a failing hook.
func (c *Component) Submit(ctx context.Context) (validation.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return validation.Result{}, err
	}

	result := validation.ValidateState(c.state)
	result.Apply(&c.state)

	if !result.Valid {
		c.logger.Debug("form submission rejected",
			zap.Int("issues", len(result.Issues())),
			zap.Bool("termsAccepted", result.TermsAccepted),
		)
		return result, nil
	}

	submission := c.state.Submission()
	c.logger.Info(SuccessMessage,
		zap.String("email", submission.Email),
		zap.String("locale", submission.Locale),
		zap.String("communication", string(submission.Preferences.Communication)),
		zap.String("tailor", string(submission.Preferences.Tailor)),
		zap.String("enrich", string(submission.Preferences.Enrich)),
	)

	if c.onSuccess != nil {
		if err := c.onSuccess(ctx, submission); err != nil {
			return result, fmt.Errorf("component: success handler: %w", err)
		}
	}
	return result, nil
}

package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form state.
type RenderOptions struct {
	// Locale overrides the state's locale when non-empty.
	Locale string
	// Translator resolves page copy and validation messages. When nil the
	// English fallbacks are used.
	Translator Translator
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
	// Theme carries the resolved theme selection (tokens, CSS vars, assets).
	Theme *ThemeConfig
	// Action is the form's submit URL. Defaults to "/signup".
	Action string
	// AssetPrefix is prepended to static asset names when no theme resolves
	// them. Defaults to "/assets".
	AssetPrefix string
	// Breakpoint is the compact layout breakpoint exposed to the client-side
	// resize listener.
	Breakpoint int
	// Submitted marks a render that follows a valid submission.
	Submitted bool
	// Errors carries extra server-side messages keyed by field name. Unknown
	// keys are shown as form-level errors.
	Errors map[string][]string
	// HiddenFields are emitted as hidden inputs (CSRF tokens and the like).
	HiddenFields map[string]string
}

// Defaults applied when RenderOptions leaves a value empty.
const (
	DefaultAction      = "/signup"
	DefaultAssetPrefix = "/assets"
)

// ActionOrDefault returns Action or DefaultAction.
func (o RenderOptions) ActionOrDefault() string {
	if o.Action == "" {
		return DefaultAction
	}
	return o.Action
}

// AssetURL resolves a static asset name through the theme, falling back to
// AssetPrefix.
func (o RenderOptions) AssetURL(name string) string {
	if o.Theme != nil && o.Theme.AssetURL != nil {
		if url := o.Theme.AssetURL(name); url != "" {
			return url
		}
	}
	prefix := o.AssetPrefix
	if prefix == "" {
		prefix = DefaultAssetPrefix
	}
	return joinURL(prefix, name)
}

// LocaleFor picks the locale for a render: the explicit option wins over the
// state's selection.
func (o RenderOptions) LocaleFor(stateLocale string) string {
	if o.Locale != "" {
		return o.Locale
	}
	return stateLocale
}

func joinURL(prefix, name string) string {
	for len(prefix) > 0 && prefix[len(prefix)-1] == '/' {
		prefix = prefix[:len(prefix)-1]
	}
	for len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}
	if prefix == "" {
		return "/" + name
	}
	return prefix + "/" + name
}

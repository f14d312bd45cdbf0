package vanilla

// ChromeClass is a typed identifier for the CSS classes the page template and
// the bundled stylesheet agree on.
type ChromeClass string

const (
	ClassMain       ChromeClass = "signup-main"
	ClassCard       ChromeClass = "signup-card"
	ClassCompact    ChromeClass = "signup-card--compact"
	ClassPanel      ChromeClass = "signup-panel"
	ClassContent    ChromeClass = "signup-content"
	ClassForm       ChromeClass = "signup-form"
	ClassError      ChromeClass = "signup-error"
	ClassFormErrors ChromeClass = "signup-errors"
	ClassSuccess    ChromeClass = "signup-success"
	ClassOptions    ChromeClass = "signup-options"
)

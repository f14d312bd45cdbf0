// Package component binds the sign-up form state to its event handlers: input
// changes, toggles, viewport resizes and submission. It is the Go counterpart
// of a UI component instance and is shared by the HTML server and the
// terminal renderer.
package component

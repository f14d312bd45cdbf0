// Package render defines the renderer contract shared by the HTML and terminal
// front ends, plus the pieces every renderer needs: the registry, per-request
// options, localized page copy, error mapping, hidden fields and theme
// resolution.
package render

// Package orchestrator resolves everything a sign-up page render needs (form
// state, viewport width, theme, translator and renderer) behind a single
// Generate call.
package orchestrator

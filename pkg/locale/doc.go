// Package locale loads the YAML message catalogs behind the language selector
// and implements render.Translator on top of them.
package locale

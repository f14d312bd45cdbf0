// Package model defines the in-memory sign-up form state shared by the
// component, the validators and every renderer. A FormState is created with
// empty defaults when the form mounts, mutated by each keystroke, toggle and
// resize event, and discarded when the form unmounts. Error fields are cleared
// whenever their corresponding input changes so stale messages never outlive
// an edit.
package model

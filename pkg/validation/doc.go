// Package validation implements the sign-up field validator. Validate is a
// pure function of the current field values: it performs no I/O and always
// returns the same Result for the same inputs.
package validation

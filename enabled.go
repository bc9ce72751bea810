//go:build !picolog_off

package picolog

// enabled gates dispatch at compile time. Building with -tags picolog_off
// flips it to false and Message folds away to a no-op.
const enabled = true

//go:build picolog_off

package picolog

const enabled = false

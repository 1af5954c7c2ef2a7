//go:build riveassert

package rive

// defaultStrict is true in riveassert builds: the first contract violation
// panics.
const defaultStrict = true

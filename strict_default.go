//go:build !riveassert

package rive

// defaultStrict is false in regular builds: contract violations are
// recorded and logged, never fatal.
const defaultStrict = false

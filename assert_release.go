//go:build !glassdebug

package glass

// debugAssert is a no-op in the normal build. See assert_debug.go for the
// glassdebug-tagged variant that actually panics on invariant violations.
func debugAssert(cond bool, format string, args ...any) {}

const debugAssertsEnabled = false

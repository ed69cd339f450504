//go:build glassdebug

package glass

import "fmt"

// debugAssert panics with a formatted message when cond is false. Compiled
// in only under the glassdebug build tag, mirroring the teacher's discipline
// of keeping safety checks out of the normal build (§7: "implementations
// should assert in debug").
func debugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("glass: invariant violated: "+format, args...))
	}
}

const debugAssertsEnabled = true

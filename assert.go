//go:build !nochecks

package pixedit

import "fmt"

// checksEnabled reports whether replay consistency checks are compiled in.
// Build with -tags nochecks to strip them from hot paths.
const checksEnabled = true

// assertf panics with a formatted message when cond is false. It guards
// genuine consistency bugs (undo history disagreeing with the image), never
// expected runtime conditions.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("pixedit: " + fmt.Sprintf(format, args...))
	}
}

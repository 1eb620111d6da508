//go:build nochecks

package pixedit

// checksEnabled reports whether replay consistency checks are compiled in.
const checksEnabled = false

func assertf(bool, string, ...any) {}

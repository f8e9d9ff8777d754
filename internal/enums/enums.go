// Package enums covers "one of several" values in Go: iota constants for
// plain enumerations, sealed interfaces for variants that carry data, a
// generic Option for values that may be absent, and switch as the matching
// construct for all of them.
package enums

import (
	"io"
	"log"

	"github.com/marcodamonte/fundamentals/internal/tour"
)

// Walkthrough prints every enum and matching demo in order.
func Walkthrough(w io.Writer, _ *log.Logger) {
	section(w, "iota enums and variants that carry data")
	demoIPAddr(w)

	section(w, "Sealed interfaces — one type per variant")
	demoMessage(w)

	section(w, "Option — a value or nothing")
	demoOption(w)

	section(w, "switch as match")
	demoMatch(w)

	section(w, "if with comma-ok — match one case, ignore the rest")
	demoIfOK(w)
}

func section(w io.Writer, title string) {
	tour.Section(w, title)
}

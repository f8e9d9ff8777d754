// Package basics covers the common programming concepts every later chapter
// relies on: variables and shadowing, data types, functions, and control flow.
//
// Each exported function is a chapter. Each demoX function inside it is one
// self-contained snippet that prints what it shows.
package basics

import (
	"io"

	"github.com/marcodamonte/fundamentals/internal/tour"
)

func section(w io.Writer, title string) {
	tour.Section(w, title)
}

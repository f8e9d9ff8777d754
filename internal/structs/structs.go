// Package structs walks through defining struct types, copying and updating
// them, printing them for debugging, and attaching methods.
package structs

import (
	"io"
	"log"

	"github.com/marcodamonte/fundamentals/internal/tour"
)

// Walkthrough prints every struct demo in order. dbg receives the debug
// prints, each prefixed with the file and line that produced it.
func Walkthrough(w io.Writer, dbg *log.Logger) {
	section(w, "Defining and instantiating")
	demoDefine(w)

	section(w, "Update syntax — copy, then override")
	demoUpdate(w)

	section(w, "Named array types and the empty struct")
	demoNamedTypes(w)

	section(w, "Debug printing — %v, %+v, %#v, struct tags")
	demoDebug(w, dbg)

	section(w, "Methods — value and pointer receivers")
	demoMethods(w)
}

func section(w io.Writer, title string) {
	tour.Section(w, title)
}

// Package ownership shows who owns a value in Go and what happens when it is
// assigned, passed, returned, pointed at, or sliced.
//
// Go has no ownership rules in the compiler. Memory is reclaimed by the
// garbage collector once nothing references it, assignment always copies,
// and "moving" a value is a convention documented on the API (for example,
// bytes.NewBuffer takes over the slice it is given). What matters in practice
// is which copies share storage:
//
//	copied completely:  numbers, bools, arrays, structs of those
//	copied as a header: strings (immutable), slices, maps, channels, pointers
//
// The demos below print what each case does.
package ownership

import (
	"io"
	"log"

	"github.com/marcodamonte/fundamentals/internal/tour"
)

// Walkthrough prints every ownership demo in order. dbg receives the
// cleanup and address traces that only matter when debugging.
func Walkthrough(w io.Writer, dbg *log.Logger) {
	section(w, "Strings — immutable string vs growable buffers")
	demoStrings(w)

	section(w, "Scope — unreachable values are collected, defer releases resources")
	demoScope(w, dbg)

	section(w, "Assignment — always a copy, sometimes of a header")
	demoCopy(w, dbg)

	section(w, "Functions — arguments and results are copies too")
	demoFunctions(w)

	section(w, "Pointers — the Go way to borrow for writing")
	demoPointers(w)

	section(w, "String slices — byte ranges into the same storage")
	demoStringSlices(w)

	section(w, "Slice headers — shared backing arrays")
	demoSharedBacking(w)
}

func section(w io.Writer, title string) {
	tour.Section(w, title)
}

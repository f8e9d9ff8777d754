package ownership

import (
	"fmt"
	"io"
	"log"
)

// Leaving a block makes its variables unreachable, and the garbage collector
// reclaims their memory at some later point. Memory never needs releasing by
// hand, but files, locks and connections do, and for those Go has defer.
//
//	{
//		s := "hello" // s is valid from here
//		_ = s
//	} // s is out of scope; no code can reach it any more
//
// Deferred calls run when the surrounding FUNCTION returns, in LIFO order.
// Arguments are evaluated at the defer statement.

// resource stands in for anything with a Close method.
type resource struct {
	name string
	w    io.Writer
	dbg  *log.Logger
}

func acquire(w io.Writer, dbg *log.Logger, name string) *resource {
	fmt.Fprintf(w, "  acquire %s\n", name)
	return &resource{name: name, w: w, dbg: dbg}
}

func (r *resource) Close() {
	fmt.Fprintf(r.w, "  release %s\n", r.name)
	r.dbg.Printf("released %s", r.name)
}

func useTwo(w io.Writer, dbg *log.Logger) {
	a := acquire(w, dbg, "a")
	defer a.Close()

	b := acquire(w, dbg, "b")
	defer b.Close()

	fmt.Fprintln(w, "  using a and b")
}

// deferInBlock shows the gotcha: a block end does not trigger defer.
func deferInBlock(w io.Writer, dbg *log.Logger) {
	{
		r := acquire(w, dbg, "block")
		defer r.Close()
	}
	fmt.Fprintln(w, "  block ended, resource still held")
}

func demoScope(w io.Writer, dbg *log.Logger) {
	fmt.Fprintln(w, "  ── LIFO release ──")
	useTwo(w, dbg)

	fmt.Fprintln(w, "\n  ── defer is function-scoped, not block-scoped ──")
	deferInBlock(w, dbg)
}

package basics

import (
	"fmt"
	"io"
	"log"
)

// Go variables are mutable once declared; immutability is reserved for
// constants, which must be known at compile time.
//
// Shadowing happens when := declares a name that already exists in an outer
// scope. The outer variable is untouched and comes back when the block ends.
// The same name cannot be declared twice in one block:
//
//	x := 5
//	x := x + 1 // compile error: no new variables on left side of :=
//
// so every shadow below opens a new block.

const maxPoints = 100_000

func demoMutability(w io.Writer) {
	x := 5
	fmt.Fprintf(w, "  The value of x is: %d\n", x)
	x = 6 // plain assignment; no "mut" needed
	fmt.Fprintf(w, "  The value of x is: %d\n", x)

	// maxPoints = 1 // compile error: cannot assign to maxPoints
	fmt.Fprintf(w, "  const maxPoints = %d\n", maxPoints)

	// var without an initializer gets the zero value of its type.
	var (
		n  int
		s  string
		ok bool
	)
	fmt.Fprintf(w, "  zero values: int=%d string=%q bool=%v\n", n, s, ok)
}

func demoShadowing(w io.Writer) {
	x := 5
	{
		x := x + 1 // reads the outer x, then hides it
		{
			x := x * 2
			fmt.Fprintf(w, "  The value of x in the inner scope is: %d\n", x)
		}
		fmt.Fprintf(w, "  The value of x is: %d\n", x)
	}
	fmt.Fprintf(w, "  outside every block x is back to: %d\n", x)

	// A shadow can change the type, something assignment never allows.
	spaces := "   "
	{
		spaces := len(spaces)
		fmt.Fprintf(w, "  spaces shadowed as %T: %d\n", spaces, spaces)
	}
	fmt.Fprintf(w, "  spaces outside: %q\n", spaces)

	// spaces = len(spaces) // compile error: cannot use len(spaces) (int) as string
}

func demoIndependentScope(w io.Writer) {
	x := 6
	// The closure body is its own scope: its x starts from the outer one
	// and the result is handed back as a value.
	computed := func() int {
		x := x + 5
		return x
	}()
	fmt.Fprintf(w, "  The value of x is: %d\n", computed)
	fmt.Fprintf(w, "  the enclosing x is still: %d\n", x)

	// The classic gotcha: := inside if shadows instead of assigning.
	result := "unset"
	if true {
		result := "set inside if"
		_ = result
	}
	fmt.Fprintf(w, "  result after if: %q\n", result)
}

// Variables walks through bindings, mutability and shadowing.
func Variables(w io.Writer, _ *log.Logger) {
	section(w, "Mutability — variables change, constants never do")
	demoMutability(w)

	section(w, "Shadowing — a new block, a new binding")
	demoShadowing(w)

	section(w, "Independent scope — compute from a shadow, leave the original alone")
	demoIndependentScope(w)
}

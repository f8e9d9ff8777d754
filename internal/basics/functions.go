package basics

import (
	"fmt"
	"io"
	"log"
)

// Every parameter carries its type; consecutive parameters of the same type
// can share it (a, b int). Named functions live at package level only; inside
// a function body use a func literal instead.

func printLabeledMeasurement(w io.Writer, value int, unitLabel rune) {
	fmt.Fprintf(w, "  The measurement is: %d%c\n", value, unitLabel)
}

func demoParameters(w io.Writer) {
	printLabeledMeasurement(w, 5, 'h')

	// A local helper is a variable holding a func literal.
	square := func(n int) int { return n * n }
	fmt.Fprintf(w, "  square(7) = %d\n", square(7))
}

// Statements perform an action and produce no value: declarations,
// assignments, if, for and switch are all statements in Go.
//
//	x := (y := 6) // syntax error: unexpected :=, expected expression
//
// Go has no block expressions. To compute a value inside its own scope, call
// a func literal immediately.
func demoStatementsVsExpressions(w io.Writer) {
	y := func() int {
		x := 3
		return x + 1
	}()
	fmt.Fprintf(w, "  The value of y is: %d\n", y)

	// A block that "returns nothing" still has a value if we name one:
	// the empty struct is Go's unit value.
	unit := func() struct{} {
		x := 3
		_ = x + 1
		return struct{}{}
	}()
	fmt.Fprintf(w, "  a block with no result: %v\n", unit)
}

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

// split uses named results; a bare return hands back their current values.
func split(sum int) (x, y int) {
	x = sum * 4 / 9
	y = sum - x
	return
}

func demoResults(w io.Writer) {
	q, r := divmod(17, 5)
	fmt.Fprintf(w, "  divmod(17, 5) = %d, %d\n", q, r)

	x, y := split(17)
	fmt.Fprintf(w, "  split(17) = %d, %d\n", x, y)
}

func counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

func demoFuncValues(w io.Writer) {
	apply := func(f func(int) int, v int) int { return f(v) }
	double := func(n int) int { return n * 2 }
	fmt.Fprintf(w, "  apply(double, 21) = %d\n", apply(double, 21))

	next := counter()
	a, b, c := next(), next(), next()
	fmt.Fprintf(w, "  counter: %d %d %d\n", a, b, c)
}

// Functions walks through parameters, results and the statement/expression split.
func Functions(w io.Writer, _ *log.Logger) {
	section(w, "Parameters")
	demoParameters(w)

	section(w, "Statements vs expressions")
	demoStatementsVsExpressions(w)

	section(w, "Multiple and named results")
	demoResults(w)

	section(w, "Functions are values")
	demoFuncValues(w)
}

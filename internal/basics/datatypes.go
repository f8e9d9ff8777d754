package basics

import (
	"fmt"
	"io"
	"log"
	"math"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Go is statically typed: every value has one type known at compile time and
// there are no implicit numeric conversions.
//
//	var guess uint32 = "42" // compile error: cannot use "42" (untyped string constant) as uint32 value
//
// Integer types
// ─────────────
//
//	Length  Signed  Unsigned
//	8-bit   int8    uint8 (byte)
//	16-bit  int16   uint16
//	32-bit  int32   uint32      rune is an alias for int32
//	64-bit  int64   uint64
//	arch    int     uint        32 or 64 bits, see strconv.IntSize
//
// Signed range is -(2^(n-1)) to 2^(n-1)-1, unsigned is 0 to 2^n-1.

func demoIntegers(w io.Writer) {
	ranges := []struct {
		name     string
		min, max any
	}{
		{"int8", int8(math.MinInt8), int8(math.MaxInt8)},
		{"uint8", uint8(0), uint8(math.MaxUint8)},
		{"int16", int16(math.MinInt16), int16(math.MaxInt16)},
		{"uint16", uint16(0), uint16(math.MaxUint16)},
		{"int32", int32(math.MinInt32), int32(math.MaxInt32)},
		{"uint32", uint32(0), uint32(math.MaxUint32)},
		{"int64", int64(math.MinInt64), int64(math.MaxInt64)},
		{"uint64", uint64(0), uint64(math.MaxUint64)},
	}
	for _, r := range ranges {
		fmt.Fprintf(w, "  %-7s %v .. %v\n", r.name, r.min, r.max)
	}

	// Overflow wraps silently at runtime; constants are checked at compile time.
	//
	//	var b uint8 = 256 // compile error: cannot use 256 (untyped int constant) as uint8 value (overflows)
	var b uint8 = 255
	b++
	fmt.Fprintf(w, "  uint8 255 + 1 wraps to %d\n", b)

	fmt.Fprintln(w, "\n  Literals:")
	literals := []struct {
		src string
		val int
	}{
		{"98_222", 98_222},
		{"0xff", 0xff},
		{"0o77", 0o77},
		{"0b1111_0000", 0b1111_0000},
		{"'A'", 'A'},
	}
	for _, l := range literals {
		fmt.Fprintf(w, "  %-12s = %d\n", l.src, l.val)
	}
}

func demoFloats(w io.Writer) {
	x := 2.0 // untyped float constants default to float64
	var y float32 = 3.0
	fmt.Fprintf(w, "  x := 2.0 is %T (%v)\n", x, x)
	fmt.Fprintf(w, "  var y float32 = 3.0 is %T (%v)\n", y, y)

	// Booleans are their own type; numbers are never truthy.
	t := true
	fmt.Fprintf(w, "  t := true is %T\n", t)

	// A rune is a Unicode code point, a string is UTF-8 bytes.
	c := 'z'
	fmt.Fprintf(w, "  c := 'z' is %T (rune) = %d\n", c, c)
	fmt.Fprintf(w, "  '😻' needs %d bytes in UTF-8\n", utf8.RuneLen('😻'))
}

func demoNumericOps(w io.Writer) {
	sum := 5 + 10
	fmt.Fprintf(w, "  5 + 10 = %d\n", sum)

	difference := 10 - 5
	fmt.Fprintf(w, "  10 - 5 = %d\n", difference)

	product := 5 * 10
	fmt.Fprintf(w, "  5 * 10 = %d\n", product)

	// Variables, not constants: constant expressions are evaluated exactly
	// and rounded once, which can differ in the last digit.
	a, b := 56.7, 32.2
	quotient := a / b
	fmt.Fprintf(w, "  56.7 / 32.2 = %v\n", quotient)

	truncated := -5 / 3 // integer division truncates toward zero
	fmt.Fprintf(w, "  -5 / 3 = %d\n", truncated)

	remainder := 43 % 5
	fmt.Fprintf(w, "  43 %% 5 = %d\n", remainder)
	fmt.Fprintf(w, "  -5 %% 3 = %d  (sign follows the dividend)\n", -5%3)
}

// Binary floating point cannot represent most decimal fractions. When the
// digits matter (money), use a decimal type instead.
func demoDecimal(w io.Writer) {
	f1, f2 := 0.1, 0.2
	fmt.Fprintf(w, "  float64: 0.1 + 0.2 = %v\n", f1+f2)

	d1 := decimal.RequireFromString("0.1")
	d2 := decimal.RequireFromString("0.2")
	fmt.Fprintf(w, "  decimal: 0.1 + 0.2 = %s\n", d1.Add(d2))

	q := decimal.RequireFromString("56.7").Div(decimal.RequireFromString("32.2"))
	fmt.Fprintf(w, "  decimal: 56.7 / 32.2 = %s (rounded to %d places)\n", q, decimal.DivisionPrecision)
	fmt.Fprintf(w, "  decimal: 56.7 / 32.2 = %s (rounded to 2 places)\n", q.StringFixed(2))
}

// triple stands in for a tuple: Go returns several values instead.
func triple() (int, float64, int) {
	return 500, 6.4, 1
}

func demoCompound(w io.Writer) {
	_, y, _ := triple()
	fmt.Fprintf(w, "  The value of y is: %v\n", y)

	// An anonymous struct groups mixed types when they must travel together.
	tup := struct {
		A int
		B float64
		C int
	}{500, 6.4, 1}
	fmt.Fprintf(w, "  tup = %+v\n", tup)
	fmt.Fprintf(w, "  tup.A: %d\n", tup.A)
}

func demoArrays(w io.Writer) {
	// The length is part of the type: [12]string and [11]string differ.
	months := [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	fmt.Fprintf(w, "  months[0]: %s  len=%d\n", months[0], len(months))

	// Arrays are values: assignment copies every element.
	copied := months
	copied[0] = "Enero"
	fmt.Fprintf(w, "  after copied[0] = %q: months[0]=%s copied[0]=%s\n", "Enero", months[0], copied[0])

	// A constant index is checked by the compiler:
	//
	//	element := months[15] // compile error: invalid argument: index 15 out of bounds [0:12]
	//
	// a variable index panics at runtime instead, so check first.
	idx := 15
	if idx < len(months) {
		fmt.Fprintf(w, "  months[%d]: %s\n", idx, months[idx])
	} else {
		fmt.Fprintf(w, "  index %d is out of range (len %d)\n", idx, len(months))
	}
}

// DataTypes walks through scalar and compound types.
func DataTypes(w io.Writer, _ *log.Logger) {
	section(w, "Integers — sizes, ranges, literals")
	demoIntegers(w)

	section(w, "Floats, booleans and runes")
	demoFloats(w)

	section(w, "Numeric operations")
	demoNumericOps(w)

	section(w, "Exact decimals — float64 vs decimal.Decimal")
	demoDecimal(w)

	section(w, "Compound types — multiple returns and anonymous structs")
	demoCompound(w)

	section(w, "Arrays — fixed size, copied by value")
	demoArrays(w)
}

package basics_test

import (
	"os"

	"github.com/marcodamonte/fundamentals/internal/basics"
	"github.com/marcodamonte/fundamentals/internal/tour"
)

func ExampleVariables() {
	basics.Variables(os.Stdout, tour.Discard())
	// Output:
	// ━━━ Mutability — variables change, constants never do ━━━
	//   The value of x is: 5
	//   The value of x is: 6
	//   const maxPoints = 100000
	//   zero values: int=0 string="" bool=false
	//
	// ━━━ Shadowing — a new block, a new binding ━━━
	//   The value of x in the inner scope is: 12
	//   The value of x is: 6
	//   outside every block x is back to: 5
	//   spaces shadowed as int: 3
	//   spaces outside: "   "
	//
	// ━━━ Independent scope — compute from a shadow, leave the original alone ━━━
	//   The value of x is: 11
	//   the enclosing x is still: 6
	//   result after if: "unset"
}

func ExampleDataTypes() {
	basics.DataTypes(os.Stdout, tour.Discard())
	// Output:
	// ━━━ Integers — sizes, ranges, literals ━━━
	//   int8    -128 .. 127
	//   uint8   0 .. 255
	//   int16   -32768 .. 32767
	//   uint16  0 .. 65535
	//   int32   -2147483648 .. 2147483647
	//   uint32  0 .. 4294967295
	//   int64   -9223372036854775808 .. 9223372036854775807
	//   uint64  0 .. 18446744073709551615
	//   uint8 255 + 1 wraps to 0
	//
	//   Literals:
	//   98_222       = 98222
	//   0xff         = 255
	//   0o77         = 63
	//   0b1111_0000  = 240
	//   'A'          = 65
	//
	// ━━━ Floats, booleans and runes ━━━
	//   x := 2.0 is float64 (2)
	//   var y float32 = 3.0 is float32 (3)
	//   t := true is bool
	//   c := 'z' is int32 (rune) = 122
	//   '😻' needs 4 bytes in UTF-8
	//
	// ━━━ Numeric operations ━━━
	//   5 + 10 = 15
	//   10 - 5 = 5
	//   5 * 10 = 50
	//   56.7 / 32.2 = 1.7608695652173911
	//   -5 / 3 = -1
	//   43 % 5 = 3
	//   -5 % 3 = -2  (sign follows the dividend)
	//
	// ━━━ Exact decimals — float64 vs decimal.Decimal ━━━
	//   float64: 0.1 + 0.2 = 0.30000000000000004
	//   decimal: 0.1 + 0.2 = 0.3
	//   decimal: 56.7 / 32.2 = 1.7608695652173913 (rounded to 16 places)
	//   decimal: 56.7 / 32.2 = 1.76 (rounded to 2 places)
	//
	// ━━━ Compound types — multiple returns and anonymous structs ━━━
	//   The value of y is: 6.4
	//   tup = {A:500 B:6.4 C:1}
	//   tup.A: 500
	//
	// ━━━ Arrays — fixed size, copied by value ━━━
	//   months[0]: January  len=12
	//   after copied[0] = "Enero": months[0]=January copied[0]=Enero
	//   index 15 is out of range (len 12)
}

func ExampleFunctions() {
	basics.Functions(os.Stdout, tour.Discard())
	// Output:
	// ━━━ Parameters ━━━
	//   The measurement is: 5h
	//   square(7) = 49
	//
	// ━━━ Statements vs expressions ━━━
	//   The value of y is: 4
	//   a block with no result: {}
	//
	// ━━━ Multiple and named results ━━━
	//   divmod(17, 5) = 3, 2
	//   split(17) = 7, 10
	//
	// ━━━ Functions are values ━━━
	//   apply(double, 21) = 42
	//   counter: 1 2 3
}

func ExampleControlFlow() {
	basics.ControlFlow(os.Stdout, tour.Discard())
	// Output:
	// ━━━ if / else if / else ━━━
	//   condition was true
	//   number is divisible by 3
	//   6 % 4 leaves 2
	//
	// ━━━ Conditional assignment ━━━
	//   The value of number is: 5
	//
	// ━━━ for — the only loop keyword ━━━
	//   This is a loop, but i'm breaking out so i don't crash
	//   The result is 20
	//
	// ━━━ Labels — break out of an outer loop ━━━
	//   count = 0
	//   remaining = 10
	//   remaining = 9
	//   count = 1
	//   remaining = 10
	//   remaining = 9
	//   count = 2
	//   remaining = 10
	//   End count = 2
	//
	// ━━━ While-style loops and range ━━━
	//   3!
	//   2!
	//   1!
	//   LIFTOFF!!!
	//   the value is: 10
	//   the value is: 20
	//   the value is: 30
	//   the value is: 40
	//   the value is: 50
	//   3!
	//   2!
	//   1!
	//   LIFTOFF!!!
	//
	// ━━━ switch ━━━
	//   grade(95) = A, grade(85) = B, grade(40) = C
	//   sun is a weekend day
	//   wed is a weekday
}

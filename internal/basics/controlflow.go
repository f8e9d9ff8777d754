package basics

import (
	"fmt"
	"io"
	"log"
)

// ── if ────────────────────────────────────────────────────────────────────────
// Conditions must be bool. There is no truthiness:
//
//	if number { } // compile error: non-boolean condition in if statement

func demoIf(w io.Writer) {
	number := 3
	if number < 5 {
		fmt.Fprintln(w, "  condition was true")
	} else {
		fmt.Fprintln(w, "  condition was false")
	}

	number = 6
	if number%4 == 0 {
		fmt.Fprintln(w, "  number is divisible by 4")
	} else if number%3 == 0 {
		fmt.Fprintln(w, "  number is divisible by 3")
	} else if number%2 == 0 {
		fmt.Fprintln(w, "  number is divisible by 2")
	} else {
		fmt.Fprintln(w, "  number is not divisible by 4, 3, or 2")
	}

	// The init statement scopes r to the if/else chain.
	if r := number % 4; r != 0 {
		fmt.Fprintf(w, "  %d %% 4 leaves %d\n", number, r)
	}
}

// if is a statement, so it cannot sit on the right of :=. Declare first and
// assign in each arm; the compiler still enforces one type for both arms.
//
//	number = "six" // compile error: cannot use "six" (untyped string constant) as int value
func demoConditionalAssign(w io.Writer) {
	condition := true
	var number int
	if condition {
		number = 5
	} else {
		number = 6
	}
	fmt.Fprintf(w, "  The value of number is: %d\n", number)
}

func demoLoops(w io.Writer) {
	for {
		fmt.Fprintln(w, "  This is a loop, but i'm breaking out so i don't crash")
		break
	}

	// break carries no value; the result lives in a variable declared outside.
	counter := 0
	var result int
	for {
		counter++
		if counter == 10 {
			result = counter * 2
			break
		}
	}
	fmt.Fprintf(w, "  The result is %d\n", result)
}

func demoLabels(w io.Writer) {
	count := 0
countingUp:
	for {
		fmt.Fprintf(w, "  count = %d\n", count)
		remaining := 10
		for {
			fmt.Fprintf(w, "  remaining = %d\n", remaining)
			if remaining == 9 {
				break
			}
			if count == 2 {
				break countingUp
			}
			remaining--
		}
		count++
	}
	fmt.Fprintf(w, "  End count = %d\n", count)
}

func demoWhileAndRange(w io.Writer) {
	number := 3
	for number != 0 {
		fmt.Fprintf(w, "  %d!\n", number)
		number--
	}
	fmt.Fprintln(w, "  LIFTOFF!!!")

	a := [5]int{10, 20, 30, 40, 50}
	for _, element := range a {
		fmt.Fprintf(w, "  the value is: %d\n", element)
	}

	// range over an int counts 0..n-1; flip it for a countdown.
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "  %d!\n", 3-i)
	}
	fmt.Fprintln(w, "  LIFTOFF!!!")
}

func grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	default:
		return "C"
	}
}

// switch cases do not fall through, and one case may list several values.
func demoSwitch(w io.Writer) {
	fmt.Fprintf(w, "  grade(95) = %s, grade(85) = %s, grade(40) = %s\n", grade(95), grade(85), grade(40))

	for _, day := range []string{"sun", "wed"} {
		switch day {
		case "sat", "sun":
			fmt.Fprintf(w, "  %s is a weekend day\n", day)
		default:
			fmt.Fprintf(w, "  %s is a weekday\n", day)
		}
	}
}

// ControlFlow walks through if, for, labels and switch.
func ControlFlow(w io.Writer, _ *log.Logger) {
	section(w, "if / else if / else")
	demoIf(w)

	section(w, "Conditional assignment")
	demoConditionalAssign(w)

	section(w, "for — the only loop keyword")
	demoLoops(w)

	section(w, "Labels — break out of an outer loop")
	demoLabels(w)

	section(w, "While-style loops and range")
	demoWhileAndRange(w)

	section(w, "switch")
	demoSwitch(w)
}

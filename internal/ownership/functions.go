package ownership

import (
	"fmt"
	"io"
)

// Passing an argument works exactly like assignment: the callee gets a copy.
// Nothing is invalidated in the caller afterwards.

func takesOwnership(w io.Writer, someString string) {
	fmt.Fprintf(w, "  %s\n", someString)
}

func makesCopy(w io.Writer, anInteger int) {
	fmt.Fprintf(w, "  %d\n", anInteger)
}

// givesOwnership hands its local to the caller; escape analysis decides
// whether the bytes live on the heap.
func givesOwnership() string {
	someString := "yours"
	return someString
}

func takesAndGivesBack(aString string) string {
	return aString
}

// calculateLength returns the string alongside its length, the way one would
// if passing the string gave it away. In Go the caller never lost it.
func calculateLength(s string) (string, int) {
	return s, len(s)
}

func demoFunctions(w io.Writer) {
	s := "hello"
	takesOwnership(w, s)

	x := 5
	makesCopy(w, x)
	fmt.Fprintf(w, "  OG: %d\n", x)
	fmt.Fprintf(w, "  s after the call: %s\n", s)

	s1 := givesOwnership()
	s3 := takesAndGivesBack("hello")
	fmt.Fprintf(w, "  s1 = %s, s3 = %s\n", s1, s3)

	s2, length := calculateLength("hello")
	fmt.Fprintf(w, "  The length of '%s' is %d.\n", s2, length)
}

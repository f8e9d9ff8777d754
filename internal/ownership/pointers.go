package ownership

import (
	"fmt"
	"io"
)

// A pointer gives the callee access to the caller's variable. Go does not
// limit how many pointers exist or whether they write; the programmer keeps
// track of aliasing. The compiler only guarantees no pointer ever dangles:
// a local whose address escapes is moved to the heap.

func lengthOf(s *string) int {
	return len(*s)
}

func change(someString *string) {
	*someString += ", world"
}

// changeCopy gets its own copy; the caller sees nothing.
func changeCopy(someString string) {
	someString += ", world"
	_ = someString
}

// noDangle returns the address of a local, which is safe in Go.
func noDangle() *string {
	s := "hello"
	return &s
}

func demoPointers(w io.Writer) {
	s1 := "hello"
	fmt.Fprintf(w, "  lengthOf(&s1) = %d\n", lengthOf(&s1))

	s := "hello"
	change(&s)
	fmt.Fprintf(w, "  after change(&s): %s\n", s)

	s2 := "hello"
	changeCopy(s2)
	fmt.Fprintf(w, "  after changeCopy(s2): %s\n", s2)

	// Two writers to the same variable compile fine; both see every write.
	n := 1
	r1, r2 := &n, &n
	*r1 += 10
	*r2 *= 2
	fmt.Fprintf(w, "  n = %d after *r1 += 10 and *r2 *= 2\n", n)

	fmt.Fprintf(w, "  *noDangle() = %s\n", *noDangle())

	var p *int
	fmt.Fprintf(w, "  zero pointer is nil: %v\n", p == nil)
	// fmt.Println(*p) // panic: runtime error: invalid memory address or nil pointer dereference
}

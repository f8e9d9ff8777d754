package ownership

import (
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
)

// Assignment copies the value on the right. For an int that is the whole
// value. For a string, slice or map it is a small header that still points at
// the same underlying storage, so nothing is "moved" and the source stays
// valid. Whether the two copies can disturb each other depends on whether the
// storage is mutable.

func demoCopy(w io.Writer, dbg *log.Logger) {
	x := 5
	y := x
	y++
	fmt.Fprintf(w, "  x = %d, y = %d  (ints are copied)\n", x, y)

	s1 := "hello"
	s2 := s1 // both headers point at the same bytes; strings are immutable, so that is safe
	fmt.Fprintf(w, "  s1 = %s, s2 = %s\n", s1, s2)

	// strings.Clone forces a fresh copy, useful to stop a small substring
	// from keeping a large parent alive.
	s3 := strings.Clone(s1)
	fmt.Fprintf(w, "  strings.Clone(s1) = %s\n", s3)

	a := []int{1, 2, 3}
	b := a // same backing array
	b[0] = 99
	fmt.Fprintf(w, "  a = %v, b = %v  (slice header copied, array shared)\n", a, b)
	dbg.Printf("a data %p, b data %p", &a[0], &b[0])

	c := slices.Clone(a) // the explicit deep copy
	c[0] = 1
	fmt.Fprintf(w, "  a = %v, c = %v  (slices.Clone copies the elements)\n", a, c)
	dbg.Printf("a data %p, c data %p", &a[0], &c[0])

	m1 := map[string]int{"a": 1}
	m2 := m1
	m2["a"] = 2
	fmt.Fprintf(w, "  m1[%q] = %d  (maps share their table)\n", "a", m1["a"])
}

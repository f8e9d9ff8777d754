package ownership

import (
	"fmt"
	"io"
	"strings"
)

// A string is an immutable (ptr, len) pair. To grow text, build it in a
// strings.Builder or a []byte and convert once at the end.
//
//	s := "hello"
//	s[0] = 'H' // compile error: cannot assign to s[0] (neither addressable nor a map index expression)

func demoStrings(w io.Writer) {
	var b strings.Builder
	b.WriteString("hello")
	b.WriteString(", world!") // appends in place while capacity allows
	fmt.Fprintf(w, "  builder: %s\n", b.String())

	buf := []byte("hello") // conversion copies the bytes; buf is ours to change
	buf = append(buf, ", world!"...)
	buf[0] = 'H'
	fmt.Fprintf(w, "  bytes: %s  len=%d\n", buf, len(buf))

	// += allocates a new string every time; fine for a few pieces.
	s := "hello"
	s += ", world!"
	fmt.Fprintf(w, "  concat: %s\n", s)
}

package ownership

import (
	"fmt"
	"io"
)

// ── String slices ────────────────────────────────────────────────────────────
// s[lo:hi] is a new string header pointing into the same bytes. Indices are
// BYTE offsets, so slicing UTF-8 text in the middle of a rune yields an
// invalid string rather than a panic.

// firstWord returns the text up to the first space, sharing s's storage.
func firstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}
	return s
}

func demoStringSlices(w io.Writer) {
	s := "hello"
	fmt.Fprintf(w, "  s[0:2] = %s, s[:2] = %s\n", s[0:2], s[:2])
	fmt.Fprintf(w, "  s[0:len(s)] = %s, s[0:] = %s, s[:] = %s\n", s[0:len(s)], s[0:], s[:])

	for _, text := range []string{"hello world", "nospace"} {
		fmt.Fprintf(w, "  firstWord(%q) = %q\n", text, firstWord(text))
	}

	accented := "héllo"
	fmt.Fprintf(w, "  %q[:2] = %q  (splits the é)\n", accented, accented[:2])
	fmt.Fprintf(w, "  string([]rune(%q)[:2]) = %q\n", accented, string([]rune(accented)[:2]))
}

// ── Slice headers ────────────────────────────────────────────────────────────
// A slice is {ptr, len, cap}. Reslicing copies the header and keeps the
// array, so writes through one view show up in the other, and append writes
// in place whenever cap leaves room.
//
//	a := [1 2 3 4 5]        b := a[1:4]
//	      ▲                       │
//	      └───── same array ──────┘

func printS(w io.Writer, label string, s []int) {
	fmt.Fprintf(w, "  %-16s %v  len=%d cap=%d\n", label+":", s, len(s), cap(s))
}

func demoSharedBacking(w io.Writer) {
	a := []int{1, 2, 3, 4, 5}
	b := a[1:4]
	printS(w, "a", a)
	printS(w, "b = a[1:4]", b)

	b[0] = 99
	fmt.Fprintln(w, "\n  after b[0] = 99:")
	printS(w, "a", a)
	printS(w, "b", b)

	// cap(b) = 4 > len(b): append reuses a[4].
	b = append(b, 100)
	fmt.Fprintln(w, "\n  after b = append(b, 100):")
	printS(w, "a", a)
	printS(w, "b", b)

	// The full slice expression a[lo:hi:max] caps the view so append must
	// allocate a fresh array instead of writing into a.
	c := a[1:3:3]
	fmt.Fprintln(w)
	printS(w, "c = a[1:3:3]", c)
	c = append(c, 7)
	fmt.Fprintf(w, "  after c = append(c, 7): c=%v a=%v\n", c, a)
}

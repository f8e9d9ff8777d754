package structs

import (
	"fmt"
	"io"
	"unsafe"
)

// Color and Point share an underlying type but are distinct types: a Point
// is never accepted where a Color is expected without an explicit
// conversion.
type (
	Color [3]int
	Point [3]int
)

// AlwaysEqual carries no data. Every value of it is equal to every other and
// it occupies no memory, which makes it the usual set-member and signal type
// (map[string]struct{}, chan struct{}).
type AlwaysEqual struct{}

func demoNamedTypes(w io.Writer) {
	black := Color{0, 0, 0}
	var origin Point

	// var p Point = black // compile error: cannot use black (variable of type Color) as Point value in variable declaration
	fmt.Fprintf(w, "  black is %T, origin is %T\n", black, origin)
	fmt.Fprintf(w, "  Point(black) == origin: %v\n", Point(black) == origin)
	fmt.Fprintf(w, "  black[1] = %d\n", black[1])

	subject := AlwaysEqual{}
	fmt.Fprintf(w, "  AlwaysEqual{} == subject: %v\n", AlwaysEqual{} == subject)
	fmt.Fprintf(w, "  size of AlwaysEqual: %d bytes\n", unsafe.Sizeof(subject))

	seen := map[string]struct{}{}
	for _, name := range []string{"go", "rust", "go"} {
		seen[name] = struct{}{}
	}
	fmt.Fprintf(w, "  distinct names: %d\n", len(seen))
}

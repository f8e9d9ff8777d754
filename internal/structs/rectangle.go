package structs

import (
	"fmt"
	"io"
)

// Rectangle is an axis-aligned box measured in pixels.
//
// A method cannot share a name with a field:
//
//	func (r Rectangle) Width() bool // compile error: field and method with the same name Width
//
// hence HasWidth.
type Rectangle struct {
	Width, Height uint
}

// Square is a constructor: Go has no associated functions, so a plain
// package-level function returning the type plays that role.
func Square(size uint) Rectangle {
	return Rectangle{Width: size, Height: size}
}

func (r Rectangle) Area() uint {
	return r.Width * r.Height
}

func (r Rectangle) HasWidth() bool {
	return r.Width > 0
}

// CanHold reports whether other fits strictly inside r.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// Scale needs a pointer receiver: with a value receiver it would resize a copy.
func (r *Rectangle) Scale(factor uint) {
	r.Width *= factor
	r.Height *= factor
}

func demoMethods(w io.Writer) {
	rect := Rectangle{Width: 30, Height: 50}
	rec2 := Rectangle{Width: 40, Height: 60}
	rec3 := Square(10)

	fmt.Fprintf(w, "  The area of a rect is %d square pixels\n", rect.Area())

	if rect.HasWidth() {
		fmt.Fprintf(w, "  The rectangle has a nonzero width; it is %d\n", rect.Width)
	}

	if rect.CanHold(rec2) {
		fmt.Fprintln(w, "  The rectangle can hold rec2")
	} else {
		fmt.Fprintln(w, "  The rectangle cannot hold rec2")
	}
	fmt.Fprintf(w, "  rec2.CanHold(rect): %v\n", rec2.CanHold(rect))
	fmt.Fprintf(w, "  Square(10) = %+v\n", rec3)

	// rect is addressable, so rect.Scale(2) means (&rect).Scale(2).
	rect.Scale(2)
	fmt.Fprintf(w, "  after rect.Scale(2): %+v\n", rect)

	// Methods are values too: bound to a receiver, or taking it as the first argument.
	area := rect.Area
	fmt.Fprintf(w, "  method value rect.Area() = %d\n", area())
	fmt.Fprintf(w, "  method expression Rectangle.Area(rec3) = %d\n", Rectangle.Area(rec3))
}

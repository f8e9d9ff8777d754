package enums

import (
	"fmt"
	"io"
)

// Option holds either a value (Some) or nothing (None). The zero value is
// None. Go code usually spells this as a (value, ok) pair or a nil pointer;
// Option makes absence part of the type so it cannot be used by accident.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether there was one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the value, or fallback when o is None.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Match calls some with the value or none when there is none. Both arms
// must produce the same type.
func Match[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.ok {
		return some(o.value)
	}
	return none()
}

// Map applies f to the value, if any.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

func plusOne(x Option[int]) Option[int] {
	return Match(x,
		func(i int) Option[int] { return Some(i + 1) },
		None[int],
	)
}

func demoOption(w io.Writer) {
	x := int8(5)
	y := Some[int8](5)

	// sum := x + y // compile error: invalid operation: x + y (mismatched types int8 and Option[int8])
	sum := Match(y,
		func(i int8) string { return fmt.Sprint(x + i) },
		func() string { return "error: y is None" },
	)
	fmt.Fprintf(w, "  x + y = %s\n", sum)

	five := Some(5)
	fmt.Fprintf(w, "  plusOne(%v) = %v\n", five, plusOne(five))
	fmt.Fprintf(w, "  plusOne(%v) = %v\n", None[int](), plusOne(None[int]()))

	length := Map(Some("gopher"), func(s string) int { return len(s) })
	fmt.Fprintf(w, "  Map(Some(\"gopher\"), len) = %v\n", length)
	fmt.Fprintf(w, "  None[int]().OrElse(42) = %d\n", None[int]().OrElse(42))

	// Without Option: the comma-ok idiom and nil pointers.
	ages := map[string]int{"alice": 30}
	age, ok := ages["bob"]
	fmt.Fprintf(w, "  ages[\"bob\"] -> %d, %v\n", age, ok)

	var missing *int
	fmt.Fprintf(w, "  nil pointer as absence: %v\n", missing == nil)
}

package enums

import (
	"fmt"
	"io"
)

type USState int

const (
	Alabama USState = iota
	Alaska
)

func (s USState) String() string {
	switch s {
	case Alabama:
		return "Alabama"
	case Alaska:
		return "Alaska"
	default:
		return fmt.Sprintf("USState(%d)", int(s))
	}
}

type Denomination int

const (
	Penny Denomination = iota
	Nickel
	Dime
	Quarter
)

// Coin is a denomination plus, for state quarters, the state on its back.
type Coin struct {
	Denomination Denomination
	State        Option[USState]
}

// ValueInCents matches on the denomination. The compiler does not check that
// every constant has a case, so the default arm is the catch-all for values
// outside the declared set.
func ValueInCents(w io.Writer, c Coin) int {
	switch c.Denomination {
	case Penny:
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		if state, ok := c.State.Get(); ok {
			fmt.Fprintf(w, "  State quarter from %v!\n", state)
		}
		return 25
	default:
		return 0
	}
}

func diceRoll(roll int) string {
	switch roll {
	case 3:
		return "add fancy hat"
	case 7:
		return "remove fancy hat"
	default:
		return "move player"
	}
}

func demoMatch(w io.Writer) {
	coins := []Coin{
		{Denomination: Penny},
		{Denomination: Dime},
		{Denomination: Quarter},
		{Denomination: Quarter, State: Some(Alaska)},
		{Denomination: Denomination(9)},
	}
	total := 0
	for _, c := range coins {
		total += ValueInCents(w, c)
	}
	fmt.Fprintf(w, "  total: %d cents\n", total)

	for _, roll := range []int{3, 7, 9} {
		fmt.Fprintf(w, "  roll %d: %s\n", roll, diceRoll(roll))
	}
}

// demoIfOK is the one-case match: handle the value if present, optionally
// do something else otherwise.
func demoIfOK(w io.Writer) {
	for _, configMax := range []Option[uint8]{Some[uint8](3), None[uint8]()} {
		if limit, ok := configMax.Get(); ok {
			fmt.Fprintf(w, "  The maximum is configured to be %d\n", limit)
		} else {
			fmt.Fprintln(w, "  something else")
		}
	}

	// A type assertion has the same shape for interfaces.
	var m Message = Write("hi")
	if text, ok := m.(Write); ok {
		fmt.Fprintf(w, "  the message writes %q\n", string(text))
	}
	if _, ok := m.(Quit); !ok {
		fmt.Fprintln(w, "  the message is not Quit")
	}
}

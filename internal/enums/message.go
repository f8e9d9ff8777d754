package enums

import (
	"fmt"
	"io"
)

// Message is one of Quit, Move, Write or ChangeColor. Each variant carries
// different data: none, named fields, a single value, or a tuple-like triple.
type Message interface {
	isMessage()
}

type (
	Quit        struct{}
	Move        struct{ X, Y int }
	Write       string
	ChangeColor struct{ R, G, B int }
)

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

// Call dispatches on the variant. Interfaces cannot have method bodies, so
// behavior shared by every variant lives in a function taking the interface.
func Call(m Message) string {
	switch m := m.(type) {
	case Quit:
		return "quit: no data"
	case Move:
		return fmt.Sprintf("move to (%d, %d)", m.X, m.Y)
	case Write:
		return fmt.Sprintf("write %q", string(m))
	case ChangeColor:
		return fmt.Sprintf("change color to rgb(%d, %d, %d)", m.R, m.G, m.B)
	case nil:
		return "no message"
	default:
		return fmt.Sprintf("unhandled %T", m)
	}
}

func demoMessage(w io.Writer) {
	messages := []Message{
		Quit{},
		Move{X: 10, Y: -3},
		Write("hello"),
		ChangeColor{0, 160, 255},
		nil,
	}
	for _, m := range messages {
		fmt.Fprintf(w, "  %s\n", Call(m))
	}
}

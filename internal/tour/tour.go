// Package tour runs chapters of annotated demonstrations in a fixed order.
//
// A chapter is a function that prints its walkthrough to w. It takes no other
// input and returns nothing: demonstrations never fail. The only error in the
// package comes from looking up a chapter by a name that does not exist.
package tour

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// ErrUnknownChapter is returned by Lookup when no chapter has the given name.
var ErrUnknownChapter = errors.New("unknown chapter")

// Chapter is one self-contained walkthrough.
type Chapter struct {
	Name        string
	Description string

	// Run prints the walkthrough to w. dbg receives optional trace lines
	// (the equivalent of a debug-only print); it is never nil.
	Run func(w io.Writer, dbg *log.Logger)
}

// Lookup returns the chapter called name.
func Lookup(chapters []Chapter, name string) (Chapter, error) {
	for _, c := range chapters {
		if c.Name == name {
			return c, nil
		}
	}
	return Chapter{}, fmt.Errorf("chapter %q: %w", name, ErrUnknownChapter)
}

// Names returns the chapter names in order.
func Names(chapters []Chapter) []string {
	names := make([]string, 0, len(chapters))
	for _, c := range chapters {
		names = append(names, c.Name)
	}
	return names
}

// Run calls each chapter once, in order, printing a banner before each.
// A nil dbg is replaced with Discard().
func Run(w io.Writer, dbg *log.Logger, chapters ...Chapter) {
	if dbg == nil {
		dbg = Discard()
	}
	for i, c := range chapters {
		if i > 0 {
			fmt.Fprintln(w)
		}
		Banner(w, c.Name)
		dbg.Printf("running chapter %s", c.Name)
		c.Run(w, dbg)
	}
}

// Banner prints the chapter title framed by a rule.
func Banner(w io.Writer, title string) {
	rule := strings.Repeat("═", len([]rune(title))+4)
	fmt.Fprintf(w, "%s\n  %s\n%s\n", rule, strings.ToUpper(title), rule)
}

// Section prints the header for one demo inside a chapter.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// Debug returns the logger used for trace lines when debugging is on.
func Debug(w io.Writer) *log.Logger {
	return log.New(w, "[dbg] ", log.Lshortfile)
}

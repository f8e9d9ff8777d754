package structs

import (
	"fmt"
	"io"
	"log"
	"strings"

	"gopkg.in/yaml.v3"
)

// dbgValue logs expr and its value with the caller's file:line, then returns
// the value so it can sit in the middle of an expression.
func dbgValue[T any](dbg *log.Logger, expr string, v T) T {
	dbg.Output(2, fmt.Sprintf("%s = %#v", expr, v))
	return v
}

func demoDebug(w io.Writer, dbg *log.Logger) {
	scale := uint(2)
	rect := Rectangle{
		Width:  dbgValue(dbg, "30 * scale", 30*scale),
		Height: 50,
	}
	fmt.Fprintf(w, "  %dx%d\n", rect.Width, rect.Height)
	dbg.Printf("rect = %#v", rect)

	fmt.Fprintf(w, "  %%v:  %v\n", rect)
	fmt.Fprintf(w, "  %%+v: %+v\n", rect)
	fmt.Fprintf(w, "  %%#v: %#v  (unsigned fields print in hex)\n", rect)

	// Struct tags are metadata for encoders: the yaml keys come from them,
	// and omitempty drops the zero-valued Nickname.
	out, err := yaml.Marshal(NewUser("me@example.com", "mark"))
	if err != nil {
		fmt.Fprintf(w, "  yaml: %v\n", err)
		return
	}
	fmt.Fprintln(w, "  as yaml:")
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}

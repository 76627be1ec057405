package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/endo5501/DungeonMirundal-sub002/internal/session"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// termFrontend drives a session from stdin lines and renders screens as
// plain text. One line is one action: a signal name, "t <text>" to type
// into a prompt, or quit.
type termFrontend struct {
	in  *bufio.Scanner
	out io.Writer
	// sess is set after session.New, which needs the frontend first.
	sess *session.Session
}

func newTermFrontend(in io.Reader, out io.Writer) *termFrontend {
	return &termFrontend{in: bufio.NewScanner(in), out: out}
}

func (f *termFrontend) Next() (constants.Signal, bool) {
	for {
		fmt.Fprint(f.out, "> ")
		if !f.in.Scan() {
			return constants.SignalNone, false
		}
		line := strings.TrimSpace(f.in.Text())
		switch {
		case line == "":
			continue
		case line == "quit", line == "exit":
			return constants.SignalNone, false
		case strings.HasPrefix(line, "t "):
			if f.sess != nil && !f.sess.InjectText(strings.TrimPrefix(line, "t ")) {
				fmt.Fprintln(f.out, "nothing here accepts text")
			}
			return constants.SignalNone, true
		default:
			if sig, ok := constants.ParseSignal(line); ok {
				return sig, true
			}
			fmt.Fprintln(f.out, "commands: up down left right confirm back menu, t <text>, quit")
		}
	}
}

func (f *termFrontend) Render(active nav.Screen, overlays []nav.Screen) {
	fmt.Fprintln(f.out)
	for _, el := range active.Elements() {
		switch el.Kind {
		case nav.ElementItem, nav.ElementButton:
			marker := "  "
			if el.Selected {
				marker = "> "
			}
			suffix := ""
			if el.Disabled {
				suffix = " (x)"
			}
			fmt.Fprintf(f.out, "%s%s%s\n", marker, el.Text, suffix)
		case nav.ElementField:
			fmt.Fprintf(f.out, "  [%s]\n", el.Text)
		default:
			fmt.Fprintln(f.out, el.Text)
		}
	}
	for _, o := range overlays {
		for _, el := range o.Elements() {
			fmt.Fprintf(f.out, "(%s)\n", el.Text)
		}
	}
}

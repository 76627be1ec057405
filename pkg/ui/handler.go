package ui

import "github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"

// SignalHandler is implemented by screens that react to input signals.
// The session routes signals to the active screen only.
type SignalHandler interface {
	HandleSignal(sig constants.Signal)
}

// TextReceiver is implemented by screens that accept typed text, i.e.
// the input dialog. Frontends feed characters directly instead of going
// through signals.
type TextReceiver interface {
	AppendRune(r rune)
	Backspace()
}

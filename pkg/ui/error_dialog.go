package ui

import (
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// ErrorDialog reports a failure to the player. The message must already
// be localized; raw error strings never reach the screen. The cause, if
// any, stays in the logs.
type ErrorDialog struct {
	baseScreen
	message string

	OKLabel   string
	OnDismiss func()
}

// NewErrorDialog creates a modal error dialog.
func NewErrorDialog(id, message string, onDismiss func()) *ErrorDialog {
	return &ErrorDialog{
		baseScreen: newBaseScreen(id, nav.KindErrorDialog),
		message:    message,
		OKLabel:    "OK",
		OnDismiss:  onDismiss,
	}
}

// Message returns the localized failure text.
func (d *ErrorDialog) Message() string { return d.message }

// HandleSignal fires OnDismiss on confirm.
func (d *ErrorDialog) HandleSignal(sig constants.Signal) {
	if sig == constants.SignalConfirm && d.OnDismiss != nil {
		d.OnDismiss()
	}
}

// Elements reports the message and the acknowledgement button.
func (d *ErrorDialog) Elements() []nav.Element {
	return []nav.Element{
		{ID: d.id + "_message", Kind: nav.ElementLabel, Text: d.message},
		{ID: d.id + "_ok", Kind: nav.ElementButton, Text: d.OKLabel, Selected: true},
	}
}

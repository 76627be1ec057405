package ui

import (
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// InfoDialog presents a message with a single acknowledgement. Confirm
// fires OnDismiss; plain back navigation works without it.
type InfoDialog struct {
	baseScreen
	message string

	OKLabel   string
	OnDismiss func()
}

// NewInfoDialog creates a modal information dialog.
func NewInfoDialog(id, message string, onDismiss func()) *InfoDialog {
	return &InfoDialog{
		baseScreen: newBaseScreen(id, nav.KindInfoDialog),
		message:    message,
		OKLabel:    "OK",
		OnDismiss:  onDismiss,
	}
}

// Message returns the dialog text.
func (d *InfoDialog) Message() string { return d.message }

// HandleSignal fires OnDismiss on confirm.
func (d *InfoDialog) HandleSignal(sig constants.Signal) {
	if sig == constants.SignalConfirm && d.OnDismiss != nil {
		d.OnDismiss()
	}
}

// Elements reports the message and the acknowledgement button.
func (d *InfoDialog) Elements() []nav.Element {
	return []nav.Element{
		{ID: d.id + "_message", Kind: nav.ElementLabel, Text: d.message},
		{ID: d.id + "_ok", Kind: nav.ElementButton, Text: d.OKLabel, Selected: true},
	}
}

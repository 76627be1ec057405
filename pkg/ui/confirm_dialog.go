package ui

import (
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// ConfirmDialog asks a yes/no question. Left and right move between the
// two answers, confirm fires OnResult with the choice. The labels
// default to English; callers pass localized strings over them.
type ConfirmDialog struct {
	baseScreen
	message  string
	selected bool // true means the cursor is on yes

	YesLabel string
	NoLabel  string
	OnResult func(confirmed bool)
}

// NewConfirmDialog creates a modal confirm dialog with the cursor on
// "no", so confirming without looking declines.
func NewConfirmDialog(id, message string, onResult func(bool)) *ConfirmDialog {
	return &ConfirmDialog{
		baseScreen: newBaseScreen(id, nav.KindConfirmDialog),
		message:    message,
		YesLabel:   "Yes",
		NoLabel:    "No",
		OnResult:   onResult,
	}
}

// Message returns the question text.
func (d *ConfirmDialog) Message() string { return d.message }

// Confirmed reports whether the cursor is on the yes answer.
func (d *ConfirmDialog) Confirmed() bool { return d.selected }

// HandleSignal moves between the answers and fires OnResult on confirm.
func (d *ConfirmDialog) HandleSignal(sig constants.Signal) {
	switch sig {
	case constants.SignalLeft:
		d.selected = true
	case constants.SignalRight:
		d.selected = false
	case constants.SignalConfirm:
		if d.OnResult != nil {
			d.OnResult(d.selected)
		}
	}
}

// Elements reports the question and both answer buttons.
func (d *ConfirmDialog) Elements() []nav.Element {
	return []nav.Element{
		{ID: d.id + "_message", Kind: nav.ElementLabel, Text: d.message},
		{ID: d.id + "_yes", Kind: nav.ElementButton, Text: d.YesLabel, Selected: d.selected},
		{ID: d.id + "_no", Kind: nav.ElementButton, Text: d.NoLabel, Selected: !d.selected},
	}
}

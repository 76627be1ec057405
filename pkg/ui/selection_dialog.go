package ui

import (
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// SelectionOption is one choice in a SelectionDialog.
type SelectionOption struct {
	ID    string
	Label string
	Value any
}

// SelectionDialog asks the player to pick one option from a vertical
// list. Confirm fires OnSelect with the option under the cursor.
type SelectionDialog struct {
	baseScreen
	message string
	options []SelectionOption
	cursor  int

	OnSelect func(index int, option SelectionOption)
}

// NewSelectionDialog creates a modal selection dialog.
func NewSelectionDialog(id, message string, options []SelectionOption, onSelect func(int, SelectionOption)) *SelectionDialog {
	return &SelectionDialog{
		baseScreen: newBaseScreen(id, nav.KindSelectionDialog),
		message:    message,
		options:    options,
		OnSelect:   onSelect,
	}
}

// Message returns the prompt text.
func (d *SelectionDialog) Message() string { return d.message }

// Options returns the selectable options.
func (d *SelectionDialog) Options() []SelectionOption { return d.options }

// SelectedIndex returns the cursor position.
func (d *SelectionDialog) SelectedIndex() int { return d.cursor }

// SetSelectedIndex moves the cursor, clamping to the option range. Used
// to restore position when a dialog is rebuilt on back navigation.
func (d *SelectionDialog) SetSelectedIndex(i int) {
	if len(d.options) == 0 {
		d.cursor = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(d.options) {
		i = len(d.options) - 1
	}
	d.cursor = i
}

// MoveUp moves the cursor up, wrapping at the top.
func (d *SelectionDialog) MoveUp() { d.move(-1) }

// MoveDown moves the cursor down, wrapping at the bottom.
func (d *SelectionDialog) MoveDown() { d.move(1) }

func (d *SelectionDialog) move(delta int) {
	if len(d.options) == 0 {
		return
	}
	d.cursor = (d.cursor + delta + len(d.options)) % len(d.options)
}

// Choose confirms the option under the cursor.
func (d *SelectionDialog) Choose() {
	if len(d.options) == 0 || d.OnSelect == nil {
		return
	}
	d.OnSelect(d.cursor, d.options[d.cursor])
}

// HandleSignal moves the cursor or confirms the selection.
func (d *SelectionDialog) HandleSignal(sig constants.Signal) {
	switch sig {
	case constants.SignalUp:
		d.MoveUp()
	case constants.SignalDown:
		d.MoveDown()
	case constants.SignalConfirm:
		d.Choose()
	}
}

// Elements reports the prompt and each option for introspection.
func (d *SelectionDialog) Elements() []nav.Element {
	els := make([]nav.Element, 0, len(d.options)+1)
	els = append(els, nav.Element{ID: d.id + "_message", Kind: nav.ElementLabel, Text: d.message})
	for i, opt := range d.options {
		els = append(els, nav.Element{
			ID:       opt.ID,
			Kind:     nav.ElementItem,
			Text:     opt.Label,
			Selected: i == d.cursor,
		})
	}
	return els
}

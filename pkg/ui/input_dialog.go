package ui

import (
	"strings"
	"unicode"

	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// InputDialog collects a line of text. Frontends feed characters via
// the TextReceiver methods; confirm submits the current buffer.
type InputDialog struct {
	baseScreen
	prompt string
	buffer []rune
	maxLen int
	masked bool

	OnSubmit func(text string)
}

// NewInputDialog creates a modal text prompt. maxLen 0 means unlimited.
func NewInputDialog(id, prompt string, maxLen int, onSubmit func(string)) *InputDialog {
	return &InputDialog{
		baseScreen: newBaseScreen(id, nav.KindInputDialog),
		prompt:     prompt,
		maxLen:     maxLen,
		OnSubmit:   onSubmit,
	}
}

// Prompt returns the prompt text.
func (d *InputDialog) Prompt() string { return d.prompt }

// Text returns the current buffer.
func (d *InputDialog) Text() string { return string(d.buffer) }

// SetText replaces the buffer, truncating to the length limit. Used to
// prefill the prompt when a flow re-presents it.
func (d *InputDialog) SetText(s string) {
	runes := []rune(s)
	if d.maxLen > 0 && len(runes) > d.maxLen {
		runes = runes[:d.maxLen]
	}
	d.buffer = runes
}

// SetMasked hides the buffer behind asterisks in display and
// introspection output.
func (d *InputDialog) SetMasked(masked bool) { d.masked = masked }

// DisplayText returns the buffer as shown to the player.
func (d *InputDialog) DisplayText() string {
	if d.masked {
		return strings.Repeat("*", len(d.buffer))
	}
	return string(d.buffer)
}

// AppendRune adds one character, respecting the length limit. Control
// characters are ignored.
func (d *InputDialog) AppendRune(r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	if d.maxLen > 0 && len(d.buffer) >= d.maxLen {
		return
	}
	d.buffer = append(d.buffer, r)
}

// Backspace removes the last character.
func (d *InputDialog) Backspace() {
	if len(d.buffer) > 0 {
		d.buffer = d.buffer[:len(d.buffer)-1]
	}
}

// HandleSignal submits the buffer on confirm.
func (d *InputDialog) HandleSignal(sig constants.Signal) {
	if sig == constants.SignalConfirm && d.OnSubmit != nil {
		d.OnSubmit(string(d.buffer))
	}
}

// Elements reports the prompt and the text field.
func (d *InputDialog) Elements() []nav.Element {
	return []nav.Element{
		{ID: d.id + "_prompt", Kind: nav.ElementLabel, Text: d.prompt},
		{ID: d.id + "_field", Kind: nav.ElementField, Text: d.DisplayText(), Selected: true},
	}
}

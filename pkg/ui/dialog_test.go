package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

func TestConfirmDialog(t *testing.T) {
	t.Run("defaults to no", func(t *testing.T) {
		var result *bool
		d := ui.NewConfirmDialog("confirm", "Buy this?", func(ok bool) { result = &ok })

		d.HandleSignal(constants.SignalConfirm)
		require.NotNil(t, result)
		assert.False(t, *result)
	})

	t.Run("left selects yes", func(t *testing.T) {
		var result *bool
		d := ui.NewConfirmDialog("confirm", "Buy this?", func(ok bool) { result = &ok })

		d.HandleSignal(constants.SignalLeft)
		d.HandleSignal(constants.SignalConfirm)
		require.NotNil(t, result)
		assert.True(t, *result)
	})

	t.Run("right moves back to no", func(t *testing.T) {
		d := ui.NewConfirmDialog("confirm", "Buy this?", nil)
		d.HandleSignal(constants.SignalLeft)
		d.HandleSignal(constants.SignalRight)
		assert.False(t, d.Confirmed())
	})

	t.Run("reports both answers as elements", func(t *testing.T) {
		d := ui.NewConfirmDialog("confirm", "Buy this?", nil)
		d.YesLabel = "Aye"
		d.NoLabel = "Nay"

		els := d.Elements()
		require.Len(t, els, 3)
		assert.Equal(t, nav.KindConfirmDialog, d.Kind())
		assert.Equal(t, "Aye", els[1].Text)
		assert.False(t, els[1].Selected)
		assert.True(t, els[2].Selected)
	})
}

func TestInfoDialog(t *testing.T) {
	dismissed := false
	d := ui.NewInfoDialog("notice", "Welcome to the inn.", func() { dismissed = true })

	assert.Equal(t, nav.KindInfoDialog, d.Kind())
	assert.Equal(t, "Welcome to the inn.", d.Message())

	// Directional input does nothing on an info dialog.
	d.HandleSignal(constants.SignalDown)
	assert.False(t, dismissed)

	d.HandleSignal(constants.SignalConfirm)
	assert.True(t, dismissed)
}

func TestErrorDialog(t *testing.T) {
	dismissed := false
	d := ui.NewErrorDialog("error", "Not enough gold.", func() { dismissed = true })

	assert.Equal(t, nav.KindErrorDialog, d.Kind())
	d.HandleSignal(constants.SignalConfirm)
	assert.True(t, dismissed)

	els := d.Elements()
	require.Len(t, els, 2)
	assert.Equal(t, "Not enough gold.", els[0].Text)
}

func TestSelectionDialog(t *testing.T) {
	options := []ui.SelectionOption{
		{ID: "fighter", Label: "Fighter", Value: "fighter"},
		{ID: "mage", Label: "Mage", Value: "mage"},
		{ID: "priest", Label: "Priest", Value: "priest"},
	}

	t.Run("confirm fires with the highlighted option", func(t *testing.T) {
		var gotIndex int
		var gotOption ui.SelectionOption
		d := ui.NewSelectionDialog("class", "Choose a class", options, func(i int, o ui.SelectionOption) {
			gotIndex, gotOption = i, o
		})

		d.HandleSignal(constants.SignalDown)
		d.HandleSignal(constants.SignalConfirm)
		assert.Equal(t, 1, gotIndex)
		assert.Equal(t, "mage", gotOption.ID)
	})

	t.Run("cursor wraps", func(t *testing.T) {
		d := ui.NewSelectionDialog("class", "Choose a class", options, nil)
		d.MoveUp()
		assert.Equal(t, 2, d.SelectedIndex())
		d.MoveDown()
		assert.Equal(t, 0, d.SelectedIndex())
	})

	t.Run("empty options never fire", func(t *testing.T) {
		fired := false
		d := ui.NewSelectionDialog("empty", "Nothing here", nil, func(int, ui.SelectionOption) { fired = true })
		d.Choose()
		assert.False(t, fired)
	})

	t.Run("set index clamps", func(t *testing.T) {
		d := ui.NewSelectionDialog("class", "Choose a class", options, nil)
		d.SetSelectedIndex(2)
		assert.Equal(t, 2, d.SelectedIndex())
		d.SetSelectedIndex(99)
		assert.Equal(t, 2, d.SelectedIndex())
		d.SetSelectedIndex(-1)
		assert.Equal(t, 0, d.SelectedIndex())
	})
}

func TestInputDialog(t *testing.T) {
	t.Run("collects and submits text", func(t *testing.T) {
		var submitted string
		d := ui.NewInputDialog("name", "Name thy hero", 0, func(s string) { submitted = s })

		for _, r := range "Werdna" {
			d.AppendRune(r)
		}
		d.HandleSignal(constants.SignalConfirm)
		assert.Equal(t, "Werdna", submitted)
	})

	t.Run("backspace edits the buffer", func(t *testing.T) {
		d := ui.NewInputDialog("name", "Name thy hero", 0, nil)
		d.AppendRune('A')
		d.AppendRune('B')
		d.Backspace()
		assert.Equal(t, "A", d.Text())

		d.Backspace()
		d.Backspace()
		assert.Equal(t, "", d.Text())
	})

	t.Run("enforces the length limit", func(t *testing.T) {
		d := ui.NewInputDialog("name", "Name thy hero", 3, nil)
		for _, r := range "Trebor" {
			d.AppendRune(r)
		}
		assert.Equal(t, "Tre", d.Text())
	})

	t.Run("ignores control characters", func(t *testing.T) {
		d := ui.NewInputDialog("name", "Name thy hero", 0, nil)
		d.AppendRune('\n')
		d.AppendRune('\t')
		d.AppendRune('x')
		assert.Equal(t, "x", d.Text())
	})

	t.Run("prefills via SetText", func(t *testing.T) {
		d := ui.NewInputDialog("name", "Name thy hero", 4, nil)
		d.SetText("Werdna")

		assert.Equal(t, "Werd", d.Text())

		d.Backspace()
		d.AppendRune('y')
		assert.Equal(t, "Wery", d.Text())
	})

	t.Run("masking hides the field text", func(t *testing.T) {
		d := ui.NewInputDialog("secret", "Speak the word", 0, nil)
		d.SetMasked(true)
		d.AppendRune('o')
		d.AppendRune('k')

		assert.Equal(t, "**", d.DisplayText())
		assert.Equal(t, "ok", d.Text())

		els := d.Elements()
		require.Len(t, els, 2)
		assert.Equal(t, nav.ElementField, els[1].Kind)
		assert.Equal(t, "**", els[1].Text)
	})
}

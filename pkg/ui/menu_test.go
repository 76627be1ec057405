package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

func threeItems(chosen *string) []ui.MenuItem {
	mark := func(id string) func() {
		return func() { *chosen = id }
	}
	return []ui.MenuItem{
		{ID: "buy", Label: "Buy", OnChoose: mark("buy")},
		{ID: "sell", Label: "Sell", OnChoose: mark("sell")},
		{ID: "leave", Label: "Leave", OnChoose: mark("leave")},
	}
}

func TestMenuCursor(t *testing.T) {
	t.Run("wraps in both directions", func(t *testing.T) {
		var chosen string
		m := ui.NewMenu("shop", "Shop", threeItems(&chosen))

		assert.Equal(t, 0, m.SelectedIndex())
		m.MoveUp()
		assert.Equal(t, 2, m.SelectedIndex())
		m.MoveDown()
		assert.Equal(t, 0, m.SelectedIndex())
	})

	t.Run("skips disabled items", func(t *testing.T) {
		items := []ui.MenuItem{
			{ID: "a", Label: "A"},
			{ID: "b", Label: "B", Disabled: true},
			{ID: "c", Label: "C"},
		}
		m := ui.NewMenu("menu", "Menu", items)

		m.MoveDown()
		assert.Equal(t, 2, m.SelectedIndex())
		m.MoveDown()
		assert.Equal(t, 0, m.SelectedIndex())
	})

	t.Run("starts on the first enabled item", func(t *testing.T) {
		items := []ui.MenuItem{
			{ID: "a", Label: "A", Disabled: true},
			{ID: "b", Label: "B"},
		}
		m := ui.NewMenu("menu", "Menu", items)
		assert.Equal(t, 1, m.SelectedIndex())
	})

	t.Run("stays put when every item is disabled", func(t *testing.T) {
		items := []ui.MenuItem{
			{ID: "a", Label: "A", Disabled: true},
			{ID: "b", Label: "B", Disabled: true},
		}
		m := ui.NewMenu("menu", "Menu", items)
		m.MoveDown()
		m.MoveUp()
		assert.Equal(t, 0, m.SelectedIndex())
	})

	t.Run("clamps restored positions", func(t *testing.T) {
		var chosen string
		m := ui.NewMenu("shop", "Shop", threeItems(&chosen))

		m.SetSelectedIndex(99)
		assert.Equal(t, 2, m.SelectedIndex())
		m.SetSelectedIndex(-1)
		assert.Equal(t, 0, m.SelectedIndex())
	})
}

func TestMenuChoose(t *testing.T) {
	t.Run("fires the selected item's callback", func(t *testing.T) {
		var chosen string
		m := ui.NewMenu("shop", "Shop", threeItems(&chosen))

		m.HandleSignal(constants.SignalDown)
		m.HandleSignal(constants.SignalConfirm)
		assert.Equal(t, "sell", chosen)
	})

	t.Run("refuses disabled items", func(t *testing.T) {
		fired := false
		items := []ui.MenuItem{
			{ID: "a", Label: "A", Disabled: true, OnChoose: func() { fired = true }},
		}
		m := ui.NewMenu("menu", "Menu", items)
		m.Choose()
		assert.False(t, fired)
	})

	t.Run("tolerates an empty menu", func(t *testing.T) {
		m := ui.NewMenu("empty", "Empty", nil)
		m.MoveDown()
		m.Choose()
		assert.Equal(t, 0, m.SelectedIndex())
	})
}

func TestMenuElements(t *testing.T) {
	var chosen string
	m := ui.NewMenu("shop", "Shop", threeItems(&chosen))
	m.MoveDown()

	els := m.Elements()
	require.Len(t, els, 4)
	assert.Equal(t, nav.ElementLabel, els[0].Kind)
	assert.Equal(t, "Shop", els[0].Text)
	assert.False(t, els[1].Selected)
	assert.True(t, els[2].Selected)
	assert.Equal(t, "sell", els[2].ID)
}

func TestMenuSubtitle(t *testing.T) {
	var chosen string
	m := ui.NewMenu("guild", "Guild", threeItems(&chosen))

	require.Len(t, m.Elements(), 4)

	m.SetSubtitle("Welcome, adventurer.")

	els := m.Elements()
	require.Len(t, els, 5)
	assert.Equal(t, "guild_subtitle", els[1].ID)
	assert.Equal(t, nav.ElementLabel, els[1].Kind)
	assert.Equal(t, "Welcome, adventurer.", els[1].Text)
	assert.Equal(t, "Welcome, adventurer.", m.Subtitle())
}

func TestMenuScreenContract(t *testing.T) {
	var chosen string
	m := ui.NewMenu("shop", "Shop", threeItems(&chosen))

	assert.Equal(t, "shop", m.ID())
	assert.Equal(t, nav.KindMenu, m.Kind())
	assert.True(t, m.Modal())

	m.Show()
	assert.True(t, m.Visible())
	m.Hide()
	assert.False(t, m.Visible())

	m.SetModal(false)
	assert.False(t, m.Modal())
}

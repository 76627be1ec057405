package ui

import (
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// MenuItem is a single choice in a Menu.
type MenuItem struct {
	ID       string
	Label    string
	Disabled bool
	OnChoose func() // invoked when the item is confirmed
}

// Menu is a vertical list of choices with a wrapping cursor. Disabled
// items are skipped when moving and refuse confirmation.
type Menu struct {
	baseScreen
	title    string
	subtitle string
	items    []MenuItem
	cursor   int
}

// NewMenu creates a modal menu. The cursor starts on the first enabled
// item.
func NewMenu(id, title string, items []MenuItem) *Menu {
	m := &Menu{
		baseScreen: newBaseScreen(id, nav.KindMenu),
		title:      title,
		items:      items,
	}
	for i := range items {
		if !items[i].Disabled {
			m.cursor = i
			break
		}
	}
	return m
}

// Title returns the menu title.
func (m *Menu) Title() string { return m.title }

// SetSubtitle sets an optional line shown under the title, such as a
// facility greeting.
func (m *Menu) SetSubtitle(s string) { m.subtitle = s }

// Subtitle returns the line shown under the title.
func (m *Menu) Subtitle() string { return m.subtitle }

// Items returns the menu's items.
func (m *Menu) Items() []MenuItem { return m.items }

// MoveUp moves the cursor to the previous enabled item, wrapping at the
// top.
func (m *Menu) MoveUp() { m.move(-1) }

// MoveDown advances the cursor to the next enabled item, wrapping at
// the bottom.
func (m *Menu) MoveDown() { m.move(1) }

func (m *Menu) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	idx := m.cursor
	for i := 0; i < len(m.items); i++ {
		idx = (idx + delta + len(m.items)) % len(m.items)
		if !m.items[idx].Disabled {
			m.cursor = idx
			return
		}
	}
}

// Choose confirms the item under the cursor.
func (m *Menu) Choose() {
	if len(m.items) == 0 {
		return
	}
	item := m.items[m.cursor]
	if item.Disabled || item.OnChoose == nil {
		return
	}
	item.OnChoose()
}

// SelectedIndex returns the cursor position.
func (m *Menu) SelectedIndex() int { return m.cursor }

// SetSelectedIndex moves the cursor, clamping to the item range. Used
// to restore position when a menu is rebuilt on back navigation.
func (m *Menu) SetSelectedIndex(i int) {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.items) {
		i = len(m.items) - 1
	}
	m.cursor = i
}

// HandleSignal moves the cursor or confirms the selection.
func (m *Menu) HandleSignal(sig constants.Signal) {
	switch sig {
	case constants.SignalUp:
		m.MoveUp()
	case constants.SignalDown:
		m.MoveDown()
	case constants.SignalConfirm:
		m.Choose()
	}
}

// Elements reports the title and each item for introspection.
func (m *Menu) Elements() []nav.Element {
	els := make([]nav.Element, 0, len(m.items)+2)
	els = append(els, nav.Element{ID: m.id + "_title", Kind: nav.ElementLabel, Text: m.title})
	if m.subtitle != "" {
		els = append(els, nav.Element{ID: m.id + "_subtitle", Kind: nav.ElementLabel, Text: m.subtitle})
	}
	for i, item := range m.items {
		els = append(els, nav.Element{
			ID:       item.ID,
			Kind:     nav.ElementItem,
			Text:     item.Label,
			Selected: i == m.cursor,
			Disabled: item.Disabled,
		})
	}
	return els
}

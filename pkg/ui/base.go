package ui

import "github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"

// baseScreen carries the identity and lifecycle state shared by every
// screen component in this package.
type baseScreen struct {
	id        string
	kind      nav.Kind
	modal     bool
	visible   bool
	destroyed bool
}

func newBaseScreen(id string, kind nav.Kind) baseScreen {
	return baseScreen{id: id, kind: kind, modal: true}
}

// ID identifies the screen in logs and debug snapshots.
func (b *baseScreen) ID() string { return b.id }

// Kind reports the screen's classification.
func (b *baseScreen) Kind() nav.Kind { return b.kind }

// Modal reports whether the screen takes exclusive input while active.
func (b *baseScreen) Modal() bool { return b.modal }

// SetModal overrides the default exclusive-input behavior. Screens used
// as overlays must be non-modal.
func (b *baseScreen) SetModal(modal bool) { b.modal = modal }

// Show marks the screen visible. Called by the navigation stack.
func (b *baseScreen) Show() { b.visible = true }

// Hide marks the screen hidden. Called by the navigation stack.
func (b *baseScreen) Hide() { b.visible = false }

// Destroy marks the screen dead. Components hold no external resources,
// so there is nothing else to release.
func (b *baseScreen) Destroy() { b.destroyed = true }

// Visible reports whether the screen is currently shown.
func (b *baseScreen) Visible() bool { return b.visible }

package session

import (
	"github.com/endo5501/DungeonMirundal-sub002/internal/i18n"
	"github.com/endo5501/DungeonMirundal-sub002/internal/party"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// goldStrip is the non-modal overlay showing the party's purse. It
// reads the party on every Elements call, so the strip stays current
// without anyone pushing updates to it.
type goldStrip struct {
	party   *party.Party
	loc     *i18n.Translator
	visible bool
}

func (g *goldStrip) ID() string     { return "gold_strip" }
func (g *goldStrip) Kind() nav.Kind { return nav.KindInfoDialog }
func (g *goldStrip) Modal() bool    { return false }
func (g *goldStrip) Show()          { g.visible = true }
func (g *goldStrip) Hide()          { g.visible = false }
func (g *goldStrip) Destroy()       { g.visible = false }

func (g *goldStrip) Elements() []nav.Element {
	return []nav.Element{{
		ID:   "gold_strip_label",
		Kind: nav.ElementLabel,
		Text: g.loc.Tf("town.gold", map[string]any{"Gold": g.party.Gold()}),
	}}
}

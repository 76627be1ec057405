package facility

import (
	"strings"

	"github.com/endo5501/DungeonMirundal-sub002/internal/gamedata"
	"github.com/endo5501/DungeonMirundal-sub002/internal/party"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// MageGuild teaches spells to casters, filtered by school and level.
type MageGuild struct{}

// NewMageGuild creates the magic guild.
func NewMageGuild() *MageGuild { return &MageGuild{} }

// ID returns the facility ID used in game data.
func (m *MageGuild) ID() string { return "mage_guild" }

// Enter presents the magic guild menu.
func (m *MageGuild) Enter(env *Env) error {
	return env.Nav.Present(m.menu(env), nav.ToPrevious())
}

func (m *MageGuild) menu(env *Env) *ui.Menu {
	items := []ui.MenuItem{
		{ID: "mageguild_learn", Label: env.Loc.T("mageguild.learn"), OnChoose: func() { m.learn(env) }},
		{ID: "mageguild_spellbook", Label: env.Loc.T("mageguild.spellbook"), OnChoose: func() { m.showSpellbooks(env) }},
	}
	menu := ui.NewMenu("mageguild_menu", env.Loc.T("mageguild.title"), items)
	menu.SetSubtitle(env.Greeting(m.ID()))
	return menu
}

// schoolFor maps a caster class to the school it studies.
func schoolFor(class party.Class) (gamedata.School, bool) {
	switch class {
	case party.ClassMage:
		return gamedata.SchoolMage, true
	case party.ClassPriest:
		return gamedata.SchoolPriest, true
	}
	return "", false
}

// learn starts the teaching flow: pick a caster, pick a spell, confirm.
func (m *MageGuild) learn(env *Env) {
	casters := m.casters(env)
	if len(casters) == 0 {
		env.ShowInfo("mageguild_no_casters", env.Loc.T("mageguild.no_casters"))
		return
	}

	opts := make([]ui.SelectionOption, 0, len(casters))
	for _, member := range casters {
		opts = append(opts, ui.SelectionOption{
			ID:    "caster_" + member.Name,
			Label: member.Name,
			Value: member,
		})
	}
	sel := ui.NewSelectionDialog("mageguild_member_select",
		env.Loc.T("mageguild.member_prompt"), opts, nil)
	sel.OnSelect = func(_ int, opt ui.SelectionOption) {
		m.presentSpells(env, opt.Value.(*party.Character), 0)
	}
	env.present(sel, nav.ToPrevious(), nil)
}

// casters lists living party members who study a school.
func (m *MageGuild) casters(env *Env) []*party.Character {
	var out []*party.Character
	for _, member := range env.Party.Alive() {
		if member.Class.Caster() {
			out = append(out, member)
		}
	}
	return out
}

// learnable lists the spells the member qualifies for and has not
// learned yet.
func (m *MageGuild) learnable(env *Env, member *party.Character) []gamedata.Spell {
	school, ok := schoolFor(member.Class)
	if !ok {
		return nil
	}
	var out []gamedata.Spell
	for _, sp := range env.Data.SpellsFor(school, member.Level) {
		if !member.KnowsSpell(sp.ID) {
			out = append(out, sp)
		}
	}
	return out
}

// presentSpells shows the spells the member may learn. cursor restores
// the highlighted row when the list is rebuilt after a lesson.
func (m *MageGuild) presentSpells(env *Env, member *party.Character, cursor int) {
	if len(m.learnable(env, member)) == 0 {
		env.ShowInfo("mageguild_nothing_new",
			env.Loc.Tf("mageguild.nothing_new", map[string]any{"Name": member.Name}))
		return
	}
	env.present(m.spellMenu(env, member, cursor), nav.ToPrevious(), nil)
}

func (m *MageGuild) confirmLearn(env *Env, member *party.Character, sp gamedata.Spell, cursor int) {
	msg := env.Loc.Tf("mageguild.confirm_learn", map[string]any{
		"Name":  member.Name,
		"Spell": env.Loc.T(sp.NameKey),
		"Price": sp.Price,
	})
	confirm := env.confirmDialog("mageguild_confirm_learn", msg, nil)
	confirm.OnResult = func(yes bool) {
		if !yes {
			env.Nav.GoBack()
			return
		}
		m.completeLearn(env, member, sp, cursor)
	}
	env.present(confirm, nav.ToPrevious(), nil)
}

// completeLearn charges the fee, teaches the spell, and swaps the
// confirmation for the result. Dismissing the result replaces the stale
// spell list with a rebuilt one, or drops back to the caster selection
// when nothing is left to learn.
func (m *MageGuild) completeLearn(env *Env, member *party.Character, sp gamedata.Spell, cursor int) {
	if !env.Party.Spend(sp.Price) {
		env.Log.Info("lesson refused", "spell", sp.ID, "price", sp.Price, "gold", env.Party.Gold())
		env.replace(env.errorDialog("mageguild_no_gold", env.Loc.T("mageguild.no_gold")), nav.ToPrevious(), nil)
		return
	}
	member.LearnSpell(sp.ID)
	env.Log.Info("spell learned",
		"name", member.Name, "spell", sp.ID, "price", sp.Price, "gold", env.Party.Gold())

	rebuild := func(c *nav.Controller, ctx nav.Context) error {
		if len(m.learnable(env, member)) == 0 {
			c.GoBack()
			return nil
		}
		at, _ := ctx.Int("cursor")
		return c.Replace(m.spellMenu(env, member, at), nav.ToPrevious(), nil)
	}
	done := env.infoDialog("mageguild_learn_done",
		env.Loc.Tf("mageguild.learned", map[string]any{"Name": member.Name, "Spell": env.Loc.T(sp.NameKey)}))
	env.replace(done, rebuild, nav.Context{"cursor": cursor})
}

// spellMenu builds the teachable spell list. The title shows the
// member's name and the party gold, so a settled lesson leaves it stale
// until the rebuild swaps it out.
func (m *MageGuild) spellMenu(env *Env, member *party.Character, cursor int) *ui.Menu {
	spells := m.learnable(env, member)
	var menu *ui.Menu
	items := make([]ui.MenuItem, 0, len(spells))
	for _, sp := range spells {
		items = append(items, ui.MenuItem{
			ID: "learn_" + sp.ID,
			Label: env.Loc.Tf("mageguild.spell_line", map[string]any{
				"Name":  env.Loc.T(sp.NameKey),
				"Level": sp.Level,
				"Price": sp.Price,
			}),
			Disabled: sp.Price > env.Party.Gold(),
			OnChoose: func() { m.confirmLearn(env, member, sp, menu.SelectedIndex()) },
		})
	}
	menu = ui.NewMenu("mageguild_spell_menu",
		env.Loc.Tf("mageguild.spell_title", map[string]any{"Name": member.Name, "Gold": env.Party.Gold()}), items)
	menu.SetSelectedIndex(cursor)
	return menu
}

// showSpellbooks lists what every caster in the party knows.
func (m *MageGuild) showSpellbooks(env *Env) {
	casters := m.casters(env)
	if len(casters) == 0 {
		env.ShowInfo("mageguild_no_casters", env.Loc.T("mageguild.no_casters"))
		return
	}
	lines := make([]string, 0, len(casters))
	for _, member := range casters {
		names := make([]string, 0, len(member.Spells))
		for _, id := range member.Spells {
			if sp, ok := env.Data.Spell(id); ok {
				names = append(names, env.Loc.T(sp.NameKey))
			}
		}
		known := strings.Join(names, ", ")
		if known == "" {
			known = env.Loc.T("mageguild.spellbook_empty")
		}
		lines = append(lines, member.Name+": "+known)
	}
	env.ShowInfo("mageguild_spellbook_list", strings.Join(lines, "\n"))
}

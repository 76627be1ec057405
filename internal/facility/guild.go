package facility

import (
	"strings"

	"github.com/endo5501/DungeonMirundal-sub002/internal/party"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// maxNameLen bounds adventurer names at the registration prompt.
const maxNameLen = 16

// Guild registers new adventurers and assembles the party from the
// roster.
type Guild struct{}

// NewGuild creates the adventurers' guild.
func NewGuild() *Guild { return &Guild{} }

// ID returns the facility ID used in game data.
func (g *Guild) ID() string { return "guild" }

// Enter presents the guild menu.
func (g *Guild) Enter(env *Env) error {
	return env.Nav.Present(g.menu(env), nav.ToPrevious())
}

func (g *Guild) menu(env *Env) *ui.Menu {
	items := []ui.MenuItem{
		{ID: "guild_register", Label: env.Loc.T("guild.register"), OnChoose: func() { g.register(env) }},
		{ID: "guild_add_member", Label: env.Loc.T("guild.add_member"), OnChoose: func() { g.addMember(env) }},
		{ID: "guild_roster", Label: env.Loc.T("guild.roster"), OnChoose: func() { g.showRoster(env) }},
	}
	m := ui.NewMenu("guild_menu", env.Loc.T("guild.title"), items)
	m.SetSubtitle(env.Greeting(g.ID()))
	return m
}

// register starts the registration flow: name prompt, class selection,
// confirmation.
func (g *Guild) register(env *Env) {
	g.presentNamePrompt(env, "")
}

// presentNamePrompt shows the name entry, prefilled when the flow
// reopens it after backing out of class selection.
func (g *Guild) presentNamePrompt(env *Env, prefill string) {
	input := ui.NewInputDialog("guild_register_name", env.Loc.T("guild.name_prompt"), maxNameLen, nil)
	input.SetText(prefill)
	input.OnSubmit = func(name string) { g.submitName(env, name) }
	env.present(input, nav.ToPrevious(), nil)
}

// submitName validates the name and swaps the prompt for the class
// selection. The selection's back action reopens the prompt with the
// name restored, unless registration has completed in the meantime.
func (g *Guild) submitName(env *Env, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		env.ShowError("guild_name_empty", env.Loc.T("guild.name_empty"))
		return
	}
	if env.Roster.Has(name) {
		env.ShowError("guild_name_taken", env.Loc.Tf("guild.name_taken", map[string]any{"Name": name}))
		return
	}

	classes := party.Classes()
	opts := make([]ui.SelectionOption, 0, len(classes))
	for _, class := range classes {
		opts = append(opts, ui.SelectionOption{
			ID:    "class_" + string(class),
			Label: env.Loc.T("class." + string(class)),
			Value: class,
		})
	}
	sel := ui.NewSelectionDialog("guild_register_class",
		env.Loc.Tf("guild.class_prompt", map[string]any{"Name": name}), opts, nil)
	sel.OnSelect = func(_ int, opt ui.SelectionOption) {
		g.confirmRegister(env, name, opt.Value.(party.Class))
	}
	reopenPrompt := func(c *nav.Controller, ctx nav.Context) error {
		pending, _ := ctx.String("name")
		if env.Roster.Has(pending) {
			// Registration went through; the guild menu beneath is right.
			return nil
		}
		g.presentNamePrompt(env, pending)
		return nil
	}
	env.replace(sel, reopenPrompt, nav.Context{"name": name})
}

func (g *Guild) confirmRegister(env *Env, name string, class party.Class) {
	msg := env.Loc.Tf("guild.confirm_register", map[string]any{
		"Name":  name,
		"Class": env.Loc.T("class." + string(class)),
	})
	confirm := env.confirmDialog("guild_register_confirm", msg, nil)
	confirm.OnResult = func(yes bool) {
		if !yes {
			env.Nav.GoBack()
			return
		}
		g.completeRegister(env, name, class)
	}
	env.present(confirm, nav.ToPrevious(), nil)
}

// completeRegister adds the adventurer to the roster and swaps the
// confirmation for the result message. Dismissing the result collapses
// the now-settled class selection as well, landing on the guild menu.
func (g *Guild) completeRegister(env *Env, name string, class party.Class) {
	member := party.NewCharacter(name, class)
	if err := env.Roster.Add(member); err != nil {
		env.Log.Error("adventurer registration failed", "name", name, "error", err)
		env.replace(env.errorDialog("guild_register_failed", env.Loc.T("error.generic")), nav.ToPrevious(), nil)
		return
	}
	env.Log.Info("adventurer registered", "name", name, "class", string(class))

	done := env.infoDialog("guild_register_done",
		env.Loc.Tf("guild.registered", map[string]any{"Name": name}))
	env.replace(done, func(c *nav.Controller, _ nav.Context) error {
		c.GoBack()
		return nil
	}, nil)
}

// addMember lets the player move a roster adventurer into the party.
func (g *Guild) addMember(env *Env) {
	if env.Party.Size() >= party.MaxMembers {
		env.ShowInfo("guild_party_full", env.Loc.T("guild.party_full"))
		return
	}
	candidates := g.candidates(env)
	if len(candidates) == 0 {
		env.ShowInfo("guild_no_candidates", env.Loc.T("guild.no_candidates"))
		return
	}

	opts := make([]ui.SelectionOption, 0, len(candidates))
	for _, member := range candidates {
		opts = append(opts, ui.SelectionOption{
			ID:    "member_" + member.Name,
			Label: g.memberLine(env, member),
			Value: member,
		})
	}
	sel := ui.NewSelectionDialog("guild_add_member_select",
		env.Loc.T("guild.member_prompt"), opts, nil)
	sel.OnSelect = func(_ int, opt ui.SelectionOption) {
		g.completeAddMember(env, opt.Value.(*party.Character))
	}
	env.present(sel, nav.ToPrevious(), nil)
}

func (g *Guild) completeAddMember(env *Env, member *party.Character) {
	if err := env.Party.Add(member); err != nil {
		env.Log.Error("party join failed", "name", member.Name, "error", err)
		env.replace(env.errorDialog("guild_join_failed", env.Loc.T("error.generic")), nav.ToPrevious(), nil)
		return
	}
	env.Log.Info("party member added", "name", member.Name, "size", env.Party.Size())

	done := env.infoDialog("guild_join_done",
		env.Loc.Tf("guild.joined", map[string]any{"Name": member.Name}))
	env.replace(done, nav.ToPrevious(), nil)
}

// candidates lists roster adventurers who could join: alive and not
// already in the party.
func (g *Guild) candidates(env *Env) []*party.Character {
	var out []*party.Character
	for _, member := range env.Roster.Members() {
		if member.Alive() && !env.Party.Contains(member) {
			out = append(out, member)
		}
	}
	return out
}

// showRoster lists everyone registered at the guild.
func (g *Guild) showRoster(env *Env) {
	members := env.Roster.Members()
	if len(members) == 0 {
		env.ShowInfo("guild_roster_empty", env.Loc.T("guild.roster_empty"))
		return
	}
	lines := make([]string, 0, len(members))
	for _, member := range members {
		lines = append(lines, g.memberLine(env, member))
	}
	env.ShowInfo("guild_roster_list", strings.Join(lines, "\n"))
}

func (g *Guild) memberLine(env *Env, member *party.Character) string {
	return env.Loc.Tf("guild.member_line", map[string]any{
		"Name":   member.Name,
		"Class":  env.Loc.T("class." + string(member.Class)),
		"Level":  member.Level,
		"Status": env.Loc.T("status." + string(member.Status)),
	})
}

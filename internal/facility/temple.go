package facility

import (
	"github.com/endo5501/DungeonMirundal-sub002/internal/party"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// Temple heals the wounded and raises the dead, at prices from the
// facility data.
type Temple struct{}

// NewTemple creates the temple.
func NewTemple() *Temple { return &Temple{} }

// ID returns the facility ID used in game data.
func (t *Temple) ID() string { return "temple" }

// Enter presents the temple menu.
func (t *Temple) Enter(env *Env) error {
	return env.Nav.Present(t.menu(env), nav.ToPrevious())
}

func (t *Temple) menu(env *Env) *ui.Menu {
	items := []ui.MenuItem{
		{ID: "temple_heal", Label: env.Loc.T("temple.heal"), OnChoose: func() { t.heal(env) }},
		{ID: "temple_resurrect", Label: env.Loc.T("temple.resurrect"), OnChoose: func() { t.resurrect(env) }},
	}
	m := ui.NewMenu("temple_menu", env.Loc.T("temple.title"), items)
	m.SetSubtitle(env.Greeting(t.ID()))
	return m
}

// rite describes one temple service: who qualifies, what it does, and
// the message IDs around it.
type rite struct {
	service    string
	selectID   string
	confirmID  string
	doneID     string
	promptKey  string
	confirmKey string
	doneKey    string
	emptyKey   string
	candidates func(*party.Party) []*party.Character
	apply      func(*party.Character)
}

func (t *Temple) heal(env *Env) {
	t.presentRite(env, rite{
		service:    "heal",
		selectID:   "temple_heal_select",
		confirmID:  "temple_confirm_heal",
		doneID:     "temple_heal_done",
		promptKey:  "temple.heal_prompt",
		confirmKey: "temple.confirm_heal",
		doneKey:    "temple.healed",
		emptyKey:   "temple.nobody_hurt",
		candidates: (*party.Party).Injured,
		apply:      func(c *party.Character) { c.HP = c.MaxHP },
	}, 0)
}

func (t *Temple) resurrect(env *Env) {
	t.presentRite(env, rite{
		service:    "resurrect",
		selectID:   "temple_resurrect_select",
		confirmID:  "temple_confirm_resurrect",
		doneID:     "temple_resurrect_done",
		promptKey:  "temple.resurrect_prompt",
		confirmKey: "temple.confirm_resurrect",
		doneKey:    "temple.resurrected",
		emptyKey:   "temple.nobody_dead",
		candidates: (*party.Party).Dead,
		// The raised come back barely standing.
		apply: func(c *party.Character) {
			c.Status = party.StatusOK
			c.HP = 1
		},
	}, 0)
}

// presentRite shows the candidate selection for a service. cursor
// restores the highlighted row when the list is rebuilt after a
// completed rite.
func (t *Temple) presentRite(env *Env, r rite, cursor int) {
	candidates := r.candidates(env.Party)
	if len(candidates) == 0 {
		env.ShowInfo(r.selectID+"_empty", env.Loc.T(r.emptyKey))
		return
	}
	price, ok := env.Data.ServicePrice(t.ID(), r.service)
	if !ok {
		env.Log.Error("temple service price missing from facility data", "service", r.service)
		env.ShowError(r.selectID+"_no_price", env.Loc.T("error.generic"))
		return
	}

	opts := make([]ui.SelectionOption, 0, len(candidates))
	for _, member := range candidates {
		opts = append(opts, ui.SelectionOption{
			ID:    "rite_" + member.Name,
			Label: member.Name,
			Value: member,
		})
	}
	sel := ui.NewSelectionDialog(r.selectID,
		env.Loc.Tf(r.promptKey, map[string]any{"Price": price}), opts, nil)
	sel.OnSelect = func(index int, opt ui.SelectionOption) {
		t.confirmRite(env, r, opt.Value.(*party.Character), price, index)
	}
	sel.SetSelectedIndex(cursor)
	env.present(sel, nav.ToPrevious(), nil)
}

func (t *Temple) confirmRite(env *Env, r rite, member *party.Character, price, cursor int) {
	msg := env.Loc.Tf(r.confirmKey, map[string]any{"Name": member.Name, "Price": price})
	confirm := env.confirmDialog(r.confirmID, msg, nil)
	confirm.OnResult = func(yes bool) {
		if !yes {
			env.Nav.GoBack()
			return
		}
		t.completeRite(env, r, member, price, cursor)
	}
	env.present(confirm, nav.ToPrevious(), nil)
}

// completeRite performs the service and swaps the confirmation for the
// result. Dismissing the result rebuilds the candidate list, or drops
// back to the temple menu when nobody qualifies anymore.
func (t *Temple) completeRite(env *Env, r rite, member *party.Character, price, cursor int) {
	if !env.Party.Spend(price) {
		env.Log.Info("temple service refused", "service", r.service, "price", price, "gold", env.Party.Gold())
		env.replace(env.errorDialog(r.confirmID+"_no_gold", env.Loc.T("temple.no_gold")), nav.ToPrevious(), nil)
		return
	}
	r.apply(member)
	env.Log.Info("temple service performed",
		"service", r.service, "name", member.Name, "price", price, "gold", env.Party.Gold())

	rebuild := func(c *nav.Controller, ctx nav.Context) error {
		c.GoBack()
		if len(r.candidates(env.Party)) == 0 {
			return nil
		}
		at, _ := ctx.Int("cursor")
		t.presentRite(env, r, at)
		return nil
	}
	done := env.infoDialog(r.doneID, env.Loc.Tf(r.doneKey, map[string]any{"Name": member.Name}))
	env.replace(done, rebuild, nav.Context{"cursor": cursor})
}

package facility

import (
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// Inn restores the party's HP and MP for a fee from the facility data.
type Inn struct{}

// NewInn creates the inn.
func NewInn() *Inn { return &Inn{} }

// ID returns the facility ID used in game data.
func (i *Inn) ID() string { return "inn" }

// Enter presents the inn menu.
func (i *Inn) Enter(env *Env) error {
	return env.Nav.Present(i.menu(env), nav.ToPrevious())
}

func (i *Inn) menu(env *Env) *ui.Menu {
	items := []ui.MenuItem{
		{ID: "inn_rest", Label: env.Loc.T("inn.rest"), OnChoose: func() { i.rest(env) }},
		{ID: "inn_talk", Label: env.Loc.T("inn.talk"), OnChoose: func() { i.talk(env) }},
	}
	m := ui.NewMenu("inn_menu", env.Loc.T("inn.title"), items)
	m.SetSubtitle(env.Greeting(i.ID()))
	return m
}

func (i *Inn) rest(env *Env) {
	if len(env.Party.Alive()) == 0 {
		env.ShowError("inn_no_party", env.Loc.T("inn.no_party"))
		return
	}
	price, ok := env.Data.ServicePrice(i.ID(), "rest")
	if !ok {
		env.Log.Error("inn rest price missing from facility data")
		env.ShowError("inn_no_price", env.Loc.T("error.generic"))
		return
	}

	confirm := env.confirmDialog("inn_confirm_rest",
		env.Loc.Tf("inn.confirm_rest", map[string]any{"Price": price}), nil)
	confirm.OnResult = func(yes bool) {
		if !yes {
			env.Nav.GoBack()
			return
		}
		i.completeRest(env, price)
	}
	env.present(confirm, nav.ToPrevious(), nil)
}

// completeRest charges the fee and refills every living member. The
// dead stay dead; that is temple business.
func (i *Inn) completeRest(env *Env, price int) {
	if !env.Party.Spend(price) {
		env.Log.Info("rest refused", "price", price, "gold", env.Party.Gold())
		env.replace(env.errorDialog("inn_no_gold", env.Loc.T("inn.no_gold")), nav.ToPrevious(), nil)
		return
	}
	for _, member := range env.Party.Alive() {
		member.RestoreAll()
	}
	env.Log.Info("party rested", "price", price, "gold", env.Party.Gold())

	done := env.infoDialog("inn_rest_done", env.Loc.T("inn.rested"))
	env.replace(done, nav.ToPrevious(), nil)
}

func (i *Inn) talk(env *Env) {
	env.ShowInfo("inn_rumor", env.Loc.T("inn.rumor"))
}

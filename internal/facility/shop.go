package facility

import (
	"fmt"

	"github.com/endo5501/DungeonMirundal-sub002/internal/gamedata"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// Shop buys and sells equipment against the party's pooled gold and
// inventory. Items sell back at half price.
type Shop struct{}

// NewShop creates the trading post.
func NewShop() *Shop { return &Shop{} }

// ID returns the facility ID used in game data.
func (s *Shop) ID() string { return "shop" }

// Enter presents the shop menu.
func (s *Shop) Enter(env *Env) error {
	return env.Nav.Present(s.menu(env), nav.ToPrevious())
}

func (s *Shop) menu(env *Env) *ui.Menu {
	items := []ui.MenuItem{
		{ID: "shop_buy", Label: env.Loc.T("shop.buy"), OnChoose: func() { s.presentBuy(env, 0) }},
		{ID: "shop_sell", Label: env.Loc.T("shop.sell"), OnChoose: func() { s.presentSell(env, 0) }},
	}
	m := ui.NewMenu("shop_menu", env.Loc.T("shop.title"), items)
	m.SetSubtitle(env.Greeting(s.ID()))
	return m
}

// presentBuy shows the goods list. cursor restores the highlighted row
// when the list is rebuilt after a purchase.
func (s *Shop) presentBuy(env *Env, cursor int) {
	if len(env.Data.Items()) == 0 {
		env.ShowInfo("shop_sold_out", env.Loc.T("shop.sold_out"))
		return
	}
	env.present(s.buyMenu(env, cursor), nav.ToPrevious(), nil)
}

// buyMenu builds the goods list. The title shows the party's gold, so
// the menu goes stale the moment a purchase settles; the result
// dialog's back action rebuilds it through here.
func (s *Shop) buyMenu(env *Env, cursor int) *ui.Menu {
	var m *ui.Menu
	goods := env.Data.Items()
	items := make([]ui.MenuItem, 0, len(goods))
	for _, it := range goods {
		items = append(items, ui.MenuItem{
			ID:       "buy_" + it.ID,
			Label:    s.priceTag(env, it.NameKey, it.Price),
			Disabled: it.Price > env.Party.Gold(),
			OnChoose: func() { s.confirmBuy(env, it, m.SelectedIndex()) },
		})
	}
	m = ui.NewMenu("shop_buy_menu",
		env.Loc.Tf("shop.buy_title", map[string]any{"Gold": env.Party.Gold()}), items)
	m.SetSelectedIndex(cursor)
	return m
}

func (s *Shop) confirmBuy(env *Env, it gamedata.Item, cursor int) {
	msg := env.Loc.Tf("shop.confirm_buy", map[string]any{
		"Item":  env.Loc.T(it.NameKey),
		"Price": it.Price,
	})
	confirm := env.confirmDialog("shop_confirm_buy", msg, nil)
	confirm.OnResult = func(yes bool) {
		if !yes {
			env.Nav.GoBack()
			return
		}
		s.completeBuy(env, it, cursor)
	}
	env.present(confirm, nav.ToPrevious(), nil)
}

// completeBuy settles the purchase and swaps the confirmation for the
// result message. Dismissing the result replaces the stale goods list
// with a rebuilt one, cursor restored from the entry context.
func (s *Shop) completeBuy(env *Env, it gamedata.Item, cursor int) {
	rebuild := func(c *nav.Controller, ctx nav.Context) error {
		at, _ := ctx.Int("cursor")
		return c.Replace(s.buyMenu(env, at), nav.ToPrevious(), nil)
	}
	ctx := nav.Context{"item": it.ID, "cursor": cursor}

	if !env.Party.Spend(it.Price) {
		env.Log.Info("purchase refused", "item", it.ID, "price", it.Price, "gold", env.Party.Gold())
		env.replace(env.errorDialog("shop_no_gold", env.Loc.T("shop.no_gold")), rebuild, ctx)
		return
	}
	env.Party.AddItem(it.ID)
	env.Log.Info("item purchased", "item", it.ID, "price", it.Price, "gold", env.Party.Gold())

	done := env.infoDialog("shop_buy_done",
		env.Loc.Tf("shop.bought", map[string]any{"Item": env.Loc.T(it.NameKey)}))
	env.replace(done, rebuild, ctx)
}

// presentSell shows the party's inventory for sale.
func (s *Shop) presentSell(env *Env, cursor int) {
	if len(env.Party.Items()) == 0 {
		env.ShowInfo("shop_nothing_to_sell", env.Loc.T("shop.nothing_to_sell"))
		return
	}
	env.present(s.sellMenu(env, cursor), nav.ToPrevious(), nil)
}

func (s *Shop) sellMenu(env *Env, cursor int) *ui.Menu {
	var m *ui.Menu
	held := env.Party.Items()
	items := make([]ui.MenuItem, 0, len(held))
	for i, id := range held {
		it, ok := env.Data.Item(id)
		if !ok {
			env.Log.Warn("inventory item missing from game data", "item", id)
			continue
		}
		items = append(items, ui.MenuItem{
			ID:       fmt.Sprintf("sell_%d_%s", i, it.ID),
			Label:    s.priceTag(env, it.NameKey, sellPrice(it)),
			OnChoose: func() { s.confirmSell(env, it, m.SelectedIndex()) },
		})
	}
	m = ui.NewMenu("shop_sell_menu", env.Loc.T("shop.sell_title"), items)
	m.SetSelectedIndex(cursor)
	return m
}

func (s *Shop) confirmSell(env *Env, it gamedata.Item, cursor int) {
	msg := env.Loc.Tf("shop.confirm_sell", map[string]any{
		"Item":  env.Loc.T(it.NameKey),
		"Price": sellPrice(it),
	})
	confirm := env.confirmDialog("shop_confirm_sell", msg, nil)
	confirm.OnResult = func(yes bool) {
		if !yes {
			env.Nav.GoBack()
			return
		}
		s.completeSell(env, it, cursor)
	}
	env.present(confirm, nav.ToPrevious(), nil)
}

// completeSell settles the sale. The result dialog's back action
// rebuilds the sell list, or drops back to the shop menu when the last
// item is gone.
func (s *Shop) completeSell(env *Env, it gamedata.Item, cursor int) {
	if !env.Party.RemoveItem(it.ID) {
		env.Log.Error("sold item not in inventory", "item", it.ID)
		env.replace(env.errorDialog("shop_sell_failed", env.Loc.T("error.generic")), nav.ToPrevious(), nil)
		return
	}
	price := sellPrice(it)
	env.Party.Earn(price)
	env.Log.Info("item sold", "item", it.ID, "price", price, "gold", env.Party.Gold())

	rebuild := func(c *nav.Controller, ctx nav.Context) error {
		if len(env.Party.Items()) == 0 {
			c.GoBack()
			return nil
		}
		at, _ := ctx.Int("cursor")
		return c.Replace(s.sellMenu(env, at), nav.ToPrevious(), nil)
	}
	done := env.infoDialog("shop_sell_done",
		env.Loc.Tf("shop.sold", map[string]any{"Item": env.Loc.T(it.NameKey), "Price": price}))
	env.replace(done, rebuild, nav.Context{"cursor": cursor})
}

func (s *Shop) priceTag(env *Env, nameKey string, price int) string {
	return env.Loc.Tf("shop.price_tag", map[string]any{
		"Name":  env.Loc.T(nameKey),
		"Price": price,
	})
}

// sellPrice is half the list price, rounded down.
func sellPrice(it gamedata.Item) int {
	return it.Price / 2
}

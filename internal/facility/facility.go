// Package facility implements the town establishments the party visits
// between dungeon runs. Each facility drives its menus and dialogs
// through the shared navigation controller; every screen it presents
// carries an explicit back action so cancelling always lands on the
// exact prior view.
package facility

import (
	"log/slog"

	"github.com/endo5501/DungeonMirundal-sub002/internal/gamedata"
	"github.com/endo5501/DungeonMirundal-sub002/internal/i18n"
	"github.com/endo5501/DungeonMirundal-sub002/internal/party"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// Env bundles the shared state facility flows operate on. The session
// builds one Env and hands it to every facility it enters.
type Env struct {
	Nav    *nav.Controller
	Loc    *i18n.Translator
	Data   *gamedata.Store
	Party  *party.Party
	Roster *party.Roster
	Log    *slog.Logger
}

// Facility is one town establishment. Enter presents its top screen on
// the navigation stack; everything after that runs through screen
// callbacks.
type Facility interface {
	ID() string
	Enter(env *Env) error
}

// Greeting returns the facility's localized greeting line, or "" when
// the facility data has none.
func (e *Env) Greeting(facilityID string) string {
	f, ok := e.Data.Facility(facilityID)
	if !ok || f.GreetingKey == "" {
		return ""
	}
	return e.Loc.T(f.GreetingKey)
}

// ShowInfo presents a dismissable information dialog over the current
// screen. Backing out returns to where the player was.
func (e *Env) ShowInfo(id, text string) {
	e.present(e.infoDialog(id, text), nav.ToPrevious(), nil)
}

// ShowError presents a localized failure message over the current
// screen. This is the only way errors reach the player.
func (e *Env) ShowError(id, text string) {
	e.present(e.errorDialog(id, text), nav.ToPrevious(), nil)
}

// infoDialog builds an information dialog with localized labels that
// dismisses through back navigation.
func (e *Env) infoDialog(id, text string) *ui.InfoDialog {
	d := ui.NewInfoDialog(id, text, e.dismiss)
	d.OKLabel = e.Loc.T("common.ok")
	return d
}

// errorDialog builds an error dialog with localized labels that
// dismisses through back navigation.
func (e *Env) errorDialog(id, text string) *ui.ErrorDialog {
	d := ui.NewErrorDialog(id, text, e.dismiss)
	d.OKLabel = e.Loc.T("common.ok")
	return d
}

// confirmDialog builds a yes/no dialog with localized answer labels.
func (e *Env) confirmDialog(id, text string, onResult func(bool)) *ui.ConfirmDialog {
	d := ui.NewConfirmDialog(id, text, onResult)
	d.YesLabel = e.Loc.T("common.yes")
	d.NoLabel = e.Loc.T("common.no")
	return d
}

func (e *Env) dismiss() { e.Nav.GoBack() }

// present pushes a screen from inside a callback, where there is no
// caller to surface a presentation error to. Rejections are programming
// mistakes; they go to the log, never the player.
func (e *Env) present(screen nav.Screen, onBack nav.BackAction, ctx nav.Context) {
	if err := e.Nav.PresentWith(screen, onBack, ctx); err != nil {
		e.Log.Error("screen presentation rejected", "screen", screen.ID(), "error", err)
	}
}

// replace swaps the active screen from inside a callback, logging
// rejections like present does.
func (e *Env) replace(screen nav.Screen, onBack nav.BackAction, ctx nav.Context) {
	if err := e.Nav.Replace(screen, onBack, ctx); err != nil {
		e.Log.Error("screen replacement rejected", "screen", screen.ID(), "error", err)
	}
}

// Registry holds the facilities available in town, in registration
// order.
type Registry struct {
	facilities []Facility
	byID       map[string]Facility
}

// NewRegistry builds a registry from the given facilities. A duplicate
// ID keeps the first registration.
func NewRegistry(fs ...Facility) *Registry {
	r := &Registry{byID: make(map[string]Facility, len(fs))}
	for _, f := range fs {
		if _, exists := r.byID[f.ID()]; exists {
			continue
		}
		r.facilities = append(r.facilities, f)
		r.byID[f.ID()] = f
	}
	return r
}

// Find looks up a facility by ID.
func (r *Registry) Find(id string) (Facility, bool) {
	f, ok := r.byID[id]
	return f, ok
}

// All returns the facilities in registration order.
func (r *Registry) All() []Facility {
	out := make([]Facility, len(r.facilities))
	copy(out, r.facilities)
	return out
}

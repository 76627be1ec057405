// Package session runs one game: it owns the navigation controller,
// the town root menu, the facility environment, and the input loop
// that ties them to a frontend.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"go.uber.org/atomic"

	"github.com/endo5501/DungeonMirundal-sub002/internal/dungeon"
	"github.com/endo5501/DungeonMirundal-sub002/internal/facility"
	"github.com/endo5501/DungeonMirundal-sub002/internal/gamedata"
	"github.com/endo5501/DungeonMirundal-sub002/internal/i18n"
	"github.com/endo5501/DungeonMirundal-sub002/internal/party"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// DefaultStartingGold is the party's purse when the config does not
// set one.
const DefaultStartingGold = 500

// Generated floors are small enough to print in a dialog.
const (
	dungeonWidth  = 24
	dungeonHeight = 24
)

// Frontend is the rendering and input layer driving a session.
type Frontend interface {
	// Next blocks for the next input signal. ok is false when the
	// frontend has no more input, which ends the session.
	Next() (sig constants.Signal, ok bool)
	// Render draws the active screen and the overlays after each step.
	// It runs under the session's lock so screen state cannot change
	// mid-draw; it must not call Step, InjectText, or Snapshot.
	Render(active nav.Screen, overlays []nav.Screen)
}

// Config configures a Session.
type Config struct {
	Data       *gamedata.Store
	Loc        *i18n.Translator
	Facilities *facility.Registry
	// Frontend may be nil for sessions driven entirely through Step,
	// but Run refuses to start without one.
	Frontend     Frontend
	Logger       *slog.Logger
	StartingGold int
}

// Session is one running game. The navigation core is single-threaded;
// the session's mutex serializes the frontend loop and the debug API
// on top of it.
type Session struct {
	mu   sync.Mutex
	cfg  Config
	ctrl *nav.Controller
	env  *facility.Env
	log  *slog.Logger

	running atomic.Bool
	modal   atomic.Bool
	signals atomic.Uint64
}

// New builds a session with the town menu as the navigation root and
// an empty party holding the starting gold.
func New(cfg Config) (*Session, error) {
	if cfg.Data == nil {
		return nil, fmt.Errorf("session: config missing game data")
	}
	if cfg.Loc == nil {
		return nil, fmt.Errorf("session: config missing translator")
	}
	if cfg.Facilities == nil {
		return nil, fmt.Errorf("session: config missing facilities")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("session: config missing logger")
	}
	if cfg.StartingGold == 0 {
		cfg.StartingGold = DefaultStartingGold
	}

	s := &Session{cfg: cfg, log: cfg.Logger}

	ctrl, err := nav.New(nav.Config{Root: s.townMenu(), Logger: cfg.Logger})
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	s.ctrl.SetInputGate(func(modal bool) { s.modal.Store(modal) })

	s.env = &facility.Env{
		Nav:    ctrl,
		Loc:    cfg.Loc,
		Data:   cfg.Data,
		Party:  party.New(cfg.StartingGold),
		Roster: party.NewRoster(),
		Log:    cfg.Logger,
	}
	if err := ctrl.AddOverlay(&goldStrip{party: s.env.Party, loc: cfg.Loc}); err != nil {
		return nil, err
	}

	s.log.Info("session ready",
		"facilities", len(cfg.Facilities.All()), "gold", cfg.StartingGold, "lang", cfg.Loc.Lang())
	return s, nil
}

// townMenu builds the root screen. Facility entries come first, in
// registry order, labeled through their game data name keys.
func (s *Session) townMenu() *ui.Menu {
	var items []ui.MenuItem
	for _, f := range s.cfg.Facilities.All() {
		label := "facility." + f.ID()
		if fac, ok := s.cfg.Data.Facility(f.ID()); ok {
			label = fac.NameKey
		}
		items = append(items, ui.MenuItem{
			ID:       "town_" + f.ID(),
			Label:    s.cfg.Loc.T(label),
			OnChoose: func() { s.enterFacility(f) },
		})
	}
	items = append(items,
		ui.MenuItem{ID: "town_dungeon", Label: s.cfg.Loc.T("town.dungeon"), OnChoose: s.enterDungeon},
		ui.MenuItem{ID: "town_status", Label: s.cfg.Loc.T("town.status"), OnChoose: s.showStatus},
		ui.MenuItem{ID: "town_quit", Label: s.cfg.Loc.T("town.quit"), OnChoose: s.confirmQuit},
	)
	return ui.NewMenu("town", s.cfg.Loc.T("town.title"), items)
}

func (s *Session) enterFacility(f facility.Facility) {
	s.log.Info("facility entered", "facility", f.ID())
	if err := f.Enter(s.env); err != nil {
		s.log.Error("facility entry failed", "facility", f.ID(), "error", err)
		s.env.ShowError("facility_error", s.cfg.Loc.T("error.generic"))
	}
}

// enterDungeon asks for a dungeon name; the name seeds the layout, so
// naming the same dungeon twice descends into the same maze.
func (s *Session) enterDungeon() {
	input := ui.NewInputDialog("dungeon_name", s.cfg.Loc.T("dungeon.name_prompt"), 24, nil)
	input.OnSubmit = func(name string) { s.descend(name) }
	s.present(input, nav.ToPrevious(), nil)
}

func (s *Session) descend(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		s.env.ShowError("dungeon_name_empty", s.cfg.Loc.T("dungeon.name_empty"))
		return
	}
	floor, err := dungeon.Generate(name, 1, dungeonWidth, dungeonHeight)
	if err != nil {
		s.log.Error("dungeon generation failed", "name", name, "error", err)
		s.env.ShowError("dungeon_error", s.cfg.Loc.T("error.generic"))
		return
	}
	s.log.Info("dungeon generated",
		"name", floor.Name, "level", floor.Level, "seed", floor.Seed, "rooms", floor.Rooms)

	text := s.cfg.Loc.Tf("dungeon.summary", map[string]any{
		"Name":  floor.Name,
		"Level": floor.Level,
		"Rooms": floor.Rooms,
	}) + "\n\n" + strings.Join(floor.Render(), "\n")
	done := ui.NewInfoDialog("dungeon_summary", text, func() { s.ctrl.GoBack() })
	done.OKLabel = s.cfg.Loc.T("common.ok")
	s.replace(done, nav.ToPrevious(), nil)
}

func (s *Session) showStatus() {
	members := s.env.Party.Members()
	if len(members) == 0 {
		s.env.ShowInfo("party_status", s.cfg.Loc.T("status.empty"))
		return
	}
	lines := make([]string, 0, len(members))
	for _, m := range members {
		lines = append(lines, s.cfg.Loc.Tf("status.line", map[string]any{
			"Name":   m.Name,
			"Class":  s.cfg.Loc.T("class." + string(m.Class)),
			"Level":  m.Level,
			"HP":     m.HP,
			"MaxHP":  m.MaxHP,
			"MP":     m.MP,
			"MaxMP":  m.MaxMP,
			"Status": s.cfg.Loc.T("status." + string(m.Status)),
		}))
	}
	s.env.ShowInfo("party_status", strings.Join(lines, "\n"))
}

func (s *Session) confirmQuit() {
	confirm := ui.NewConfirmDialog("quit_confirm", s.cfg.Loc.T("town.quit_confirm"), nil)
	confirm.YesLabel = s.cfg.Loc.T("common.yes")
	confirm.NoLabel = s.cfg.Loc.T("common.no")
	confirm.OnResult = func(yes bool) {
		if yes {
			s.Stop()
			return
		}
		s.ctrl.GoBack()
	}
	s.present(confirm, nav.ToPrevious(), nil)
}

func (s *Session) present(screen nav.Screen, onBack nav.BackAction, ctx nav.Context) {
	if err := s.ctrl.PresentWith(screen, onBack, ctx); err != nil {
		s.log.Error("screen presentation rejected", "screen", screen.ID(), "error", err)
	}
}

func (s *Session) replace(screen nav.Screen, onBack nav.BackAction, ctx nav.Context) {
	if err := s.ctrl.Replace(screen, onBack, ctx); err != nil {
		s.log.Error("screen replacement rejected", "screen", screen.ID(), "error", err)
	}
}

// Step processes one input signal: back goes to the controller, menu
// clears to town, everything else goes to the active screen. Safe for
// concurrent use; the debug API injects signals while the frontend
// loop runs.
func (s *Session) Step(sig constants.Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sig == constants.SignalNone {
		return
	}
	s.signals.Inc()
	switch sig {
	case constants.SignalBack:
		if !s.ctrl.GoBack() {
			s.confirmQuit()
		}
	case constants.SignalMenu:
		s.ctrl.ReturnToRoot()
	default:
		if h, ok := s.ctrl.CurrentScreen().(ui.SignalHandler); ok {
			h.HandleSignal(sig)
			return
		}
		s.log.Debug("signal ignored by screen",
			"signal", sig.GetName(), "screen", s.ctrl.CurrentScreen().ID())
	}
}

// InjectText types text into the active screen and reports whether the
// screen accepts text input.
func (s *Session) InjectText(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ctrl.CurrentScreen().(ui.TextReceiver)
	if !ok {
		return false
	}
	for _, c := range text {
		r.AppendRune(c)
	}
	return true
}

// Run drives the session from the frontend until the context ends, the
// frontend runs out of input, or the player quits.
func (s *Session) Run(ctx context.Context) error {
	if s.cfg.Frontend == nil {
		return fmt.Errorf("session: no frontend configured")
	}
	s.running.Store(true)
	defer s.running.Store(false)
	s.log.Info("session started")

	s.render()
	for s.running.Load() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		sig, ok := s.cfg.Frontend.Next()
		if !ok {
			s.log.Info("frontend closed, ending session")
			return nil
		}
		s.Step(sig)
		s.render()
	}
	s.log.Info("session ended")
	return nil
}

// render draws the current state. The lock is held across the Render
// call: the debug API mutates screens through Step and InjectText from
// its own goroutine, so a frontend walking Elements outside the lock
// would read a menu cursor or the party purse mid-change.
func (s *Session) render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Frontend.Render(s.ctrl.CurrentScreen(), s.ctrl.Overlays())
}

// Stop ends the run loop after the current step.
func (s *Session) Stop() {
	s.running.Store(false)
	s.log.Info("session stopping")
}

// Running reports whether the run loop is active.
func (s *Session) Running() bool {
	return s.running.Load()
}

// Party returns the party, for tests and the CLI.
func (s *Session) Party() *party.Party {
	return s.env.Party
}

// Roster returns the guild roster.
func (s *Session) Roster() *party.Roster {
	return s.env.Roster
}

// Snapshot returns the UI tree for debug introspection.
func (s *Session) Snapshot() *nav.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Snapshot()
}

// Stats is the session counter set served by the debug API.
type Stats struct {
	Signals      uint64 `json:"signals"`
	Recoveries   uint64 `json:"recoveries"`
	Depth        int    `json:"depth"`
	Screen       string `json:"screen"`
	Modal        bool   `json:"modal"`
	LastRecovery string `json:"last_recovery,omitempty"`
}

// Stats reports the current counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Signals:    s.signals.Load(),
		Recoveries: s.ctrl.Recoveries(),
		Depth:      s.ctrl.Depth(),
		Screen:     s.ctrl.CurrentScreen().ID(),
		Modal:      s.modal.Load(),
	}
	if err := s.ctrl.LastRecovery(); err != nil {
		st.LastRecovery = err.Error()
	}
	return st
}

package session_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endo5501/DungeonMirundal-sub002/internal/facility"
	"github.com/endo5501/DungeonMirundal-sub002/internal/gamedata"
	"github.com/endo5501/DungeonMirundal-sub002/internal/i18n"
	"github.com/endo5501/DungeonMirundal-sub002/internal/party"
	"github.com/endo5501/DungeonMirundal-sub002/internal/session"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/nav"
)

// scriptFrontend feeds a fixed signal sequence and records what it was
// asked to draw.
type scriptFrontend struct {
	sigs     []constants.Signal
	next     int
	renders  int
	last     string
	overlays int
}

func (f *scriptFrontend) Next() (constants.Signal, bool) {
	if f.next >= len(f.sigs) {
		return constants.SignalNone, false
	}
	sig := f.sigs[f.next]
	f.next++
	return sig, true
}

func (f *scriptFrontend) Render(active nav.Screen, overlays []nav.Screen) {
	f.renders++
	f.last = active.ID()
	f.overlays = len(overlays)
}

// newSession builds a session against the shipped game data and
// catalogs with every facility registered.
func newSession(t *testing.T, fe session.Frontend) *session.Session {
	t.Helper()

	data, err := gamedata.Load("../../data")
	require.NoError(t, err)
	loc, err := i18n.New("../../locales", "en")
	require.NoError(t, err)

	s, err := session.New(session.Config{
		Data: data,
		Loc:  loc,
		Facilities: facility.NewRegistry(
			facility.NewGuild(),
			facility.NewShop(),
			facility.NewInn(),
			facility.NewTemple(),
			facility.NewMageGuild(),
		),
		Frontend: fe,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return s
}

func press(s *session.Session, sigs ...constants.Signal) {
	for _, sig := range sigs {
		s.Step(sig)
	}
}

func TestNew(t *testing.T) {
	t.Run("rejects an incomplete config", func(t *testing.T) {
		_, err := session.New(session.Config{})
		assert.Error(t, err)
	})

	t.Run("starts at the town menu", func(t *testing.T) {
		s := newSession(t, nil)

		st := s.Stats()
		assert.Equal(t, "town", st.Screen)
		assert.Equal(t, 1, st.Depth)
		assert.True(t, st.Modal)
		assert.Zero(t, st.Recoveries)
		assert.Empty(t, st.LastRecovery)
		assert.Equal(t, session.DefaultStartingGold, s.Party().Gold())
	})

	t.Run("lists facilities then town actions", func(t *testing.T) {
		s := newSession(t, nil)

		var ids []string
		for _, el := range s.Snapshot().Screens[0].Elements {
			if el.Kind == nav.ElementItem {
				ids = append(ids, el.ID)
			}
		}
		assert.Equal(t, []string{
			"town_guild", "town_shop", "town_inn", "town_temple", "town_mage_guild",
			"town_dungeon", "town_status", "town_quit",
		}, ids)
	})

	t.Run("shows the gold overlay", func(t *testing.T) {
		s := newSession(t, nil)

		snap := s.Snapshot()
		require.Len(t, snap.Overlays, 1)
		assert.Equal(t, "gold_strip", snap.Overlays[0].ID)
		assert.Contains(t, snap.Overlays[0].Elements[0].Text, "500")

		s.Party().Earn(250)
		assert.Contains(t, s.Snapshot().Overlays[0].Elements[0].Text, "750")
	})
}

func TestStep(t *testing.T) {
	t.Run("confirm enters the selected facility", func(t *testing.T) {
		s := newSession(t, nil)

		press(s, constants.SignalConfirm)
		st := s.Stats()
		assert.Equal(t, "guild_menu", st.Screen)
		assert.Equal(t, 2, st.Depth)
	})

	t.Run("menu signal returns to town from anywhere", func(t *testing.T) {
		s := newSession(t, nil)

		press(s, constants.SignalConfirm, constants.SignalConfirm)
		require.Equal(t, 3, s.Stats().Depth)

		press(s, constants.SignalMenu)
		st := s.Stats()
		assert.Equal(t, "town", st.Screen)
		assert.Equal(t, 1, st.Depth)
	})

	t.Run("back at the root asks before quitting", func(t *testing.T) {
		s := newSession(t, nil)

		press(s, constants.SignalBack)
		assert.Equal(t, "quit_confirm", s.Stats().Screen)

		// No is preselected, so a plain confirm declines.
		press(s, constants.SignalConfirm)
		st := s.Stats()
		assert.Equal(t, "town", st.Screen)
		assert.Equal(t, 1, st.Depth)
	})

	t.Run("backing out of the quit prompt", func(t *testing.T) {
		s := newSession(t, nil)

		press(s, constants.SignalBack, constants.SignalBack)
		assert.Equal(t, "town", s.Stats().Screen)
		assert.Equal(t, 1, s.Stats().Depth)
	})

	t.Run("counts handled signals", func(t *testing.T) {
		s := newSession(t, nil)

		press(s, constants.SignalDown, constants.SignalUp)
		assert.Equal(t, uint64(2), s.Stats().Signals)

		press(s, constants.SignalNone)
		assert.Equal(t, uint64(2), s.Stats().Signals)
	})
}

func TestDungeonFlow(t *testing.T) {
	// town_dungeon sits below the five facility entries.
	toDungeonPrompt := []constants.Signal{
		constants.SignalDown, constants.SignalDown, constants.SignalDown,
		constants.SignalDown, constants.SignalDown, constants.SignalConfirm,
	}

	t.Run("named descent shows the floor map", func(t *testing.T) {
		s := newSession(t, nil)

		press(s, toDungeonPrompt...)
		require.Equal(t, "dungeon_name", s.Stats().Screen)
		require.True(t, s.InjectText("Abandoned Mine"))

		press(s, constants.SignalConfirm)
		st := s.Stats()
		require.Equal(t, "dungeon_summary", st.Screen)
		assert.Equal(t, 2, st.Depth)

		text := s.Snapshot().Screens[1].Elements[0].Text
		assert.Contains(t, text, "Abandoned Mine")
		assert.Contains(t, text, "#")
		assert.Contains(t, text, "<")
		assert.Contains(t, text, ">")

		press(s, constants.SignalConfirm)
		assert.Equal(t, "town", s.Stats().Screen)
		assert.Equal(t, 1, s.Stats().Depth)
	})

	t.Run("requires a name", func(t *testing.T) {
		s := newSession(t, nil)

		press(s, toDungeonPrompt...)
		press(s, constants.SignalConfirm)
		st := s.Stats()
		assert.Equal(t, "dungeon_name_empty", st.Screen)
		assert.Equal(t, 3, st.Depth)

		press(s, constants.SignalConfirm)
		assert.Equal(t, "dungeon_name", s.Stats().Screen)
	})

	t.Run("text is refused outside input dialogs", func(t *testing.T) {
		s := newSession(t, nil)

		assert.False(t, s.InjectText("hello"))
	})
}

func TestStatusFlow(t *testing.T) {
	toStatus := []constants.Signal{
		constants.SignalDown, constants.SignalDown, constants.SignalDown,
		constants.SignalDown, constants.SignalDown, constants.SignalDown,
		constants.SignalConfirm,
	}

	t.Run("empty party", func(t *testing.T) {
		s := newSession(t, nil)

		press(s, toStatus...)
		require.Equal(t, "party_status", s.Stats().Screen)
		assert.Contains(t, s.Snapshot().Screens[1].Elements[0].Text, "Nobody")

		press(s, constants.SignalConfirm)
		assert.Equal(t, "town", s.Stats().Screen)
	})

	t.Run("lists each member", func(t *testing.T) {
		s := newSession(t, nil)
		require.NoError(t, s.Party().Add(party.NewCharacter("Boris", party.ClassFighter)))
		require.NoError(t, s.Party().Add(party.NewCharacter("Mina", party.ClassPriest)))

		press(s, toStatus...)
		text := s.Snapshot().Screens[1].Elements[0].Text
		assert.Contains(t, text, "Boris")
		assert.Contains(t, text, "Fighter")
		assert.Contains(t, text, "Mina")
		assert.Contains(t, text, "Lv.1")
	})
}

func TestRun(t *testing.T) {
	t.Run("renders each step and ends when input runs out", func(t *testing.T) {
		fe := &scriptFrontend{sigs: []constants.Signal{constants.SignalDown, constants.SignalUp}}
		s := newSession(t, fe)

		require.NoError(t, s.Run(context.Background()))
		assert.Equal(t, 3, fe.renders) // initial draw plus one per signal
		assert.Equal(t, "town", fe.last)
		assert.Equal(t, 1, fe.overlays)
		assert.False(t, s.Running())
	})

	t.Run("confirming the quit prompt stops the loop", func(t *testing.T) {
		fe := &scriptFrontend{sigs: []constants.Signal{
			constants.SignalBack, constants.SignalLeft, constants.SignalConfirm,
			constants.SignalDown, constants.SignalDown,
		}}
		s := newSession(t, fe)

		require.NoError(t, s.Run(context.Background()))
		assert.Equal(t, 3, fe.next) // the trailing signals were never read
		assert.False(t, s.Running())
	})

	t.Run("stops when the context ends", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := newSession(t, &scriptFrontend{sigs: []constants.Signal{constants.SignalDown}})

		assert.ErrorIs(t, s.Run(ctx), context.Canceled)
	})

	t.Run("refuses to run without a frontend", func(t *testing.T) {
		s := newSession(t, nil)

		assert.Error(t, s.Run(context.Background()))
	})
}

// walkingFrontend feeds a fixed number of cursor moves and walks every
// element on each draw, the way a real frontend does.
type walkingFrontend struct {
	remaining int
}

func (f *walkingFrontend) Next() (constants.Signal, bool) {
	if f.remaining == 0 {
		return constants.SignalNone, false
	}
	f.remaining--
	return constants.SignalDown, true
}

func (f *walkingFrontend) Render(active nav.Screen, overlays []nav.Screen) {
	for _, el := range active.Elements() {
		_ = el.Text
	}
	for _, o := range overlays {
		for _, el := range o.Elements() {
			_ = el.Text
		}
	}
}

// TestRunConcurrentDebugInput runs the frontend loop while a second
// goroutine drives the session the way the debug API does. The race
// detector flags any screen state read outside the session lock; the
// cursor-only signals keep the session on the town menu throughout.
func TestRunConcurrentDebugInput(t *testing.T) {
	const steps = 200
	fe := &walkingFrontend{remaining: steps}
	s := newSession(t, fe)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < steps; i++ {
			s.Step(constants.SignalUp)
			s.InjectText("x")
			_ = s.Snapshot()
			_ = s.Stats()
		}
	}()

	require.NoError(t, s.Run(context.Background()))
	<-done

	st := s.Stats()
	assert.Equal(t, "town", st.Screen)
	assert.Equal(t, 1, st.Depth)
	assert.Equal(t, uint64(2*steps), st.Signals)
}

package facility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endo5501/DungeonMirundal-sub002/internal/facility"
	"github.com/endo5501/DungeonMirundal-sub002/internal/party"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
)

func enterInn(t *testing.T, env *facility.Env) {
	t.Helper()
	require.NoError(t, facility.NewInn().Enter(env))
	require.Equal(t, "inn_menu", current(env))
}

func TestInnRest(t *testing.T) {
	t.Run("rest charges the fee and refills the living", func(t *testing.T) {
		env := newEnv(t, 100)
		weary := party.NewCharacter("Trebor", party.ClassMage)
		weary.HP = 1
		weary.MP = 0
		require.NoError(t, env.Party.Add(weary))
		enterInn(t, env)

		price, ok := env.Data.ServicePrice("inn", "rest")
		require.True(t, ok)

		press(t, env, constants.SignalConfirm)
		require.Equal(t, "inn_confirm_rest", current(env))
		press(t, env, constants.SignalLeft, constants.SignalConfirm)
		require.Equal(t, "inn_rest_done", current(env))

		press(t, env, constants.SignalConfirm)
		assert.Equal(t, "inn_menu", current(env))
		assert.Equal(t, 100-price, env.Party.Gold())
		assert.Equal(t, weary.MaxHP, weary.HP)
		assert.Equal(t, weary.MaxMP, weary.MP)
	})

	t.Run("the dead do not benefit", func(t *testing.T) {
		env := newEnv(t, 100)
		alive := party.NewCharacter("Trebor", party.ClassFighter)
		alive.HP = 2
		fallen := party.NewCharacter("Werdna", party.ClassFighter)
		fallen.HP = 0
		fallen.Status = party.StatusDead
		require.NoError(t, env.Party.Add(alive))
		require.NoError(t, env.Party.Add(fallen))
		enterInn(t, env)

		press(t, env, constants.SignalConfirm, constants.SignalLeft, constants.SignalConfirm)
		press(t, env, constants.SignalConfirm)

		assert.Equal(t, alive.MaxHP, alive.HP)
		assert.Equal(t, 0, fallen.HP)
		assert.Equal(t, party.StatusDead, fallen.Status)
	})

	t.Run("not enough gold", func(t *testing.T) {
		env := newEnv(t, 0)
		weary := party.NewCharacter("Trebor", party.ClassFighter)
		weary.HP = 1
		require.NoError(t, env.Party.Add(weary))
		enterInn(t, env)

		press(t, env, constants.SignalConfirm, constants.SignalLeft, constants.SignalConfirm)
		require.Equal(t, "inn_no_gold", current(env))

		press(t, env, constants.SignalConfirm)
		assert.Equal(t, "inn_menu", current(env))
		assert.Equal(t, 1, weary.HP, "a refused rest heals nothing")
	})

	t.Run("declining costs nothing", func(t *testing.T) {
		env := newEnv(t, 100)
		require.NoError(t, env.Party.Add(party.NewCharacter("Trebor", party.ClassFighter)))
		enterInn(t, env)

		press(t, env, constants.SignalConfirm)
		require.Equal(t, "inn_confirm_rest", current(env))
		press(t, env, constants.SignalConfirm) // cursor starts on no

		assert.Equal(t, "inn_menu", current(env))
		assert.Equal(t, 100, env.Party.Gold())
	})

	t.Run("no living party members", func(t *testing.T) {
		env := newEnv(t, 100)
		enterInn(t, env)

		press(t, env, constants.SignalConfirm)
		assert.Equal(t, "inn_no_party", current(env))
	})
}

func TestInnTalk(t *testing.T) {
	env := newEnv(t, 0)
	enterInn(t, env)

	press(t, env, constants.SignalDown, constants.SignalConfirm)
	require.Equal(t, "inn_rumor", current(env))

	press(t, env, constants.SignalConfirm)
	assert.Equal(t, "inn_menu", current(env))
}

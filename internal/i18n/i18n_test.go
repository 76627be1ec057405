package i18n_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endo5501/DungeonMirundal-sub002/internal/i18n"
)

func TestNew(t *testing.T) {
	t.Run("loads the testdata catalogs", func(t *testing.T) {
		tr, err := i18n.New("testdata", "en")
		require.NoError(t, err)
		assert.Equal(t, "en", tr.Lang())
	})

	t.Run("fails on a missing directory", func(t *testing.T) {
		_, err := i18n.New(filepath.Join("testdata", "nope"), "en")
		assert.Error(t, err)
	})

	t.Run("fails on a directory without catalogs", func(t *testing.T) {
		dir := t.TempDir()
		_, err := i18n.New(dir, "en")
		assert.Error(t, err)
	})

	t.Run("fails on malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "en.toml")
		require.NoError(t, os.WriteFile(path, []byte(`"broken = `), 0644))

		_, err := i18n.New(dir, "en")
		assert.Error(t, err)
	})

	t.Run("empty language means english", func(t *testing.T) {
		tr, err := i18n.New("testdata", "")
		require.NoError(t, err)
		assert.Equal(t, "en", tr.Lang())
		assert.Equal(t, "Adventurers' Guild", tr.T("guild.title"))
	})
}

func TestTranslate(t *testing.T) {
	en, err := i18n.New("testdata", "en")
	require.NoError(t, err)
	ja, err := i18n.New("testdata", "ja")
	require.NoError(t, err)

	t.Run("resolves plain messages", func(t *testing.T) {
		assert.Equal(t, "Adventurers' Guild", en.T("guild.title"))
		assert.Equal(t, "冒険者ギルド", ja.T("guild.title"))
	})

	t.Run("interpolates template data", func(t *testing.T) {
		got := en.Tf("greeting", map[string]any{"Name": "Alnera"})
		assert.Equal(t, "Welcome, Alnera.", got)

		got = ja.Tf("greeting", map[string]any{"Name": "アルネラ"})
		assert.Equal(t, "ようこそ、アルネラ。", got)
	})

	t.Run("falls back to english", func(t *testing.T) {
		assert.Equal(t, "English only", ja.T("only_english"))
	})

	t.Run("unknown ids come back unchanged", func(t *testing.T) {
		assert.Equal(t, "no.such.key", en.T("no.such.key"))
		assert.Equal(t, "no.such.key", en.Tf("no.such.key", map[string]any{"X": 1}))
	})

	t.Run("unsupported language falls back entirely", func(t *testing.T) {
		de, err := i18n.New("testdata", "de")
		require.NoError(t, err)
		assert.Equal(t, "Adventurers' Guild", de.T("guild.title"))
	})
}

func TestHas(t *testing.T) {
	en, err := i18n.New("testdata", "en")
	require.NoError(t, err)

	assert.True(t, en.Has("guild.title"))
	assert.True(t, en.Has("only_english"))
	assert.False(t, en.Has("no.such.key"))
}

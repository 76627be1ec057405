// Package i18n loads the game's message catalogs and resolves message
// IDs to player-facing text.
//
// Catalogs are TOML files named after their language tag (en.toml,
// ja.toml). Every string shown to the player goes through a Translator;
// raw identifiers and Go error strings never reach a screen.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translator resolves message IDs for one session language, falling
// back to English and then to the raw ID.
type Translator struct {
	bundle *goi18n.Bundle
	loc    *goi18n.Localizer
	lang   string
}

// New loads every .toml catalog under dir and builds a translator for
// lang. English is the fallback language. An empty lang means English.
func New(dir, lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read catalog dir: %w", err)
	}
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		if _, err := bundle.LoadMessageFile(filepath.Join(dir, entry.Name())); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", entry.Name(), err)
		}
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("i18n: no catalogs found in %s", dir)
	}

	if lang == "" {
		lang = "en"
	}
	return &Translator{
		bundle: bundle,
		loc:    goi18n.NewLocalizer(bundle, lang, "en"),
		lang:   lang,
	}, nil
}

// Lang returns the language tag the translator was built for.
func (t *Translator) Lang() string { return t.lang }

// T resolves a message ID. Unknown IDs come back unchanged, so a
// missing translation shows up on screen as the ID instead of taking a
// menu down.
func (t *Translator) T(id string) string {
	msg, err := t.loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Tf resolves a message ID with template data, e.g.
//
//	t.Tf("shop.confirm_buy", map[string]any{"Item": name, "Price": 200})
func (t *Translator) Tf(id string, data map[string]any) string {
	msg, err := t.loc.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

// Has reports whether id resolves in the loaded catalogs. The validate
// command uses it to cross-check game data against the catalogs.
func (t *Translator) Has(id string) bool {
	_, err := t.loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	return err == nil
}

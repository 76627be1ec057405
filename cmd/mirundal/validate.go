package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/endo5501/DungeonMirundal-sub002/internal/gamedata"
	"github.com/endo5501/DungeonMirundal-sub002/internal/i18n"
)

var (
	validateDataDir   string
	validateLocaleDir string
	validateLangs     []string
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Game data utilities",
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Cross-check game data against the message catalogs",
	Long: `validate loads the data files and reports every message key they
reference that no catalog resolves, per language. Keys covered by the
English fallback pass, matching what the player would see.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateDataDir, "data-dir", "data", "directory holding the game data TOML files")
	validateCmd.Flags().StringVar(&validateLocaleDir, "locales-dir", "locales", "directory holding the message catalogs")
	validateCmd.Flags().StringSliceVar(&validateLangs, "lang", []string{"en", "ja"}, "languages to check")
	dataCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	data, err := gamedata.Load(validateDataDir)
	if err != nil {
		return err
	}

	missing := 0
	for _, lang := range validateLangs {
		loc, err := i18n.New(validateLocaleDir, lang)
		if err != nil {
			return err
		}
		for _, id := range dataMessageKeys(data) {
			if !loc.Has(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: missing %q\n", lang, id)
				missing++
			}
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d missing message keys", missing)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "all message keys resolve")
	return nil
}

// dataMessageKeys collects every message ID the game data references.
func dataMessageKeys(data *gamedata.Store) []string {
	var keys []string
	for _, it := range data.Items() {
		keys = append(keys, it.NameKey)
	}
	for _, sp := range data.Spells() {
		keys = append(keys, sp.NameKey)
	}
	for _, f := range data.Facilities() {
		keys = append(keys, f.NameKey)
		if f.GreetingKey != "" {
			keys = append(keys, f.GreetingKey)
		}
	}
	return keys
}

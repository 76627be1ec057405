package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/endo5501/DungeonMirundal-sub002/internal/debugapi"
	"github.com/endo5501/DungeonMirundal-sub002/internal/facility"
	"github.com/endo5501/DungeonMirundal-sub002/internal/gamedata"
	"github.com/endo5501/DungeonMirundal-sub002/internal/i18n"
	"github.com/endo5501/DungeonMirundal-sub002/internal/session"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
)

var (
	playDataDir   string
	playLocaleDir string
	playLang      string
	playLogPath   string
	playLogLevel  string
	playDebugAddr string
	playGold      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a town session on the terminal",
	Long: `play loads the game data and message catalogs, opens the town menu
and reads commands from stdin: up, down, left, right, confirm, back,
menu, "t <text>" to type into a prompt, and quit.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playDataDir, "data-dir", "data", "directory holding the game data TOML files")
	playCmd.Flags().StringVar(&playLocaleDir, "locales-dir", "locales", "directory holding the message catalogs")
	playCmd.Flags().StringVar(&playLang, "lang", "en", "session language tag")
	playCmd.Flags().StringVar(&playLogPath, "log-path", "", "log file path")
	playCmd.Flags().StringVar(&playLogLevel, "log-level", "", "minimum log level (debug, info, warn, error)")
	playCmd.Flags().StringVar(&playDebugAddr, "debug-addr", "",
		"debug API listen address; empty disables it unless "+constants.DebugAPIEnvVar+" is set")
	playCmd.Flags().IntVar(&playGold, "gold", session.DefaultStartingGold, "party starting gold")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ui.Init(ui.Options{LogPath: playLogPath, LogLevel: playLogLevel})
	defer ui.Close()
	log := ui.GetLogger()

	data, err := gamedata.Load(playDataDir)
	if err != nil {
		return err
	}
	loc, err := i18n.New(playLocaleDir, playLang)
	if err != nil {
		return err
	}

	fe := newTermFrontend(cmd.InOrStdin(), cmd.OutOrStdout())
	sess, err := session.New(session.Config{
		Data: data,
		Loc:  loc,
		Facilities: facility.NewRegistry(
			facility.NewGuild(),
			facility.NewShop(),
			facility.NewInn(),
			facility.NewTemple(),
			facility.NewMageGuild(),
		),
		Frontend:     fe,
		Logger:       log,
		StartingGold: playGold,
	})
	if err != nil {
		return err
	}
	fe.sess = sess

	if addr := debugAddr(); addr != "" {
		api, err := debugapi.New(debugapi.Config{Addr: addr, Session: sess, Logger: log})
		if err != nil {
			return err
		}
		if err := api.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := api.Shutdown(ctx); err != nil {
				log.Error("debug api shutdown failed", "error", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return sess.Run(ctx)
}

// debugAddr resolves the debug API address: the flag wins, then the
// environment variable.
func debugAddr() string {
	if playDebugAddr != "" {
		return playDebugAddr
	}
	return os.Getenv(constants.DebugAPIEnvVar)
}

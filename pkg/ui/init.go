// Package ui provides the menu and dialog framework for the game's town
// and facility interfaces.
//
// The package owns screen construction (menus, confirm dialogs, text
// prompts) and input signal handling. Navigation between screens lives
// in the nested nav package. Rendering is left to whatever frontend
// drives the session.
package ui

import (
	"log/slog"

	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/constants"
	"github.com/endo5501/DungeonMirundal-sub002/pkg/ui/internal"
)

// Options configures the ui framework initialization.
type Options struct {
	LogPath  string // Full path for the log file including filename (creates parent directories)
	LogLevel string // Minimum level for the application logger ("debug", "info", "warn", "error")
}

// Init configures logging for the framework. Must be called before any
// other ui functions. Development mode (ENVIRONMENT=DEV) forces debug
// logging regardless of LogLevel.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
	if constants.IsDevMode() {
		internal.SetLogLevel(slog.LevelDebug)
	}
}

// Close releases the log file. Must be called before program exit.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

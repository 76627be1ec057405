// Package constants defines shared constants and types used throughout
// the ui framework.
package constants

import (
	"os"
	"strings"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugAPIEnvVar is the environment variable name for the debug API
// listen address. Setting it enables the API without the command flag.
const DebugAPIEnvVar = "MIRUNDAL_DEBUG_API"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Signal represents an abstract input action, mapped from whatever the
// frontend reads (keyboard, gamepad, scripted test input). The
// abstraction keeps navigation independent of any input device.
type Signal int

const (
	SignalNone Signal = iota
	SignalUp
	SignalDown
	SignalLeft
	SignalRight
	SignalConfirm
	SignalBack
	SignalMenu
)

func (s Signal) GetName() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalUp:
		return "Up"
	case SignalDown:
		return "Down"
	case SignalLeft:
		return "Left"
	case SignalRight:
		return "Right"
	case SignalConfirm:
		return "Confirm"
	case SignalBack:
		return "Back"
	case SignalMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// ParseSignal maps a signal name to its Signal. Names are matched case
// insensitively and common aliases are accepted. Used by the debug API
// and the terminal frontend.
func ParseSignal(name string) (Signal, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return SignalUp, true
	case "down":
		return SignalDown, true
	case "left":
		return SignalLeft, true
	case "right":
		return SignalRight, true
	case "confirm", "a", "ok", "enter":
		return SignalConfirm, true
	case "back", "b", "esc", "escape":
		return SignalBack, true
	case "menu":
		return SignalMenu, true
	}
	return SignalNone, false
}

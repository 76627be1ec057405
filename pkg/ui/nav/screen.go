package nav

// Kind classifies a screen for logging, input routing, and debug
// snapshots. The set is closed. New dialog behavior is expressed by
// composing these kinds with callbacks, not by adding template keys.
type Kind int

const (
	// KindMenu is a list of choices the player moves a cursor through.
	KindMenu Kind = iota
	// KindInfoDialog presents a message with a single acknowledgement.
	KindInfoDialog
	// KindConfirmDialog asks a yes/no question.
	KindConfirmDialog
	// KindSelectionDialog asks the player to pick one option from a list.
	KindSelectionDialog
	// KindInputDialog collects a line of text.
	KindInputDialog
	// KindErrorDialog reports a failure as a localized message.
	KindErrorDialog
)

// String returns the snake_case name used in logs and snapshots.
func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindInfoDialog:
		return "info_dialog"
	case KindConfirmDialog:
		return "confirm_dialog"
	case KindSelectionDialog:
		return "selection_dialog"
	case KindInputDialog:
		return "input_dialog"
	case KindErrorDialog:
		return "error_dialog"
	default:
		return "unknown"
	}
}

// Screen is the contract a unit of UI fulfills to participate in
// navigation. The concrete implementations live in the parent ui
// package; tests and tools may supply their own.
//
// Show, Hide, and Destroy are side-effect hooks driven by the stack.
// They must not call back into the Controller that is invoking them.
type Screen interface {
	// ID identifies the screen in logs and snapshots. An ID only has to
	// be stable for one instance, not unique across time.
	ID() string

	// Kind reports which of the closed set of screen kinds this is.
	Kind() Kind

	// Modal reports whether the screen takes exclusive input while it is
	// the active entry. Non-modal screens are eligible for the overlay
	// list.
	Modal() bool

	// Show is called when the screen becomes the active entry.
	Show()

	// Hide is called when the screen stops being the active entry.
	Hide()

	// Destroy is called exactly once when the screen's entry leaves the
	// stack. The screen releases whatever it holds.
	Destroy()

	// Elements describes the screen's current widgets for introspection.
	Elements() []Element
}

// ElementKind names the widget classes a screen can report.
type ElementKind string

const (
	ElementLabel  ElementKind = "label"
	ElementButton ElementKind = "button"
	ElementItem   ElementKind = "item"
	ElementField  ElementKind = "field"
)

// Element is one widget in a screen's introspection report. It carries
// enough for the debug API to drive scripted navigation.
type Element struct {
	ID       string      `json:"id"`
	Kind     ElementKind `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Selected bool        `json:"selected,omitempty"`
	Disabled bool        `json:"disabled,omitempty"`
}

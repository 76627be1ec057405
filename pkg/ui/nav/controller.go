package nav

import (
	"fmt"
	"log/slog"

	"go.uber.org/atomic"
)

// deepStackWarning is the depth above which presents are logged at warn
// level. Normal play stays well under it.
const deepStackWarning = 12

// InputGate is notified after every stack mutation with the modality of
// the active screen. The input layer uses it to decide whether anything
// below the top may keep receiving events.
type InputGate func(modal bool)

// Config configures a Controller.
type Config struct {
	// Root is the screen at the bottom of the stack. Required.
	Root Screen
	// Logger receives structured navigation logs. Required.
	Logger *slog.Logger
}

// Controller owns a navigation stack and enforces its invariants. All
// methods must be called from the goroutine that owns the session.
// Recoveries and LastRecovery are the exceptions; they are safe to read
// from other goroutines.
type Controller struct {
	stack        *Stack
	log          *slog.Logger
	gate         InputGate
	overlays     []Screen
	recoveries   atomic.Uint64
	lastRecovery atomic.Error
}

// New creates a Controller with the root screen shown.
func New(cfg Config) (*Controller, error) {
	if cfg.Logger == nil {
		return nil, &Error{Op: "new", Err: fmt.Errorf("config missing logger")}
	}
	stack, err := NewStack(cfg.Root)
	if err != nil {
		return nil, err
	}
	return &Controller{stack: stack, log: cfg.Logger}, nil
}

// SetInputGate registers the callback notified after each mutation. The
// gate fires immediately with the current state. A nil gate disables
// notification.
func (c *Controller) SetInputGate(gate InputGate) {
	c.gate = gate
	c.notifyGate()
}

// Present pushes screen with onBack and no context.
func (c *Controller) Present(screen Screen, onBack BackAction) error {
	return c.PresentWith(screen, onBack, nil)
}

// PresentWith pushes screen with onBack and a context for the back
// action to consume later. Presenting fails if screen is nil, onBack is
// nil, or the screen is already on the stack.
func (c *Controller) PresentWith(screen Screen, onBack BackAction, ctx Context) error {
	if _, err := c.stack.Push(screen, onBack, ctx); err != nil {
		return err
	}
	depth := c.stack.Depth()
	c.log.Debug("screen presented", "screen", screen.ID(), "kind", screen.Kind().String(), "depth", depth)
	if depth > deepStackWarning {
		c.log.Warn("navigation stack unusually deep", "depth", depth, "screen", screen.ID())
	}
	c.notifyGate()
	return nil
}

// Replace swaps the active entry for screen without running the old
// entry's back action, for flows that move sideways, e.g. a confirm
// dialog turning into its result message. The root cannot be replaced.
func (c *Controller) Replace(screen Screen, onBack BackAction, ctx Context) error {
	old := c.stack.Peek().Screen().ID()
	if _, err := c.stack.Replace(screen, onBack, ctx); err != nil {
		return err
	}
	c.log.Debug("screen replaced", "old", old, "new", screen.ID(), "depth", c.stack.Depth())
	c.notifyGate()
	return nil
}

// GoBack pops the active entry and runs its back action, reporting
// whether a pop happened. At the root there is nothing to pop; the
// caller decides what back means there, typically a quit prompt.
//
// A back action that returns an error or panics triggers the root
// fallback: the failure is logged with the failing screen and the depth
// at the time, the stack is cleared, and the root screen is shown
// again. The session keeps running.
func (c *Controller) GoBack() bool {
	if c.stack.Depth() == 1 {
		c.log.Debug("back at root ignored", "screen", c.stack.Peek().Screen().ID())
		return false
	}
	entry, ok := c.stack.Pop()
	if !ok {
		// Unreachable after the depth check. Treat as a broken invariant.
		c.recoverToRoot(entry, ErrStackUnderflow)
		c.notifyGate()
		return false
	}
	c.log.Debug("navigated back", "screen", entry.Screen().ID(), "depth", c.stack.Depth())
	if err := c.runBackAction(entry); err != nil {
		c.recoverToRoot(entry, fmt.Errorf("%w: %v", ErrBackActionFailed, err))
	}
	c.notifyGate()
	return true
}

// ReturnToRoot clears every entry above the root without running back
// actions. Destroyed entries still receive their Destroy hook. At the
// root this changes nothing.
func (c *Controller) ReturnToRoot() {
	if c.stack.Depth() == 1 {
		return
	}
	c.log.Debug("returning to root", "from_depth", c.stack.Depth())
	c.stack.ClearToRoot()
	c.notifyGate()
}

// CurrentScreen returns the active screen. The stack is never empty, so
// there always is one.
func (c *Controller) CurrentScreen() Screen {
	return c.stack.Peek().Screen()
}

// Depth returns the stack depth including the root.
func (c *Controller) Depth() int {
	return c.stack.Depth()
}

// Recoveries returns how many times the root fallback has run.
func (c *Controller) Recoveries() uint64 {
	return c.recoveries.Load()
}

// LastRecovery returns the failure behind the most recent root
// fallback, or nil if none has happened.
func (c *Controller) LastRecovery() error {
	return c.lastRecovery.Load()
}

// runBackAction executes the entry's back action, converting panics
// into errors.
func (c *Controller) runBackAction(entry *Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return entry.onBack(c, entry.ctx)
}

// recoverToRoot is the fallback for failed back actions and broken
// stack invariants. It records the failure, clears the stack, and shows
// the root screen so the session stays usable.
func (c *Controller) recoverToRoot(entry *Entry, cause error) {
	navErr := &Error{Op: "go_back", Screen: entry.Screen().ID(), Err: cause}
	c.recoveries.Inc()
	c.lastRecovery.Store(navErr)
	c.log.Error("back navigation failed, recovering to root",
		"screen", entry.Screen().ID(),
		"depth", c.stack.Depth(),
		"error", navErr)
	c.stack.ClearToRoot()
}

func (c *Controller) notifyGate() {
	if c.gate == nil {
		return
	}
	c.gate(c.CurrentScreen().Modal())
}

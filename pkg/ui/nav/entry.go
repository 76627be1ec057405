package nav

// Context carries small values attached to an entry at presentation
// time. Back actions read it to rebuild predecessor screens without
// reaching into package-level state.
type Context map[string]any

// String returns the value for key if it is a string.
func (c Context) String(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the value for key if it is an int.
func (c Context) Int(key string) (int, bool) {
	v, ok := c[key]
	if !ok {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}

// BackAction decides where navigation lands after the entry it belongs
// to has been popped. It runs with the popped entry's context and may
// present further screens or clear the stack. Returning an error
// triggers the controller's root fallback.
type BackAction func(ctrl *Controller, ctx Context) error

// ToPrevious accepts the screen revealed by the pop as the destination.
// This is the common case for dialogs stacked on the menu that spawned
// them.
func ToPrevious() BackAction {
	return func(*Controller, Context) error { return nil }
}

// ToRoot clears the stack down to the root entry.
func ToRoot() BackAction {
	return func(ctrl *Controller, _ Context) error {
		ctrl.ReturnToRoot()
		return nil
	}
}

// Entry pairs a screen with the back action and context recorded when
// it was presented. Entries are created by the stack and stay owned by
// it until popped.
type Entry struct {
	screen    Screen
	onBack    BackAction
	ctx       Context
	destroyed bool
}

// Screen returns the entry's screen.
func (e *Entry) Screen() Screen {
	return e.screen
}

// Context returns the context recorded at presentation time. The map is
// shared, not copied.
func (e *Entry) Context() Context {
	return e.ctx
}

// destroy runs the screen's Destroy hook once.
func (e *Entry) destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.screen.Destroy()
}

package nav

import "fmt"

// AddOverlay registers a non-modal screen drawn alongside the stack,
// e.g. a party status strip. Overlays never receive routed input and
// take no part in back navigation. Modal screens are rejected, as are
// screens already registered.
func (c *Controller) AddOverlay(screen Screen) error {
	if screen == nil {
		return &Error{Op: "add_overlay", Err: fmt.Errorf("%w: nil screen", ErrInvalidScreen)}
	}
	if screen.Modal() {
		return &Error{Op: "add_overlay", Screen: screen.ID(), Err: fmt.Errorf("%w: overlays must be non-modal", ErrInvalidScreen)}
	}
	for _, o := range c.overlays {
		if o == screen {
			return &Error{Op: "add_overlay", Screen: screen.ID(), Err: fmt.Errorf("%w: already an overlay", ErrInvalidScreen)}
		}
	}
	c.overlays = append(c.overlays, screen)
	screen.Show()
	c.log.Debug("overlay added", "screen", screen.ID())
	return nil
}

// RemoveOverlay hides and destroys the overlay with the given ID and
// reports whether one was found.
func (c *Controller) RemoveOverlay(id string) bool {
	for i, o := range c.overlays {
		if o.ID() == id {
			c.overlays = append(c.overlays[:i], c.overlays[i+1:]...)
			o.Hide()
			o.Destroy()
			c.log.Debug("overlay removed", "screen", id)
			return true
		}
	}
	return false
}

// Overlays returns the overlay screens in presentation order. The slice
// is a copy.
func (c *Controller) Overlays() []Screen {
	out := make([]Screen, len(c.overlays))
	copy(out, c.overlays)
	return out
}

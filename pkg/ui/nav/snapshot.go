package nav

// ScreenNode is one screen in a Snapshot.
type ScreenNode struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Modal    bool      `json:"modal"`
	Active   bool      `json:"active"`
	Elements []Element `json:"elements,omitempty"`
}

// Snapshot is a point-in-time view of the navigation state for
// diagnostics and scripted tests. It is plain data with no references
// back into the controller, so it can be serialized after the
// controller has moved on.
type Snapshot struct {
	Depth    int          `json:"depth"`
	Screens  []ScreenNode `json:"screens"`
	Overlays []ScreenNode `json:"overlays,omitempty"`
}

// Snapshot captures the stack from root to top plus the overlay list,
// including each screen's elements. Like every other method it must be
// called on the owning goroutine.
func (c *Controller) Snapshot() *Snapshot {
	entries := c.stack.Entries()
	snap := &Snapshot{Depth: len(entries), Screens: make([]ScreenNode, 0, len(entries))}
	for i, e := range entries {
		scr := e.Screen()
		snap.Screens = append(snap.Screens, ScreenNode{
			ID:       scr.ID(),
			Kind:     scr.Kind().String(),
			Modal:    scr.Modal(),
			Active:   i == len(entries)-1,
			Elements: scr.Elements(),
		})
	}
	for _, o := range c.overlays {
		snap.Overlays = append(snap.Overlays, ScreenNode{
			ID:       o.ID(),
			Kind:     o.Kind().String(),
			Elements: o.Elements(),
		})
	}
	return snap
}

package nav

import "fmt"

// Stack is the navigation history for one session. The bottom entry is
// the root and is never removed, so the stack is never empty. Mutations
// drive the Show/Hide/Destroy lifecycle of the screens involved so that
// exactly one screen is active after every operation.
//
// The stack is confined to the goroutine that owns its Controller and
// does no locking.
type Stack struct {
	entries []*Entry
}

// NewStack creates a stack holding only the root entry and shows the
// root screen. The root has no back action and cannot be popped or
// replaced.
func NewStack(root Screen) (*Stack, error) {
	if root == nil {
		return nil, &Error{Op: "new_stack", Err: fmt.Errorf("%w: nil root screen", ErrInvalidScreen)}
	}
	s := &Stack{entries: []*Entry{{screen: root}}}
	root.Show()
	return s, nil
}

// Push validates screen and onBack, hides the current top, appends a new
// entry, and shows its screen. ctx may be nil.
func (s *Stack) Push(screen Screen, onBack BackAction, ctx Context) (*Entry, error) {
	entry, err := s.makeEntry("push", screen, onBack, ctx)
	if err != nil {
		return nil, err
	}
	s.top().screen.Hide()
	s.entries = append(s.entries, entry)
	screen.Show()
	return entry, nil
}

// Pop removes, hides, and destroys the top entry, then shows the screen
// beneath it. The popped entry is returned so the caller can run its
// back action. At the root nothing is mutated and ok is false.
func (s *Stack) Pop() (entry *Entry, ok bool) {
	if len(s.entries) == 1 {
		return s.entries[0], false
	}
	entry = s.top()
	s.entries = s.entries[:len(s.entries)-1]
	entry.screen.Hide()
	entry.destroy()
	s.top().screen.Show()
	return entry, true
}

// Replace swaps the top entry for a new one without running the old
// entry's back action and without re-showing the screen beneath. The
// root entry cannot be replaced.
func (s *Stack) Replace(screen Screen, onBack BackAction, ctx Context) (*Entry, error) {
	if len(s.entries) == 1 {
		return nil, &Error{Op: "replace", Screen: s.top().screen.ID(), Err: ErrStackUnderflow}
	}
	entry, err := s.makeEntry("replace", screen, onBack, ctx)
	if err != nil {
		return nil, err
	}
	old := s.top()
	s.entries[len(s.entries)-1] = entry
	old.screen.Hide()
	old.destroy()
	screen.Show()
	return entry, nil
}

// Peek returns the top entry without removing it. The stack is never
// empty, so Peek always returns a valid entry.
func (s *Stack) Peek() *Entry {
	return s.top()
}

// Depth returns the number of entries including the root.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// ClearToRoot destroys every entry above the root and shows the root
// screen again. Back actions of the destroyed entries do not run. Only
// the previously active screen receives Hide; entries below it were
// already hidden when they were covered. At the root this is a no-op,
// so calling it twice is the same as calling it once.
func (s *Stack) ClearToRoot() {
	if len(s.entries) == 1 {
		return
	}
	s.top().screen.Hide()
	for len(s.entries) > 1 {
		entry := s.top()
		s.entries = s.entries[:len(s.entries)-1]
		entry.destroy()
	}
	s.top().screen.Show()
}

// Entries returns the stack from root to top for introspection. The
// slice is a copy; the entries are not.
func (s *Stack) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Stack) top() *Entry {
	return s.entries[len(s.entries)-1]
}

func (s *Stack) contains(screen Screen) bool {
	for _, e := range s.entries {
		if e.screen == screen {
			return true
		}
	}
	return false
}

// makeEntry is the shared validation for Push and Replace.
func (s *Stack) makeEntry(op string, screen Screen, onBack BackAction, ctx Context) (*Entry, error) {
	if screen == nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("%w: nil screen", ErrInvalidScreen)}
	}
	if onBack == nil {
		return nil, &Error{Op: op, Screen: screen.ID(), Err: fmt.Errorf("%w: nil back action", ErrInvalidScreen)}
	}
	if s.contains(screen) {
		return nil, &Error{Op: op, Screen: screen.ID(), Err: fmt.Errorf("%w: already on stack", ErrInvalidScreen)}
	}
	return &Entry{screen: screen, onBack: onBack, ctx: ctx}, nil
}

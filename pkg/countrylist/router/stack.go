package router

// StackEntry is one screen the user can go back to: the screen, the input it
// was called with, and the resume state it returned when the user moved on.
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any
}

// Stack is the back-navigation history.
type Stack struct {
	entries []StackEntry
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0, 4),
	}
}

// Push records a screen before navigating forward from it.
func (s *Stack) Push(screen Screen, input any, resume any) {
	s.entries = append(s.entries, StackEntry{
		Screen: screen,
		Input:  input,
		Resume: resume,
	})
}

// Pop removes and returns the top entry, or nil when empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it, or nil when empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Resume returns the typed resume state of an entry, or the zero value when
// the entry is nil or holds a different type.
func Resume[T any](entry *StackEntry) (T, bool) {
	var zero T
	if entry == nil || entry.Resume == nil {
		return zero, false
	}
	v, ok := entry.Resume.(T)
	return v, ok
}

// Package state holds the process-wide menu state.
package state

// MenuPhase represents whether a menu panel is open
type MenuPhase int

const (
	PhaseClosed MenuPhase = iota
	PhaseOpen
)

// String returns the string representation of the menu phase
func (p MenuPhase) String() string {
	switch p {
	case PhaseClosed:
		return "Closed"
	case PhaseOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

// MenuState tracks which menu entry, if any, is open.
// At most one entry is open at a time. The zero value is "none open".
type MenuState struct {
	openID string
	open   bool
}

// NewMenuState returns the initial state: no entry open
func NewMenuState() *MenuState {
	return &MenuState{}
}

// Phase returns the current phase
func (s *MenuState) Phase() MenuPhase {
	if s.open {
		return PhaseOpen
	}
	return PhaseClosed
}

// OpenEntryID returns the open entry's id, or false if nothing is open
func (s *MenuState) OpenEntryID() (string, bool) {
	return s.openID, s.open
}

// IsOpen reports whether the given entry is the open one
func (s *MenuState) IsOpen(id string) bool {
	return s.open && s.openID == id
}

// Open marks id as the single open entry, replacing any previous one
func (s *MenuState) Open(id string) {
	s.openID = id
	s.open = true
}

// Close marks every entry closed
func (s *MenuState) Close() {
	s.openID = ""
	s.open = false
}

// String returns e.g. "Closed" or "Open(cv)"
func (s *MenuState) String() string {
	if !s.open {
		return PhaseClosed.String()
	}
	return PhaseOpen.String() + "(" + s.openID + ")"
}

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuPhase_String(t *testing.T) {
	tests := []struct {
		phase    MenuPhase
		expected string
	}{
		{PhaseClosed, "Closed"},
		{PhaseOpen, "Open"},
		{MenuPhase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestMenuPhaseConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, MenuPhase(0), PhaseClosed)
	assert.Equal(t, MenuPhase(1), PhaseOpen)
}

func TestNewMenuState_NoneOpen(t *testing.T) {
	s := NewMenuState()

	id, ok := s.OpenEntryID()
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Equal(t, PhaseClosed, s.Phase())
	assert.Equal(t, "Closed", s.String())

	var zero MenuState
	assert.Equal(t, PhaseClosed, zero.Phase(), "zero value is none open")
}

func TestMenuState_OpenReplaces(t *testing.T) {
	s := NewMenuState()

	s.Open("cv")
	assert.True(t, s.IsOpen("cv"))
	assert.Equal(t, "Open(cv)", s.String())

	s.Open("contact")
	assert.False(t, s.IsOpen("cv"), "only one entry can be open")
	assert.True(t, s.IsOpen("contact"))

	id, ok := s.OpenEntryID()
	assert.True(t, ok)
	assert.Equal(t, "contact", id)
}

func TestMenuState_Close(t *testing.T) {
	s := NewMenuState()
	s.Open("about")

	s.Close()

	_, ok := s.OpenEntryID()
	assert.False(t, ok)
	assert.False(t, s.IsOpen("about"))
	assert.Equal(t, PhaseClosed, s.Phase())
}

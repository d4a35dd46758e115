package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads UI input and routes it into the menu
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the input sampled for one frame
type InputState struct {
	MouseX     int
	MouseY     int
	MouseClick bool
	// Entry shortcut: 1-based index of the digit key pressed, 0 for none
	EntryKey int
	Escape   bool
}

var entryKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	in := InputState{
		MouseX:     mx,
		MouseY:     my,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Escape:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	for i, k := range entryKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.EntryKey = i + 1
			break
		}
	}
	return in
}

// Route turns one frame of input into menu events. A click is resolved
// against the layout the user was looking at; keys act on entry order.
// At most one menu event fires per frame.
func (s *InputSystem) Route(in InputState, layout *MenuLayout, menu *MenuSystem) {
	switch {
	case in.MouseClick:
		hit := layout.HitTest(in.MouseX, in.MouseY)
		switch hit.Kind {
		case HitClose:
			menu.CloseButton()
		case HitHeadline:
			menu.OpenEntry(hit.EntryID)
		}
	case in.Escape:
		menu.CloseButton()
	case in.EntryKey > 0 && in.EntryKey <= len(menu.Entries()):
		menu.OpenEntry(menu.Entries()[in.EntryKey-1].ID)
	}
}

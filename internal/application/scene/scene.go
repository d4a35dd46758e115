// Package scene defines what the game loop runs each frame.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen. The game loop calls Update once per tick and Draw
// once per rendered frame; Update always runs first.
type Scene interface {
	// Update steps the scene by dt seconds. A non-nil next scene replaces
	// this one after OnExit; an error stops the loop.
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs when the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the program stops, so
	// pending output (e.g. an input recording) can be flushed.
	OnExit()
}

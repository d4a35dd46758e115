// Package game runs the active scene inside the ebiten loop and swaps scenes
// when one hands over to the next.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/folio/internal/application/scene"
)

// Game implements ebiten.Game on top of a Scene.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	stopped bool
}

// New creates a Game running initialScene at tps updates per second.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene by one tick and performs any transition
// it requests. Implements ebiten.Game.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene. Implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps a fixed logical screen; ebiten scales it to the window, so
// cursor positions stay in logical pixels across resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Stop exits the current scene once. Call it after ebiten.RunGame returns.
func (g *Game) Stop() {
	if g.stopped {
		return
	}
	g.stopped = true
	g.current.OnExit()
}

// DT returns the seconds each Update advances the scene
func (g *Game) DT() float64 {
	return g.dt
}

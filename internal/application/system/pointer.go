package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/folio/internal/domain/entity"
)

// PointerLight moves a light with the cursor. It is stateless: the light
// position depends only on the latest pointer sample.
type PointerLight struct {
	light *entity.Light
	scale float64
	z     float64
}

// NewPointerLight creates the coupling for light
func NewPointerLight(light *entity.Light, scale, z float64) *PointerLight {
	return &PointerLight{light: light, scale: scale, z: z}
}

// Move places the light from a pointer position in viewport pixels.
// Samples against an empty viewport are dropped.
func (p *PointerLight) Move(clientX, clientY, viewportW, viewportH float64) {
	if viewportW <= 0 || viewportH <= 0 {
		return
	}
	x, y := NDC(clientX, clientY, viewportW, viewportH)
	p.light.Position = mgl64.Vec3{x * p.scale, y * p.scale, p.z}
}

// Light returns the driven light
func (p *PointerLight) Light() *entity.Light {
	return p.light
}

// NDC converts viewport pixels to normalized device coordinates:
// x grows right and y grows up, both in [-1, 1].
func NDC(clientX, clientY, viewportW, viewportH float64) (x, y float64) {
	x = (clientX/viewportW)*2 - 1
	y = -(clientY/viewportH)*2 + 1
	return x, y
}

package entity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Light is a directional light. Position is the point the light shines
// from toward the origin.
type Light struct {
	Position  mgl64.Vec3
	Color     color.RGBA
	Intensity float64
}

// NewLight creates a white light at the origin
func NewLight(intensity float64) *Light {
	return &Light{
		Color:     color.RGBA{255, 255, 255, 255},
		Intensity: intensity,
	}
}

// Direction returns the unit vector the light travels along (toward the origin).
// A light at the origin points straight down.
func (l *Light) Direction() mgl64.Vec3 {
	if l.Position.Len() == 0 {
		return mgl64.Vec3{0, -1, 0}
	}
	return l.Position.Mul(-1).Normalize()
}

// Lambert returns the diffuse factor for a surface normal, scaled by intensity
func (l *Light) Lambert(normal mgl64.Vec3) float64 {
	if normal.Len() == 0 {
		return 0
	}
	d := normal.Normalize().Dot(l.Direction().Mul(-1))
	if d < 0 {
		return 0
	}
	return d * l.Intensity
}

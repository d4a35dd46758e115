package entity

import "github.com/go-gl/mathgl/mgl64"

// Edge joins two vertex indices of a Wireframe
type Edge [2]int

// Wireframe is the line model drawn at the scene origin
type Wireframe struct {
	Vertices []mgl64.Vec3
	Edges    []Edge
}

// Transform returns the vertices scaled, rotated around Y and translated
func (w *Wireframe) Transform(offset mgl64.Vec3, scale, rotY float64) []mgl64.Vec3 {
	m := mgl64.Translate3D(offset.X(), offset.Y(), offset.Z()).
		Mul4(mgl64.HomogRotate3DY(rotY)).
		Mul4(mgl64.Scale3D(scale, scale, scale))

	out := make([]mgl64.Vec3, len(w.Vertices))
	for i, v := range w.Vertices {
		out[i] = mgl64.TransformCoordinate(v, m)
	}
	return out
}

// Valid reports whether every edge refers to an existing vertex
func (w *Wireframe) Valid() bool {
	for _, e := range w.Edges {
		for _, idx := range e {
			if idx < 0 || idx >= len(w.Vertices) {
				return false
			}
		}
	}
	return true
}

// FloorGrid builds a square grid of lines on the y=0 plane
func FloorGrid(size float64, divisions int) *Wireframe {
	if divisions < 1 {
		divisions = 1
	}
	half := size / 2
	step := size / float64(divisions)

	grid := &Wireframe{}
	for i := 0; i <= divisions; i++ {
		c := -half + float64(i)*step
		base := len(grid.Vertices)
		grid.Vertices = append(grid.Vertices,
			mgl64.Vec3{c, 0, -half}, mgl64.Vec3{c, 0, half},
			mgl64.Vec3{-half, 0, c}, mgl64.Vec3{half, 0, c},
		)
		grid.Edges = append(grid.Edges, Edge{base, base + 1}, Edge{base + 2, base + 3})
	}
	return grid
}

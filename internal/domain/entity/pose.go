package entity

import "github.com/go-gl/mathgl/mgl64"

// Pose is a camera configuration: position plus Euler rotation (radians, XYZ order)
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
}

// ApproxEqual reports whether two poses match within epsilon on every component
func (p Pose) ApproxEqual(other Pose, epsilon float64) bool {
	return p.Position.ApproxEqualThreshold(other.Position, epsilon) &&
		p.Rotation.ApproxEqualThreshold(other.Rotation, epsilon)
}

// MenuEntry is one static menu item with the camera pose shown while it is open
type MenuEntry struct {
	ID       string
	Label    string
	Body     string
	Zoom     mgl64.Vec3
	Rotation mgl64.Vec3
}

// Pose returns the panel pose for this entry
func (e MenuEntry) Pose() Pose {
	return Pose{Position: e.Zoom, Rotation: e.Rotation}
}

// EntryView is the visual bookkeeping of one menu entry
type EntryView struct {
	Visible bool // drawn at all
	Open    bool // body text shown
	Raised  bool // slid up above the headline row
}

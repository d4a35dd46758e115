package entity

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera with mutable position and rotation.
// Rotation holds Euler angles in radians applied in XYZ order.
type Camera struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	FOV      float64 // vertical field of view (degrees)
	Near     float64
	Far      float64
}

// NewCamera creates a camera placed at the given pose
func NewCamera(pose Pose, fov, near, far float64) *Camera {
	// Apply defaults for zero values
	if fov <= 0 {
		fov = 75
	}
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = 1000
	}

	return &Camera{
		Position: pose.Position,
		Rotation: pose.Rotation,
		FOV:      fov,
		Near:     near,
		Far:      far,
	}
}

// Pose returns the camera's current pose
func (c *Camera) Pose() Pose {
	return Pose{Position: c.Position, Rotation: c.Rotation}
}

// SetPose places the camera at a pose immediately
func (c *Camera) SetPose(p Pose) {
	c.Position = p.Position
	c.Rotation = p.Rotation
}

// View returns the world-to-camera matrix. The camera looks down its local -Z.
func (c *Camera) View() mgl64.Mat4 {
	rot := mgl64.AnglesToQuat(c.Rotation.X(), c.Rotation.Y(), c.Rotation.Z(), mgl64.XYZ).Mat4()
	world := mgl64.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).Mul4(rot)
	return world.Inv()
}

// Projection returns the perspective matrix for the given viewport aspect ratio
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// Project maps a world point to screen pixels.
// ok is false when the point is behind the near plane or past the far plane.
func (c *Camera) Project(p mgl64.Vec3, screenW, screenH int) (x, y float64, ok bool) {
	if screenW <= 0 || screenH <= 0 {
		return 0, 0, false
	}

	v := mgl64.TransformCoordinate(p, c.View())
	if -v.Z() < c.Near || -v.Z() > c.Far {
		return 0, 0, false
	}

	x, y = c.viewToScreen(v, screenW, screenH)
	return x, y, true
}

// ProjectSegment maps a world-space line segment to screen pixels, clipping
// it against the near plane. ok is false when the whole segment is behind it.
func (c *Camera) ProjectSegment(a, b mgl64.Vec3, screenW, screenH int) (x0, y0, x1, y1 float64, ok bool) {
	if screenW <= 0 || screenH <= 0 {
		return 0, 0, 0, 0, false
	}

	view := c.View()
	va := mgl64.TransformCoordinate(a, view)
	vb := mgl64.TransformCoordinate(b, view)

	zNear := -c.Near
	aBehind := va.Z() > zNear
	bBehind := vb.Z() > zNear
	switch {
	case aBehind && bBehind:
		return 0, 0, 0, 0, false
	case aBehind:
		va = clipToPlane(vb, va, zNear)
	case bBehind:
		vb = clipToPlane(va, vb, zNear)
	}

	x0, y0 = c.viewToScreen(va, screenW, screenH)
	x1, y1 = c.viewToScreen(vb, screenW, screenH)
	return x0, y0, x1, y1, true
}

func (c *Camera) viewToScreen(v mgl64.Vec3, screenW, screenH int) (x, y float64) {
	clip := c.Projection(float64(screenW) / float64(screenH)).Mul4x1(v.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())

	x = (ndc.X() + 1) / 2 * float64(screenW)
	y = (1 - ndc.Y()) / 2 * float64(screenH)
	return x, y
}

// clipToPlane moves out along the segment from in until it reaches depth z
func clipToPlane(in, out mgl64.Vec3, z float64) mgl64.Vec3 {
	t := (z - in.Z()) / (out.Z() - in.Z())
	return in.Add(out.Sub(in).Mul(t))
}

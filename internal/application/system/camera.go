package system

import (
	"time"

	"github.com/younwookim/folio/internal/domain/entity"
	"github.com/younwookim/folio/internal/domain/tween"
)

// CameraMotion is the logical motion name for camera pans
const CameraMotion = "camera"

// CameraSystem turns target poses into camera motions on the scheduler
type CameraSystem struct {
	camera    *entity.Camera
	scheduler *Scheduler
	duration  time.Duration
	easing    tween.Easing
	target    entity.Pose
}

// NewCameraSystem creates a camera system whose initial target is the
// camera's current pose, so nothing animates until the first MoveTo.
func NewCameraSystem(cam *entity.Camera, scheduler *Scheduler, duration time.Duration, easing tween.Easing) *CameraSystem {
	return &CameraSystem{
		camera:    cam,
		scheduler: scheduler,
		duration:  duration,
		easing:    easing,
		target:    cam.Pose(),
	}
}

// MoveTo pans the camera toward p, superseding any pan in flight.
// Both tweens start from the camera's live pose. Returns false, and
// issues nothing, when p is already the target.
func (c *CameraSystem) MoveTo(p entity.Pose) bool {
	if p == c.target {
		return false
	}
	c.target = p

	c.scheduler.Start(CameraMotion,
		tween.New(&c.camera.Position, p.Position, c.duration, c.easing),
		tween.New(&c.camera.Rotation, p.Rotation, c.duration, c.easing),
	)
	return true
}

// Target returns the pose the camera is heading to (or resting at)
func (c *CameraSystem) Target() entity.Pose {
	return c.target
}

// IsMoving reports whether a pan is still in flight
func (c *CameraSystem) IsMoving() bool {
	return c.scheduler.Active(CameraMotion)
}

// Camera returns the driven camera
func (c *CameraSystem) Camera() *entity.Camera {
	return c.camera
}

// Package tween provides time-based interpolation of 3D vectors.
//
// A Tween moves a subject vector from the value it holds at construction
// time toward a target over a fixed duration, shaped by an Easing curve.
// The subject is mutated in place on every Advance, so several tweens can
// drive fields owned by someone else (e.g. a camera's position).
package tween

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// MinDuration is the duration a negative duration is coerced to.
// Zero stays zero and completes on the first Advance.
const MinDuration = time.Millisecond

// Status is the lifecycle state of a tween
type Status int

const (
	Pending Status = iota
	Running
	Completed
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Tween interpolates a subject vector component-wise from its value at
// creation to a target value.
type Tween struct {
	subject  *mgl64.Vec3
	from     mgl64.Vec3
	to       mgl64.Vec3
	duration time.Duration
	elapsed  time.Duration
	easing   Easing
	status   Status
	progress float64 // last clamped t
}

// New creates a tween for subject toward to.
// The start value is read from subject now, not when the tween first
// advances, so re-targeting mid-flight starts from the live value.
func New(subject *mgl64.Vec3, to mgl64.Vec3, duration time.Duration, easing Easing) *Tween {
	if duration < 0 {
		duration = MinDuration
	}
	if easing == nil {
		easing = Linear
	}

	return &Tween{
		subject:  subject,
		from:     *subject,
		to:       to,
		duration: duration,
		easing:   easing,
		status:   Pending,
	}
}

// Advance moves the tween forward by dt and writes the interpolated value
// into the subject. It returns Completed once t reaches 1.
// Advancing a completed tween does not touch the subject.
func (tw *Tween) Advance(dt time.Duration) Status {
	if tw.status == Completed {
		return Completed
	}
	if dt > 0 {
		tw.elapsed += dt
	}

	t := 1.0
	if tw.duration > 0 {
		t = clamp01(float64(tw.elapsed) / float64(tw.duration))
	}
	tw.progress = t

	if t >= 1 {
		// Write the target exactly so no easing error survives completion
		*tw.subject = tw.to
		tw.status = Completed
		return Completed
	}

	eased := tw.easing(t)
	if math.IsNaN(eased) || math.IsInf(eased, 0) {
		eased = t
	}

	for k := 0; k < 3; k++ {
		tw.subject[k] = tw.from[k] + (tw.to[k]-tw.from[k])*eased
	}
	tw.status = Running
	return Running
}

// Status returns the current lifecycle state
func (tw *Tween) Status() Status {
	return tw.status
}

// Progress returns the last computed linear progress t in [0, 1]
func (tw *Tween) Progress() float64 {
	return tw.progress
}

// From returns the captured start value
func (tw *Tween) From() mgl64.Vec3 {
	return tw.from
}

// To returns the target value
func (tw *Tween) To() mgl64.Vec3 {
	return tw.to
}

// Duration returns the (coerced) duration
func (tw *Tween) Duration() time.Duration {
	return tw.duration
}

// Subject returns the vector this tween writes to
func (tw *Tween) Subject() *mgl64.Vec3 {
	return tw.subject
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

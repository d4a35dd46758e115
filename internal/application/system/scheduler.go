package system

import (
	"time"

	"github.com/samber/lo"
	"github.com/younwookim/folio/internal/domain/tween"
)

// scheduled is one active tween plus the logical motion it belongs to
type scheduled struct {
	motion string // empty for tweens enqueued outside any motion
	tween  *tween.Tween
}

// Scheduler owns the in-flight tweens and advances them once per frame
type Scheduler struct {
	active []scheduled
	last   time.Duration
	ticked bool
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		active: make([]scheduled, 0, 4),
	}
}

// Enqueue adds a tween to the active set.
// Tweens are not de-duplicated by subject.
func (s *Scheduler) Enqueue(tw *tween.Tween) {
	s.active = append(s.active, scheduled{tween: tw})
}

// Start issues a logical motion: every active tween of the same motion is
// dropped and the new tweens take their place. Dropped tweens leave their
// subjects wherever the last tick put them.
func (s *Scheduler) Start(motion string, tweens ...*tween.Tween) {
	if motion != "" {
		s.active = lo.Reject(s.active, func(e scheduled, _ int) bool {
			return e.motion == motion
		})
	}
	for _, tw := range tweens {
		s.active = append(s.active, scheduled{motion: motion, tween: tw})
	}
}

// Tick advances all active tweens in insertion order and retires the
// completed ones. now is a monotonic frame timestamp; dt is measured from
// the previous tick (zero on the first tick or if now goes backwards).
func (s *Scheduler) Tick(now time.Duration) {
	var dt time.Duration
	if s.ticked && now > s.last {
		dt = now - s.last
	}
	s.last = now
	s.ticked = true

	for _, e := range s.active {
		e.tween.Advance(dt)
	}
	s.active = lo.Filter(s.active, func(e scheduled, _ int) bool {
		return e.tween.Status() != tween.Completed
	})
}

// Len returns the number of active tweens
func (s *Scheduler) Len() int {
	return len(s.active)
}

// Active reports whether any tween of the given motion is still running
func (s *Scheduler) Active(motion string) bool {
	return lo.ContainsBy(s.active, func(e scheduled) bool {
		return e.motion == motion
	})
}

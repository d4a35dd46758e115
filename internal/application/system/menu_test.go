package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/folio/internal/application/state"
	"github.com/younwookim/folio/internal/domain/entity"
	"github.com/younwookim/folio/internal/domain/tween"
)

var testRest = entity.Pose{
	Position: mgl64.Vec3{-1.1, 1.4, 2.3},
	Rotation: mgl64.Vec3{0, 0, 0},
}

func testEntries() []entity.MenuEntry {
	return []entity.MenuEntry{
		{
			ID:       "about",
			Label:    "What I've been working on",
			Body:     "Content about me...",
			Zoom:     mgl64.Vec3{-2, 1.5, 3},
			Rotation: mgl64.Vec3{0.1, 0.2, 0},
		},
		{
			ID:       "cv",
			Label:    "CV",
			Body:     "CV details...",
			Zoom:     mgl64.Vec3{-1, 1.1, 2},
			Rotation: mgl64.Vec3{0, 0.5, 0},
		},
		{
			ID:       "contact",
			Label:    "Contact",
			Body:     "Contact details...",
			Zoom:     mgl64.Vec3{-0.5, 1.2, 1.5},
			Rotation: mgl64.Vec3{-0.2, 0.3, 0},
		},
	}
}

// menuRig wires a menu to a camera and scheduler with a manual clock
type menuRig struct {
	camera    *entity.Camera
	scheduler *Scheduler
	cameraSys *CameraSystem
	menu      *MenuSystem
	now       time.Duration
}

func newMenuRig() *menuRig {
	cam := entity.NewCamera(testRest, 75, 0.1, 1000)
	sched := NewScheduler()
	camSys := NewCameraSystem(cam, sched, time.Second, tween.QuadraticInOut)
	r := &menuRig{
		camera:    cam,
		scheduler: sched,
		cameraSys: camSys,
		menu:      NewMenuSystem(testEntries(), testRest, state.NewMenuState(), camSys),
	}
	sched.Tick(0)
	return r
}

func (r *menuRig) advance(d time.Duration) {
	for end := r.now + d; r.now < end; {
		r.now += frame
		r.scheduler.Tick(r.now)
	}
}

func (r *menuRig) openCount() int {
	n := 0
	for i := range r.menu.Entries() {
		if r.menu.View(i).Open {
			n++
		}
	}
	return n
}

func TestMenuSystem_InitialState(t *testing.T) {
	r := newMenuRig()

	assert.Equal(t, state.PhaseClosed, r.menu.State().Phase())
	assert.Equal(t, testRest, r.camera.Pose(), "camera starts at rest")
	assert.Equal(t, 0, r.scheduler.Len(), "no animation at startup")
	for i := range r.menu.Entries() {
		assert.Equal(t, entity.EntryView{Visible: true}, r.menu.View(i))
	}
}

func TestMenuSystem_OpenEntry(t *testing.T) {
	r := newMenuRig()

	r.menu.OpenEntry("cv")

	id, ok := r.menu.State().OpenEntryID()
	require.True(t, ok)
	assert.Equal(t, "cv", id)
	assert.Equal(t, 2, r.scheduler.Len(), "one position + rotation pair")
	assert.Equal(t, entity.EntryView{Visible: true, Open: true, Raised: true}, r.menu.View(1))
	assert.Equal(t, entity.EntryView{}, r.menu.View(0), "other entries hidden")
	assert.Equal(t, entity.EntryView{}, r.menu.View(2))

	r.advance(time.Second)
	cv, _ := r.menu.Entry("cv")
	assert.True(t, r.camera.Pose().ApproxEqual(cv.Pose(), 1e-9))
	assert.Equal(t, 0, r.scheduler.Len())
}

func TestMenuSystem_ToggleSameCloses(t *testing.T) {
	r := newMenuRig()
	r.menu.OpenEntry("about")
	r.advance(time.Second)

	r.menu.OpenEntry("about")

	assert.Equal(t, state.PhaseClosed, r.menu.State().Phase())
	assert.Equal(t, testRest, r.cameraSys.Target())
	for i := range r.menu.Entries() {
		assert.Equal(t, entity.EntryView{Visible: true}, r.menu.View(i), "views reset")
	}

	r.advance(time.Second)
	assert.Equal(t, testRest, r.camera.Pose())
}

func TestMenuSystem_AboutThenCloseButton(t *testing.T) {
	r := newMenuRig()

	r.menu.OpenEntry("about")
	r.advance(200 * time.Millisecond)
	r.menu.CloseButton()
	r.advance(1200 * time.Millisecond)

	assert.Equal(t, mgl64.Vec3{-1.1, 1.4, 2.3}, r.camera.Position)
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, r.camera.Rotation)
	_, ok := r.menu.State().OpenEntryID()
	assert.False(t, ok)
}

func TestMenuSystem_CvThenContactGoesStraight(t *testing.T) {
	r := newMenuRig()
	cv, _ := r.menu.Entry("cv")
	contact, _ := r.menu.Entry("contact")

	r.menu.OpenEntry("cv")
	r.advance(300 * time.Millisecond)
	mid := r.camera.Pose()

	r.menu.OpenEntry("contact")
	assert.Equal(t, 2, r.scheduler.Len(), "cv pan superseded, not stacked")
	assert.Equal(t, contact.Pose(), r.cameraSys.Target(), "no detour through rest")
	assert.Equal(t, 1, r.openCount())

	// Track the trajectory: it must start where the camera was and never
	// settle on the cv pose or the rest pose
	prev := mid
	for i := 0; i < 80; i++ {
		r.advance(frame)
		cur := r.camera.Pose()
		step := cur.Position.Sub(prev.Position).Len()
		assert.Less(t, step, 0.1, "continuous, no jump")
		if r.scheduler.Len() > 0 {
			assert.False(t, cur.ApproxEqual(cv.Pose(), 1e-9))
			assert.False(t, cur.ApproxEqual(testRest, 1e-9))
		}
		prev = cur
	}

	assert.True(t, r.camera.Pose().ApproxEqual(contact.Pose(), 1e-9))
	id, _ := r.menu.State().OpenEntryID()
	assert.Equal(t, "contact", id)
}

func TestMenuSystem_RetargetStartsFromLivePose(t *testing.T) {
	r := newMenuRig()

	r.menu.OpenEntry("cv")
	r.advance(400 * time.Millisecond)
	mid := r.camera.Pose()
	require.False(t, mid.ApproxEqual(testRest, 1e-6))

	r.menu.OpenEntry("contact")
	r.scheduler.Tick(r.now) // zero-length frame

	assert.True(t, r.camera.Pose().ApproxEqual(mid, 1e-12))
}

func TestMenuSystem_CloseButtonWhenClosedIssuesNothing(t *testing.T) {
	r := newMenuRig()

	r.menu.CloseButton()

	assert.Equal(t, 0, r.scheduler.Len())
	assert.Equal(t, state.PhaseClosed, r.menu.State().Phase())
}

func TestMenuSystem_UnknownEntryIgnored(t *testing.T) {
	r := newMenuRig()
	r.menu.OpenEntry("cv")

	r.menu.OpenEntry("missing")

	id, _ := r.menu.State().OpenEntryID()
	assert.Equal(t, "cv", id)
	assert.Equal(t, 1, r.openCount())
}

func TestMenuSystem_AtMostOneOpen(t *testing.T) {
	type event struct {
		open string // empty means close button
	}
	sequences := map[string][]event{
		"open close":         {{"about"}, {""}},
		"hop around":         {{"about"}, {"cv"}, {"contact"}, {"cv"}},
		"toggle twice":       {{"cv"}, {"cv"}, {"cv"}},
		"close then reopen":  {{"contact"}, {""}, {""}, {"about"}},
		"toggle after hop":   {{"about"}, {"contact"}, {"contact"}},
		"only closes":        {{""}, {""}},
		"reopen same target": {{"cv"}, {"about"}, {"cv"}},
	}

	for name, seq := range sequences {
		t.Run(name, func(t *testing.T) {
			r := newMenuRig()
			var want string
			for _, ev := range seq {
				if ev.open == "" {
					r.menu.CloseButton()
					want = ""
				} else {
					if want == ev.open {
						want = ""
					} else {
						want = ev.open
					}
					r.menu.OpenEntry(ev.open)
				}
				assert.LessOrEqual(t, r.openCount(), 1)
				r.advance(100 * time.Millisecond)
			}

			id, ok := r.menu.State().OpenEntryID()
			if want == "" {
				assert.False(t, ok)
				assert.Equal(t, 0, r.openCount())
			} else {
				assert.True(t, ok)
				assert.Equal(t, want, id)
				assert.Equal(t, 1, r.openCount())
			}

			r.advance(2 * time.Second)
			expected := testRest
			if want != "" {
				e, _ := r.menu.Entry(want)
				expected = e.Pose()
			}
			assert.True(t, r.camera.Pose().ApproxEqual(expected, 1e-9))
		})
	}
}

func TestCameraSystem_MoveToSameTargetIsNoop(t *testing.T) {
	cam := entity.NewCamera(testRest, 75, 0.1, 1000)
	sched := NewScheduler()
	cs := NewCameraSystem(cam, sched, time.Second, tween.Linear)

	assert.False(t, cs.MoveTo(testRest))
	assert.False(t, cs.IsMoving())

	target := entity.Pose{Position: mgl64.Vec3{1, 1, 1}}
	assert.True(t, cs.MoveTo(target))
	assert.True(t, cs.IsMoving())
	assert.False(t, cs.MoveTo(target), "repeat target not re-issued")
	assert.Equal(t, 2, sched.Len())
}

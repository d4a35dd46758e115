package system

import (
	"log"

	"github.com/samber/lo"
	"github.com/younwookim/folio/internal/application/state"
	"github.com/younwookim/folio/internal/domain/entity"
)

// MenuSystem is the menu/camera state machine.
//
//	Closed   --OpenEntry(id)-->            Open(id)
//	Open(id) --OpenEntry(id)-->            Closed
//	Open(id) --OpenEntry(id2), id2!=id-->  Open(id2)  (camera goes straight there)
//	Open(id) --CloseButton-->              Closed
//
// Every transition that changes the target pose issues exactly one camera
// motion through the CameraSystem.
type MenuSystem struct {
	entries []entity.MenuEntry
	views   []entity.EntryView
	state   *state.MenuState
	camera  *CameraSystem
	rest    entity.Pose
}

// NewMenuSystem creates the state machine in the Closed state.
// The camera is expected to already sit at the rest pose.
func NewMenuSystem(entries []entity.MenuEntry, rest entity.Pose, st *state.MenuState, camera *CameraSystem) *MenuSystem {
	m := &MenuSystem{
		entries: entries,
		views:   make([]entity.EntryView, len(entries)),
		state:   st,
		camera:  camera,
		rest:    rest,
	}
	m.resetViews()
	return m
}

// OpenEntry handles a click on an entry's headline
func (m *MenuSystem) OpenEntry(id string) {
	_, idx, ok := lo.FindIndexOf(m.entries, func(e entity.MenuEntry) bool {
		return e.ID == id
	})
	if !ok {
		log.Printf("Menu: ignoring unknown entry %q", id)
		return
	}

	wasOpen := m.state.IsOpen(id)

	// Force-close everything so exactly one entry ends up open
	m.hideViews()

	if wasOpen {
		m.close()
		return
	}

	m.views[idx] = entity.EntryView{Visible: true, Open: true, Raised: true}
	m.state.Open(id)
	m.camera.MoveTo(m.entries[idx].Pose())
}

// CloseButton handles the explicit close affordance
func (m *MenuSystem) CloseButton() {
	m.close()
}

func (m *MenuSystem) close() {
	m.resetViews()
	m.state.Close()
	// No-op when already heading to the rest pose
	m.camera.MoveTo(m.rest)
}

func (m *MenuSystem) hideViews() {
	for i := range m.views {
		m.views[i] = entity.EntryView{}
	}
}

func (m *MenuSystem) resetViews() {
	for i := range m.views {
		m.views[i] = entity.EntryView{Visible: true}
	}
}

// State returns the menu state
func (m *MenuSystem) State() *state.MenuState {
	return m.state
}

// Entries returns the configured entries in display order
func (m *MenuSystem) Entries() []entity.MenuEntry {
	return m.entries
}

// Entry looks up an entry by id
func (m *MenuSystem) Entry(id string) (entity.MenuEntry, bool) {
	return lo.Find(m.entries, func(e entity.MenuEntry) bool {
		return e.ID == id
	})
}

// View returns the visual state of the i-th entry
func (m *MenuSystem) View(i int) entity.EntryView {
	if i < 0 || i >= len(m.views) {
		return entity.EntryView{}
	}
	return m.views[i]
}

// RestPose returns the pose used while nothing is open
func (m *MenuSystem) RestPose() entity.Pose {
	return m.rest
}

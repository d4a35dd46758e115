// Package showcase provides the 3D menu scene: a wireframe model on a floor
// grid, a cursor-driven light, and a camera that pans to each menu entry.
package showcase

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/folio/internal/application/replay"
	"github.com/younwookim/folio/internal/application/scene"
	"github.com/younwookim/folio/internal/application/state"
	"github.com/younwookim/folio/internal/application/system"
	"github.com/younwookim/folio/internal/domain/entity"
	"github.com/younwookim/folio/internal/infrastructure/config"
)

// Options configures optional showcase behavior
type Options struct {
	// RecordPath enables input recording when not empty
	RecordPath string
	// Replay, when set, drives the scene instead of live input until it runs out
	Replay *replay.ReplayData
	// Model is placed per the scene config; nil runs the scene without it
	Model *entity.Wireframe
}

// Showcase is the main scene
type Showcase struct {
	cfg *config.SceneConfig

	camera    *entity.Camera
	light     *entity.Light
	scheduler *system.Scheduler
	cameraSys *system.CameraSystem
	menu      *system.MenuSystem
	pointer   *system.PointerLight
	input     *system.InputSystem
	layout    *system.MenuLayout

	floor *entity.Wireframe
	model []mgl64.Vec3 // transformed model vertices, nil without a model
	edges []entity.Edge

	screenW int
	screenH int
	clock   time.Duration

	// Pointer tracking: the light only moves on pointer movement
	lastMouseX int
	lastMouseY int
	hasMouse   bool

	// Input recording / playback
	recorder   *replay.Recorder
	recordPath string
	replayer   *replay.Replayer
}

// New creates the showcase scene. The camera starts at the rest pose with
// nothing animating.
func New(cfg *config.AppConfig, opts Options) *Showcase {
	sc := cfg.Scene
	rest := system.LoadRestPose(sc)

	cam := entity.NewCamera(rest, sc.Camera.FOV, sc.Camera.Near, sc.Camera.Far)
	light := entity.NewLight(sc.PointerLight.Intensity)
	scheduler := system.NewScheduler()
	cameraSys := system.NewCameraSystem(cam, scheduler, sc.Motion.Duration(), sc.Motion.EasingFunc())
	menu := system.NewMenuSystem(system.LoadMenuEntries(cfg.Menu), rest, state.NewMenuState(), cameraSys)

	s := &Showcase{
		cfg:        sc,
		camera:     cam,
		light:      light,
		scheduler:  scheduler,
		cameraSys:  cameraSys,
		menu:       menu,
		pointer:    system.NewPointerLight(light, sc.PointerLight.Scale, sc.PointerLight.Z),
		input:      system.NewInputSystem(),
		floor:      entity.FloorGrid(sc.Floor.Size, sc.Floor.Divisions),
		screenW:    sc.Display.ScreenWidth,
		screenH:    sc.Display.ScreenHeight,
		recordPath: opts.RecordPath,
	}

	if opts.Model != nil {
		m := sc.Model
		s.model = opts.Model.Transform(m.Position.Vec3(), m.Scale, m.RotationY)
		s.edges = opts.Model.Edges
	}

	if opts.Replay != nil {
		s.replayer = replay.NewReplayer(*opts.Replay)
		log.Printf("Replay enabled: %d frames", s.replayer.TotalFrames())
		if opts.Replay.FramerateMismatch(sc.Display.Framerate) {
			log.Printf("Warning: replay recorded at %d TPS, running at %d TPS; pans will play at a different speed",
				opts.Replay.Framerate, sc.Display.Framerate)
		}
	}
	if opts.RecordPath != "" {
		s.recorder = replay.NewRecorder(sc.Display.Title, sc.Display.Framerate)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	s.layout = system.LayoutMenu(menu, s.screenW, s.screenH)
	return s
}

// Update handles this frame's input, then ticks the scheduler so the
// frame's events are applied before the camera advances.
func (s *Showcase) Update(dt float64) (scene.Scene, error) {
	in := s.nextInput()

	if s.recorder != nil {
		s.recorder.RecordFrame(in)
		s.handleHotkeys()
	}

	if !s.hasMouse || in.MouseX != s.lastMouseX || in.MouseY != s.lastMouseY {
		s.pointer.Move(float64(in.MouseX), float64(in.MouseY), float64(s.screenW), float64(s.screenH))
		s.lastMouseX, s.lastMouseY = in.MouseX, in.MouseY
		s.hasMouse = true
	}

	// Clicks resolve against the layout that was on screen
	s.input.Route(in, s.layout, s.menu)
	s.layout = system.LayoutMenu(s.menu, s.screenW, s.screenH)

	s.clock += time.Duration(dt * float64(time.Second))
	s.scheduler.Tick(s.clock)

	return nil, nil
}

// nextInput reads the replay while it lasts, then live input
func (s *Showcase) nextInput() system.InputState {
	if s.replayer != nil {
		if in, ok := s.replayer.GetInput(); ok {
			return in
		}
		log.Printf("Replay finished after %d frames", s.replayer.TotalFrames())
		s.replayer = nil
	}
	return s.input.GetInput()
}

// OnEnter is called when entering this scene
func (s *Showcase) OnEnter() {
	log.Printf("Showcase: %d menu entries, camera at %v", len(s.menu.Entries()), s.camera.Position)
}

// OnExit saves the recording, if any
func (s *Showcase) OnExit() {
	s.SaveRecording()
}

// SaveRecording writes the input recording to disk
func (s *Showcase) SaveRecording() {
	if s.recorder == nil || s.recorder.FrameCount() == 0 {
		return
	}

	filename := s.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := s.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, s.recorder.FrameCount())
	}
}

// Camera returns the scene camera
func (s *Showcase) Camera() *entity.Camera {
	return s.camera
}

// Light returns the pointer-driven light
func (s *Showcase) Light() *entity.Light {
	return s.light
}

// Menu returns the menu state machine
func (s *Showcase) Menu() *system.MenuSystem {
	return s.menu
}

// MenuLayout returns the menu layout currently on screen
func (s *Showcase) MenuLayout() *system.MenuLayout {
	return s.layout
}

// HasModel reports whether a wireframe model is being drawn
func (s *Showcase) HasModel() bool {
	return s.model != nil
}

// handleHotkeys saves the recording on F5 without leaving the scene.
// The key is read outside InputState so replays never trigger it.
func (s *Showcase) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		s.SaveRecording()
	}
}

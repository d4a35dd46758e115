package config

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/folio/internal/domain/tween"
)

// Defaults applied by Normalize
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 400
	DefaultScale        = 2
	DefaultFramerate    = 60
	DefaultDurationMs   = 1000
	DefaultEasing       = "Quadratic.InOut"
	DefaultLightScale   = 5
	DefaultLightZ       = 2
)

// SceneConfig is the root config for scene.json
type SceneConfig struct {
	Display      DisplayConfig      `json:"display"`
	Camera       CameraConfig       `json:"camera"`
	Motion       MotionConfig       `json:"motion"`
	PointerLight PointerLightConfig `json:"pointerLight"`
	Floor        FloorConfig        `json:"floor"`
	Model        ModelPlacement     `json:"model"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// CameraConfig holds the projection parameters and the rest pose
type CameraConfig struct {
	FOV  float64    `json:"fov"` // Vertical, degrees
	Near float64    `json:"near"`
	Far  float64    `json:"far"`
	Rest PoseConfig `json:"rest"`
}

type PoseConfig struct {
	Position Vec3Config `json:"position"`
	Rotation Vec3Config `json:"rotation"`
}

// MotionConfig configures camera pans. These are presentation values.
type MotionConfig struct {
	DurationMs float64 `json:"durationMs"`
	Easing     string  `json:"easing"` // e.g. "Quadratic.InOut", see tween.ByName
}

// Duration returns the pan duration
func (m MotionConfig) Duration() time.Duration {
	return time.Duration(m.DurationMs * float64(time.Millisecond))
}

// EasingFunc resolves the easing name, falling back to the default curve
func (m MotionConfig) EasingFunc() tween.Easing {
	if e, ok := tween.ByName(m.Easing); ok {
		return e
	}
	return tween.QuadraticInOut
}

// PointerLightConfig configures the cursor-driven light
type PointerLightConfig struct {
	Scale     float64 `json:"scale"` // NDC to world units
	Z         float64 `json:"z"`
	Intensity float64 `json:"intensity"`
}

type FloorConfig struct {
	Size      float64 `json:"size"`
	Divisions int     `json:"divisions"`
}

// ModelPlacement names the wireframe file and where it sits.
// An empty File means no model.
type ModelPlacement struct {
	File      string     `json:"file"`
	Position  Vec3Config `json:"position"`
	RotationY float64    `json:"rotationY"`
	Scale     float64    `json:"scale"`
}

// Vec3Config is an {x, y, z} object in JSON and YAML
type Vec3Config struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Vec3 converts to a math vector
func (v Vec3Config) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Normalize coerces configuration defects to safe defaults, logging each one.
// A bad value degrades the presentation instead of stopping the program.
func (c *SceneConfig) Normalize() {
	if c.Display.ScreenWidth <= 0 {
		log.Printf("Config: display.screenWidth %d invalid, using %d", c.Display.ScreenWidth, DefaultScreenWidth)
		c.Display.ScreenWidth = DefaultScreenWidth
	}
	if c.Display.ScreenHeight <= 0 {
		log.Printf("Config: display.screenHeight %d invalid, using %d", c.Display.ScreenHeight, DefaultScreenHeight)
		c.Display.ScreenHeight = DefaultScreenHeight
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = DefaultScale
	}
	if c.Display.Framerate <= 0 {
		log.Printf("Config: display.framerate %d invalid, using %d", c.Display.Framerate, DefaultFramerate)
		c.Display.Framerate = DefaultFramerate
	}

	// Zero is a valid instant cut; negative is a typo
	if c.Motion.DurationMs < 0 {
		log.Printf("Config: motion.durationMs %v negative, using %d", c.Motion.DurationMs, DefaultDurationMs)
		c.Motion.DurationMs = DefaultDurationMs
	}
	if _, ok := tween.ByName(c.Motion.Easing); !ok {
		if c.Motion.Easing != "" {
			log.Printf("Config: unknown easing %q, using %s", c.Motion.Easing, DefaultEasing)
		}
		c.Motion.Easing = DefaultEasing
	}

	if c.PointerLight.Scale == 0 {
		c.PointerLight.Scale = DefaultLightScale
	}
	if c.PointerLight.Z == 0 {
		c.PointerLight.Z = DefaultLightZ
	}
	if c.PointerLight.Intensity <= 0 {
		c.PointerLight.Intensity = 1
	}

	if c.Floor.Size <= 0 {
		c.Floor.Size = 20
	}
	if c.Floor.Divisions <= 0 {
		c.Floor.Divisions = 20
	}
	if c.Model.Scale <= 0 {
		c.Model.Scale = 1
	}
}

// MenuConfig is the root config for menu.yaml
type MenuConfig struct {
	Entries []MenuEntryConfig `yaml:"entries"`
}

// MenuEntryConfig is one menu item and the camera pose it zooms to
type MenuEntryConfig struct {
	ID       string     `yaml:"id"`
	Title    string     `yaml:"title"`
	Content  string     `yaml:"content"`
	Zoom     Vec3Config `yaml:"zoom"`
	Rotation Vec3Config `yaml:"rotation"`
}

// ModelConfig is the root config for a wireframe model file
type ModelConfig struct {
	Vertices [][3]float64 `json:"vertices"`
	Edges    [][2]int     `json:"edges"`
}

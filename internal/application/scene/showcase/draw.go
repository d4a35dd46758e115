package showcase

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/folio/internal/application/system"
)

// Colors
var (
	colorBG       = color.RGBA{12, 12, 20, 255}
	colorFloor    = color.RGBA{40, 40, 60, 255}
	colorModel    = color.RGBA{230, 220, 200, 255}
	colorLight    = color.RGBA{255, 240, 160, 255}
	colorHeadline = color.RGBA{30, 30, 50, 220}
	colorOpen     = color.RGBA{60, 50, 90, 230}
	colorClose    = color.RGBA{140, 50, 60, 255}
	colorBody     = color.RGBA{0, 0, 0, 160}
)

// ambient keeps unlit model edges visible
const ambient = 0.25

// Draw renders the scene
func (s *Showcase) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	s.drawFloor(screen)
	s.drawModel(screen)
	s.drawLight(screen)
	s.drawMenu(screen)
	s.drawHUD(screen)
}

func (s *Showcase) drawFloor(screen *ebiten.Image) {
	for _, e := range s.floor.Edges {
		a, b := s.floor.Vertices[e[0]], s.floor.Vertices[e[1]]
		x0, y0, x1, y1, ok := s.camera.ProjectSegment(a, b, s.screenW, s.screenH)
		if !ok {
			continue
		}
		ebitenutil.DrawLine(screen, x0, y0, x1, y1, colorFloor)
	}
}

// drawModel shades each edge by how directly it faces the light. An edge's
// normal is taken as the direction from the model center to its midpoint.
func (s *Showcase) drawModel(screen *ebiten.Image) {
	if s.model == nil {
		return
	}

	center := centroid(s.model)
	for _, e := range s.edges {
		a, b := s.model[e[0]], s.model[e[1]]
		x0, y0, x1, y1, ok := s.camera.ProjectSegment(a, b, s.screenW, s.screenH)
		if !ok {
			continue
		}

		mid := a.Add(b).Mul(0.5)
		shade := ambient + (1-ambient)*s.light.Lambert(mid.Sub(center))
		ebitenutil.DrawLine(screen, x0, y0, x1, y1, scaleColor(colorModel, shade))
	}
}

func (s *Showcase) drawLight(screen *ebiten.Image) {
	x, y, ok := s.camera.Project(s.light.Position, s.screenW, s.screenH)
	if !ok {
		return
	}
	ebitenutil.DrawRect(screen, x-2, y-2, 4, 4, colorLight)
}

func (s *Showcase) drawMenu(screen *ebiten.Image) {
	for _, el := range s.layout.Entries {
		h := el.Headline
		bg := colorHeadline
		if el.Open {
			bg = colorOpen
		}
		ebitenutil.DrawRect(screen, float64(h.X), float64(h.Y), float64(h.W), float64(h.H), bg)
		ebitenutil.DebugPrintAt(screen, el.Label, h.X+4, h.Y)

		if !el.Open {
			continue
		}

		c := el.Close
		ebitenutil.DrawRect(screen, float64(c.X), float64(c.Y), float64(c.W), float64(c.H), colorClose)
		ebitenutil.DebugPrintAt(screen, " x", c.X, c.Y)

		b := el.Body
		ebitenutil.DrawRect(screen, float64(b.X), float64(b.Y), float64(b.W), float64(b.H), colorBody)
		for i, line := range el.Lines {
			ebitenutil.DebugPrintAt(screen, line, b.X, b.Y+i*system.GlyphHeight)
		}
	}
}

func (s *Showcase) drawHUD(screen *ebiten.Image) {
	pos := s.camera.Position
	text := fmt.Sprintf("%s\nMenu: %s\nCamera: (%.2f, %.2f, %.2f)",
		s.cfg.Display.Title, s.menu.State(), pos.X(), pos.Y(), pos.Z())
	if s.cameraSys.IsMoving() {
		text += " moving"
	}
	if s.replayer != nil {
		text += fmt.Sprintf("\nReplay: %d/%d", s.replayer.CurrentFrame(), s.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, text)
}

func centroid(points []mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

func scaleColor(c color.RGBA, k float64) color.RGBA {
	if k > 1 {
		k = 1
	}
	if k < 0 {
		k = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"
	"github.com/younwookim/folio/internal/domain/entity"
	"github.com/younwookim/folio/internal/infrastructure/config"
)

// LoadMenuEntries converts a MenuConfig into menu entities, keeping order
func LoadMenuEntries(cfg *config.MenuConfig) []entity.MenuEntry {
	return lo.Map(cfg.Entries, func(e config.MenuEntryConfig, _ int) entity.MenuEntry {
		return entity.MenuEntry{
			ID:       e.ID,
			Label:    e.Title,
			Body:     e.Content,
			Zoom:     e.Zoom.Vec3(),
			Rotation: e.Rotation.Vec3(),
		}
	})
}

// LoadRestPose returns the camera's rest pose from the scene config
func LoadRestPose(cfg *config.SceneConfig) entity.Pose {
	return entity.Pose{
		Position: cfg.Camera.Rest.Position.Vec3(),
		Rotation: cfg.Camera.Rest.Rotation.Vec3(),
	}
}

// LoadWireframe converts a ModelConfig into a wireframe, rejecting edges
// that point past the vertex list
func LoadWireframe(cfg *config.ModelConfig) (*entity.Wireframe, error) {
	w := &entity.Wireframe{
		Vertices: lo.Map(cfg.Vertices, func(v [3]float64, _ int) mgl64.Vec3 {
			return mgl64.Vec3(v)
		}),
		Edges: lo.Map(cfg.Edges, func(e [2]int, _ int) entity.Edge {
			return entity.Edge(e)
		}),
	}

	if !w.Valid() {
		return nil, fmt.Errorf("model has edges referring to missing vertices (%d vertices)", len(w.Vertices))
	}
	return w, nil
}

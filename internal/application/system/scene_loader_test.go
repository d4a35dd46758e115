package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/folio/internal/infrastructure/config"
)

func TestLoadMenuEntries(t *testing.T) {
	cfg := &config.MenuConfig{
		Entries: []config.MenuEntryConfig{
			{ID: "about", Title: "About", Content: "Me", Zoom: config.Vec3Config{X: -2, Y: 1.5, Z: 3}},
			{ID: "cv", Title: "CV", Rotation: config.Vec3Config{Y: 0.5}},
		},
	}

	entries := LoadMenuEntries(cfg)

	require.Len(t, entries, 2)
	assert.Equal(t, "about", entries[0].ID)
	assert.Equal(t, "About", entries[0].Label)
	assert.Equal(t, "Me", entries[0].Body)
	assert.Equal(t, mgl64.Vec3{-2, 1.5, 3}, entries[0].Zoom)
	assert.Equal(t, mgl64.Vec3{0, 0.5, 0}, entries[1].Rotation)
}

func TestLoadRestPose(t *testing.T) {
	cfg := &config.SceneConfig{}
	cfg.Camera.Rest.Position = config.Vec3Config{X: -1.1, Y: 1.4, Z: 2.3}

	pose := LoadRestPose(cfg)

	assert.Equal(t, testRest, pose)
}

func TestLoadWireframe(t *testing.T) {
	cfg := &config.ModelConfig{
		Vertices: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Edges:    [][2]int{{0, 1}, {1, 2}},
	}

	w, err := LoadWireframe(cfg)
	require.NoError(t, err)
	assert.Len(t, w.Vertices, 3)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, w.Vertices[2])
	assert.Len(t, w.Edges, 2)
}

func TestLoadWireframe_BadEdge(t *testing.T) {
	cfg := &config.ModelConfig{
		Vertices: [][3]float64{{0, 0, 0}},
		Edges:    [][2]int{{0, 5}},
	}

	_, err := LoadWireframe(cfg)
	assert.Error(t, err)
}

package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/folio/internal/application/game"
	"github.com/younwookim/folio/internal/application/replay"
	"github.com/younwookim/folio/internal/application/scene/showcase"
	"github.com/younwookim/folio/internal/application/system"
	"github.com/younwookim/folio/internal/domain/entity"
	"github.com/younwookim/folio/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("config", "", "Load configs from a directory instead of the embedded defaults")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record session.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session before handing over to live input")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := showcase.Options{
		RecordPath: *recordFlag,
		Model:      loadModel(loader, cfg.Scene.Model.File),
	}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = data
	}

	display := cfg.Scene.Display
	g := game.New(showcase.New(cfg, opts), display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(display.Framerate)

	err = ebiten.RunGame(g)
	g.Stop()
	if err != nil {
		log.Fatal(err)
	}
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadModel returns nil when the model cannot be loaded. The scene still
// runs without it.
func loadModel(loader *config.Loader, name string) *entity.Wireframe {
	if name == "" {
		return nil
	}

	modelCfg, err := loader.LoadModel(name)
	if err != nil {
		log.Printf("Model unavailable, continuing without it: %v", err)
		return nil
	}
	model, err := system.LoadWireframe(modelCfg)
	if err != nil {
		log.Printf("Model unavailable, continuing without it: %v", err)
		return nil
	}

	log.Printf("Model loaded: %s (%d vertices, %d edges)", name, len(model.Vertices), len(model.Edges))
	return model
}

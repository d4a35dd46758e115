package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// AppConfig holds all loaded configurations
type AppConfig struct {
	Scene *SceneConfig
	Menu  *MenuConfig
}

// Loader loads configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory this loader reads from (for messages)
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadScene loads scene.json and normalizes it
func (l *Loader) LoadScene() (*SceneConfig, error) {
	data, err := fs.ReadFile(l.fsys, "scene.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read scene.json: %w", err)
	}

	var cfg SceneConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene.json: %w", err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// LoadMenu loads menu.yaml. Entry ids must be non-empty and unique.
func (l *Loader) LoadMenu() (*MenuConfig, error) {
	data, err := fs.ReadFile(l.fsys, "menu.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read menu.yaml: %w", err)
	}

	var cfg MenuConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse menu.yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu.yaml: %w", err)
	}

	return &cfg, nil
}

// Validate checks the entry ids
func (c *MenuConfig) Validate() error {
	for i, e := range c.Entries {
		if e.ID == "" {
			return fmt.Errorf("entry %d has no id", i)
		}
	}
	dups := lo.FindDuplicatesBy(c.Entries, func(e MenuEntryConfig) string {
		return e.ID
	})
	if len(dups) > 0 {
		return fmt.Errorf("duplicate entry id %q", dups[0].ID)
	}
	return nil
}

// LoadModel loads a wireframe model file
func (l *Loader) LoadModel(name string) (*ModelConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", name, err)
	}

	var cfg ModelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all required configurations (scene, menu)
func (l *Loader) LoadAll() (*AppConfig, error) {
	scene, err := l.LoadScene()
	if err != nil {
		return nil, err
	}

	menu, err := l.LoadMenu()
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Scene: scene,
		Menu:  menu,
	}, nil
}

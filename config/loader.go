package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/blockhop/shared/physics"
	"gopkg.in/yaml.v3"
)

// File mirrors the YAML layout. Sections left out keep their defaults.
type File struct {
	Game      *Config               `yaml:"game"`
	World     *WorldConfig          `yaml:"world"`
	Player    *physics.Tuning       `yaml:"player"`
	Enemy     *physics.Tuning       `yaml:"enemy"`
	Camera    *physics.CameraBounds `yaml:"camera"`
	Editor    *EditorConfig         `yaml:"editor"`
	Debug     *DebugConfig          `yaml:"debug"`
	Telemetry *TelemetryConfig      `yaml:"telemetry"`
}

// SearchPaths returns the config locations tried in order when no explicit
// path is given.
func SearchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "blockhop", "config.yaml"))
	}
	return append(paths, "blockhop.yaml")
}

// Load overlays a YAML config on the defaults. An explicit path must exist;
// otherwise the first file found in SearchPaths is used and having none is
// fine. It returns the path that was applied, or "".
func Load(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return path, Apply(data)
	}

	for _, p := range SearchPaths() {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", p, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("config %s: %w", p, err)
		}
		return p, nil
	}
	return "", nil
}

// Apply decodes YAML into the global configuration. Fields missing from the
// document keep their current values.
func Apply(data []byte) error {
	f := File{
		Game:      C,
		World:     &World,
		Player:    &Player,
		Enemy:     &Enemy,
		Camera:    &Camera,
		Editor:    &Editor,
		Debug:     &Debug,
		Telemetry: &Telemetry,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

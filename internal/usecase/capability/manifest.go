package capability

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/newsrank/internal/domain"
)

// DefaultManifestPath is the model manifest location, relative to the executable.
const DefaultManifestPath = "model.yaml"

// Manifest describes the persisted model artifact.
type Manifest struct {
	Name        string `yaml:"name"`
	Model       string `yaml:"model"` // identifier on the model backend
	Description string `yaml:"description"`
}

// LoadManifest reads and validates a manifest file.
// A missing file returns an error matching os.ErrNotExist.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Manifest{}, fmt.Errorf("model manifest %s: %w", path, err)
		}
		return Manifest{}, fmt.Errorf("%w: read %s: %w", domain.ErrModelManifest, path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: parse %s: %w", domain.ErrModelManifest, path, err)
	}
	if m.Name == "" {
		return Manifest{}, fmt.Errorf("%w: name is required", domain.ErrModelManifest)
	}
	if m.Model == "" {
		return Manifest{}, fmt.Errorf("%w: model is required", domain.ErrModelManifest)
	}
	return m, nil
}

// ResolveManifestPath makes a relative path relative to the running executable's directory.
func ResolveManifestPath(path string) string {
	if path == "" {
		path = DefaultManifestPath
	}
	if filepath.IsAbs(path) {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return path
	}
	return filepath.Join(filepath.Dir(exe), path)
}

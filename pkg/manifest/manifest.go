package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Generation represents one generated source file in the manifest.
type Generation struct {
	Class   string `yaml:"class" json:"class"`
	Target  string `yaml:"target" json:"target"`
	Version string `yaml:"version" json:"version"`
	File    string `yaml:"file" json:"file"`
}

// Manifest tracks the versions of generated model files.
type Manifest struct {
	CurrentVersion  string       `yaml:"current_version" json:"current_version"`
	PreviousVersion string       `yaml:"previous_version" json:"previous_version"`
	Generations     []Generation `yaml:"generations" json:"generations"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// AddGeneration records a generated file. A new version moves the current
// version to previous; an entry with the same class, target and version is
// replaced.
func (m *Manifest) AddGeneration(g Generation) {
	if m.CurrentVersion != g.Version {
		if m.CurrentVersion != "" {
			m.PreviousVersion = m.CurrentVersion
		}
		m.CurrentVersion = g.Version
	}

	for i := range m.Generations {
		if m.Generations[i].same(g) && m.Generations[i].Version == g.Version {
			m.Generations[i] = g
			return
		}
	}

	m.Generations = append(m.Generations, g)
}

// Version returns the generations recorded for version, in insertion order.
func (m *Manifest) Version(version string) []Generation {
	var out []Generation
	for _, g := range m.Generations {
		if g.Version == version {
			out = append(out, g)
		}
	}
	return out
}

// Find returns the generation of class for target at version.
func (m *Manifest) Find(class, target, version string) (Generation, bool) {
	for _, g := range m.Generations {
		if g.Class == class && g.Target == target && g.Version == version {
			return g, true
		}
	}
	return Generation{}, false
}

func (g Generation) same(o Generation) bool {
	return g.Class == o.Class && g.Target == o.Target
}

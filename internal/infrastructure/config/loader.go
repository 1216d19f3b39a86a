// Package config loads engine settings from JSON or YAML files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// SettingsFiles are tried in order by LoadSettings.
var SettingsFiles = []string{"settings.json", "settings.yaml", "settings.yml"}

// Loader loads settings using fs.FS interface
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

// LoadSettings loads the first settings file found, applies defaults and
// validates the result.
func (l *Loader) LoadSettings() (*Settings, error) {
	for _, name := range SettingsFiles {
		cfg, err := l.LoadSettingsFile(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return nil, fmt.Errorf("no settings file in %s: %w", l.basePath, fs.ErrNotExist)
}

// LoadSettingsFile loads a settings file, choosing the decoder by extension.
func (l *Loader) LoadSettingsFile(name string) (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := ParseSettings(data, path.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// ParseSettings decodes settings; ext selects the format (".json",
// ".yaml" or ".yml").
func ParseSettings(data []byte, ext string) (*Settings, error) {
	var cfg Settings
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported settings format %q", ext)
	}
	return &cfg, nil
}

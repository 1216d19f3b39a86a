package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when required startup keys are missing.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Settings is the root config for settings.json / settings.yaml
type Settings struct {
	GameID         string        `json:"game_id" yaml:"game_id"`
	RootPath       string        `json:"root_path" yaml:"root_path"`
	FirstScene     string        `json:"first_scene" yaml:"first_scene"`
	InputManagers  []string      `json:"input_managers" yaml:"input_managers"`
	OutputManagers []string      `json:"output_managers" yaml:"output_managers"`
	Display        DisplayConfig `json:"display" yaml:"display"`
	Remote         RemoteConfig  `json:"remote" yaml:"remote"`
	Replay         ReplayConfig  `json:"replay" yaml:"replay"`
}

// DisplayConfig configures the window and frame pacing
type DisplayConfig struct {
	Title        string `json:"title" yaml:"title"`
	ScreenWidth  int    `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int    `json:"screenHeight" yaml:"screenHeight"`
	Scale        int    `json:"scale" yaml:"scale"`
	Framerate    int    `json:"framerate" yaml:"framerate"`
}

// RemoteConfig configures the remote keyboard receiver
type RemoteConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Addr    string `json:"addr" yaml:"addr"` // e.g. ":14984"
	// Origin hosts allowed besides the receiver's own, e.g. "*.example.com"
	OriginPatterns []string `json:"originPatterns,omitempty" yaml:"originPatterns,omitempty"`
}

// ReplayConfig configures input recording and playback
type ReplayConfig struct {
	Record string `json:"record" yaml:"record"` // file to record into
	Play   string `json:"play" yaml:"play"`     // file to play back
}

// Default values applied by ApplyDefaults
const (
	DefaultRootPath     = "."
	DefaultScreenWidth  = 320
	DefaultScreenHeight = 240
	DefaultScale        = 2
	DefaultFramerate    = 60
	DefaultRemoteAddr   = ":14984"
)

// ApplyDefaults fills optional fields left empty.
func (s *Settings) ApplyDefaults() {
	if s.RootPath == "" {
		s.RootPath = DefaultRootPath
	}
	if s.Display.ScreenWidth <= 0 {
		s.Display.ScreenWidth = DefaultScreenWidth
	}
	if s.Display.ScreenHeight <= 0 {
		s.Display.ScreenHeight = DefaultScreenHeight
	}
	if s.Display.Scale <= 0 {
		s.Display.Scale = DefaultScale
	}
	if s.Display.Framerate <= 0 {
		s.Display.Framerate = DefaultFramerate
	}
	if s.Display.Title == "" {
		s.Display.Title = s.GameID
	}
	if s.Remote.Enabled && s.Remote.Addr == "" {
		s.Remote.Addr = DefaultRemoteAddr
	}
}

// Validate checks the keys the engine cannot start without.
// An empty output_managers list is accepted; a missing one is not.
func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: settings not defined", ErrInvalidConfiguration)
	}
	if s.FirstScene == "" {
		return fmt.Errorf("%w: first scene not defined", ErrInvalidConfiguration)
	}
	if s.OutputManagers == nil {
		return fmt.Errorf("%w: cannot start game with no output managers", ErrInvalidConfiguration)
	}
	return nil
}

// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/automoto/topdown/controls"
	"github.com/automoto/topdown/kinematics"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Default is the ECS layer every entity and renderer lives on.
const Default = 0

// Color is an RGBA quadruple as written in YAML.
type Color [4]uint8

func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{c[0], c[1], c[2], c[3]}
}

// Config holds all game configuration.
type Config struct {
	Screen   ScreenConfig        `yaml:"screen"`
	Player   PlayerConfig        `yaml:"player"`
	Sight    SightConfig         `yaml:"sight"`
	Controls map[string][]string `yaml:"controls"` // control name -> ebiten key names
	Level    LevelConfig         `yaml:"level"`
	Debug    DebugConfig         `yaml:"debug"`
	Trace    TraceConfig         `yaml:"trace"`
}

type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background Color  `yaml:"background"`
}

// PlayerConfig contains the movement tuning and body of the player actor.
type PlayerConfig struct {
	// Movement, px/s and px/s²
	Acceleration     float64 `yaml:"acceleration"`
	StopDeceleration float64 `yaml:"stop_deceleration"`
	WalkMaxVelocity  float64 `yaml:"walk_max_velocity"`
	RunMaxVelocity   float64 `yaml:"run_max_velocity"`
	StopEpsilon      float64 `yaml:"stop_epsilon"`
	Policy           string  `yaml:"policy"` // turnaround | coast

	// Body
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  Color   `yaml:"color"`
}

// SightConfig describes the line pointing from the player to the cursor.
type SightConfig struct {
	Length      float64 `yaml:"length"`
	Thickness   float64 `yaml:"thickness"`
	GrowSeconds float64 `yaml:"grow_seconds"` // ease-in time of the line on spawn
	Color       Color   `yaml:"color"`
}

type LevelConfig struct {
	Path     string `yaml:"path"` // inside the embedded assets
	CellSize int    `yaml:"cell_size"`
}

type DebugConfig struct {
	SkipMenu bool `yaml:"skip_menu"` // Skip menu and go directly to the movement scene
	Overlay  bool `yaml:"overlay"`
}

// TraceConfig enables per-frame CSV traces of the player's kinematics.
type TraceConfig struct {
	Dir string `yaml:"dir"` // empty disables tracing
}

// C is the global configuration, initialised from the embedded defaults.
var C *Config

func init() {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	C = cfg
}

// Init loads path over the defaults and replaces C.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	C = cfg
	return nil
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on unknown controls, unknown policies and unusable magnitudes.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size %vx%v", ErrInvalid, c.Player.Width, c.Player.Height)
	}
	if c.Level.CellSize <= 0 {
		return fmt.Errorf("%w: level cell size %d", ErrInvalid, c.Level.CellSize)
	}
	for name, keys := range c.Controls {
		if _, err := controls.ParseControl(name); err != nil {
			return fmt.Errorf("%w: controls: %w", ErrInvalid, err)
		}
		if len(keys) == 0 {
			return fmt.Errorf("%w: controls: %s has no keys", ErrInvalid, name)
		}
	}
	if _, err := c.Movement(); err != nil {
		return fmt.Errorf("%w: player: %w", ErrInvalid, err)
	}
	return nil
}

// Movement converts the player section into a kinematics config.
func (c *Config) Movement() (kinematics.Config, error) {
	policy, err := kinematics.ParsePolicy(c.Player.Policy)
	if err != nil {
		return kinematics.Config{}, err
	}
	mc := kinematics.Config{
		Acceleration:     c.Player.Acceleration,
		StopDeceleration: c.Player.StopDeceleration,
		WalkMaxVelocity:  c.Player.WalkMaxVelocity,
		RunMaxVelocity:   c.Player.RunMaxVelocity,
		StopEpsilon:      c.Player.StopEpsilon,
		Policy:           policy,
	}
	if err := mc.Validate(); err != nil {
		return kinematics.Config{}, err
	}
	return mc, nil
}

// WriteYAML saves the configuration as YAML.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"decoherence/grid"
)

const (
	// --- Screen & Scale ---
	DefaultScreenWidth  = 1280
	DefaultScreenHeight = 720
	BasePixelsPerMeter  = 100.0 // 100 px = 1 m at zoom 1.0

	// --- Zoom ---
	DefaultZoom = 0.5 // start 2x more zoomed out than base
	MinZoom     = 0.15
	MaxZoom     = 2.0
	ZoomStep    = 1.1 // multiplier per scroll notch

	// --- Grid ---
	HexCircumradius = 0.5 // meters, center to vertex
	SquareSide      = 1.0 // meters

	// --- Player ---
	PlayerLength = 0.25 // meters, front to back
	PlayerWidth  = 0.5  // meters, side to side
	PlayerSpeed  = 1.5  // meters per second
)

var (
	// --- World colors ---
	ColorBackground   = color.RGBA{20, 20, 30, 255}
	ColorTileFill     = color.RGBA{40, 45, 55, 255}
	ColorTileBorder   = color.RGBA{70, 80, 100, 255}
	ColorPlayer       = color.RGBA{60, 140, 60, 255}
	ColorPlayerBorder = color.RGBA{80, 180, 80, 255}
	ColorPlayerFront  = color.RGBA{255, 255, 255, 255}

	// --- HUD palette, retro cyan/orange ---
	ColorCyan          = color.RGBA{0, 255, 255, 255}
	ColorCyanDim       = color.RGBA{0, 128, 128, 255}
	ColorCyanDark      = color.RGBA{0, 64, 64, 255}
	ColorOrange        = color.RGBA{255, 140, 0, 255}
	ColorOrangeDim     = color.RGBA{128, 70, 0, 255}
	ColorPurple        = color.RGBA{180, 100, 255, 255}
	ColorPurpleDim     = color.RGBA{90, 50, 128, 255}
	ColorGreen         = color.RGBA{0, 255, 100, 255}
	ColorPanelBG       = color.RGBA{8, 8, 16, 255}
	ColorSlotBG        = color.RGBA{14, 16, 28, 255}
	ColorSlotBGPressed = color.RGBA{20, 24, 40, 255}
)

// Config is the optional yaml configuration. Every field has a compiled-in
// default; a config file only needs to name what it changes.
type Config struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	// Grid selects the tile layout: "hex" or "square".
	Grid       string  `yaml:"grid"`
	HexRadius  float64 `yaml:"hex_radius"`
	SquareSide float64 `yaml:"square_side"`

	PlayerLength float64 `yaml:"player_length"`
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerSpeed  float64 `yaml:"player_speed"`

	BasePPM  float64 `yaml:"base_ppm"`
	Zoom     float64 `yaml:"zoom"`
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`

	// Actions binds action bar slot labels ("1".."=", "!".."+") to
	// Starlark snippets run when the slot is activated.
	Actions map[string]string `yaml:"actions"`
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		Grid:         "hex",
		HexRadius:    HexCircumradius,
		SquareSide:   SquareSide,
		PlayerLength: PlayerLength,
		PlayerWidth:  PlayerWidth,
		PlayerSpeed:  PlayerSpeed,
		BasePPM:      BasePixelsPerMeter,
		Zoom:         DefaultZoom,
		MinZoom:      MinZoom,
		MaxZoom:      MaxZoom,
		ZoomStep:     ZoomStep,
	}
}

// LoadConfig reads a yaml config and overlays it on the defaults. A
// missing file is not an error: the defaults are enough to run.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Grid != "hex" && c.Grid != "square" {
		return fmt.Errorf("unknown grid variant %q (want hex or square)", c.Grid)
	}
	if c.BasePPM <= 0 || c.MinZoom <= 0 || c.MaxZoom < c.MinZoom {
		return fmt.Errorf("zoom settings must satisfy 0 < min_zoom <= max_zoom and base_ppm > 0")
	}
	if c.ZoomStep <= 1 {
		return fmt.Errorf("zoom_step must be > 1")
	}
	return nil
}

// NewGrid builds the configured tile layout.
func (c Config) NewGrid() (grid.Grid, error) {
	switch c.Grid {
	case "hex":
		return grid.NewHexGrid(c.HexRadius), nil
	case "square":
		return grid.NewSquareGrid(c.SquareSide), nil
	}
	return nil, fmt.Errorf("unknown grid variant %q (want hex or square)", c.Grid)
}

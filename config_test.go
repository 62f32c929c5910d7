package main

import (
	"os"
	"path/filepath"
	"testing"

	"decoherence/grid"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config should not be an error: %v", err)
	}
	if cfg.ScreenWidth != 1280 || cfg.ScreenHeight != 720 {
		t.Errorf("screen defaults = %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.Grid != "hex" || cfg.HexRadius != 0.5 {
		t.Errorf("grid defaults = %q radius %v", cfg.Grid, cfg.HexRadius)
	}
	if cfg.Zoom != 0.5 || cfg.MinZoom != 0.15 || cfg.MaxZoom != 2.0 {
		t.Errorf("zoom defaults = %v [%v, %v]", cfg.Zoom, cfg.MinZoom, cfg.MaxZoom)
	}
	if cfg.PlayerSpeed != 1.5 {
		t.Errorf("player speed default = %v", cfg.PlayerSpeed)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "grid: square\nzoom: 1.0\nactions:\n  \"1\": \"health = 0.5\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Grid != "square" {
		t.Errorf("grid = %q, want square", cfg.Grid)
	}
	if cfg.Zoom != 1.0 {
		t.Errorf("zoom = %v, want 1.0", cfg.Zoom)
	}
	// Fields the file does not name keep their defaults.
	if cfg.ScreenWidth != 1280 || cfg.PlayerSpeed != 1.5 {
		t.Errorf("unnamed fields lost their defaults: %dx, speed %v", cfg.ScreenWidth, cfg.PlayerSpeed)
	}
	if cfg.Actions["1"] != "health = 0.5" {
		t.Errorf("action binding = %q", cfg.Actions["1"])
	}
}

func TestLoadConfigRejectsUnknownGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("grid: triangles\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for an unknown grid variant")
	}
}

func TestNewGridVariants(t *testing.T) {
	cfg := DefaultConfig()

	g, err := cfg.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(*grid.HexGrid); !ok {
		t.Errorf("default grid is %T, want *grid.HexGrid", g)
	}

	cfg.Grid = "square"
	g, err = cfg.NewGrid()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(*grid.SquareGrid); !ok {
		t.Errorf("square grid is %T, want *grid.SquareGrid", g)
	}

	cfg.Grid = "octagon"
	if _, err := cfg.NewGrid(); err == nil {
		t.Error("expected an error for an unknown variant")
	}
}

package camera

import (
	"math"
	"testing"

	"decoherence/geom"
)

func TestFollowHardLocks(t *testing.T) {
	c := New(100, 0.5, 0.15, 2.0)
	c.Follow(geom.Vec2{X: 7.5, Y: -3.25})
	if c.Pos != (geom.Vec2{X: 7.5, Y: -3.25}) {
		t.Errorf("camera at %v after follow", c.Pos)
	}
}

func TestPPM(t *testing.T) {
	c := New(100, 0.5, 0.15, 2.0)
	if c.PPM() != 50 {
		t.Errorf("PPM = %v, want 50", c.PPM())
	}
}

func TestZoomInClamped(t *testing.T) {
	c := New(100, 0.5, 0.15, 2.0)
	for i := 0; i < 100; i++ {
		c.ZoomBy(1.1)
		if c.Zoom > 2.0 {
			t.Fatalf("zoom escaped the upper bound: %v", c.Zoom)
		}
	}
	if c.Zoom != 2.0 {
		t.Errorf("zoom settled at %v, want 2.0", c.Zoom)
	}
}

func TestZoomOutClamped(t *testing.T) {
	c := New(100, 0.5, 0.15, 2.0)
	for i := 0; i < 100; i++ {
		c.ZoomBy(1 / 1.1)
		if c.Zoom < 0.15 {
			t.Fatalf("zoom escaped the lower bound: %v", c.Zoom)
		}
	}
	if c.Zoom != 0.15 {
		t.Errorf("zoom settled at %v, want 0.15", c.Zoom)
	}
}

func TestNewClampsInitialZoom(t *testing.T) {
	if c := New(100, 99, 0.15, 2.0); c.Zoom != 2.0 {
		t.Errorf("initial zoom %v not clamped to 2.0", c.Zoom)
	}
	if c := New(100, 0.001, 0.15, 2.0); c.Zoom != 0.15 {
		t.Errorf("initial zoom %v not clamped to 0.15", c.Zoom)
	}
}

func TestPPMStaysPositive(t *testing.T) {
	c := New(100, 0.5, 0.15, 2.0)
	for i := 0; i < 1000; i++ {
		c.ZoomBy(0.5)
	}
	if c.PPM() <= 0 || math.IsNaN(c.PPM()) {
		t.Errorf("PPM = %v after heavy zooming out", c.PPM())
	}
}

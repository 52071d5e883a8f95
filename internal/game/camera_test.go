package game

import (
	"math"
	"testing"
)

func TestCameraEasesTowardPlayer(t *testing.T) {
	c := NewCamera(800, 0.1)

	// The camera frames the player a third of the way across the view.
	target := 1000 - 800.0/3
	c.Update(1000)
	if math.Abs(c.X-target*0.1) > 1e-9 {
		t.Errorf("first step X=%v, want %v", c.X, target*0.1)
	}

	// The gap shrinks every frame and closes within a few seconds.
	prevGap := math.Abs(target - c.X)
	for i := 0; i < 300; i++ {
		c.Update(1000)
		gap := math.Abs(target - c.X)
		if gap > prevGap {
			t.Fatalf("frame %d: gap grew from %v to %v", i, prevGap, gap)
		}
		prevGap = gap
	}
	if prevGap > 1 {
		t.Errorf("camera still %v short of the target after 300 frames", prevGap)
	}
}

func TestCameraClampsAtLevelStart(t *testing.T) {
	c := NewCamera(800, 0.1)

	// Near the spawn the target is negative; the camera pins to zero.
	for i := 0; i < 50; i++ {
		c.Update(100)
		if c.X != 0 {
			t.Fatalf("frame %d: camera X=%v, want pinned at 0", i, c.X)
		}
	}

	// Scrolled out and walking back, it eases down without going negative.
	c.X = 40
	c.Update(100)
	if c.X >= 40 {
		t.Errorf("camera X=%v, want easing back toward the start", c.X)
	}
	if c.X < 0 {
		t.Errorf("camera X=%v, went past the level start", c.X)
	}
}

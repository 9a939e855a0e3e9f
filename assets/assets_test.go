package assets

import (
	"testing"
)

func TestLevels(t *testing.T) {
	names, err := Levels()
	if err != nil {
		t.Fatalf("Levels() error = %v", err)
	}
	found := false
	for _, n := range names {
		if n == DefaultLevel {
			found = true
		}
	}
	if !found {
		t.Errorf("Levels() = %v, missing %s", names, DefaultLevel)
	}
}

func TestLoadDefaultLevel(t *testing.T) {
	level, err := LoadLevel(DefaultLevel)
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	if level.Width != 800 || level.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", level.Width, level.Height)
	}
	if len(level.Walls) != 7 {
		t.Errorf("walls = %d, want 7", len(level.Walls))
	}
	if level.PlayerSpawn == nil {
		t.Fatal("PlayerSpawn = nil, want the spawn object")
	}
	if level.PlayerSpawn.X != 400 || level.PlayerSpawn.Y != 300 {
		t.Errorf("PlayerSpawn = %+v, want (400, 300)", *level.PlayerSpawn)
	}

	top := level.Walls[0]
	if top != (Rect{X: 0, Y: 0, Width: 800, Height: 20}) {
		t.Errorf("first wall = %+v, want the top border", top)
	}
}

func TestLoadMissingLevel(t *testing.T) {
	if _, err := LoadLevel("levels/missing.tmx"); err == nil {
		t.Error("LoadLevel() error = nil, want failure for a missing file")
	}
}

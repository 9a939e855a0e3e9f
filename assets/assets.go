package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the arena used by the movement scene.
const DefaultLevel = "levels/movement.tmx"

// Rect is an axis-aligned area in world pixels.
type Rect struct {
	X, Y, Width, Height float64
}

type Level struct {
	Name       string
	Width      int // pixels
	Height     int
	TileWidth  int
	TileHeight int
	Walls      []Rect
	// PlayerSpawn is the centre of the player at start, nil when the map
	// does not define one.
	PlayerSpawn *math.Vec2
}

// Levels lists the embedded .tmx files.
func Levels() ([]string, error) {
	entries, err := fs.ReadDir(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("reading levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, path.Join("levels", entry.Name()))
		}
	}
	return names, nil
}

// LoadLevel parses an embedded Tiled map. Rectangles in the "Walls" object
// group become walls; the first object in "PlayerSpawn" is the spawn point.
func LoadLevel(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("loading level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:       levelPath,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				level.Walls = append(level.Walls, Rect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 && level.PlayerSpawn == nil {
				o := og.Objects[0]
				level.PlayerSpawn = &math.Vec2{X: o.X, Y: o.Y}
			}
		}
	}

	return level, nil
}

func MustLoadLevel(levelPath string) *Level {
	level, err := LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

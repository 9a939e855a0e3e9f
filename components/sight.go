package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SightData is a fixed-length line anchored at its owner and rotated toward
// the pointer.
type SightData struct {
	Origin    math.Vec2
	Angle     float64 // radians, 0 faces +x
	Length    float64 // current length, grows to MaxLength
	MaxLength float64
	Grow      *gween.Tween // nil once the line is fully extended
}

var Sight = donburi.NewComponentType[SightData]()

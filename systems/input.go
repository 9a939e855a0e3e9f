package systems

import (
	"fmt"

	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/controls"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for held keys to avoid allocations
var pressedKeys []ebiten.Key

// UpdateInput polls the keyboard and pointer into every Controls component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	pressedKeys = inpututil.AppendPressedKeys(pressedKeys[:0])
	cx, cy := ebiten.CursorPosition()

	components.Controls.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Controls.Get(e)
		c.Update(pressedKeys)
		c.Pointer = math.Vec2{X: float64(cx), Y: float64(cy)}
	})
}

// BuildScheme resolves control bindings written as ebiten key names
// ("A", "ShiftLeft", "Space").
func BuildScheme(bindings map[string][]string) (*controls.Scheme[ebiten.Key], error) {
	keys := make(map[string][]ebiten.Key, len(bindings))
	for name, keyNames := range bindings {
		for _, keyName := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("control %s: key %q: %w", name, keyName, err)
			}
			keys[name] = append(keys[name], k)
		}
	}
	return controls.NewScheme(keys)
}

// MustBuildScheme is like BuildScheme but panics on error.
func MustBuildScheme(bindings map[string][]string) *controls.Scheme[ebiten.Key] {
	s, err := BuildScheme(bindings)
	if err != nil {
		panic(err)
	}
	return s
}

package systems

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/fonts"
	"github.com/automoto/topdown/kinematics"
	"github.com/automoto/topdown/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	hudColor   = color.RGBA{20, 20, 20, 255}
	hudPadding = 28
	hudLine    = 16
)

// DrawDebug outlines every collision object and prints the player's
// kinematics when the F1 overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{255, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	mv := components.Movement.Get(player)
	obj := components.Object.Get(player)
	ctrl := components.Controls.Get(player)

	held := make([]string, 0, len(ctrl.History()))
	for _, k := range ctrl.History() {
		held = append(held, k.String())
	}

	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("policy %s (F2)", settings.Policy),
		fmt.Sprintf("pos %.1f, %.1f", obj.X, obj.Y),
		fmt.Sprintf("vel %.1f, %.1f  |v| %.1f / %.0f", mv.Velocity.X, mv.Velocity.Y,
			math.Hypot(mv.Velocity.X, mv.Velocity.Y), kinematics.MaxVelocity(mv.Input, mv.Config)),
		fmt.Sprintf("acc %.1f, %.1f", mv.Acceleration.X, mv.Acceleration.Y),
		fmt.Sprintf("facing %s %s", orDash(string(mv.Facing.X)), orDash(string(mv.Facing.Y))),
		fmt.Sprintf("held [%s]", strings.Join(held, " ")),
	}
	if e := components.Player.Get(player).Sight; e != nil && e.Valid() {
		lines = append(lines, fmt.Sprintf("sight %.1f°", components.Sight.Get(e).Angle*180/math.Pi))
	}

	face := fonts.Debug.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudPadding, hudPadding+hudLine*(i+1), hudColor)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

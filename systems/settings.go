package systems

import (
	"log/slog"

	"github.com/automoto/topdown/components"
	cfg "github.com/automoto/topdown/config"
	"github.com/automoto/topdown/kinematics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the sandbox hotkeys: F1 debug overlay, F2
// deceleration policy, F11 fullscreen. Changes are saved immediately.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings.Debug = !settings.Debug
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		settings.Policy = settings.Policy.Next()
		SetPolicy(ecs, settings.Policy)
		slog.Info("deceleration policy changed", "policy", settings.Policy)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// SetPolicy switches every moving body to p.
func SetPolicy(ecs *ecs.ECS, p kinematics.Policy) {
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		components.Movement.Get(e).Config.Policy = p
	})
}

// GetOrCreateSettings returns the singleton Settings component. A new one
// starts from the configuration and then from whatever was saved.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}

	ent := e.World.Entry(e.World.Create(components.Settings))
	settings := components.SettingsData{
		Debug:      cfg.C.Debug.Overlay,
		Fullscreen: ebiten.IsFullscreen(),
		Policy:     kinematics.PolicyTurnaround,
	}
	if mv, err := cfg.C.Movement(); err == nil {
		settings.Policy = mv.Policy
	}
	applySaved(&settings, restored)
	components.Settings.SetValue(ent, settings)

	return components.Settings.Get(ent)
}

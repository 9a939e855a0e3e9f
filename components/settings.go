package components

import (
	"github.com/automoto/topdown/kinematics"
	"github.com/yohamta/donburi"
)

// SettingsData stores the sandbox toggles that survive restarts.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Policy     kinematics.Policy
}

var Settings = donburi.NewComponentType[SettingsData]()

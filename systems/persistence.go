package systems

import (
	"encoding/json"
	"log/slog"

	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/kinematics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsItem = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool   `json:"debug"`
	Fullscreen bool   `json:"fullscreen"`
	Policy     string `json:"policy"`
}

var gdataManager *gdata.Manager

// restored holds the settings read at startup; new scenes start from them.
var restored *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A nil result without error means
// nothing has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsItem)
	if err != nil {
		slog.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		slog.Warn("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		slog.Warn("could not serialize settings", "err", err)
		return err
	}
	if err := gdataManager.SaveItem(settingsItem, data); err != nil {
		slog.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// SaveCurrentSettings stores the live Settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
		Policy:     s.Policy.String(),
	}
	restored = saved
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	restored = saved
	ebiten.SetFullscreen(saved.Fullscreen)
}

// applySaved overlays restored settings on s. An unreadable policy name
// keeps the configured one.
func applySaved(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Debug = saved.Debug
	s.Fullscreen = saved.Fullscreen
	if saved.Policy == "" {
		return
	}
	p, err := kinematics.ParsePolicy(saved.Policy)
	if err != nil {
		slog.Warn("ignoring saved policy", "policy", saved.Policy, "err", err)
		return
	}
	s.Policy = p
}

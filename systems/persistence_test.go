package systems

import (
	"testing"

	"github.com/automoto/topdown/components"
	"github.com/automoto/topdown/kinematics"
)

func TestApplySaved(t *testing.T) {
	configured := components.SettingsData{Policy: kinematics.PolicyTurnaround}

	tests := []struct {
		name  string
		saved *SavedSettings
		want  components.SettingsData
	}{
		{"nothing saved", nil, configured},
		{
			"saved policy wins",
			&SavedSettings{Debug: true, Fullscreen: true, Policy: "coast"},
			components.SettingsData{Debug: true, Fullscreen: true, Policy: kinematics.PolicyCoast},
		},
		{
			"empty policy keeps configured",
			&SavedSettings{Debug: true},
			components.SettingsData{Debug: true, Policy: kinematics.PolicyTurnaround},
		},
		{
			"unreadable policy keeps configured",
			&SavedSettings{Policy: "drift"},
			components.SettingsData{Policy: kinematics.PolicyTurnaround},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := configured
			applySaved(&got, tt.saved)
			if got != tt.want {
				t.Errorf("applySaved() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSaveSettingsWithoutPersistence(t *testing.T) {
	if gdataManager != nil {
		t.Skip("persistence initialised")
	}
	if err := SaveSettings(&SavedSettings{Policy: "coast"}); err != nil {
		t.Errorf("SaveSettings() error = %v, want nil when persistence is unavailable", err)
	}
	saved, err := LoadSettings()
	if saved != nil || err != nil {
		t.Errorf("LoadSettings() = %+v, %v, want nil, nil", saved, err)
	}
}

package scenes

import (
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"github.com/automoto/topdown/systems"
	"github.com/automoto/topdown/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	next         func()
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.refreshHint()
	ms.menuUI.Update()

	if ms.next != nil {
		ms.next()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Hotkeys stay live on the menu so F11 and F2 behave the same everywhere
	ms.ecs.AddSystem(systems.UpdateSettings)

	ms.menuUI = ui.NewMenuUI("Top-down movement", []ui.MenuEntry{
		{Label: "Movement test", OnSelect: func() {
			ms.next = func() {
				slog.Info("scene change", "scene", "movement")
				ms.sceneChanger.ChangeScene(NewMovementScene(ms.sceneChanger))
			}
		}},
		{Label: "Quit", OnSelect: func() {
			ms.next = ms.sceneChanger.Quit
		}},
	})
}

func (ms *MenuScene) refreshHint() {
	settings := systems.GetOrCreateSettings(ms.ecs)
	ms.menuUI.SetHint(fmt.Sprintf("policy: %s   F1 debug  F2 policy  F11 fullscreen", settings.Policy))
}

package scenes

import (
	"log/slog"
	"sync"

	"github.com/automoto/topdown/assets"
	"github.com/automoto/topdown/components"
	cfg "github.com/automoto/topdown/config"
	"github.com/automoto/topdown/systems"
	"github.com/automoto/topdown/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// MovementScene is the sandbox arena: one player, walls, a sight line.
type MovementScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewMovementScene(sc SceneChanger) *MovementScene {
	return &MovementScene{sceneChanger: sc}
}

func (ms *MovementScene) Update() {
	ms.once.Do(ms.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		systems.CloseTrace(ms.ecs)
		slog.Info("scene change", "scene", "menu")
		ms.sceneChanger.ChangeScene(NewMenuScene(ms.sceneChanger))
		return
	}

	ms.ecs.Update()
}

func (ms *MovementScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.C.Screen.Background.ToRGBA())

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MovementScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: input, pre-update, post-update, then integration
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateKinematics)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateSight)
	ecs.AddSystem(systems.UpdateTrace)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawSight)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ms.ecs = ecs

	settings := systems.GetOrCreateSettings(ecs)

	level := factory.CreateLevel(ecs, assets.MustLoadLevel(cfg.C.Level.Path))
	levelData := components.Level.Get(level).CurrentLevel

	factory.CreateSpace(ecs, levelData.Width, levelData.Height, cfg.C.Level.CellSize)
	for _, wall := range levelData.Walls {
		factory.CreateWall(ecs, wall)
	}

	spawn := math.Vec2{X: float64(cfg.C.Screen.Width) / 2, Y: float64(cfg.C.Screen.Height) / 2}
	if levelData.PlayerSpawn != nil {
		spawn = *levelData.PlayerSpawn
	}

	movement, err := cfg.C.Movement()
	if err != nil {
		panic(err)
	}
	movement.Policy = settings.Policy

	factory.CreatePlayer(ecs, spawn, movement, systems.MustBuildScheme(cfg.C.Controls))

	if _, err := factory.CreateTrace(ecs, cfg.C.Trace.Dir); err != nil {
		slog.Warn("tracing disabled", "dir", cfg.C.Trace.Dir, "err", err)
	}

	slog.Info("movement scene ready",
		"level", levelData.Name,
		"walls", len(levelData.Walls),
		"policy", movement.Policy,
	)
}

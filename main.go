package main

import (
	"errors"
	"flag"
	"image"
	"log/slog"
	"os"

	"github.com/automoto/topdown/config"
	"github.com/automoto/topdown/fonts"
	"github.com/automoto/topdown/scenes"
	"github.com/automoto/topdown/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "topdown"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.C.Debug.SkipMenu {
		g.scene = scenes.NewMovementScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Screen.Width, config.C.Screen.Height)
	return config.C.Screen.Width, config.C.Screen.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file merged over the built-in defaults")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := config.Init(*configPath); err != nil {
		slog.Error("loading config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	if *configPath != "" {
		slog.Info("config loaded", "path", *configPath)
	}
	if _, err := systems.BuildScheme(config.C.Controls); err != nil {
		slog.Error("invalid controls", "err", err)
		os.Exit(1)
	}

	if err := fonts.LoadDefaults(); err != nil {
		slog.Error("loading fonts", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.C.Screen.Width, config.C.Screen.Height)
	ebiten.SetWindowTitle(config.C.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err != nil {
		slog.Warn("could not initialize persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "err", err)
		os.Exit(1)
	}
}

package game

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/minigames/client/flow"
	"github.com/cbodonnell/minigames/client/input"
	"github.com/cbodonnell/minigames/client/scenes"
	"github.com/cbodonnell/minigames/client/ui"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// seed seeds every game scene. A time based seed is used when 0.
	seed uint64
	// recordDir is where game scenes write their recordings.
	recordDir string
	// mode is the current game mode.
	mode flow.GameMode
	// pendingMode is a mode change requested during the current update.
	pendingMode *flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type NewGameOptions struct {
	Debug     bool
	Seed      uint64
	RecordDir string
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:     opts.Debug,
		seed:      opts.Seed,
		recordDir: opts.RecordDir,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnSelect: func(mode flow.GameMode) error {
			if mode != flow.GameModeZipRun && mode != flow.GameModeStackTower {
				return &ui.ActionableError{Message: fmt.Sprintf("%s is not a game", mode)}
			}
			// applied after the menu finishes updating
			g.pendingMode = &mode
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = flow.GameModeMenu
	return nil
}

func (g *Game) loadZipRun() error {
	scene, err := scenes.NewZipRunScene(scenes.NewZipRunSceneOptions{
		Seed:      g.seed,
		RecordDir: g.recordDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create zip run scene: %v", err)
	}
	if err := g.SetScene(scene); err != nil {
		return fmt.Errorf("failed to set zip run scene: %v", err)
	}
	g.mode = flow.GameModeZipRun
	return nil
}

func (g *Game) loadStackTower() error {
	scene, err := scenes.NewStackTowerScene(scenes.NewStackTowerSceneOptions{
		Seed:      g.seed,
		RecordDir: g.recordDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create stack tower scene: %v", err)
	}
	if err := g.SetScene(scene); err != nil {
		return fmt.Errorf("failed to set stack tower scene: %v", err)
	}
	g.mode = flow.GameModeStackTower
	return nil
}

func (g *Game) loadError(msg string) error {
	scene, err := scenes.NewErrorScene(msg, DefaultScreenWidth, DefaultScreenHeight)
	if err != nil {
		return fmt.Errorf("failed to create error scene: %v", err)
	}
	if err := g.SetScene(scene); err != nil {
		return fmt.Errorf("failed to set error scene: %v", err)
	}
	g.mode = flow.GameModeError
	return nil
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		log.Error("Scene %s failed: %v", g.mode, err)
		if err := g.loadError("Something went wrong"); err != nil {
			return fmt.Errorf("failed to load error scene: %v", err)
		}
		return nil
	}

	if err := g.applyPendingMode(); err != nil {
		return fmt.Errorf("failed to change game mode: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case flow.GameModeZipRun, flow.GameModeStackTower, flow.GameModeError:
		if input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}
	return nil
}

func (g *Game) applyPendingMode() error {
	if g.pendingMode == nil {
		return nil
	}
	mode := *g.pendingMode
	g.pendingMode = nil

	log.Info("Switching from %s to %s", g.mode, mode)
	switch mode {
	case flow.GameModeMenu:
		return g.loadMenu()
	case flow.GameModeZipRun:
		return g.loadZipRun()
	case flow.GameModeStackTower:
		return g.loadStackTower()
	}
	return fmt.Errorf("unknown game mode: %s", mode)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	stats, ok := g.scene.(scenes.DebugStats)
	if !ok {
		return
	}
	for i, line := range stats.DebugStats() {
		ebitenutil.DebugPrint(screen, strings.Repeat("\n", 4+i)+"   "+line)
	}
}

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}

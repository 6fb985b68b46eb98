package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/minigames/client/fonts"
	"github.com/cbodonnell/minigames/client/input"
	"github.com/cbodonnell/minigames/client/objects"
	"github.com/cbodonnell/minigames/pkg/game/stacktower"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/cbodonnell/minigames/pkg/random"
	"github.com/cbodonnell/minigames/pkg/replay"
)

const (
	// towerX centers the default 320 wide surface on the 640 wide screen.
	towerX = 160
	towerY = 0
)

type StackTowerScene struct {
	*BaseScene

	engine  *stacktower.Engine
	session *session
	toasts  int

	statusText *objects.TextObject
	scoreText  *objects.TextObject
}

type NewStackTowerSceneOptions struct {
	// Seed identifies the recording. Stack Tower itself draws no random numbers.
	Seed uint64
	// RecordDir is where the game recording is written when the scene is destroyed.
	// Recording is disabled when empty.
	RecordDir string
}

var _ Scene = &StackTowerScene{}
var _ DebugStats = &StackTowerScene{}

func NewStackTowerScene(opts NewStackTowerSceneOptions) (Scene, error) {
	engine, err := stacktower.NewEngine(stacktower.NewEngineOptions{
		Surface: stacktower.DefaultSurface(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stack tower engine: %v", err)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = random.SeedFromTime()
	}

	return &StackTowerScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("stacktower-root")),
		engine:    engine,
		session:   newSession(replay.GameStackTower, seed, opts.RecordDir),
	}, nil
}

func (s *StackTowerScene) Init() error {
	s.statusText = objects.NewTextObject("status", objects.NewTextObjectOptions{
		X:        320,
		Y:        40,
		Face:     fonts.TTFSmallFont,
		Centered: true,
		ZIndex:   5,
	})
	s.scoreText = objects.NewTextObject("score", objects.NewTextObjectOptions{
		X:        320,
		Y:        70,
		Face:     fonts.TTFNormalFont,
		Color:    objects.ColorMuted,
		Centered: true,
		ZIndex:   5,
	})

	if err := s.AddObjects(
		objects.NewRectObject("background", objects.NewRectObjectOptions{
			W:      640,
			H:      480,
			Color:  objects.ColorBackground,
			ZIndex: -1,
		}),
		objects.NewTowerObject("tower", s.engine, objects.NewTowerObjectOptions{
			X: towerX,
			Y: towerY,
		}),
		s.statusText,
		s.scoreText,
	); err != nil {
		return err
	}
	s.refreshText()

	return s.BaseScene.Init()
}

func (s *StackTowerScene) Update() error {
	timestamp := s.session.tick()

	if input.IsResetJustPressed() {
		s.engine.Reset()
		s.session.record(replay.InputReset, timestamp)
	} else if input.IsPositiveJustPressed() {
		if err := s.engine.Toggle(); err != nil {
			return fmt.Errorf("failed to toggle stack tower: %v", err)
		}
		s.session.record(replay.InputToggle, timestamp)
	}

	if s.engine.Playing() {
		s.engine.OnFrame()
		s.session.record(replay.InputFrame, timestamp)
	}

	if err := s.processEngineEvents(); err != nil {
		return fmt.Errorf("failed to process engine events: %v", err)
	}
	s.refreshText()

	return s.BaseScene.Update()
}

func (s *StackTowerScene) processEngineEvents() error {
	events, err := s.engine.Events().ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read engine events: %v", err)
	}
	for _, item := range events {
		switch event := item.(type) {
		case *stacktower.GameStartedEvent:
			log.Debug("Tower started with base at x=%.0f", event.Base.X)
		case *stacktower.BlockPlacedEvent:
			log.Trace("Block placed: score=%d width=%.2f", event.Score, event.Block.Width)
			blocks := s.engine.Blocks()
			if n := len(blocks); n >= 2 && event.Block.Width == blocks[n-2].Width {
				if err := s.addToast("Perfect!", objects.ColorSuccess); err != nil {
					return err
				}
			}
		case *stacktower.ToppledEvent:
			log.Debug("Tower toppled at score %d (best %d)", event.Score, event.Best)
			if err := s.addToast("Toppled!", objects.ColorFailure); err != nil {
				return err
			}
		default:
			log.Warn("Unexpected stack tower event %T", item)
		}
	}
	return nil
}

func (s *StackTowerScene) addToast(msg string, clr color.Color) error {
	s.toasts++
	id := fmt.Sprintf("toast-%d", s.toasts)
	return s.Root.AddChild(id, objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   msg,
		X:      320,
		Y:      240,
		Color:  clr,
		Scroll: true,
		TTL:    toastTTL,
		ZIndex: 10,
	}))
}

func (s *StackTowerScene) refreshText() {
	s.statusText.SetText(s.engine.Status())
	s.scoreText.SetText(fmt.Sprintf("Score %d    Best %d", s.engine.Score(), s.engine.Best()))
}

func (s *StackTowerScene) DebugStats() []string {
	return []string{
		fmt.Sprintf("Frames: %d", s.engine.Frames()),
		fmt.Sprintf("Speed: %.2f", s.engine.Speed()),
	}
}

func (s *StackTowerScene) Destroy() error {
	if err := s.session.save(); err != nil {
		log.Error("Failed to save stack tower recording: %v", err)
	}
	return s.BaseScene.Destroy()
}

package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/minigames/client/fonts"
	"github.com/cbodonnell/minigames/client/input"
	"github.com/cbodonnell/minigames/client/objects"
	"github.com/cbodonnell/minigames/pkg/game/ziprun"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/cbodonnell/minigames/pkg/random"
	"github.com/cbodonnell/minigames/pkg/replay"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	trackX      = 70
	trackY      = 220
	trackWidth  = 500
	trackHeight = 24
	toastTTL    = 1500 // ms
)

type ZipRunScene struct {
	*BaseScene

	engine  *ziprun.Engine
	session *session
	hidden  bool
	toasts  int

	statusText  *objects.TextObject
	levelText   *objects.TextObject
	controlText *objects.TextObject
}

type NewZipRunSceneOptions struct {
	// Seed seeds the safe zone placement. A time based seed is used when 0.
	Seed uint64
	// RecordDir is where the run recording is written when the scene is destroyed.
	// Recording is disabled when empty.
	RecordDir string
}

var _ Scene = &ZipRunScene{}
var _ DebugStats = &ZipRunScene{}

func NewZipRunScene(opts NewZipRunSceneOptions) (Scene, error) {
	src := random.NewSource(opts.Seed)
	engine, err := ziprun.NewEngine(ziprun.NewEngineOptions{
		Random: src,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zip run engine: %v", err)
	}
	log.Debug("Zip Run seeded with %d", src.Seed())

	s := &ZipRunScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("ziprun-root")),
		engine:    engine,
		session:   newSession(replay.GameZipRun, src.Seed(), opts.RecordDir),
	}
	return s, nil
}

func (s *ZipRunScene) Init() error {
	s.statusText = objects.NewTextObject("status", objects.NewTextObjectOptions{
		X:        320,
		Y:        150,
		Face:     fonts.TTFNormalFont,
		Centered: true,
	})
	s.levelText = objects.NewTextObject("level", objects.NewTextObjectOptions{
		X:        320,
		Y:        310,
		Face:     fonts.TTFNormalFont,
		Color:    objects.ColorMuted,
		Centered: true,
	})
	s.controlText = objects.NewTextObject("control", objects.NewTextObjectOptions{
		X:        320,
		Y:        380,
		Face:     fonts.TTFNormalFont,
		Color:    objects.ColorSafeZone,
		Centered: true,
	})

	if err := s.AddObjects(
		objects.NewRectObject("background", objects.NewRectObjectOptions{
			W:      640,
			H:      480,
			Color:  objects.ColorBackground,
			ZIndex: -1,
		}),
		objects.NewTextObject("title", objects.NewTextObjectOptions{
			Text:     "Zip Run",
			X:        320,
			Y:        80,
			Face:     fonts.MPlusNormalFont,
			Centered: true,
		}),
		objects.NewTrackObject("track", s.engine, objects.NewTrackObjectOptions{
			X: trackX,
			Y: trackY,
			W: trackWidth,
			H: trackHeight,
		}),
		s.statusText,
		s.levelText,
		s.controlText,
	); err != nil {
		return err
	}
	s.refreshText()

	return s.BaseScene.Init()
}

func (s *ZipRunScene) Update() error {
	timestamp := s.session.tick()

	hidden := !ebiten.IsFocused()
	if hidden != s.hidden {
		s.hidden = hidden
		s.engine.SetHidden(hidden)
		if hidden {
			s.session.record(replay.InputHidden, timestamp)
		} else {
			s.session.record(replay.InputVisible, timestamp)
		}
	}

	if !s.hidden && input.IsPositiveJustPressed() {
		if err := s.engine.Toggle(); err != nil {
			return fmt.Errorf("failed to toggle zip run: %v", err)
		}
		s.session.record(replay.InputToggle, timestamp)
	}

	if s.engine.Active() {
		s.engine.OnFrame(timestamp)
		s.session.record(replay.InputFrame, timestamp)
	}

	if err := s.processEngineEvents(); err != nil {
		return fmt.Errorf("failed to process engine events: %v", err)
	}
	s.refreshText()

	return s.BaseScene.Update()
}

func (s *ZipRunScene) processEngineEvents() error {
	events, err := s.engine.Events().ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read engine events: %v", err)
	}
	for _, item := range events {
		switch event := item.(type) {
		case *ziprun.RunStartedEvent:
			log.Debug("Run %s started at level %d", event.RunID, event.Level)
		case *ziprun.RunStoppedEvent:
			log.Debug("Run %s stopped: success=%t hidden=%t progress=%.2f", event.RunID, event.Success, event.Hidden, event.Progress)
			msg, clr := "Miss!", objects.ColorFailure
			if event.Success {
				msg, clr = fmt.Sprintf("Level %d!", event.Level), objects.ColorSuccess
			}
			if err := s.addToast(msg, clr); err != nil {
				return err
			}
		default:
			log.Warn("Unexpected zip run event %T", item)
		}
	}
	return nil
}

func (s *ZipRunScene) addToast(msg string, clr color.Color) error {
	s.toasts++
	id := fmt.Sprintf("toast-%d", s.toasts)
	return s.Root.AddChild(id, objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   msg,
		X:      trackX + s.engine.Progress()/100*trackWidth,
		Y:      trackY - 16,
		Color:  clr,
		Scroll: true,
		TTL:    toastTTL,
		ZIndex: 10,
	}))
}

func (s *ZipRunScene) refreshText() {
	s.statusText.SetText(s.engine.Status())
	s.levelText.SetText(fmt.Sprintf("Level %d    Best %d", s.engine.Level(), s.engine.Best()))
	s.controlText.SetText(fmt.Sprintf("[ %s ]", s.engine.ControlLabel()))
}

func (s *ZipRunScene) DebugStats() []string {
	start, width := s.engine.SafeZone()
	return []string{
		fmt.Sprintf("Progress: %.2f", s.engine.Progress()),
		fmt.Sprintf("Zone: %.2f-%.2f", start, start+width),
	}
}

func (s *ZipRunScene) Destroy() error {
	if err := s.session.save(); err != nil {
		log.Error("Failed to save zip run recording: %v", err)
	}
	return s.BaseScene.Destroy()
}

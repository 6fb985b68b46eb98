package scenes

import (
	"errors"
	"image/color"

	"github.com/cbodonnell/minigames/client/flow"
	"github.com/cbodonnell/minigames/client/fonts"
	"github.com/cbodonnell/minigames/client/objects"
	"github.com/cbodonnell/minigames/client/ui"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onSelect  func(mode flow.GameMode) error
	ui        *ebitenui.UI
	selectErr string
}

type MenuSceneOptions struct {
	// OnSelect is called when a game button is pressed.
	OnSelect func(mode flow.GameMode) error
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	if opts.OnSelect == nil {
		return nil, errors.New("menu scene requires a select handler")
	}
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onSelect:  opts.OnSelect,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 51, G: 65, B: 85, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 71, G: 85, B: 105, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 30, G: 41, B: 59, A: 255}),
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(objects.ColorBackground)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    120,
				Left:   180,
				Right:  180,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Mini-Games", fonts.MPlusNormalFont, color.White),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	for _, mode := range []flow.GameMode{flow.GameModeZipRun, flow.GameModeStackTower} {
		mode := mode
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
					Stretch:  true,
				}),
			),
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(mode.String(), fontFace, &widget.ButtonTextColor{
				Idle:     color.NRGBA{254, 255, 255, 255},
				Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			}),
			widget.ButtonOpts.TextPadding(widget.Insets{
				Left:   30,
				Right:  30,
				Top:    8,
				Bottom: 8,
			}),
		)
		button.ClickedEvent.AddHandler(func(args interface{}) {
			s.selectMode(mode)
		})
		rootContainer.AddChild(button)
	}

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Space, click or tap to play. Esc returns here.", fonts.TTFSmallFont, objects.ColorMuted),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	if s.selectErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.selectErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		s.selectErr = ""
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) selectMode(mode flow.GameMode) {
	if err := s.onSelect(mode); err != nil {
		log.Error("Failed to start %s: %v", mode, err)
		var actionableErr *ui.ActionableError
		if errors.As(err, &actionableErr) {
			s.selectErr = actionableErr.Message
		} else {
			s.selectErr = "Failed to start the game. Please try again."
		}
		s.renderUI()
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}

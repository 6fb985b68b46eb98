package objects

import (
	"image/color"

	"github.com/cbodonnell/minigames/pkg/game/constants"
	"github.com/cbodonnell/minigames/pkg/game/stacktower"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TowerState is what a TowerObject needs to draw the Stack Tower surface.
type TowerState interface {
	Blocks() []stacktower.Block
	ActiveBlock() (stacktower.Block, bool)
	ViewOffset() float64
	Surface() (width, height float64)
}

// TowerObject draws the tower and the moving block on the engine's surface,
// placed at (X, Y) on the screen.
type TowerObject struct {
	*BaseObject

	state  TowerState
	x, y   float32
	colors map[string]color.RGBA
}

type NewTowerObjectOptions struct {
	// X is the screen x-coordinate of the surface's left edge.
	X float32
	// Y is the screen y-coordinate of the surface's top edge.
	Y float32
	// ZIndex is the z-index of the tower.
	ZIndex int
}

func NewTowerObject(id string, state TowerState, opts NewTowerObjectOptions) *TowerObject {
	return &TowerObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		state:  state,
		x:      opts.X,
		y:      opts.Y,
		colors: make(map[string]color.RGBA),
	}
}

func (o *TowerObject) Draw(screen *ebiten.Image) {
	w, h := o.state.Surface()
	vector.DrawFilledRect(screen, o.x, o.y, float32(w), float32(h), ColorBackground, false)

	offset := o.state.ViewOffset()
	for _, b := range o.state.Blocks() {
		o.drawBlock(screen, b, offset, float32(h))
	}
	if active, ok := o.state.ActiveBlock(); ok {
		o.drawBlock(screen, active, offset, float32(h))
	}
	vector.StrokeRect(screen, o.x, o.y, float32(w), float32(h), 2, ColorTrack, false)
}

func (o *TowerObject) drawBlock(screen *ebiten.Image, b stacktower.Block, offset float64, surfaceHeight float32) {
	y := float32(b.Y + offset)
	bh := float32(constants.StackBlockHeight)
	if y+bh <= 0 || y >= surfaceHeight {
		return
	}
	// clip to the surface
	top := max(y, 0)
	bottom := min(y+bh, surfaceHeight)

	vector.DrawFilledRect(screen, o.x+float32(b.X), o.y+top, float32(b.Width), bottom-top, o.color(b.Color), false)
}

func (o *TowerObject) color(hex string) color.RGBA {
	if clr, ok := o.colors[hex]; ok {
		return clr
	}
	clr, err := ParseHexColor(hex)
	if err != nil {
		log.Warn("Falling back to the indicator color: %v", err)
		clr = ColorIndicator
	}
	o.colors[hex] = clr
	return clr
}

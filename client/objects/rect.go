package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RectObject draws a filled rectangle, optionally with an outline.
type RectObject struct {
	*BaseObject

	x, y    float32
	w, h    float32
	clr     color.Color
	outline color.Color
}

type NewRectObjectOptions struct {
	// X is the x-coordinate of the rectangle.
	X float32
	// Y is the y-coordinate of the rectangle.
	Y float32
	// W is the width of the rectangle.
	W float32
	// H is the height of the rectangle.
	H float32
	// Color is the fill color.
	Color color.Color
	// Outline is the outline color. No outline is drawn when nil.
	Outline color.Color
	// ZIndex is the z-index of the rectangle.
	ZIndex int
}

func NewRectObject(id string, opts NewRectObjectOptions) *RectObject {
	return &RectObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		x:       opts.X,
		y:       opts.Y,
		w:       opts.W,
		h:       opts.H,
		clr:     opts.Color,
		outline: opts.Outline,
	}
}

func (o *RectObject) Draw(screen *ebiten.Image) {
	if o.clr != nil {
		vector.DrawFilledRect(screen, o.x, o.y, o.w, o.h, o.clr, false)
	}
	if o.outline != nil {
		vector.StrokeRect(screen, o.x, o.y, o.w, o.h, 2, o.outline, false)
	}
}

package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextObject draws a single line of text. When Centered is set the text is
// centered horizontally on X.
type TextObject struct {
	*BaseObject

	text     string
	x        float64
	y        float64
	face     font.Face
	color    color.Color
	centered bool
}

type NewTextObjectOptions struct {
	// Text is the text to display.
	Text string
	// X is the x-coordinate of the text.
	X float64
	// Y is the y-coordinate of the text baseline.
	Y float64
	// Face is the font face. Required.
	Face font.Face
	// Color is the color of the text. Defaults to white.
	Color color.Color
	// Centered centers the text on X.
	Centered bool
	// ZIndex is the z-index of the text.
	ZIndex int
}

func NewTextObject(id string, opts NewTextObjectOptions) *TextObject {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		text:     opts.Text,
		x:        opts.X,
		y:        opts.Y,
		face:     opts.Face,
		color:    clr,
		centered: opts.Centered,
	}
}

func (o *TextObject) SetText(t string) {
	o.text = t
}

func (o *TextObject) Text() string {
	return o.text
}

func (o *TextObject) SetColor(clr color.Color) {
	o.color = clr
}

func (o *TextObject) Draw(screen *ebiten.Image) {
	if o.text == "" || o.face == nil {
		return
	}
	x := o.x
	if o.centered {
		bounds, _ := font.BoundString(o.face, o.text)
		x -= float64((bounds.Max.X - bounds.Min.X).Ceil()) / 2
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, o.y)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, o.text, o.face, op)
}

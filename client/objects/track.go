package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TrackState is what a TrackObject needs to draw the Zip Run track.
type TrackState interface {
	Progress() float64
	SafeZone() (start, width float64)
}

// TrackObject draws the 0 to 100 track, its safe zone and the indicator.
type TrackObject struct {
	*BaseObject

	state TrackState
	x, y  float32
	w, h  float32
}

type NewTrackObjectOptions struct {
	// X is the x-coordinate of the left end of the track.
	X float32
	// Y is the y-coordinate of the top of the track.
	Y float32
	// W is the width of the whole track.
	W float32
	// H is the height of the track.
	H float32
	// ZIndex is the z-index of the track.
	ZIndex int
}

func NewTrackObject(id string, state TrackState, opts NewTrackObjectOptions) *TrackObject {
	return &TrackObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		state: state,
		x:     opts.X,
		y:     opts.Y,
		w:     opts.W,
		h:     opts.H,
	}
}

// toScreen maps a track position in [0, 100] to a screen x-coordinate.
func (o *TrackObject) toScreen(position float64) float32 {
	return o.x + float32(position/100)*o.w
}

func (o *TrackObject) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, o.x, o.y, o.w, o.h, ColorTrack, false)

	start, width := o.state.SafeZone()
	zx := o.toScreen(start)
	zw := o.toScreen(start+width) - zx
	vector.DrawFilledRect(screen, zx, o.y, zw, o.h, withAlpha(ColorSafeZone, 0xb0), false)

	ix := o.toScreen(o.state.Progress())
	vector.DrawFilledRect(screen, ix-2, o.y-8, 4, o.h+16, ColorIndicator, false)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// premultiplied
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}

package scenes

import (
	"github.com/cbodonnell/minigames/client/fonts"
	"github.com/cbodonnell/minigames/client/objects"
)

type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

// NewErrorScene shows msg centered on a screen of the given width and height.
func NewErrorScene(msg string, width, height float64) (Scene, error) {
	scene := &ErrorScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("error-root")),
	}
	if err := scene.AddObjects(
		objects.NewTextObject("error-message", objects.NewTextObjectOptions{
			Text:     msg,
			X:        width / 2,
			Y:        height / 2,
			Face:     fonts.TTFLargeFont,
			Color:    objects.ColorFailure,
			Centered: true,
		}),
		objects.NewTextObject("error-hint", objects.NewTextObjectOptions{
			Text:     "Press Esc to return to the menu",
			X:        width / 2,
			Y:        height/2 + 40,
			Face:     fonts.TTFSmallFont,
			Color:    objects.ColorMuted,
			Centered: true,
		}),
	); err != nil {
		return nil, err
	}
	return scene, nil
}

package scenes

import (
	"fmt"

	"github.com/cbodonnell/minigames/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	objects.Lifecycle

	// Scene specific methods
	GetRoot() objects.GameObject
}

// DebugStats is implemented by scenes that add lines to the debug overlay.
type DebugStats interface {
	DebugStats() []string
}

type BaseScene struct {
	Root objects.GameObject
}

func NewBaseScene(root objects.GameObject) *BaseScene {
	return &BaseScene{
		Root: root,
	}
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.Root
}

// AddObjects adds objects to the scene root, keyed by their IDs.
func (s *BaseScene) AddObjects(objs ...objects.GameObject) error {
	for _, obj := range objs {
		if err := s.Root.AddChild(obj.GetID(), obj); err != nil {
			return fmt.Errorf("failed to add %s to scene: %v", obj.GetID(), err)
		}
	}
	return nil
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.Root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.Root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.Root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	objects.DrawTree(s.Root, screen)
}

package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Lifecycle is the set of game flow methods driven by the host loop.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	RemoveFromParent() error
}

// BaseObject implements the tree bookkeeping shared by every GameObject.
// Embedders override the Lifecycle methods they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childObjects
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings inside a SortedZIndexObject, lowest first.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildObjects(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error { return nil }
func (o *BaseObject) Destroy() error { return nil }
func (o *BaseObject) Update() error { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image) {}
func (o *BaseObject) GetID() string { return o.id }
func (o *BaseObject) GetZIndex() int { return o.zIndex }
func (o *BaseObject) GetParent() GameObject { return o.parent }
func (o *BaseObject) SetParent(parent GameObject) { o.parent = parent }

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.List()
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children.idxIDObjects[id]; ok {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object %s has no parent", o.id)
	}
	return o.parent.RemoveChild(o.id)
}

// childObjects keeps children in insertion order with an index by ID.
type childObjects struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildObjects() *childObjects {
	return &childObjects{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (c *childObjects) Add(id string, child GameObject) {
	c.idxIDObjects[id] = child
	c.ordered = append(c.ordered, child)
}

func (c *childObjects) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *childObjects) Remove(id string) {
	child, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, obj := range c.ordered {
		if obj == child {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}

func (c *childObjects) List() []GameObject {
	return c.ordered
}

// InitTree initializes an object and then its children.
func InitTree(o GameObject) error {
	if err := o.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", o.GetID(), err)
	}
	for _, child := range o.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of an object and then the object itself.
func DestroyTree(o GameObject) error {
	for _, child := range append([]GameObject(nil), o.GetChildren()...) {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := o.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %v", o.GetID(), err)
	}
	return nil
}

// UpdateTree updates an object and then its children. Children may remove
// themselves while being updated.
func UpdateTree(o GameObject) error {
	if err := o.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", o.GetID(), err)
	}
	for _, child := range append([]GameObject(nil), o.GetChildren()...) {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws an object and then its children on top of it.
func DrawTree(o GameObject, screen *ebiten.Image) {
	o.Draw(screen)
	for _, child := range o.GetChildren() {
		DrawTree(child, screen)
	}
}

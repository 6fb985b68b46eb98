package objects

import (
	"fmt"
	"slices"
)

// SortedZIndexObject is a GameObject that maintains a sorted list of child objects by z-index.
// Children with the same z-index keep their insertion order.
type SortedZIndexObject struct {
	*BaseObject

	// sorted is a list of child objects sorted by z-index.
	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
		sorted:     make([]GameObject, 0),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)

	i := slices.IndexFunc(o.sorted, func(obj GameObject) bool {
		return obj.GetZIndex() > child.GetZIndex()
	})
	if i < 0 {
		o.sorted = append(o.sorted, child)
	} else {
		o.sorted = slices.Insert(o.sorted, i, child)
	}
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	i := slices.Index(o.sorted, child)
	if i < 0 {
		return fmt.Errorf("child %s not found in sorted list", id)
	}
	o.sorted = slices.Delete(o.sorted, i, i+1)
	return nil
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}

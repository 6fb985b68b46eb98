package stacktower

// Block is a rectangle of the tower in surface coordinates: X grows to the
// right and Y grows downwards, so the base block has the largest Y.
type Block struct {
	X     float64
	Y     float64
	Width float64
	Color string
}

// Right returns the x-coordinate of the right edge.
func (b Block) Right() float64 { return b.X + b.Width }

// Overlap returns the horizontal intersection of b and other. The width is
// zero or negative when they do not intersect.
func (b Block) Overlap(other Block) (start float64, width float64) {
	start = max(b.X, other.X)
	end := min(b.Right(), other.Right())
	return start, end - start
}

// Surface is the draw area the tower lives in.
type Surface struct {
	Width  float64
	Height float64
}

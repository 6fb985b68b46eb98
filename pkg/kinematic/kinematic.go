package kinematic

// This package includes the bounded, one dimensional motion used by the mini-games.

const (
	// BaselineFrameMillis is the frame duration that a per-tick speed is expressed in (~60Hz).
	BaselineFrameMillis float64 = 16.0
)

// Clamp restricts value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FrameStep returns the distance covered in deltaMillis by something moving speed
// units per baseline frame, so motion is independent of the actual frame rate.
func FrameStep(speed float64, deltaMillis float64) float64 {
	return speed * (deltaMillis / BaselineFrameMillis)
}

// Bounce moves position by step along direction (-1 or +1) inside [min, max].
// When a bound is reached the position is clamped to it and the direction
// is pointed back into the range; otherwise the direction is unchanged.
func Bounce(position, direction, step, min, max float64) (float64, float64) {
	position = Clamp(position+direction*step, min, max)
	if position >= max {
		return position, -1
	}
	if position <= min {
		return position, 1
	}
	return position, direction
}

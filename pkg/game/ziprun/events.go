package ziprun

import "github.com/google/uuid"

// RunStartedEvent is emitted when a run begins.
type RunStartedEvent struct {
	RunID        uuid.UUID
	Level        int
	SafeStart    float64
	SafeWidth    float64
	Status       string
	ControlLabel string
}

// RunStoppedEvent is emitted when a run ends, either by the player or by the
// host reporting that the page was hidden.
type RunStoppedEvent struct {
	RunID        uuid.UUID
	Success      bool
	Hidden       bool
	Progress     float64
	Level        int
	Best         int
	Status       string
	ControlLabel string
}

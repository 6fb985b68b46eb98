// Package replay records the inputs of a single mini-game run and plays them
// back on a fresh engine. Engines are deterministic for a given seed, input
// order and frame timestamps, so a replay reproduces the original run exactly.
package replay

import (
	"fmt"

	"github.com/google/uuid"
)

type Game byte

const (
	GameZipRun Game = iota + 1
	GameStackTower
)

func (g Game) String() string {
	switch g {
	case GameZipRun:
		return "ZipRun"
	case GameStackTower:
		return "StackTower"
	}
	return "Unknown"
}

type InputKind byte

const (
	InputFrame InputKind = iota + 1
	InputToggle
	InputStart
	InputStop
	InputDrop
	InputHidden
	InputVisible
	InputReset
)

func (k InputKind) String() string {
	switch k {
	case InputFrame:
		return "Frame"
	case InputToggle:
		return "Toggle"
	case InputStart:
		return "Start"
	case InputStop:
		return "Stop"
	case InputDrop:
		return "Drop"
	case InputHidden:
		return "Hidden"
	case InputVisible:
		return "Visible"
	case InputReset:
		return "Reset"
	}
	return fmt.Sprintf("InputKind(%d)", byte(k))
}

// Input is one host signal delivered to an engine. Timestamp is the frame
// time in milliseconds the signal arrived at.
type Input struct {
	Kind      InputKind
	Timestamp float64
}

// Recording is the full input script of a run.
type Recording struct {
	ID     uuid.UUID
	Game   Game
	Seed   uint64
	Inputs []Input
}

// Recorder appends inputs to a recording as the host delivers them.
type Recorder struct {
	recording *Recording
}

func NewRecorder(game Game, seed uint64) *Recorder {
	return &Recorder{
		recording: &Recording{
			ID:     uuid.New(),
			Game:   game,
			Seed:   seed,
			Inputs: make([]Input, 0, 1024),
		},
	}
}

func (r *Recorder) Record(kind InputKind, timestamp float64) {
	r.recording.Inputs = append(r.recording.Inputs, Input{Kind: kind, Timestamp: timestamp})
}

// Len returns the number of recorded inputs.
func (r *Recorder) Len() int {
	return len(r.recording.Inputs)
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() *Recording {
	return &Recording{
		ID:     r.recording.ID,
		Game:   r.recording.Game,
		Seed:   r.recording.Seed,
		Inputs: append([]Input(nil), r.recording.Inputs...),
	}
}

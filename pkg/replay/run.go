package replay

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/minigames/pkg/game/constants"
	"github.com/cbodonnell/minigames/pkg/game/stacktower"
	"github.com/cbodonnell/minigames/pkg/game/ziprun"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/cbodonnell/minigames/pkg/queue"
	"github.com/cbodonnell/minigames/pkg/random"
)

// ErrUnsupportedInput is returned when a recording holds an input the game does not accept.
var ErrUnsupportedInput = errors.New("unsupported input")

// Result is the outcome of a replay. Exactly one of the snapshots is set.
type Result struct {
	ZipRun     *ziprun.Snapshot
	StackTower *stacktower.Snapshot
	// Events are all engine events, in emission order.
	Events []interface{}
}

// RunOptions contains options for Run.
type RunOptions struct {
	// Surface is the Stack Tower draw surface. The default surface is used when nil.
	Surface *stacktower.Surface
	// Logger defaults to the package level logger.
	Logger *log.Logger
}

// Run replays r on a fresh engine and returns its final state.
func Run(r *Recording, opts RunOptions) (*Result, error) {
	if r == nil {
		return nil, fmt.Errorf("recording is nil")
	}
	if r.Seed == 0 {
		return nil, fmt.Errorf("recording %s has no seed", r.ID)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With(log.Fields{"recording": r.ID.String()})

	switch r.Game {
	case GameZipRun:
		return runZipRun(r, logger)
	case GameStackTower:
		return runStackTower(r, opts.Surface, logger)
	}
	return nil, fmt.Errorf("unknown game: %d", r.Game)
}

func runZipRun(r *Recording, logger *log.Logger) (*Result, error) {
	events := queue.NewInMemoryQueue(constants.EventQueueSize)
	engine, err := ziprun.NewEngine(ziprun.NewEngineOptions{
		Random: random.NewSource(r.Seed),
		Events: events,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zip run engine: %v", err)
	}

	result := &Result{}
	for i, input := range r.Inputs {
		switch input.Kind {
		case InputFrame:
			engine.OnFrame(input.Timestamp)
		case InputToggle:
			err = engine.Toggle()
		case InputStart:
			err = engine.Start()
		case InputStop:
			engine.Stop()
		case InputHidden:
			engine.SetHidden(true)
		case InputVisible:
			engine.SetHidden(false)
		default:
			return nil, fmt.Errorf("input %d (%s) for %s: %w", i, input.Kind, r.Game, ErrUnsupportedInput)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to apply input %d (%s): %w", i, input.Kind, err)
		}
		if err := drainInto(events, result); err != nil {
			return nil, err
		}
	}

	snapshot := engine.Snapshot()
	result.ZipRun = &snapshot
	logger.Debug("Replayed %d inputs: level=%d best=%d", len(r.Inputs), snapshot.Level, snapshot.Best)
	return result, nil
}

func runStackTower(r *Recording, surface *stacktower.Surface, logger *log.Logger) (*Result, error) {
	if surface == nil {
		surface = stacktower.DefaultSurface()
	}
	events := queue.NewInMemoryQueue(constants.EventQueueSize)
	engine, err := stacktower.NewEngine(stacktower.NewEngineOptions{
		Surface: surface,
		Events:  events,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stack tower engine: %v", err)
	}

	result := &Result{}
	for i, input := range r.Inputs {
		switch input.Kind {
		case InputFrame:
			engine.OnFrame()
		case InputToggle:
			err = engine.Toggle()
		case InputStart:
			err = engine.Start()
		case InputDrop:
			engine.Drop()
		case InputReset:
			engine.Reset()
		case InputHidden, InputVisible:
			// Stack Tower keeps running in the background
		default:
			return nil, fmt.Errorf("input %d (%s) for %s: %w", i, input.Kind, r.Game, ErrUnsupportedInput)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to apply input %d (%s): %w", i, input.Kind, err)
		}
		if err := drainInto(events, result); err != nil {
			return nil, err
		}
	}

	snapshot := engine.Snapshot()
	result.StackTower = &snapshot
	logger.Debug("Replayed %d inputs: score=%d best=%d", len(r.Inputs), snapshot.Score, snapshot.Best)
	return result, nil
}

func drainInto(events queue.Queue, result *Result) error {
	pending, err := events.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read engine events: %v", err)
	}
	result.Events = append(result.Events, pending...)
	return nil
}

// Package ziprun implements the Zip Run timing game: an indicator bounces
// along a 0..100 track and the player has to stop it inside a randomly placed
// safe zone. Every success shrinks the zone and speeds the indicator up, a
// miss sends the player back to level 1.
//
// The engine never schedules itself. The host calls OnFrame once per display
// refresh with a monotonically increasing timestamp in milliseconds.
package ziprun

import (
	"errors"
	"fmt"
	"math"

	"github.com/cbodonnell/minigames/pkg/game/constants"
	"github.com/cbodonnell/minigames/pkg/kinematic"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/cbodonnell/minigames/pkg/queue"
	"github.com/cbodonnell/minigames/pkg/random"
	"github.com/google/uuid"
)

// ErrNotInitialized is returned when the engine is missing a collaborator it
// needs to run.
var ErrNotInitialized = errors.New("zip run engine not initialized")

const (
	StatusReady   = "Press start, then stop the runner inside the zone."
	StatusRunning = "Run started. Stop inside the zone!"
	StatusMissed  = "Missed the zone. Back to level 1."

	ControlLabelIdle  = "Start"
	ControlLabelArmed = "Stop"
)

// Engine is the Zip Run simulation. The zero value is not usable; create one
// with NewEngine. An Engine is not safe for concurrent use.
type Engine struct {
	random random.Source
	events queue.Queue
	logger *log.Logger
	runID  uuid.UUID

	active      bool
	progress    float64
	direction   float64
	speed       float64
	level       int
	best        int
	safeStart   float64
	safeWidth   float64
	lastTime    float64
	hasLastTime bool

	status       string
	controlLabel string
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	// Random places the safe zone. Required.
	Random random.Source
	// Events receives the engine events. A bounded in-memory queue is used when nil.
	Events queue.Queue
	// Logger defaults to the package level logger.
	Logger *log.Logger
}

func NewEngine(opts NewEngineOptions) (*Engine, error) {
	if opts.Random == nil {
		return nil, fmt.Errorf("random source is required: %w", ErrNotInitialized)
	}

	events := opts.Events
	if events == nil {
		events = queue.NewInMemoryQueue(constants.EventQueueSize)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	width := SafeWidthForLevel(constants.ZipStartLevel)
	return &Engine{
		random:       opts.Random,
		events:       events,
		logger:       logger.With(log.Fields{"engine": "ziprun"}),
		direction:    1,
		speed:        constants.ZipSpeed,
		level:        constants.ZipStartLevel,
		safeStart:    (constants.ZipMaxProgress - width) / 2,
		safeWidth:    width,
		status:       StatusReady,
		controlLabel: ControlLabelIdle,
	}, nil
}

// SafeWidthForLevel returns the safe zone width used at level.
func SafeWidthForLevel(level int) float64 {
	width := constants.ZipBaseSafeWidth - float64(level-1)*constants.ZipSafeWidthStepPerLevel
	return math.Max(width, constants.ZipMinSafeWidth)
}

// SpeedMultiplierForLevel returns the factor applied to the indicator speed at level.
func SpeedMultiplierForLevel(level int) float64 {
	return math.Min(constants.ZipMaxSpeedMultiplier, 1+float64(level-1)*constants.ZipSpeedStepPerLevel)
}

// Start begins a run. It does nothing if a run is already in progress.
func (e *Engine) Start() error {
	if e.random == nil {
		return ErrNotInitialized
	}
	if e.active {
		return nil
	}

	e.progress = constants.ZipMinProgress
	e.direction = 1
	e.hasLastTime = false
	e.lastTime = 0
	e.placeSafeZone()
	e.active = true
	e.runID = uuid.New()
	e.status = StatusRunning
	e.controlLabel = ControlLabelArmed

	e.logger.Debug("Run %s started at level %d with zone [%.2f, %.2f]", e.runID, e.level, e.safeStart, e.safeStart+e.safeWidth)
	e.emit(&RunStartedEvent{
		RunID:        e.runID,
		Level:        e.level,
		SafeStart:    e.safeStart,
		SafeWidth:    e.safeWidth,
		Status:       e.status,
		ControlLabel: e.controlLabel,
	})
	return nil
}

func (e *Engine) placeSafeZone() {
	e.safeWidth = SafeWidthForLevel(e.level)
	e.safeStart = random.Uniform(e.random, constants.ZipMinProgress, constants.ZipMaxProgress-e.safeWidth)
}

// OnFrame advances the indicator to timestamp (milliseconds). The first frame
// of a run only records the timestamp.
func (e *Engine) OnFrame(timestamp float64) {
	if !e.active {
		return
	}
	if !e.hasLastTime {
		e.lastTime = timestamp
		e.hasLastTime = true
		return
	}

	delta := timestamp - e.lastTime
	e.lastTime = timestamp

	step := kinematic.FrameStep(e.speed, delta) * SpeedMultiplierForLevel(e.level)
	e.progress, e.direction = kinematic.Bounce(e.progress, e.direction, step, constants.ZipMinProgress, constants.ZipMaxProgress)
	e.logger.Trace("Frame at %.2f: progress %.2f direction %.0f", timestamp, e.progress, e.direction)
}

// Stop ends the run and scores it. It does nothing when no run is in progress.
func (e *Engine) Stop() {
	e.stop(false)
}

func (e *Engine) stop(hidden bool) {
	if !e.active {
		return
	}

	success := e.InSafeZone(e.progress)
	if success {
		e.level++
		if e.level-1 > e.best {
			e.best = e.level - 1
		}
		e.status = fmt.Sprintf("Clean stop! Level %d unlocked.", e.level)
	} else {
		e.level = constants.ZipStartLevel
		e.status = StatusMissed
	}
	e.active = false
	e.hasLastTime = false
	e.controlLabel = ControlLabelIdle

	e.logger.Debug("Run %s stopped at %.2f: success=%t hidden=%t level=%d best=%d", e.runID, e.progress, success, hidden, e.level, e.best)
	e.emit(&RunStoppedEvent{
		RunID:        e.runID,
		Success:      success,
		Hidden:       hidden,
		Progress:     e.progress,
		Level:        e.level,
		Best:         e.best,
		Status:       e.status,
		ControlLabel: e.controlLabel,
	})
}

// Toggle starts a run when idle and stops it when running.
func (e *Engine) Toggle() error {
	if e.active {
		e.Stop()
		return nil
	}
	return e.Start()
}

// SetHidden reports a visibility change from the host. Becoming hidden during
// a run stops it, so the indicator cannot drift while nobody is watching.
func (e *Engine) SetHidden(hidden bool) {
	if !hidden || !e.active {
		return
	}
	e.stop(true)
}

// InSafeZone reports whether progress lies inside the current safe zone, bounds included.
func (e *Engine) InSafeZone(progress float64) bool {
	return progress >= e.safeStart && progress <= e.safeStart+e.safeWidth
}

func (e *Engine) emit(event interface{}) {
	if e.events == nil {
		return
	}
	if err := e.events.Enqueue(event); err != nil {
		e.logger.Warn("Failed to enqueue %T: %v", event, err)
	}
}

// Events returns the queue the engine writes its events to.
func (e *Engine) Events() queue.Queue {
	return e.events
}

func (e *Engine) Active() bool {
	return e.active
}

func (e *Engine) Progress() float64 {
	return e.progress
}

func (e *Engine) Direction() float64 {
	return e.direction
}

func (e *Engine) Level() int {
	return e.level
}

func (e *Engine) Best() int {
	return e.best
}

// SafeZone returns the start and width of the current safe zone.
func (e *Engine) SafeZone() (float64, float64) {
	return e.safeStart, e.safeWidth
}

func (e *Engine) Status() string {
	return e.status
}

func (e *Engine) ControlLabel() string {
	return e.controlLabel
}

// Snapshot is a copy of the observable engine state.
type Snapshot struct {
	Active       bool
	Progress     float64
	Direction    float64
	Level        int
	Best         int
	SafeStart    float64
	SafeWidth    float64
	Status       string
	ControlLabel string
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Active:       e.active,
		Progress:     e.progress,
		Direction:    e.direction,
		Level:        e.level,
		Best:         e.best,
		SafeStart:    e.safeStart,
		SafeWidth:    e.safeWidth,
		Status:       e.status,
		ControlLabel: e.controlLabel,
	}
}

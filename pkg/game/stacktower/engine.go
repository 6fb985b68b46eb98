// Package stacktower implements the Stack Tower game: a block slides back and
// forth above the tower and the player drops it. Only the part that overlaps
// the block below stays, so the tower narrows until a drop misses.
//
// Motion is a fixed step per OnFrame call, so the block speed follows the
// rate at which the host calls it.
package stacktower

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/minigames/pkg/game/constants"
	"github.com/cbodonnell/minigames/pkg/kinematic"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/cbodonnell/minigames/pkg/queue"
)

// ErrNotInitialized is returned when the engine has no usable draw surface.
var ErrNotInitialized = errors.New("stack tower engine not initialized")

const (
	StatusReady   = "Press start to stack."
	StatusPlaying = "Tower started. Drop each block onto the stack."
)

// DefaultSurface returns the surface the game is designed for.
func DefaultSurface() *Surface {
	return &Surface{
		Width:  constants.StackSurfaceWidth,
		Height: constants.StackSurfaceHeight,
	}
}

// Engine is the Stack Tower simulation. Create one with NewEngine.
// An Engine is not safe for concurrent use.
type Engine struct {
	surface Surface
	colors  []string
	events  queue.Queue
	logger  *log.Logger

	blocks      []Block
	activeBlock *Block
	direction   float64
	speed       float64
	playing     bool
	score       int
	best        int
	frames      uint64
	status      string
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	// Surface is the draw area. Required.
	Surface *Surface
	// Colors is the block palette. The default palette is used when empty.
	Colors []string
	// Events receives the engine events. A bounded in-memory queue is used when nil.
	Events queue.Queue
	// Logger defaults to the package level logger.
	Logger *log.Logger
}

func NewEngine(opts NewEngineOptions) (*Engine, error) {
	if err := validateSurface(opts.Surface); err != nil {
		return nil, err
	}

	colors := opts.Colors
	if len(colors) == 0 {
		colors = constants.StackPalette
	}
	events := opts.Events
	if events == nil {
		events = queue.NewInMemoryQueue(constants.EventQueueSize)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	e := &Engine{
		surface: *opts.Surface,
		colors:  append([]string(nil), colors...),
		events:  events,
		logger:  logger.With(log.Fields{"engine": "stacktower"}),
	}
	e.Reset()
	return e, nil
}

func validateSurface(surface *Surface) error {
	if surface == nil {
		return fmt.Errorf("draw surface is required: %w", ErrNotInitialized)
	}
	if surface.Width < constants.StackBaseWidth || surface.Height < 2*constants.StackBlockHeight {
		return fmt.Errorf("draw surface %.0fx%.0f is too small: %w", surface.Width, surface.Height, ErrNotInitialized)
	}
	return nil
}

// Reset rebuilds the tower from a single centered base block and leaves the
// game idle. The best score is kept.
func (e *Engine) Reset() {
	color := ""
	if len(e.colors) > 0 {
		color = e.colors[0]
	}
	e.blocks = []Block{{
		X:     (e.surface.Width - constants.StackBaseWidth) / 2,
		Y:     e.surface.Height - constants.StackBlockHeight,
		Width: constants.StackBaseWidth,
		Color: color,
	}}
	e.activeBlock = nil
	e.direction = 1
	e.score = 0
	e.speed = constants.StackStartSpeed
	e.playing = false
	e.status = StatusReady
}

// Start resets the tower and spawns the first moving block. Calling it during
// a game starts over.
func (e *Engine) Start() error {
	if err := validateSurface(&e.surface); err != nil {
		return err
	}

	e.Reset()
	e.playing = true
	e.status = StatusPlaying
	e.SpawnBlock()

	e.logger.Debug("Game started on %.0fx%.0f surface", e.surface.Width, e.surface.Height)
	e.emit(&GameStartedEvent{
		Base:   e.blocks[0],
		Status: e.status,
	})
	return nil
}

// SpawnBlock places a new moving block, as wide as the top of the tower, at
// the left edge one row above the top.
func (e *Engine) SpawnBlock() {
	if len(e.blocks) == 0 || len(e.colors) == 0 {
		return
	}
	top := e.blocks[len(e.blocks)-1]
	e.activeBlock = &Block{
		X:     0,
		Y:     top.Y - constants.StackBlockHeight,
		Width: top.Width,
		Color: e.colors[(len(e.blocks)+1)%len(e.colors)],
	}
	e.direction = 1
}

// OnFrame moves the active block one step and bounces it off the surface edges.
func (e *Engine) OnFrame() {
	if !e.playing || e.activeBlock == nil {
		return
	}
	e.activeBlock.X, e.direction = kinematic.Bounce(e.activeBlock.X, e.direction, e.speed, 0, e.surface.Width-e.activeBlock.Width)
	e.frames++
}

// Drop lands the active block on the tower. A drop that overlaps the top block
// by no more than the miss tolerance topples the tower and ends the game.
func (e *Engine) Drop() {
	if !e.playing || e.activeBlock == nil {
		return
	}

	dropped := *e.activeBlock
	top := e.blocks[len(e.blocks)-1]
	overlapStart, overlapWidth := dropped.Overlap(top)

	if overlapWidth <= constants.StackMissTolerance {
		e.playing = false
		e.activeBlock = nil
		e.status = fmt.Sprintf("Toppled! Final score %d.", e.score)
		e.logger.Debug("Toppled with overlap %.2f at score %d", overlapWidth, e.score)
		e.emit(&ToppledEvent{
			OverlapWidth: overlapWidth,
			Score:        e.score,
			Best:         e.best,
			Status:       e.status,
		})
		return
	}

	placed := Block{
		X:     overlapStart,
		Y:     dropped.Y,
		Width: overlapWidth,
		Color: dropped.Color,
	}
	e.blocks = append(e.blocks, placed)
	e.activeBlock = nil
	e.score++
	if e.score > e.best {
		e.best = e.score
	}
	e.speed = min(e.speed+constants.StackSpeedStep, constants.StackMaxSpeed)
	e.status = fmt.Sprintf("Stacked! Score %d.", e.score)

	e.logger.Debug("Placed block %d at x=%.2f width=%.2f speed=%.2f", e.score, placed.X, placed.Width, e.speed)
	e.emit(&BlockPlacedEvent{
		Block:  placed,
		Score:  e.score,
		Best:   e.best,
		Speed:  e.speed,
		Status: e.status,
	})

	e.SpawnBlock()
}

// Toggle starts a game when idle and drops the active block while playing.
func (e *Engine) Toggle() error {
	if e.playing {
		e.Drop()
		return nil
	}
	return e.Start()
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

func (e *Engine) Playing() bool {
	return e.playing
}

func (e *Engine) Score() int {
	return e.score
}

func (e *Engine) Best() int {
	return e.best
}

func (e *Engine) Speed() float64 {
	return e.speed
}

func (e *Engine) Direction() float64 {
	return e.direction
}

func (e *Engine) Status() string {
	return e.status
}

// Frames returns how many frames moved the active block, i.e. how many
// redraws the engine has requested.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Blocks returns a copy of the tower, bottom first.
func (e *Engine) Blocks() []Block {
	return append([]Block(nil), e.blocks...)
}

// ActiveBlock returns a copy of the moving block, if there is one.
func (e *Engine) ActiveBlock() (Block, bool) {
	if e.activeBlock == nil {
		return Block{}, false
	}
	return *e.activeBlock, true
}

// Surface returns the draw surface dimensions.
func (e *Engine) Surface() (float64, float64) {
	return e.surface.Width, e.surface.Height
}

// ViewOffset returns how far the host should shift the tower down so the
// highest block stays below the top third of the surface.
func (e *Engine) ViewOffset() float64 {
	if len(e.blocks) == 0 {
		return 0
	}
	highest := e.blocks[len(e.blocks)-1].Y
	if e.activeBlock != nil {
		highest = e.activeBlock.Y
	}
	limit := e.surface.Height * constants.StackViewTopFraction
	if highest >= limit {
		return 0
	}
	return limit - highest
}

// Snapshot is a copy of the observable engine state.
type Snapshot struct {
	Playing     bool
	Score       int
	Best        int
	Speed       float64
	Direction   float64
	Blocks      []Block
	ActiveBlock *Block
	Status      string
}

func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Playing:   e.playing,
		Score:     e.score,
		Best:      e.best,
		Speed:     e.speed,
		Direction: e.direction,
		Blocks:    e.Blocks(),
		Status:    e.status,
	}
	if active, ok := e.ActiveBlock(); ok {
		s.ActiveBlock = &active
	}
	return s
}

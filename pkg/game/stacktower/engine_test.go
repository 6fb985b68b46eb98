package stacktower

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/cbodonnell/minigames/pkg/game/constants"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(NewEngineOptions{
		Surface: DefaultSurface(),
		Logger:  log.New(io.Discard, "", 0, log.LogLevelError),
	})
	require.NoError(t, err)
	return e
}

func drainEvents(t *testing.T, e *Engine) []interface{} {
	t.Helper()
	events, err := e.Events().ReadAllMessages()
	require.NoError(t, err)
	return events
}

func TestNewEngine_Surface(t *testing.T) {
	tests := []struct {
		name    string
		surface *Surface
		wantErr bool
	}{
		{name: "missing surface", surface: nil, wantErr: true},
		{name: "zero surface", surface: &Surface{}, wantErr: true},
		{name: "narrower than the base block", surface: &Surface{Width: 100, Height: 480}, wantErr: true},
		{name: "shorter than two rows", surface: &Surface{Width: 320, Height: 30}, wantErr: true},
		{name: "default surface", surface: DefaultSurface(), wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(NewEngineOptions{Surface: tt.surface})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotInitialized)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	var zero Engine
	assert.ErrorIs(t, zero.Start(), ErrNotInitialized)
	assert.False(t, zero.Playing())
}

func TestEngine_Reset(t *testing.T) {
	e := newTestEngine(t)

	blocks := e.Blocks()
	require.Len(t, blocks, 1)
	assert.Equal(t, Block{X: 80, Y: 456, Width: 160, Color: constants.StackPalette[0]}, blocks[0])
	_, ok := e.ActiveBlock()
	assert.False(t, ok)
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 2.5, e.Speed())
	assert.False(t, e.Playing())
	assert.Equal(t, StatusReady, e.Status())
}

func TestEngine_Start(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Start())

	assert.True(t, e.Playing())
	active, ok := e.ActiveBlock()
	require.True(t, ok)
	assert.Equal(t, Block{X: 0, Y: 432, Width: 160, Color: constants.StackPalette[2]}, active)
	assert.Equal(t, 1.0, e.Direction())

	events := drainEvents(t, e)
	require.Len(t, events, 1)
	started, ok := events[0].(*GameStartedEvent)
	require.True(t, ok)
	assert.Equal(t, StatusPlaying, started.Status)
	assert.Equal(t, e.Blocks()[0], started.Base)
}

func TestEngine_OnFrame_Bounces(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Start())

	e.OnFrame()
	active, _ := e.ActiveBlock()
	assert.Equal(t, 2.5, active.X)

	// the 160 wide block reaches the right edge (x=160) after 64 frames
	for i := 1; i < 64; i++ {
		e.OnFrame()
	}
	active, _ = e.ActiveBlock()
	assert.Equal(t, 160.0, active.X)
	assert.Equal(t, -1.0, e.Direction())

	e.OnFrame()
	active, _ = e.ActiveBlock()
	assert.Equal(t, 157.5, active.X)
	assert.Equal(t, -1.0, e.Direction())

	for i := 0; i < 63; i++ {
		e.OnFrame()
	}
	active, _ = e.ActiveBlock()
	assert.Equal(t, 0.0, active.X)
	assert.Equal(t, 1.0, e.Direction())
	assert.Equal(t, uint64(128), e.Frames())
}

func TestEngine_Drop_OverlapMath(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Start())
	drainEvents(t, e)

	e.blocks = []Block{{X: 50, Y: 456, Width: 100, Color: "base"}}
	e.activeBlock = &Block{X: 120, Y: 432, Width: 100, Color: "moving"}

	e.Drop()

	require.True(t, e.Playing())
	blocks := e.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, Block{X: 120, Y: 432, Width: 30, Color: "moving"}, blocks[1])
	assert.Equal(t, 1, e.Score())
	assert.Equal(t, 1, e.Best())
	assert.InDelta(t, 2.65, e.Speed(), 1e-9)

	next, ok := e.ActiveBlock()
	require.True(t, ok)
	assert.Equal(t, 30.0, next.Width)
	assert.Equal(t, 0.0, next.X)
	assert.Equal(t, 408.0, next.Y)
	assert.Equal(t, constants.StackPalette[3], next.Color)

	events := drainEvents(t, e)
	require.Len(t, events, 1)
	placed, ok := events[0].(*BlockPlacedEvent)
	require.True(t, ok)
	assert.Equal(t, blocks[1], placed.Block)
	assert.Equal(t, 1, placed.Score)
}

func TestEngine_Drop_ToppleThreshold(t *testing.T) {
	tests := []struct {
		name        string
		activeX     float64
		wantToppled bool
	}{
		// top block spans [80, 240], active block is 160 wide
		{name: "no intersection", activeX: -160, wantToppled: true},
		{name: "touching edges", activeX: 240, wantToppled: true},
		{name: "overlap of 5 on the right", activeX: 235, wantToppled: true},
		{name: "overlap of 5 on the left", activeX: -75, wantToppled: true},
		{name: "overlap of 5.5", activeX: 234.5, wantToppled: false},
		{name: "overlap of 6 on the left", activeX: -74, wantToppled: false},
		{name: "perfect drop", activeX: 80, wantToppled: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			require.NoError(t, e.Start())
			drainEvents(t, e)
			e.activeBlock.X = tt.activeX

			e.Drop()

			events := drainEvents(t, e)
			require.Len(t, events, 1)
			if tt.wantToppled {
				assert.False(t, e.Playing())
				_, ok := e.ActiveBlock()
				assert.False(t, ok)
				assert.Len(t, e.Blocks(), 1)
				assert.Equal(t, 0, e.Score())
				toppled, ok := events[0].(*ToppledEvent)
				require.True(t, ok)
				assert.Equal(t, "Toppled! Final score 0.", toppled.Status)
			} else {
				assert.True(t, e.Playing())
				_, ok := e.ActiveBlock()
				assert.True(t, ok)
				assert.Len(t, e.Blocks(), 2)
				assert.IsType(t, &BlockPlacedEvent{}, events[0])
			}
		})
	}
}

func TestEngine_SpeedIsCapped(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Start())

	for i := 0; i < 40; i++ {
		e.activeBlock.X = e.blocks[len(e.blocks)-1].X
		e.Drop()
		require.True(t, e.Playing())
	}
	assert.Equal(t, constants.StackMaxSpeed, e.Speed())
	assert.Equal(t, 40, e.Score())
}

func TestEngine_WidthsNeverGrow(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	e := newTestEngine(t)

	for game := 0; game < 25; game++ {
		require.NoError(t, e.Start())
		for e.Playing() {
			frames := rng.IntN(90)
			for i := 0; i < frames; i++ {
				e.OnFrame()
			}
			e.Drop()

			blocks := e.Blocks()
			for i := 1; i < len(blocks); i++ {
				require.LessOrEqual(t, blocks[i].Width, blocks[i-1].Width)
				require.Greater(t, blocks[i].Width, constants.StackMissTolerance)
			}
			if active, ok := e.ActiveBlock(); ok {
				assert.Equal(t, blocks[len(blocks)-1].Width, active.Width)
			}
		}
	}
}

func TestEngine_NoOpsWhenIdle(t *testing.T) {
	e := newTestEngine(t)

	before := e.Snapshot()
	e.Drop()
	e.OnFrame()
	assert.Equal(t, before, e.Snapshot())
	assert.Empty(t, drainEvents(t, e))

	require.NoError(t, e.Start())
	e.activeBlock.X = 240
	e.Drop() // topples
	drainEvents(t, e)

	after := e.Snapshot()
	e.Drop()
	e.OnFrame()
	assert.Equal(t, after, e.Snapshot())
	assert.Empty(t, drainEvents(t, e))
}

func TestEngine_BestPersistsAcrossResets(t *testing.T) {
	e := newTestEngine(t)

	scores := []int{3, 1, 5, 0, 2}
	best := 0
	for _, score := range scores {
		require.NoError(t, e.Start())
		for i := 0; i < score; i++ {
			e.activeBlock.X = e.blocks[len(e.blocks)-1].X
			e.Drop()
		}
		e.activeBlock.X = 240
		e.Drop()
		require.False(t, e.Playing())

		if score > best {
			best = score
		}
		assert.Equal(t, best, e.Best())
		e.Reset()
		assert.Equal(t, best, e.Best())
		assert.Equal(t, 0, e.Score())
	}
}

func TestEngine_Toggle(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Toggle())
	assert.True(t, e.Playing())

	// an undisturbed first block at x=0 still overlaps the base by 80
	require.NoError(t, e.Toggle())
	assert.True(t, e.Playing())
	assert.Equal(t, 1, e.Score())
	assert.Equal(t, 80.0, e.Blocks()[1].Width)

	e.activeBlock.X = 240
	require.NoError(t, e.Toggle())
	assert.False(t, e.Playing())
}

func TestEngine_ViewOffset(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Start())
	assert.Equal(t, 0.0, e.ViewOffset())

	for i := 0; i < 20; i++ {
		e.activeBlock.X = e.blocks[len(e.blocks)-1].X
		e.Drop()
	}
	active, ok := e.ActiveBlock()
	require.True(t, ok)
	// active row sits at 480 - 22*24 = -48, the top third ends at 160
	assert.Equal(t, -48.0, active.Y)
	assert.Equal(t, 208.0, e.ViewOffset())
}

func TestBlock_Overlap(t *testing.T) {
	start, width := Block{X: 50, Width: 100}.Overlap(Block{X: 120, Width: 100})
	assert.Equal(t, 120.0, start)
	assert.Equal(t, 30.0, width)

	_, width = Block{X: 0, Width: 10}.Overlap(Block{X: 20, Width: 10})
	assert.Equal(t, -10.0, width)
}

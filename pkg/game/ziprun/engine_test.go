package ziprun

import (
	"io"
	"testing"

	queuemocks "github.com/cbodonnell/minigames/mocks/github.com/cbodonnell/minigames/pkg/queue"
	randommocks "github.com/cbodonnell/minigames/mocks/github.com/cbodonnell/minigames/pkg/random"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/cbodonnell/minigames/pkg/queue"
	"github.com/cbodonnell/minigames/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, src random.Source) *Engine {
	t.Helper()
	e, err := NewEngine(NewEngineOptions{
		Random: src,
		Logger: log.New(io.Discard, "", 0, log.LogLevelError),
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

func TestNewEngine_RequiresRandomSource(t *testing.T) {
	_, err := NewEngine(NewEngineOptions{})
	assert.ErrorIs(t, err, ErrNotInitialized)

	var zero Engine
	assert.ErrorIs(t, zero.Start(), ErrNotInitialized)
	assert.False(t, zero.Active())
}

func TestEngine_Start(t *testing.T) {
	src := randommocks.NewSource(t)
	src.EXPECT().Float64().Return(0.5).Once()
	e := newTestEngine(t, src)

	require.NoError(t, e.Start())

	assert.True(t, e.Active())
	assert.Equal(t, 0.0, e.Progress())
	assert.Equal(t, 1.0, e.Direction())
	start, width := e.SafeZone()
	assert.Equal(t, 45.0, width)
	assert.InDelta(t, 27.5, start, 1e-9)
	assert.Equal(t, StatusRunning, e.Status())
	assert.Equal(t, ControlLabelArmed, e.ControlLabel())

	events := drainEvents(t, e)
	require.Len(t, events, 1)
	started, ok := events[0].(*RunStartedEvent)
	require.True(t, ok)
	assert.Equal(t, 1, started.Level)
	assert.InDelta(t, 27.5, started.SafeStart, 1e-9)
	assert.Equal(t, 45.0, started.SafeWidth)
	assert.Equal(t, ControlLabelArmed, started.ControlLabel)
}

func TestEngine_OnFrame_FirstFrameOnlyRecordsTimestamp(t *testing.T) {
	e := newTestEngine(t, random.NewSource(1))
	require.NoError(t, e.Start())

	e.OnFrame(5000)
	assert.Equal(t, 0.0, e.Progress())

	e.OnFrame(5016)
	assert.InDelta(t, 0.7, e.Progress(), 1e-9)

	e.OnFrame(5048)
	assert.InDelta(t, 2.1, e.Progress(), 1e-9)
}

func TestEngine_OnFrame_SpeedScalesWithLevel(t *testing.T) {
	e := newTestEngine(t, random.NewSource(1))
	e.level = 6
	require.NoError(t, e.Start())

	e.OnFrame(0)
	e.OnFrame(16)
	assert.InDelta(t, 0.7*1.4, e.Progress(), 1e-9)
}

func TestEngine_OnFrame_StaysInBoundsAndFlipsAtBounds(t *testing.T) {
	e := newTestEngine(t, random.NewSource(99))
	require.NoError(t, e.Start())

	deltas := []float64{7, 16, 33, 16, 50, 12, 16, 101}
	timestamp := 0.0
	e.OnFrame(timestamp)
	previousDirection := e.Direction()
	flips := 0
	for i := 0; i < 5000; i++ {
		timestamp += deltas[i%len(deltas)]
		e.OnFrame(timestamp)

		p := e.Progress()
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 100.0)

		atBound := p == 0 || p == 100
		if e.Direction() != previousDirection {
			flips++
			require.True(t, atBound, "direction flipped at %f", p)
		}
		if p == 100 {
			require.Equal(t, -1.0, e.Direction())
		}
		if p == 0 {
			require.Equal(t, 1.0, e.Direction())
		}
		previousDirection = e.Direction()
	}
	assert.Greater(t, flips, 10)
}

func TestEngine_SafeZoneShrinksWithConsecutiveSuccesses(t *testing.T) {
	src := randommocks.NewSource(t)
	// zone always starts at 0 and a run stopped immediately sits at 0
	src.EXPECT().Float64().Return(0.0)
	e := newTestEngine(t, src)

	previous := 0.0
	for n := 0; n <= 12; n++ {
		require.NoError(t, e.Start())
		_, width := e.SafeZone()

		want := 45.0 - float64(n)*4
		if want < 15 {
			want = 15
		}
		assert.Equal(t, want, width, "after %d successes", n)
		if n > 0 && want > 15 {
			assert.Less(t, width, previous)
		}
		previous = width

		e.Stop()
		assert.Equal(t, n+2, e.Level())
		assert.Equal(t, n+1, e.Best())
	}
}

func TestSafeWidthForLevel(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  float64
	}{
		{name: "level 1", level: 1, want: 45},
		{name: "level 2", level: 2, want: 41},
		{name: "level 8", level: 8, want: 17},
		{name: "level 9 floors", level: 9, want: 15},
		{name: "level 30 floors", level: 30, want: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeWidthForLevel(tt.level))
		})
	}
}

func TestSpeedMultiplierForLevel(t *testing.T) {
	assert.InDelta(t, 1.0, SpeedMultiplierForLevel(1), 1e-9)
	assert.InDelta(t, 1.4, SpeedMultiplierForLevel(6), 1e-9)
	assert.InDelta(t, 1.8, SpeedMultiplierForLevel(11), 1e-9)
	assert.InDelta(t, 1.8, SpeedMultiplierForLevel(40), 1e-9)
}

func TestEngine_Stop_Outcome(t *testing.T) {
	type fields struct {
		level    int
		best     int
		progress float64
	}
	tests := []struct {
		name        string
		fields      fields
		wantSuccess bool
		wantLevel   int
		wantBest    int
	}{
		// level 3 zone width is 37, random 0.5 places it at [31.5, 68.5]
		{name: "at zone start", fields: fields{level: 3, best: 1, progress: 31.5}, wantSuccess: true, wantLevel: 4, wantBest: 3},
		{name: "at zone end", fields: fields{level: 3, best: 1, progress: 68.5}, wantSuccess: true, wantLevel: 4, wantBest: 3},
		{name: "inside zone keeps higher best", fields: fields{level: 3, best: 9, progress: 50}, wantSuccess: true, wantLevel: 4, wantBest: 9},
		{name: "just before zone", fields: fields{level: 3, best: 2, progress: 31.49}, wantSuccess: false, wantLevel: 1, wantBest: 2},
		{name: "just after zone", fields: fields{level: 3, best: 2, progress: 68.51}, wantSuccess: false, wantLevel: 1, wantBest: 2},
		{name: "track end", fields: fields{level: 3, best: 0, progress: 100}, wantSuccess: false, wantLevel: 1, wantBest: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := randommocks.NewSource(t)
			src.EXPECT().Float64().Return(0.5).Once()
			e := newTestEngine(t, src)
			e.level = tt.fields.level
			e.best = tt.fields.best
			require.NoError(t, e.Start())
			drainEvents(t, e)
			e.progress = tt.fields.progress

			e.Stop()

			assert.False(t, e.Active())
			assert.Equal(t, tt.wantLevel, e.Level())
			assert.Equal(t, tt.wantBest, e.Best())
			assert.Equal(t, ControlLabelIdle, e.ControlLabel())

			events := drainEvents(t, e)
			require.Len(t, events, 1)
			stopped, ok := events[0].(*RunStoppedEvent)
			require.True(t, ok)
			assert.Equal(t, tt.wantSuccess, stopped.Success)
			assert.False(t, stopped.Hidden)
			assert.Equal(t, tt.wantLevel, stopped.Level)
			assert.Equal(t, tt.wantBest, stopped.Best)
			if !tt.wantSuccess {
				assert.Equal(t, StatusMissed, stopped.Status)
			}
		})
	}
}

func TestEngine_NoOpsOutsideRun(t *testing.T) {
	src := randommocks.NewSource(t)
	src.EXPECT().Float64().Return(0.25).Once()
	e := newTestEngine(t, src)

	before := e.Snapshot()
	e.Stop()
	e.OnFrame(10)
	e.OnFrame(500)
	e.SetHidden(true)
	assert.Equal(t, before, e.Snapshot())
	assert.Empty(t, drainEvents(t, e))

	// a second Start while running must not draw a new zone
	require.NoError(t, e.Start())
	running := e.Snapshot()
	require.NoError(t, e.Start())
	assert.Equal(t, running, e.Snapshot())
	assert.Len(t, drainEvents(t, e), 1)

	e.Stop()
	stopped := e.Snapshot()
	e.Stop()
	e.OnFrame(1000)
	assert.Equal(t, stopped, e.Snapshot())
	assert.Len(t, drainEvents(t, e), 1)
}

func TestEngine_SetHidden_StopsActiveRun(t *testing.T) {
	src := randommocks.NewSource(t)
	src.EXPECT().Float64().Return(0.0).Once()
	e := newTestEngine(t, src)
	require.NoError(t, e.Start())
	drainEvents(t, e)

	e.SetHidden(false)
	assert.True(t, e.Active())

	e.SetHidden(true)
	assert.False(t, e.Active())
	// stopped at 0, inside [0, 45]
	assert.Equal(t, 2, e.Level())

	events := drainEvents(t, e)
	require.Len(t, events, 1)
	stopped, ok := events[0].(*RunStoppedEvent)
	require.True(t, ok)
	assert.True(t, stopped.Hidden)
	assert.True(t, stopped.Success)
}

func TestEngine_BestPersistsAcrossRuns(t *testing.T) {
	e := newTestEngine(t, random.NewSource(3))

	bests := []int{}
	for run := 0; run < 20; run++ {
		require.NoError(t, e.Start())
		start, width := e.SafeZone()
		if run%3 == 2 {
			// park the indicator outside the zone
			if start > 0 {
				e.progress = 0
			} else {
				e.progress = width + 1
			}
		} else {
			e.progress = start + width/2
		}
		e.Stop()
		bests = append(bests, e.Best())
	}
	for i := 1; i < len(bests); i++ {
		assert.GreaterOrEqual(t, bests[i], bests[i-1])
	}
	assert.Equal(t, 2, bests[len(bests)-1])
}

func TestEngine_Toggle(t *testing.T) {
	e := newTestEngine(t, random.NewSource(5))

	require.NoError(t, e.Toggle())
	assert.True(t, e.Active())
	require.NoError(t, e.Toggle())
	assert.False(t, e.Active())
}

func TestEngine_FullQueueDoesNotStopSimulation(t *testing.T) {
	events := queuemocks.NewQueue(t)
	events.EXPECT().Enqueue(mock.Anything).Return(queue.ErrQueueFull).Twice()

	e, err := NewEngine(NewEngineOptions{
		Random: random.NewSource(11),
		Events: events,
		Logger: log.New(io.Discard, "", 0, log.LogLevelError),
	})
	require.NoError(t, err)

	require.NoError(t, e.Start())
	assert.True(t, e.Active())
	e.OnFrame(0)
	e.OnFrame(16)
	assert.InDelta(t, 0.7, e.Progress(), 1e-9)
	e.Stop()
	assert.False(t, e.Active())
}

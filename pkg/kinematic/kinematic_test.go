package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounce(t *testing.T) {
	type args struct {
		position  float64
		direction float64
		step      float64
	}
	tests := []struct {
		name          string
		args          args
		wantPosition  float64
		wantDirection float64
	}{
		{
			name:          "moves inside range",
			args:          args{position: 10, direction: 1, step: 5},
			wantPosition:  15,
			wantDirection: 1,
		},
		{
			name:          "clamps and flips at max",
			args:          args{position: 98, direction: 1, step: 5},
			wantPosition:  100,
			wantDirection: -1,
		},
		{
			name:          "clamps and flips at min",
			args:          args{position: 2, direction: -1, step: 5},
			wantPosition:  0,
			wantDirection: 1,
		},
		{
			name:          "landing exactly on max flips",
			args:          args{position: 95, direction: 1, step: 5},
			wantPosition:  100,
			wantDirection: -1,
		},
		{
			name:          "step longer than the range stops at max",
			args:          args{position: 50, direction: 1, step: 500},
			wantPosition:  100,
			wantDirection: -1,
		},
		{
			name:          "step longer than the range stops at min",
			args:          args{position: 50, direction: -1, step: 500},
			wantPosition:  0,
			wantDirection: 1,
		},
		{
			name:          "zero step away from max keeps direction",
			args:          args{position: 100, direction: -1, step: 0},
			wantPosition:  100,
			wantDirection: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPosition, gotDirection := Bounce(tt.args.position, tt.args.direction, tt.args.step, 0, 100)
			assert.InDelta(t, tt.wantPosition, gotPosition, 1e-9)
			assert.Equal(t, tt.wantDirection, gotDirection)
		})
	}
}

func TestFrameStep(t *testing.T) {
	assert.InDelta(t, 0.7, FrameStep(0.7, 16), 1e-9)
	assert.InDelta(t, 1.4, FrameStep(0.7, 32), 1e-9)
	assert.Equal(t, 0.0, FrameStep(0.7, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 10))
	assert.Equal(t, 10.0, Clamp(11, 0, 10))
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
}

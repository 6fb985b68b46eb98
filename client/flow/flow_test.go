package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameMode_String(t *testing.T) {
	tests := []struct {
		name string
		mode GameMode
		want string
	}{
		{name: "menu", mode: GameModeMenu, want: "Menu"},
		{name: "zip run", mode: GameModeZipRun, want: "Zip Run"},
		{name: "stack tower", mode: GameModeStackTower, want: "Stack Tower"},
		{name: "error", mode: GameModeError, want: "Error"},
		{name: "unknown", mode: GameMode(42), want: "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackTowerScene_DebugStats(t *testing.T) {
	scene, err := NewStackTowerScene(NewStackTowerSceneOptions{Seed: 1})
	require.NoError(t, err)
	s, ok := scene.(*StackTowerScene)
	require.True(t, ok)

	assert.Equal(t, []string{"Frames: 0", "Speed: 2.50"}, s.DebugStats())

	require.NoError(t, s.engine.Start())
	for i := 0; i < 3; i++ {
		s.engine.OnFrame()
	}
	assert.Equal(t, []string{"Frames: 3", "Speed: 2.50"}, s.DebugStats())
}

func TestZipRunScene_DebugStats(t *testing.T) {
	scene, err := NewZipRunScene(NewZipRunSceneOptions{Seed: 1})
	require.NoError(t, err)
	s, ok := scene.(*ZipRunScene)
	require.True(t, ok)

	// the idle zone is centered at level 1
	assert.Equal(t, []string{"Progress: 0.00", "Zone: 27.50-72.50"}, s.DebugStats())
}

package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSource_SameSeedSameSequence(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewSource_ZeroSeed(t *testing.T) {
	s := NewSource(0)
	assert.NotZero(t, s.Seed())
}

func TestUniform(t *testing.T) {
	s := NewSource(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(s, 10, 55)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.Less(t, v, 55.0)
	}
}

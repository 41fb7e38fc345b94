package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandScale_NoPadding(t *testing.T) {
	s := NewBandScale([]string{"a", "b", "c", "d"}, 0, 100, 0)

	assert.InDelta(t, 25.0, s.Bandwidth(), 1e-9)
	assert.InDelta(t, 0.0, s.PosIndex(0), 1e-9)
	assert.InDelta(t, 75.0, s.PosIndex(3), 1e-9)
}

func TestBandScale_Padding(t *testing.T) {
	s := NewBandScale([]string{"a", "b"}, 0, 105, 0.1)

	// step = 105 / (2 + 0.1) = 50, bandwidth = 45, outer offset = 5.
	assert.InDelta(t, 45.0, s.Bandwidth(), 1e-9)
	assert.InDelta(t, 5.0, s.PosIndex(0), 1e-9)
	assert.InDelta(t, 55.0, s.PosIndex(1), 1e-9)

	// Last band ends one outer pad before the range end.
	assert.InDelta(t, 100.0, s.PosIndex(1)+s.Bandwidth(), 1e-9)
}

func TestBandScale_Pos(t *testing.T) {
	s := NewBandScale([]string{"a", "b"}, 0, 100, 0)

	x, ok := s.Pos("b")
	assert.True(t, ok)
	assert.InDelta(t, 50.0, x, 1e-9)

	_, ok = s.Pos("missing")
	assert.False(t, ok)
}

func TestBandScale_Empty(t *testing.T) {
	s := NewBandScale(nil, 0, 100, 0.05)
	assert.Equal(t, 0.0, s.Bandwidth())
	assert.Empty(t, s.Domain())
}

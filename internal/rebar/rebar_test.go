package rebar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		area  float64
		count int
		dia   float64
	}{
		{0, 2, 8},
		{math.NaN(), 2, 8},
		{300, 6, 8},
		{800, 4, 16},
		{1500, 5, 20},
		{10000, 13, 32},
	}
	for _, tt := range tests {
		l := Select(tt.area)
		assert.Equal(t, tt.count, l.Count, "area %v", tt.area)
		assert.Equal(t, tt.dia, l.Diameter, "area %v", tt.area)
		if !math.IsNaN(tt.area) {
			assert.GreaterOrEqual(t, l.Area, tt.area)
		}
	}
}

func TestSelectColumn(t *testing.T) {
	l := SelectColumn(900)
	assert.Equal(t, 6, l.Count)
	assert.Equal(t, 16.0, l.Diameter)

	l = SelectColumn(0)
	assert.Equal(t, MinColumnBars, l.Count)
	assert.Zero(t, l.Count%2)
}

func TestSpaceBars(t *testing.T) {
	s := SpaceBars(500, 10, MaxSpacing)
	assert.Equal(t, 150.0, s.Spacing)
	assert.InDelta(t, 1000*Area(10)/150, s.AreaPerMetre, 1e-9)

	assert.Equal(t, MaxSpacing, SpaceBars(0, 10, MaxSpacing).Spacing)
	assert.Equal(t, 10.0, SpaceBars(1e6, 8, MaxSpacing).Spacing)
}

func TestUnitWeight(t *testing.T) {
	assert.InDelta(t, 0.617, UnitWeight(10), 1e-3)
	assert.InDelta(t, 1.58, UnitWeight(16), 1e-2)
}

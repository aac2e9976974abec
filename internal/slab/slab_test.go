package slab

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneWay() Params {
	return Params{
		Support:       Simple,
		ShortSpan:     3.5,
		LiveLoad:      3,
		FloorFinish:   1,
		Cover:         20,
		BarDiameter:   10,
		ConcreteGrade: 25,
		SteelGrade:    500,
	}
}

func TestOneWaySimplySupported(t *testing.T) {
	p := oneWay()
	assert.False(t, p.TwoWay())
	assert.Equal(t, 200.0, p.OverallDepth())

	res := p.Solve()
	require.True(t, res.Valid)

	w := 1.5 * (25*0.2 + 1 + 3)
	assert.InDelta(t, w*3.5*3.5/8, res.Forces.MaxMoment, 1e-9)
	assert.InDelta(t, w*3.5/2, res.Forces.MaxShear, 1e-9)

	rf := res.Reinforcement
	assert.InDelta(t, 0.0012*1000*200, rf.AreaMinimum, 1e-9)
	assert.GreaterOrEqual(t, rf.AreaProvided, math.Max(rf.AreaRequired, rf.AreaMinimum)*(1-1e-12))
	assert.LessOrEqual(t, rf.BarSpacing, math.Min(3*175, 300))
	assert.Zero(t, math.Mod(rf.BarSpacing, 10))
	assert.Contains(t, rf.BarCallout, "T10 @")

	_, ok := res.Quantity("distribution steel")
	assert.True(t, ok)
	assert.True(t, res.Verdict.IsSafe)
	assert.Len(t, res.Verdict.Checks, 4)
}

func TestDepthSizing(t *testing.T) {
	t.Run("minimum depth", func(t *testing.T) {
		p := oneWay()
		p.ShortSpan = 1
		assert.Equal(t, MinDepth, p.OverallDepth())
	})

	t.Run("given depth is kept", func(t *testing.T) {
		p := oneWay()
		p.Depth = 175
		assert.Equal(t, 175.0, p.OverallDepth())
	})

	t.Run("cantilever uses ratio 7", func(t *testing.T) {
		p := oneWay()
		p.Support = Cantilever
		p.ShortSpan = 1.4
		assert.Equal(t, 7.0, p.SpanDepthRatio())
		assert.Equal(t, 230.0, p.OverallDepth())
	})
}

func TestTwoWayContinuous(t *testing.T) {
	p := oneWay()
	p.Support = Continuous
	p.ShortSpan = 4
	p.LongSpan = 5
	p.Depth = 150

	require.True(t, p.TwoWay())
	assert.Equal(t, 32.0, p.SpanDepthRatio())

	w := 1.5 * (25*0.15 + 1 + 3)
	m := p.Moments(w)
	assert.InDelta(t, 0.045*w*16, m.ShortNegative, 1e-9)
	assert.InDelta(t, 0.034*w*16, m.ShortPositive, 1e-9)
	assert.InDelta(t, 0.032*w*16, m.LongNegative, 1e-9)

	res := p.Solve()
	require.True(t, res.Valid)
	assert.InDelta(t, m.Short(), res.Forces.MaxMoment, 1e-9)
	_, ok := res.Verdict.Check("long-span moment")
	assert.True(t, ok)
	q, ok := res.Quantity("ly/lx")
	require.True(t, ok)
	assert.InDelta(t, 1.25, q.Value, 1e-12)
}

func TestSpansAreOrdered(t *testing.T) {
	p := oneWay()
	p.ShortSpan = 5
	p.LongSpan = 4
	lx, ly := p.spans()
	assert.Equal(t, 4.0, lx)
	assert.Equal(t, 5.0, ly)
}

func TestLongPanelIsOneWay(t *testing.T) {
	p := oneWay()
	p.LongSpan = 7.5
	assert.False(t, p.TwoWay())
	assert.Equal(t, 20.0, p.SpanDepthRatio())
}

func TestThinSlabFailsSpanDepth(t *testing.T) {
	p := oneWay()
	p.ShortSpan = 5
	p.Depth = 120

	res := p.Solve()
	require.True(t, res.Valid)
	c, ok := res.Verdict.Check("span/depth")
	require.True(t, ok)
	assert.False(t, c.Pass)
	assert.False(t, res.Verdict.IsSafe)
}

func TestInvalidSlab(t *testing.T) {
	p := oneWay()
	p.ShortSpan = 0
	res := p.Solve()
	assert.False(t, res.Valid)
	assert.True(t, res.Has(design.ErrInvalidGeometry))

	p = oneWay()
	p.LiveLoad = math.Inf(1)
	res = p.Solve()
	assert.True(t, res.Has(design.ErrInvalidInput))
}

func TestEdgeJSON(t *testing.T) {
	var p Params
	require.NoError(t, json.Unmarshal([]byte(`{"support":"continuous","short_span":4}`), &p))
	assert.Equal(t, Continuous, p.Support)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"support":"continuous"`)
}

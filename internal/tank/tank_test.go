package tank

import (
	"testing"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTank() Params {
	return Params{
		Height:        3,
		Length:        6,
		Width:         4,
		Thickness:     200,
		Cover:         30,
		BarDiameter:   16,
		ConcreteGrade: 30,
		SteelGrade:    415,
	}
}

func TestWallActions(t *testing.T) {
	res := openTank().Solve()
	require.True(t, res.Valid)

	assert.InDelta(t, 1.5*9.81*27/6, res.Forces.MaxMoment, 1e-9)
	assert.InDelta(t, 1.5*9.81*9/2, res.Forces.MaxShear, 1e-9)
	assert.InDelta(t, 9.81*3*6/2, res.Forces.Axial, 1e-9)
}

func TestSteelIncludesDirectTension(t *testing.T) {
	res := openTank().Solve()

	tension, ok := res.Quantity("tension steel")
	require.True(t, ok)
	assert.InDelta(t, 1.5*9.81*3*6/2*1000/(0.87*415), tension.Value, 1e-6)

	flexure, _ := res.Quantity("flexural steel")
	assert.InDelta(t, flexure.Value+tension.Value, res.Reinforcement.AreaRequired, 1e-9)
	assert.GreaterOrEqual(t, res.Reinforcement.AreaProvided, res.Reinforcement.AreaRequired)
}

func TestMinimumSteelRatio(t *testing.T) {
	res := openTank().Solve()
	ratio, _ := res.Quantity("min steel ratio")
	want := 0.35 - (200.0-100)/350*0.15
	assert.InDelta(t, want, ratio.Value, 1e-9)
	assert.InDelta(t, want/100*1000*200, res.Reinforcement.AreaMinimum, 1e-6)
}

func TestCrackCheck(t *testing.T) {
	res := openTank().Solve()
	c, ok := res.Verdict.Check("crack")
	require.True(t, ok)
	assert.InDelta(t, 1.5, c.Capacity, 1e-12)

	m := 280 / (3 * 10.0)
	steel := res.Reinforcement.AreaProvided
	assert.InDelta(t, 9.81*3*6/2*1000/(1000*200+(m-1)*steel), c.Demand, 1e-9)
	assert.True(t, c.Pass)
	assert.True(t, res.Verdict.IsSafe)
}

func TestThinWallCracks(t *testing.T) {
	p := openTank()
	p.Height = 5
	p.Length = 30
	p.Thickness = 150

	res := p.Solve()
	require.True(t, res.Valid)
	c, _ := res.Verdict.Check("crack")
	assert.False(t, c.Pass)
	assert.False(t, res.Verdict.IsSafe)
}

func TestInvalidTank(t *testing.T) {
	p := openTank()
	p.Width = -4
	res := p.Solve()
	assert.False(t, res.Valid)
	assert.True(t, res.Has(design.ErrInvalidGeometry))
}

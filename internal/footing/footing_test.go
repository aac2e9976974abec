package footing

import (
	"testing"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePad() Params {
	return Params{
		Axial:         1000,
		BearingSBC:    200,
		ColumnWidth:   400,
		ColumnDepth:   400,
		Cover:         50,
		BarDiameter:   12,
		ConcreteGrade: 25,
		SteelGrade:    500,
	}
}

func TestPlanSize(t *testing.T) {
	B, L := squarePad().Plan()
	assert.InDelta(t, 2.4, B, 1e-9)
	assert.InDelta(t, 2.4, L, 1e-9)

	p := squarePad()
	p.ColumnDepth = 600
	B, L = p.Plan()
	assert.InDelta(t, 0.2, L-B, 1e-9)
	assert.GreaterOrEqual(t, B*L, 1.1*1000/200)
}

func TestPlanNotSmallerThanColumn(t *testing.T) {
	p := squarePad()
	p.Axial = 100
	p.BearingSBC = 500
	p.ColumnWidth = 1000
	p.ColumnDepth = 1000

	B, L := p.Plan()
	assert.InDelta(t, 1.0, B, 1e-9)
	assert.InDelta(t, 1.0, L, 1e-9)

	res := p.Solve()
	require.True(t, res.Valid)
	assert.GreaterOrEqual(t, res.Forces.MaxMoment, 0.0)
	for _, c := range res.Verdict.Checks {
		assert.GreaterOrEqual(t, c.Demand, 0.0, c.Name)
	}
	assert.GreaterOrEqual(t, res.Reinforcement.AreaProvided, res.Reinforcement.AreaMinimum)
}

func TestDepthGrowsUntilShearPasses(t *testing.T) {
	res := squarePad().Solve()
	require.True(t, res.Valid)

	D, ok := res.Quantity("overall depth")
	require.True(t, ok)
	assert.Equal(t, 425.0, D.Value)

	steps, _ := res.Quantity("depth steps")
	assert.Equal(t, 5.0, steps.Value)

	for _, name := range []string{"bearing", "moment", "one-way shear", "punching shear"} {
		c, ok := res.Verdict.Check(name)
		require.True(t, ok, name)
		assert.True(t, c.Pass, name)
	}
	assert.True(t, res.Verdict.IsSafe)

	// One step shallower fails punching
	p := squarePad()
	p.Depth = D.Value - DepthStep
	shallow := p.Solve()
	c, _ := shallow.Verdict.Check("punching shear")
	assert.False(t, c.Pass)
}

func TestFactoredPressure(t *testing.T) {
	res := squarePad().Solve()
	q, _ := res.Quantity("factored pressure")
	assert.InDelta(t, 1500/(2.4*2.4), q.Value, 1e-6)
	assert.InDelta(t, 1500, res.Forces.Axial, 1e-9)

	// Cantilever moment at the column face, 1.0 m projection
	assert.InDelta(t, q.Value*2.4*1.0*1.0/2, res.Forces.MaxMoment, 1e-6)
}

func TestSteelCoversDemand(t *testing.T) {
	res := squarePad().Solve()
	rf := res.Reinforcement
	assert.GreaterOrEqual(t, rf.AreaProvided, rf.AreaRequired)
	assert.GreaterOrEqual(t, rf.AreaProvided, rf.AreaMinimum)
	assert.Contains(t, rf.BarCallout, "both ways")
}

func TestBearingWithinCapacity(t *testing.T) {
	p := squarePad()
	res := p.Solve()
	c, _ := res.Verdict.Check("bearing")
	assert.LessOrEqual(t, c.Demand, p.BearingSBC)
}

func TestInvalidFooting(t *testing.T) {
	p := squarePad()
	p.BearingSBC = 0
	res := p.Solve()
	assert.False(t, res.Valid)
	assert.True(t, res.Has(design.ErrInvalidGeometry))

	p = squarePad()
	p.Depth = 40
	res = p.Solve()
	assert.False(t, res.Valid)
}

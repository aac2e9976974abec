package steel

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ISMB 300 roughly
func ismb300() Params {
	return Params{
		FlangeWidth:     140,
		FlangeThickness: 12.4,
		Depth:           300,
		WebThickness:    7.5,
		Length:          3,
		Axial:           300,
		Moment:          40,
		Shear:           50,
		SteelGrade:      250,
	}
}

func TestCapacities(t *testing.T) {
	p := ismb300()
	res := p.Solve()
	require.True(t, res.Valid)
	assert.Empty(t, res.Issues)

	bf, tf, h, tw := 140.0, 12.4, 300.0, 7.5
	zp := bf*tf*(h-tf) + tw*(h-2*tf)*(h-2*tf)/4
	flex, ok := res.Verdict.Check("flexure")
	require.True(t, ok)
	assert.InDelta(t, 250*zp/1.1/1e6, flex.Capacity, 0.01)

	shear, _ := res.Verdict.Check("shear")
	assert.InDelta(t, 250*h*tw/(math.Sqrt(3)*1.1)/1000, shear.Capacity, 1e-6)

	axial, _ := res.Verdict.Check("axial")
	area, _ := res.Quantity("area")
	fcd, _ := res.Quantity("design stress")
	assert.InDelta(t, fcd.Value*area.Value/1000, axial.Capacity, 1e-9)
	assert.Less(t, fcd.Value, 250/1.1)
	assert.InDelta(t, 640, axial.Capacity, 10)
}

func TestInteraction(t *testing.T) {
	res := ismb300().Solve()
	axial, _ := res.Verdict.Check("axial")
	flex, _ := res.Verdict.Check("flexure")
	inter, ok := res.Verdict.Check("interaction")
	require.True(t, ok)
	assert.InDelta(t, axial.Ratio+flex.Ratio, inter.Demand, 1e-12)
	assert.True(t, res.Verdict.IsSafe)

	p := ismb300()
	p.Axial = 450
	p.Moment = 80
	res = p.Solve()
	inter, _ = res.Verdict.Check("interaction")
	assert.False(t, inter.Pass)
	assert.False(t, res.Verdict.IsSafe)
}

func TestSlenderMember(t *testing.T) {
	p := ismb300()
	p.Length = 6
	p.EffectiveLength = 1
	res := p.Solve()
	c, _ := res.Verdict.Check("slenderness")
	assert.False(t, c.Pass)
	assert.Greater(t, c.Demand, SlendernessLimit)
	assert.False(t, res.Verdict.IsSafe)
}

func TestSteelGradeFallback(t *testing.T) {
	p := ismb300()
	p.SteelGrade = 345
	res := p.Solve()
	require.True(t, res.Valid)
	assert.True(t, res.Has(design.ErrInvalidMaterialGrade))
	assert.Equal(t, 415, res.Materials.Steel.Label)
	assert.Zero(t, res.Materials.Concrete.Label)
}

func TestInvalidSection(t *testing.T) {
	p := ismb300()
	p.FlangeThickness = 160
	res := p.Solve()
	assert.False(t, res.Valid)
	assert.True(t, res.Has(design.ErrInvalidGeometry))
}

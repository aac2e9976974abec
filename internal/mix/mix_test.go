package mix

import (
	"encoding/json"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quantity(t *testing.T, res design.Result, name string) float64 {
	t.Helper()
	q, ok := res.Quantity(name)
	require.True(t, ok, name)
	return q.Value
}

func TestM20Mix(t *testing.T) {
	res := Params{ConcreteGrade: 20}.Solve()
	require.True(t, res.Valid)
	assert.Empty(t, res.Issues)

	assert.InDelta(t, 20+1.65*4, quantity(t, res, "target strength"), 1e-9)
	assert.InDelta(t, 0.45, quantity(t, res, "w/c ratio"), 1e-12)
	assert.InDelta(t, 186, quantity(t, res, "water"), 1e-12)

	cement := quantity(t, res, "cement")
	assert.InDelta(t, 186/0.45, cement, 1e-9)
	assert.InDelta(t, 0.63, quantity(t, res, "coarse fraction"), 1e-9)

	volume := 1 - 0.01 - cement/3150 - 0.186
	assert.InDelta(t, volume*0.63*2740, quantity(t, res, "coarse aggregate"), 1e-6)
	assert.InDelta(t, volume*0.37*2650, quantity(t, res, "fine aggregate"), 1e-6)
	assert.True(t, res.Verdict.IsSafe)
}

func TestExposureCapsWaterCement(t *testing.T) {
	res := Params{ConcreteGrade: 15, Exposure: Extreme, AggregateSize: 40}.Solve()
	require.True(t, res.Valid)
	assert.InDelta(t, 0.40, quantity(t, res, "w/c ratio"), 1e-12)
	assert.InDelta(t, 165/0.40, quantity(t, res, "cement"), 1e-9)

	c, ok := res.Verdict.Check("min cement")
	require.True(t, ok)
	assert.True(t, c.Pass)
	assert.Equal(t, 360.0, c.Demand)
}

func TestSlumpRaisesWater(t *testing.T) {
	res := Params{ConcreteGrade: 20, Slump: 100}.Solve()
	assert.InDelta(t, 186*1.06, quantity(t, res, "water"), 1e-9)
}

func TestRichMixExceedsCementLimit(t *testing.T) {
	res := Params{ConcreteGrade: 25}.Solve()
	require.True(t, res.Valid)
	assert.InDelta(t, 0.40, quantity(t, res, "w/c ratio"), 1e-12)

	c, _ := res.Verdict.Check("max cement")
	assert.False(t, c.Pass)
	assert.False(t, res.Verdict.IsSafe)
	assert.Equal(t, "max cement", res.Verdict.Governing)
}

func TestFallbacks(t *testing.T) {
	t.Run("aggregate", func(t *testing.T) {
		res := Params{ConcreteGrade: 20, AggregateSize: 25}.Solve()
		require.True(t, res.Valid)
		assert.True(t, res.Has(design.ErrInvalidMaterialGrade))
		q, _ := res.Quantity("coarse aggregate")
		assert.Equal(t, "20 mm", q.Note)
	})
	t.Run("grade", func(t *testing.T) {
		res := Params{ConcreteGrade: 28}.Solve()
		assert.True(t, res.Materials.ConcreteFallback)
		assert.Equal(t, 25, res.Materials.Concrete.Label)
	})
}

func TestInvalidMix(t *testing.T) {
	res := Params{ConcreteGrade: 20, Slump: -10}.Solve()
	assert.False(t, res.Valid)
	assert.True(t, res.Has(design.ErrInvalidInput))

	res = Params{ConcreteGrade: 20, Exposure: Exposure(9)}.Solve()
	assert.False(t, res.Valid)
}

func TestExposureJSON(t *testing.T) {
	var p Params
	require.NoError(t, json.Unmarshal([]byte(`{"concrete_grade": 30, "exposure": "very severe"}`), &p))
	assert.Equal(t, VerySevere, p.Exposure)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"exposure":"very-severe"`)

	assert.Error(t, json.Unmarshal([]byte(`{"exposure": "marine"}`), &p))
}

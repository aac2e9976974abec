package design

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilization(t *testing.T) {
	assert.Equal(t, 0.5, Utilization(1, 2))
	assert.Equal(t, Saturated, Utilization(1, 0))
	assert.Equal(t, Saturated, Utilization(1, -3))
	assert.Equal(t, Saturated, Utilization(math.NaN(), 1))
	assert.Equal(t, Saturated, Utilization(1, math.Inf(1)))
	assert.Equal(t, Saturated, Utilization(5e6, 1))
}

func TestChecker(t *testing.T) {
	var c Checker
	c.Ratio("moment", 50, 100, "kNm")
	c.Strict("deflection", 10, 10, "mm")
	c.Minimum("cover", 5, 4, "mm")
	c.Range("going", 600, 550, 700, "mm")
	v := c.Verdict()

	require.Len(t, v.Checks, 4)
	assert.False(t, v.IsSafe)
	assert.Equal(t, "deflection", v.Governing)
	assert.Equal(t, 1.0, v.Utilization)
	assert.Equal(t, map[string]bool{"moment": true, "deflection": false, "cover": true, "going": true}, v.Map())

	cover, ok := v.Check("cover")
	require.True(t, ok)
	assert.InDelta(t, 0.8, cover.Ratio, 1e-12)
	_, ok = v.Check("torsion")
	assert.False(t, ok)

	t.Run("range below", func(t *testing.T) {
		var c Checker
		c.Range("going", 500, 550, 700, "mm")
		v := c.Verdict()
		assert.False(t, v.IsSafe)
		assert.InDelta(t, 1.1, v.Utilization, 1e-12)
	})

	t.Run("no checks is not safe", func(t *testing.T) {
		var c Checker
		assert.False(t, c.Verdict().IsSafe)
	})
}

func TestArchetypes(t *testing.T) {
	a, err := ParseArchetype(" Wall ")
	require.NoError(t, err)
	assert.Equal(t, RetainingWall, a)

	for _, a := range Archetypes() {
		assert.True(t, a.Valid())
		got, err := ParseArchetype(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err = ParseArchetype("bridge")
	assert.ErrorIs(t, err, ErrUnknownArchetype)
	assert.False(t, Archetype(42).Valid())
	assert.Equal(t, "archetype(42)", Archetype(42).String())
}

func TestResolveMaterials(t *testing.T) {
	m, issues := ResolveMaterials(28, 345)
	require.Len(t, issues, 2)
	for _, err := range issues {
		assert.ErrorIs(t, err, ErrInvalidMaterialGrade)
	}
	assert.True(t, m.ConcreteFallback)
	assert.True(t, m.SteelFallback)
	assert.Equal(t, "M25", m.Concrete.Name())
	assert.Equal(t, "Fe415", m.Steel.Name())

	m, issues = ResolveMaterials(30, 500)
	assert.Empty(t, issues)
	assert.False(t, m.ConcreteFallback || m.SteelFallback)
}

func TestInvalidResult(t *testing.T) {
	err := RequirePositive(F("width", 230), F("span", 0))
	require.ErrorIs(t, err, ErrInvalidGeometry)
	assert.Contains(t, err.Error(), "span")
	assert.NoError(t, RequirePositive(F("width", 230)))

	assert.ErrorIs(t, RequireNonNegative(F("load", math.NaN())), ErrInvalidInput)
	assert.NoError(t, RequireNonNegative(F("load", 0)))

	res := Invalid(Beam, err)
	assert.False(t, res.Valid)
	assert.True(t, res.Has(ErrInvalidGeometry))
	assert.False(t, res.Has(ErrZeroCapacity))
}

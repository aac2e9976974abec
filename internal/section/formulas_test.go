package section

import (
	"errors"
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testFck = 25.0
	testFy  = 500.0
	testB   = 230.0
	testD   = 417.0
)

func TestMomentOfInertia(t *testing.T) {
	assert.InDelta(t, 0.23*math.Pow(0.45, 3)/12, MomentOfInertia(0.23, 0.45), 1e-15)
	assert.InDelta(t, 1.0/12, MomentOfInertia(1, 1), 1e-15)
}

func TestLimitingMomentCapacity(t *testing.T) {
	got := LimitingMomentCapacity(testFck, testB, testD)
	assert.InDelta(t, 0.138*25*230*417*417, got, 1e-6)
}

func TestRequiredSteelArea(t *testing.T) {
	t.Run("singly reinforced", func(t *testing.T) {
		ast, err := RequiredSteelArea(90e6, testFck, testFy, testB, testD)
		require.NoError(t, err)
		assert.InDelta(t, 562, ast, 5)
	})

	t.Run("zero moment needs no steel", func(t *testing.T) {
		ast, err := RequiredSteelArea(0, testFck, testFy, testB, testD)
		require.NoError(t, err)
		assert.Zero(t, ast)
	})

	t.Run("limiting moment routes to singly branch", func(t *testing.T) {
		mlim := LimitingMomentCapacity(testFck, testB, testD)
		f, err := DesignFlexure(mlim, testFck, testFy, testB, testD, 50)
		require.NoError(t, err)
		assert.False(t, f.Doubly)
		assert.False(t, f.Degenerate)
		assert.Zero(t, f.Compression)
	})

	t.Run("doubly reinforced above the limit", func(t *testing.T) {
		mlim := LimitingMomentCapacity(testFck, testB, testD)
		f, err := DesignFlexure(1.5*mlim, testFck, testFy, testB, testD, 50)
		require.NoError(t, err)
		assert.True(t, f.Doubly)
		assert.Greater(t, f.Compression, 0.0)

		ast1 := mlim / (0.87 * testFy * (testD - 0.416*0.48*testD))
		ast2 := 0.5 * mlim / (0.87 * testFy * (testD - 50))
		assert.InDelta(t, ast1, f.Ast1, 1e-6)
		assert.InDelta(t, ast2, f.Ast2, 1e-6)
		assert.InDelta(t, ast1+ast2, f.Tension, 1e-6)
	})

	t.Run("non-positive geometry is rejected", func(t *testing.T) {
		for _, dims := range [][2]float64{{0, testD}, {testB, 0}, {-1, testD}, {testB, math.NaN()}} {
			_, err := RequiredSteelArea(50e6, testFck, testFy, dims[0], dims[1])
			require.Error(t, err)
			assert.True(t, errors.Is(err, design.ErrInvalidGeometry))
			var ge *GeometryError
			assert.True(t, errors.As(err, &ge))
		}
	})

	t.Run("compression cover deeper than d", func(t *testing.T) {
		mlim := LimitingMomentCapacity(testFck, 230, 60)
		_, err := DesignFlexure(2*mlim, testFck, testFy, 230, 60, 60)
		assert.ErrorIs(t, err, design.ErrInvalidGeometry)
	})
}

func TestRequiredSteelAreaMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	mlim := LimitingMomentCapacity(testFck, testB, testD)

	moments := make([]float64, 500)
	for i := range moments {
		moments[i] = rng.Float64() * 2 * mlim
	}
	moments = append(moments, mlim, math.Nextafter(mlim, math.Inf(1)))
	sort.Float64s(moments)

	prev := -1.0
	for _, m := range moments {
		ast, err := RequiredSteelArea(m, testFck, testFy, testB, testD)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ast, prev, "M=%.0f", m)
		prev = ast
	}
}

func TestMomentCapacityRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 1000; i++ {
		fck := []float64{20, 25, 30, 35, 40}[rng.IntN(5)]
		fy := []float64{250, 415, 500}[rng.IntN(3)]
		b := 150 + rng.Float64()*450
		d := 200 + rng.Float64()*700
		m := rng.Float64() * LimitingMomentCapacity(fck, b, d)

		ast, err := RequiredSteelArea(m, fck, fy, b, d)
		require.NoError(t, err)
		capacity := MomentCapacity(ast, fy, fck, b, d)
		assert.GreaterOrEqual(t, capacity, m*(1-1e-9), "fck=%v fy=%v b=%.1f d=%.1f", fck, fy, b, d)
	}
}

func TestMomentCapacity(t *testing.T) {
	t.Run("under-reinforced", func(t *testing.T) {
		ast := 565.0
		x := 0.87 * testFy * ast / (0.36 * testFck * testB)
		want := 0.87 * testFy * ast * (testD - 0.416*x)
		assert.InDelta(t, want, MomentCapacity(ast, testFy, testFck, testB, testD), 1e-6)
	})

	t.Run("over-reinforced is capped at the limiting moment", func(t *testing.T) {
		got := MomentCapacity(5000, testFy, testFck, testB, testD)
		assert.Equal(t, LimitingMomentCapacity(testFck, testB, testD), got)
	})

	t.Run("strictly positive for valid sections", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 5))
		for i := 0; i < 200; i++ {
			fck := 15 + rng.Float64()*35
			b := 1 + rng.Float64()*1000
			d := 1 + rng.Float64()*1000
			ast := 1 + rng.Float64()*5000
			assert.Greater(t, MomentCapacity(ast, testFy, fck, b, d), 0.0)
			assert.Greater(t, ShearCapacity(fck, b, d), 0.0)
		}
	})

	t.Run("doubly reinforced adds the steel couple", func(t *testing.T) {
		mlim := LimitingMomentCapacity(testFck, testB, testD)
		f, err := DesignFlexure(1.3*mlim, testFck, testFy, testB, testD, 50)
		require.NoError(t, err)
		got := DoublyMomentCapacity(f.Tension, f.Ast1, testFy, testFck, testB, testD, 50)
		assert.InDelta(t, 1.3*mlim, got, 1e-3)
	})
}

func TestShearCapacity(t *testing.T) {
	assert.InDelta(t, 0.25*5*230*417, ShearCapacity(25, 230, 417), 1e-9)
	assert.Zero(t, ShearCapacity(25, 0, 417))
}

func TestBucklingStress(t *testing.T) {
	t.Run("stocky member reaches yield", func(t *testing.T) {
		assert.InDelta(t, 250/1.1, BucklingStress(0, 250), 1e-9)
	})

	t.Run("normalized by the euler stress", func(t *testing.T) {
		// λn² = fy / (π²·Es/λ²)
		for _, fy := range []float64{250, 350, 410} {
			for _, l := range []float64{20, 100, 180} {
				fcc := math.Pi * math.Pi * Es / (l * l)
				assert.InDelta(t, math.Sqrt(fy/fcc), NormalizedSlenderness(l, fy), 1e-9)
			}
		}
		assert.InDelta(t, 1.1254, NormalizedSlenderness(100, 250), 1e-4)
	})

	t.Run("matches the class c table", func(t *testing.T) {
		assert.InDelta(t, 107, BucklingStress(100, 250), 1)
		assert.InDelta(t, 59, BucklingStress(150, 250), 2)
	})

	t.Run("decreases with slenderness", func(t *testing.T) {
		prev := math.Inf(1)
		for l := 0.0; l <= 300; l += 5 {
			fcd := BucklingStress(l, 250)
			assert.LessOrEqual(t, fcd, prev)
			prev = fcd
		}
	})

	t.Run("never NaN", func(t *testing.T) {
		for _, l := range []float64{math.Inf(1), 1e9, -1, math.NaN()} {
			fcd := BucklingStress(l, 250)
			assert.False(t, math.IsNaN(fcd))
			assert.GreaterOrEqual(t, fcd, 0.0)
		}
	})
}

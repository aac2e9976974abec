package is456

import "sort"

// Table is a piecewise-linear lookup keyed by an ascending abscissa. Values
// outside the range clamp to the end points.
type Table struct {
	X []float64
	Y []float64
}

// At interpolates the table at x
func (t Table) At(x float64) float64 {
	n := len(t.X)
	if n == 0 {
		return 0
	}
	if x <= t.X[0] {
		return t.Y[0]
	}
	if x >= t.X[n-1] {
		return t.Y[n-1]
	}
	i := sort.SearchFloat64s(t.X, x)
	if t.X[i] == x {
		return t.Y[i]
	}
	x0, x1 := t.X[i-1], t.X[i]
	y0, y1 := t.Y[i-1], t.Y[i]
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

var slabRatios = []float64{1.0, 1.1, 1.2, 1.3, 1.4, 1.5, 1.75, 2.0}

// Two-way slab bending moment coefficients (Ly/Lx from 1.0 to 2.0).
// Simply supported panels with corners not held down follow Table 27,
// continuous panels follow the interior panel row of Table 26.
var (
	SimpleAlphaX = Table{X: slabRatios, Y: []float64{0.062, 0.074, 0.084, 0.093, 0.099, 0.104, 0.113, 0.118}}
	SimpleAlphaY = Table{X: slabRatios, Y: []float64{0.062, 0.061, 0.059, 0.055, 0.051, 0.046, 0.037, 0.029}}

	ContinuousAlphaXNeg = Table{X: slabRatios, Y: []float64{0.032, 0.037, 0.043, 0.047, 0.051, 0.053, 0.060, 0.065}}
	ContinuousAlphaXPos = Table{X: slabRatios, Y: []float64{0.024, 0.028, 0.032, 0.036, 0.039, 0.041, 0.045, 0.049}}
)

// Long-span (αy) coefficients of continuous interior panels, constant in Ly/Lx
const (
	ContinuousAlphaYNeg = 0.032
	ContinuousAlphaYPos = 0.024
)

// Basic span to effective depth ratios (Section 23.2.1 and 24.1 note 2)
const (
	SpanDepthCantilever       = 7.0
	SpanDepthSimple           = 20.0
	SpanDepthContinuous       = 26.0
	SpanDepthTwoWaySimple     = 28.0
	SpanDepthTwoWayContinuous = 32.0
)

// Permissible direct tensile stress in concrete for liquid retaining
// structures (IS 3370-2 Table 1), keyed by concrete grade (MPa)
var DirectTension = Table{
	X: []float64{20, 25, 30, 35, 40},
	Y: []float64{1.2, 1.3, 1.5, 1.6, 1.7},
}

// Permissible compressive stress in bending σcbc (IS 456 Table 21), MPa
var BendingCompression = Table{
	X: []float64{20, 25, 30, 35, 40},
	Y: []float64{7.0, 8.5, 10.0, 11.5, 13.0},
}

// ModularRatio is m = 280/(3·σcbc) (IS 456 Annex B-1.3)
func ModularRatio(fck float64) float64 {
	return 280 / (3 * BendingCompression.At(fck))
}

// TankMinSteelRatio is the minimum steel for liquid retaining sections
// (IS 3370-2 8.1): 0.35% at 100 mm reducing linearly to 0.2% at 450 mm.
func TankMinSteelRatio(thickness float64) float64 {
	t := Table{X: []float64{100, 450}, Y: []float64{0.0035, 0.002}}
	return t.At(thickness)
}

// Package rebar holds the reinforcing bar catalogue and the greedy bar
// selection shared by the solvers and the report formatter.
package rebar

import "math"

// Diameters are the candidate bar diameters (mm), ascending
var Diameters = []float64{8, 10, 12, 16, 20, 25, 32}

// Selection limits
const (
	MaxBars       = 6 // usability cap per layer
	MinBeamBars   = 2
	MinColumnBars = 4
	MaxSpacing    = 300.0 // mm
)

// Area of one bar (mm²)
func Area(dia float64) float64 {
	return math.Pi * dia * dia / 4
}

// UnitWeight is the mass of a bar per metre (kg/m), d²/162
func UnitWeight(dia float64) float64 {
	return dia * dia / 162
}

// Layout is a chosen group of identical bars
type Layout struct {
	Count    int     `json:"count"`
	Diameter float64 `json:"diameter"` // mm
	Area     float64 `json:"area"`     // mm², Count·Area(Diameter)
}

// Select picks the smallest diameter whose bar count to cover area is within
// MaxBars. It is a greedy first fit, not a cost optimum. When no diameter
// fits, the largest diameter is used with as many bars as needed, so the
// provided area always covers the request.
func Select(area float64) Layout {
	return selectBars(area, MinBeamBars, false)
}

// SelectColumn is Select for column longitudinal steel: at least four bars
// and an even count so that bars sit symmetrically on the faces.
func SelectColumn(area float64) Layout {
	return selectBars(area, MinColumnBars, true)
}

func selectBars(area float64, minCount int, even bool) Layout {
	if math.IsNaN(area) || area < 0 {
		area = 0
	}
	var l Layout
	for _, dia := range Diameters {
		l = layoutFor(area, dia, minCount, even)
		if l.Count <= MaxBars {
			return l
		}
	}
	return l
}

func layoutFor(area, dia float64, minCount int, even bool) Layout {
	a := Area(dia)
	n := int(math.Ceil(area/a - 1e-9))
	if n < minCount {
		n = minCount
	}
	if even && n%2 != 0 {
		n++
	}
	return Layout{Count: n, Diameter: dia, Area: float64(n) * a}
}

// Spacing is bar spacing for distributed reinforcement
type Spacing struct {
	Diameter     float64 `json:"diameter"`       // mm
	Spacing      float64 `json:"spacing"`        // mm c/c
	AreaPerMetre float64 `json:"area_per_metre"` // mm²/m
}

// SpaceBars returns the spacing of bars of the given diameter needed to
// provide areaPerMetre, rounded down to 10 mm and capped at maxSpacing.
func SpaceBars(areaPerMetre, dia, maxSpacing float64) Spacing {
	a := Area(dia)
	s := maxSpacing
	if areaPerMetre > 0 {
		s = math.Min(1000*a/areaPerMetre, maxSpacing)
	}
	s = math.Floor(s/10) * 10
	if s < 10 {
		s = 10
	}
	return Spacing{Diameter: dia, Spacing: s, AreaPerMetre: 1000 * a / s}
}

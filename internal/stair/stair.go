// Package stair designs a waist-slab staircase flight spanning
// longitudinally between landings, per metre width.
package stair

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/section"
)

const (
	strip = 1000.0 // mm

	// Comfortable going, 2R + T (mm)
	MinGoing = 550.0
	MaxGoing = 700.0
)

// Params describes one flight. Area loads are unfactored.
type Params struct {
	Span          float64 `json:"span"`         // effective horizontal span (m)
	Riser         float64 `json:"riser"`        // R (mm)
	Tread         float64 `json:"tread"`        // T (mm)
	Waist         float64 `json:"waist"`        // t (mm), 0 for span/20
	LiveLoad      float64 `json:"live_load"`    // kN/m²
	FloorFinish   float64 `json:"floor_finish"` // kN/m²
	Cover         float64 `json:"cover"`        // mm
	BarDiameter   float64 `json:"bar_diameter"` // mm
	ConcreteGrade int     `json:"concrete_grade"`
	SteelGrade    int     `json:"steel_grade"`
}

// Archetype implements engine.Params
func (p Params) Archetype() design.Archetype {
	return design.Staircase
}

// WaistThickness returns the given waist, or sizes one for an effective
// depth of span/20 rounded up to 10 mm
func (p Params) WaistThickness() float64 {
	if p.Waist > 0 {
		return p.Waist
	}
	d := p.Span * 1000 / is456.SpanDepthSimple
	return math.Ceil((d+p.Cover+p.barDiameter()/2)/10) * 10
}

func (p Params) barDiameter() float64 {
	if p.BarDiameter > 0 {
		return p.BarDiameter
	}
	return 12
}

// Validate reports the first rejected input
func (p Params) Validate() error {
	if err := design.RequirePositive(
		design.F("span", p.Span),
		design.F("riser", p.Riser),
		design.F("tread", p.Tread),
	); err != nil {
		return err
	}
	if err := design.RequireNonNegative(
		design.F("waist", p.Waist),
		design.F("live load", p.LiveLoad),
		design.F("floor finish", p.FloorFinish),
		design.F("cover", p.Cover),
		design.F("bar diameter", p.BarDiameter),
	); err != nil {
		return err
	}
	return design.RequirePositive(design.F("effective depth", p.WaistThickness()-p.Cover-p.barDiameter()/2))
}

// ServiceLoad is the unfactored load per plan area (kN/m²): the inclined
// waist, the step triangles, finish and live load
func (p Params) ServiceLoad() float64 {
	t := p.WaistThickness() / 1000
	R, T := p.Riser, p.Tread
	waist := is456.ConcreteUnitWeight * t * math.Hypot(R, T) / T
	steps := is456.ConcreteUnitWeight * R / 1000 / 2
	return waist + steps + p.FloorFinish + p.LiveLoad
}

// Solve designs the waist slab
func (p Params) Solve() design.Result {
	if err := p.Validate(); err != nil {
		return design.Invalid(design.Staircase, err)
	}

	mat, issues := design.ResolveMaterials(p.ConcreteGrade, p.SteelGrade)
	fck, fy := mat.Concrete.Strength, mat.Steel.Strength

	L := p.Span
	t := p.WaistThickness()
	d := t - p.Cover - p.barDiameter()/2
	w := is456.LoadFactor * p.ServiceLoad()

	res := design.Result{
		Archetype: design.Staircase,
		Valid:     true,
		Issues:    issues,
		Materials: mat,
		Forces: design.Forces{
			MaxMoment: w * L * L / 8,
			MaxShear:  w * L / 2,
			Reactions: design.Reactions{Left: w * L / 2, Right: w * L / 2},
		},
	}

	required, err := section.RequiredSteelArea(res.Forces.MaxMoment*1e6, fck, fy, strip, d)
	if err != nil {
		res.Valid = false
		res.Issues = append(res.Issues, err)
		res.Verdict = design.Verdict{Utilization: design.Saturated, Governing: "input"}
		return res
	}
	astMin := is456.MinSlabSteel(strip, t, fy)
	main := rebar.SpaceBars(math.Max(required, astMin), p.barDiameter(), math.Min(3*d, rebar.MaxSpacing))
	dist := rebar.SpaceBars(astMin, rebar.Diameters[0], math.Min(5*d, 450))

	mc := section.MomentCapacity(main.AreaPerMetre, fy, fck, strip, d)
	vc := section.ShearCapacity(fck, strip, d)
	if mc <= 0 || vc <= 0 {
		res.Issues = append(res.Issues, fmt.Errorf("%w: moment %.0f Nmm, shear %.0f N", design.ErrZeroCapacity, mc, vc))
	}

	res.Reinforcement = design.Reinforcement{
		AreaRequired:   required,
		AreaMinimum:    astMin,
		AreaProvided:   main.AreaPerMetre,
		BarCallout:     report.FormatSpacingLayout(main),
		BarDiameter:    main.Diameter,
		BarCount:       int(math.Ceil(strip / main.Spacing)),
		BarSpacing:     main.Spacing,
		MomentCapacity: mc,
		ShearCapacity:  vc,
		Utilization:    design.Utilization(res.Forces.MaxMoment*1e6, mc),
	}

	going := 2*p.Riser + p.Tread

	var c design.Checker
	c.Ratio("moment", res.Forces.MaxMoment, mc/1e6, "kNm/m")
	c.Ratio("shear", res.Forces.MaxShear, vc/1000, "kN/m")
	c.Ratio("span/depth", L*1000/d, is456.SpanDepthSimple, "")
	c.Range("going", going, MinGoing, MaxGoing, "mm")
	res.Verdict = c.Verdict()

	res.Quantities = []design.Quantity{
		{Name: "waist", Value: t, Unit: "mm"},
		{Name: "effective depth", Value: d, Unit: "mm"},
		{Name: "factored load", Value: w, Unit: "kN/m²"},
		{Name: "2R+T", Value: going, Unit: "mm"},
		{Name: "distribution steel", Value: dist.AreaPerMetre, Unit: "mm²/m", Note: report.FormatSpacingLayout(dist)},
	}
	return res
}

// Package tank designs the walls of an open rectangular water tank resting
// on the ground. Each wall is a vertical cantilever from the base that also
// carries direct tension from the adjoining walls.
package tank

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/section"
)

// WaterWeight is the unit weight of water (kN/m³)
const WaterWeight = 9.81

const strip = 1000.0

// Params describes the tank. Water pressure is factored by 1.5 for the
// limit state checks and used at service level for the crack check.
type Params struct {
	Height        float64 `json:"height"`    // water depth (m)
	Length        float64 `json:"length"`    // plan length (m)
	Width         float64 `json:"width"`     // plan width (m)
	Thickness     float64 `json:"thickness"` // wall (mm)
	Cover         float64 `json:"cover"`     // mm
	BarDiameter   float64 `json:"bar_diameter"`
	ConcreteGrade int     `json:"concrete_grade"`
	SteelGrade    int     `json:"steel_grade"`
}

// Archetype implements engine.Params
func (p Params) Archetype() design.Archetype {
	return design.WaterTank
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
		design.F("height", p.Height),
		design.F("length", p.Length),
		design.F("width", p.Width),
		design.F("thickness", p.Thickness),
	); err != nil {
		return err
	}
	if err := design.RequireNonNegative(
		design.F("cover", p.Cover),
		design.F("bar diameter", p.BarDiameter),
	); err != nil {
		return err
	}
	return design.RequirePositive(design.F("effective depth", p.Thickness-p.Cover-p.barDiameter()/2))
}

// DirectTension in a wall per metre height (kN) from water pressing on the
// walls at right angles to it. The longer plan dimension governs.
func (p Params) DirectTension() float64 {
	return WaterWeight * p.Height * math.Max(p.Length, p.Width) / 2
}

// TensileStress is the service stress in the uncracked section (MPa)
func TensileStress(tension, thickness, steel, fck float64) float64 {
	m := is456.ModularRatio(fck)
	return tension * 1000 / (strip*thickness + (m-1)*steel)
}

// Solve designs the governing wall
func (p Params) Solve() design.Result {
	if err := p.Validate(); err != nil {
		return design.Invalid(design.WaterTank, err)
	}

	mat, issues := design.ResolveMaterials(p.ConcreteGrade, p.SteelGrade)
	fck, fy := mat.Concrete.Strength, mat.Steel.Strength

	H, t := p.Height, p.Thickness
	d := t - p.Cover - p.barDiameter()/2

	mu := is456.LoadFactor * WaterWeight * H * H * H / 6
	vu := is456.LoadFactor * WaterWeight * H * H / 2
	T := p.DirectTension()

	res := design.Result{
		Archetype: design.WaterTank,
		Valid:     true,
		Issues:    issues,
		Materials: mat,
		Forces: design.Forces{
			MaxMoment: mu,
			MaxShear:  vu,
			Axial:     T,
		},
	}

	flexure, err := section.RequiredSteelArea(mu*1e6, fck, fy, strip, d)
	if err != nil {
		res.Valid = false
		res.Issues = append(res.Issues, err)
		res.Verdict = design.Verdict{Utilization: design.Saturated, Governing: "input"}
		return res
	}
	tension := is456.LoadFactor * T * 1000 / (is456.SteelStressFactor * fy)
	required := flexure + tension
	minRatio := is456.TankMinSteelRatio(t)
	astMin := minRatio * strip * t

	main := rebar.SpaceBars(math.Max(required, astMin), p.barDiameter(), math.Min(3*d, rebar.MaxSpacing))

	// Steel set aside for direct tension does not count towards bending
	mc := section.MomentCapacity(math.Max(main.AreaPerMetre-tension, 0), fy, fck, strip, d)
	vc := section.ShearCapacity(fck, strip, d)
	if mc <= 0 || vc <= 0 {
		res.Issues = append(res.Issues, fmt.Errorf("%w: moment %.0f Nmm, shear %.0f N", design.ErrZeroCapacity, mc, vc))
	}

	stress := TensileStress(T, t, main.AreaPerMetre, fck)
	allowable := is456.DirectTension.At(fck)

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
		Utilization:    design.Utilization(mu*1e6, mc),
	}

	var c design.Checker
	c.Ratio("moment", mu, mc/1e6, "kNm/m")
	c.Ratio("shear", vu, vc/1000, "kN/m")
	c.Ratio("crack", stress, allowable, "MPa")
	res.Verdict = c.Verdict()

	res.Quantities = []design.Quantity{
		{Name: "effective depth", Value: d, Unit: "mm"},
		{Name: "direct tension", Value: T, Unit: "kN/m"},
		{Name: "tension steel", Value: tension, Unit: "mm²/m"},
		{Name: "flexural steel", Value: flexure, Unit: "mm²/m"},
		{Name: "min steel ratio", Value: minRatio * 100, Unit: "%"},
		{Name: "modular ratio", Value: is456.ModularRatio(fck)},
		{Name: "tensile stress", Value: stress, Unit: "MPa"},
	}
	return res
}

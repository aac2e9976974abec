// Package footing designs isolated pad footings under a rectangular column.
package footing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/section"
)

// Sizing constants
const (
	SelfWeightFactor = 1.1   // service load plus footing self weight
	PlanStep         = 0.1   // plan dimensions round up to this (m)
	DepthStep        = 25.0  // depth grows in these steps (mm)
	MaxDepthSteps    = 80    // give up growing after this many steps
	MinDepth         = 300.0 // least sized overall depth (mm)
)

// Params describes a pad footing. The column load is unfactored.
type Params struct {
	Axial         float64 `json:"axial"`          // service column load P (kN)
	BearingSBC    float64 `json:"bearing_sbc"`    // safe bearing capacity (kN/m²)
	ColumnWidth   float64 `json:"column_width"`   // mm
	ColumnDepth   float64 `json:"column_depth"`   // mm
	Depth         float64 `json:"depth"`          // overall (mm), 0 to size from moment and shear
	Cover         float64 `json:"cover"`          // clear cover (mm)
	BarDiameter   float64 `json:"bar_diameter"`   // mm
	ConcreteGrade int     `json:"concrete_grade"`
	SteelGrade    int     `json:"steel_grade"`
}

// Archetype implements engine.Params
func (p Params) Archetype() design.Archetype {
	return design.Footing
}

// Validate reports the first rejected input
func (p Params) Validate() error {
	if err := design.RequirePositive(
		design.F("axial load", p.Axial),
		design.F("bearing capacity", p.BearingSBC),
		design.F("column width", p.ColumnWidth),
		design.F("column depth", p.ColumnDepth),
	); err != nil {
		return err
	}
	if err := design.RequireNonNegative(
		design.F("depth", p.Depth),
		design.F("cover", p.Cover),
		design.F("bar diameter", p.BarDiameter),
	); err != nil {
		return err
	}
	if p.Depth > 0 {
		return design.RequirePositive(design.F("effective depth", p.Depth-p.Cover-p.barDiameter()/2))
	}
	return nil
}

func (p Params) barDiameter() float64 {
	if p.BarDiameter > 0 {
		return p.BarDiameter
	}
	return 12
}

// columnSides returns the short and long column sides (m). The footing
// length L runs along the long side.
func (p Params) columnSides() (short, long float64) {
	short, long = p.ColumnWidth/1000, p.ColumnDepth/1000
	if short > long {
		short, long = long, short
	}
	return short, long
}

// Plan returns the footing width B and length L (m). The projections beyond
// the column faces are equal, so L − B equals the difference of the column
// sides. The pad never comes out smaller than the column.
func (p Params) Plan() (B, L float64) {
	area := SelfWeightFactor * p.Axial / p.BearingSBC
	short, long := p.columnSides()
	delta := long - short
	B = (-delta + math.Sqrt(delta*delta+4*area)) / 2
	B = roundUp(math.Max(B, short), PlanStep)
	L = roundUp(B+delta, PlanStep)
	return B, L
}

// roundUp rounds v up to a multiple of step, tolerating float noise
func roundUp(v, step float64) float64 {
	n := math.Ceil(v/step - 1e-9)
	return n * step
}

// actions holds the design actions for one trial depth
type actions struct {
	d           float64 // effective depth (mm)
	moment      float64 // governing cantilever moment (kNm)
	momentWidth float64 // width resisting it (mm)
	oneWay      float64 // kN
	oneWayCap   float64 // kN
	punching    float64 // kN
	punchingCap float64 // kN
}

func (p Params) actionsAt(D, qu, B, L, fck float64) actions {
	d := D - p.Cover - p.barDiameter()/2
	cb, cd := p.columnSides()
	aL := math.Max(L-cd, 0) / 2 // projection along L
	aB := math.Max(B-cb, 0) / 2 // projection along B
	tau := is456.ShearStrength(fck)
	dm := d / 1000

	a := actions{d: d}

	mL := qu * B * aL * aL / 2
	mB := qu * L * aB * aB / 2
	if mL >= mB {
		a.moment, a.momentWidth = mL, B*1000
	} else {
		a.moment, a.momentWidth = mB, L*1000
	}

	// One-way shear at d from the column face, whichever direction governs
	vL := qu * B * math.Max(aL-dm, 0)
	vB := qu * L * math.Max(aB-dm, 0)
	capL := tau * B * 1000 * d / 1000
	capB := tau * L * 1000 * d / 1000
	if design.Utilization(vL, capL) >= design.Utilization(vB, capB) {
		a.oneWay, a.oneWayCap = vL, capL
	} else {
		a.oneWay, a.oneWayCap = vB, capB
	}

	// Punching shear on the perimeter at d/2 from the column faces
	pb, pd := cb+dm, cd+dm
	a.punching = qu * math.Max(B*L-pb*pd, 0)
	perimeter := 2 * (pb + pd) * 1000
	a.punchingCap = tau * perimeter * d / 1000

	return a
}

func (a actions) shearPasses() bool {
	return design.Utilization(a.oneWay, a.oneWayCap) <= 1 &&
		design.Utilization(a.punching, a.punchingCap) <= 1
}

// Solve sizes the footing in plan and depth and designs its steel
func (p Params) Solve() design.Result {
	if err := p.Validate(); err != nil {
		return design.Invalid(design.Footing, err)
	}

	mat, issues := design.ResolveMaterials(p.ConcreteGrade, p.SteelGrade)
	fck, fy := mat.Concrete.Strength, mat.Steel.Strength

	B, L := p.Plan()
	pu := is456.LoadFactor * p.Axial
	qu := pu / (B * L)
	service := SelfWeightFactor * p.Axial / (B * L)

	D := p.Depth
	steps := 0
	if D == 0 {
		// Start from the balanced depth for the cantilever moment
		trial := p.actionsAt(MinDepth, qu, B, L, fck)
		dReq := math.Sqrt(trial.moment * 1e6 / (is456.LimitingMomentFactor * fck * trial.momentWidth))
		D = math.Max(roundUp(dReq+p.Cover+p.barDiameter()/2, DepthStep), MinDepth)
		for steps < MaxDepthSteps && !p.actionsAt(D, qu, B, L, fck).shearPasses() {
			D += DepthStep
			steps++
		}
	}
	a := p.actionsAt(D, qu, B, L, fck)

	res := design.Result{
		Archetype: design.Footing,
		Valid:     true,
		Issues:    issues,
		Materials: mat,
		Forces: design.Forces{
			Axial:     pu,
			MaxMoment: a.moment,
			MaxShear:  a.oneWay,
		},
	}

	required, err := section.RequiredSteelArea(a.moment*1e6, fck, fy, a.momentWidth, a.d)
	if err != nil {
		res.Valid = false
		res.Issues = append(res.Issues, err)
		res.Verdict = design.Verdict{Utilization: design.Saturated, Governing: "input"}
		return res
	}
	astMin := is456.MinSlabSteel(a.momentWidth, D, fy)
	widthM := a.momentWidth / 1000
	bars := rebar.SpaceBars(math.Max(required, astMin)/widthM, p.barDiameter(), math.Min(3*a.d, rebar.MaxSpacing))
	provided := bars.AreaPerMetre * widthM

	mc := section.MomentCapacity(provided, fy, fck, a.momentWidth, a.d)
	if mc <= 0 || a.oneWayCap <= 0 || a.punchingCap <= 0 {
		res.Issues = append(res.Issues, fmt.Errorf("%w: moment %.0f Nmm, shear %.1f/%.1f kN",
			design.ErrZeroCapacity, mc, a.oneWayCap, a.punchingCap))
	}

	res.Reinforcement = design.Reinforcement{
		AreaRequired:   required,
		AreaMinimum:    astMin,
		AreaProvided:   provided,
		BarCallout:     report.FormatSpacingLayout(bars) + " both ways",
		BarDiameter:    bars.Diameter,
		BarCount:       int(math.Floor(a.momentWidth/bars.Spacing)) + 1,
		BarSpacing:     bars.Spacing,
		MomentCapacity: mc,
		ShearCapacity:  a.oneWayCap * 1000,
		Utilization:    design.Utilization(a.moment*1e6, mc),
	}

	var c design.Checker
	c.Ratio("bearing", service, p.BearingSBC, "kN/m²")
	c.Ratio("moment", a.moment, mc/1e6, "kNm")
	c.Ratio("one-way shear", a.oneWay, a.oneWayCap, "kN")
	c.Ratio("punching shear", a.punching, a.punchingCap, "kN")
	res.Verdict = c.Verdict()

	res.Quantities = []design.Quantity{
		{Name: "footing width", Value: B, Unit: "m"},
		{Name: "footing length", Value: L, Unit: "m"},
		{Name: "overall depth", Value: D, Unit: "mm"},
		{Name: "effective depth", Value: a.d, Unit: "mm"},
		{Name: "factored pressure", Value: qu, Unit: "kN/m²"},
		{Name: "punching shear", Value: a.punching, Unit: "kN"},
		{Name: "depth steps", Value: float64(steps)},
	}
	return res
}

// Package wall designs cantilever retaining walls: stem flexure and shear
// plus overall stability of the wall on its base.
package wall

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/section"
)

// Stability limits
const (
	MinOverturningFOS = 1.4
	MinSlidingFOS     = 1.4

	DefaultFriction = 0.5 // base friction coefficient μ
	BaseWidthRatio  = 0.6 // default base width / height
	strip           = 1000.0
)

// Params describes a wall retaining level backfill. Loads are service
// values; stem actions are factored by 1.5.
type Params struct {
	Height        float64 `json:"height"`         // retained height to the underside of the base (m)
	StemThickness float64 `json:"stem_thickness"` // mm, also used for the base slab
	BaseWidth     float64 `json:"base_width"`     // m, 0 for 0.6·H
	SoilWeight    float64 `json:"soil_weight"`    // γ (kN/m³)
	FrictionAngle float64 `json:"friction_angle"` // φ (degrees)
	Surcharge     float64 `json:"surcharge"`      // q (kN/m²)
	BearingSBC    float64 `json:"bearing_sbc"`    // kN/m²
	Friction      float64 `json:"friction"`       // μ, 0 for 0.5
	Cover         float64 `json:"cover"`          // mm
	BarDiameter   float64 `json:"bar_diameter"`   // mm
	ConcreteGrade int     `json:"concrete_grade"`
	SteelGrade    int     `json:"steel_grade"`
}

// Archetype implements engine.Params
func (p Params) Archetype() design.Archetype {
	return design.RetainingWall
}

// Ka is the Rankine active pressure coefficient (1 − sinφ)/(1 + sinφ)
func Ka(phiDegrees float64) float64 {
	s := math.Sin(phiDegrees * math.Pi / 180)
	return (1 - s) / (1 + s)
}

// Base returns the base width B, toe and heel lengths (m). The toe is B/3.
func (p Params) Base() (B, toe, heel float64) {
	B = p.BaseWidth
	if B == 0 {
		B = math.Ceil(BaseWidthRatio*p.Height*10-1e-9) / 10
	}
	toe = B / 3
	heel = B - toe - p.StemThickness/1000
	return B, toe, heel
}

func (p Params) friction() float64 {
	if p.Friction == 0 {
		return DefaultFriction
	}
	return p.Friction
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
		design.F("stem thickness", p.StemThickness),
		design.F("soil weight", p.SoilWeight),
		design.F("friction angle", p.FrictionAngle),
		design.F("bearing capacity", p.BearingSBC),
	); err != nil {
		return err
	}
	if err := design.RequireNonNegative(
		design.F("base width", p.BaseWidth),
		design.F("surcharge", p.Surcharge),
		design.F("friction", p.Friction),
		design.F("cover", p.Cover),
		design.F("bar diameter", p.BarDiameter),
	); err != nil {
		return err
	}
	if p.FrictionAngle >= 90 {
		return fmt.Errorf("%w: friction angle %.1f° must be below 90°", design.ErrInvalidInput, p.FrictionAngle)
	}
	_, _, heel := p.Base()
	return design.RequirePositive(
		design.F("stem height", p.Height-p.StemThickness/1000),
		design.F("heel", heel),
		design.F("effective depth", p.StemThickness-p.Cover-p.barDiameter()/2),
	)
}

// Stability is the result of the rigid-body checks per metre run
type Stability struct {
	Weight       float64 // total vertical load (kN)
	Resisting    float64 // moment about the toe (kNm)
	Overturning  float64 // moment about the toe (kNm)
	Sliding      float64 // horizontal thrust (kN)
	Overturn     float64 // factor of safety
	Slide        float64 // factor of safety
	Eccentricity float64 // of the base reaction from the base centre (m)
	MaxPressure  float64 // kN/m²
	MinPressure  float64 // kN/m²
}

// Stability computes overturning, sliding and base pressure with the stem,
// base slab, soil over the heel and surcharge over the heel resisting.
func (p Params) Stability() Stability {
	H := p.Height
	ka := Ka(p.FrictionAngle)
	gamma, q := p.SoilWeight, p.Surcharge
	ts := p.StemThickness / 1000
	tb := ts
	h := H - tb
	B, toe, heel := p.Base()

	type force struct{ w, x float64 }
	loads := []force{
		{is456.ConcreteUnitWeight * ts * h, toe + ts/2},
		{is456.ConcreteUnitWeight * tb * B, B / 2},
		{gamma * heel * h, toe + ts + heel/2},
		{q * heel, toe + ts + heel/2},
	}

	var s Stability
	for _, f := range loads {
		s.Weight += f.w
		s.Resisting += f.w * f.x
	}
	s.Overturning = ka*gamma*H*H*H/6 + ka*q*H*H/2
	s.Sliding = ka*gamma*H*H/2 + ka*q*H

	s.Overturn = design.Saturated
	if s.Overturning > 0 {
		s.Overturn = s.Resisting / s.Overturning
	}
	s.Slide = design.Saturated
	if s.Sliding > 0 {
		s.Slide = p.friction() * s.Weight / s.Sliding
	}

	xbar := (s.Resisting - s.Overturning) / s.Weight
	s.Eccentricity = B/2 - xbar
	s.MaxPressure = s.Weight / B * (1 + 6*s.Eccentricity/B)
	s.MinPressure = s.Weight / B * (1 - 6*s.Eccentricity/B)
	return s
}

// Solve designs the stem and checks stability
func (p Params) Solve() design.Result {
	if err := p.Validate(); err != nil {
		return design.Invalid(design.RetainingWall, err)
	}

	mat, issues := design.ResolveMaterials(p.ConcreteGrade, p.SteelGrade)
	fck, fy := mat.Concrete.Strength, mat.Steel.Strength

	ka := Ka(p.FrictionAngle)
	gamma, q := p.SoilWeight, p.Surcharge
	t := p.StemThickness
	h := p.Height - t/1000
	d := t - p.Cover - p.barDiameter()/2

	mu := is456.LoadFactor * (ka*gamma*h*h*h/6 + ka*q*h*h/2)
	vu := is456.LoadFactor * (ka*gamma*h*h/2 + ka*q*h)

	st := p.Stability()
	B, toe, heel := p.Base()

	res := design.Result{
		Archetype: design.RetainingWall,
		Valid:     true,
		Issues:    issues,
		Materials: mat,
		Forces: design.Forces{
			MaxMoment: mu,
			MaxShear:  vu,
			Axial:     st.Weight,
		},
	}

	required, err := section.RequiredSteelArea(mu*1e6, fck, fy, strip, d)
	if err != nil {
		res.Valid = false
		res.Issues = append(res.Issues, err)
		res.Verdict = design.Verdict{Utilization: design.Saturated, Governing: "input"}
		return res
	}
	astMin := is456.MinSlabSteel(strip, t, fy)
	main := rebar.SpaceBars(math.Max(required, astMin), p.barDiameter(), math.Min(3*d, rebar.MaxSpacing))

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
		Utilization:    design.Utilization(mu*1e6, mc),
	}

	var c design.Checker
	c.Ratio("stem moment", mu, mc/1e6, "kNm/m")
	c.Ratio("stem shear", vu, vc/1000, "kN/m")
	c.Minimum("overturning", st.Overturn, MinOverturningFOS, "")
	c.Minimum("sliding", st.Slide, MinSlidingFOS, "")
	c.Ratio("bearing", st.MaxPressure, p.BearingSBC, "kN/m²")
	c.Ratio("eccentricity", math.Abs(st.Eccentricity), B/6, "m")
	res.Verdict = c.Verdict()

	res.Quantities = []design.Quantity{
		{Name: "Ka", Value: ka},
		{Name: "base width", Value: B, Unit: "m"},
		{Name: "toe", Value: toe, Unit: "m"},
		{Name: "heel", Value: heel, Unit: "m"},
		{Name: "overturning FOS", Value: st.Overturn},
		{Name: "sliding FOS", Value: st.Slide},
		{Name: "max base pressure", Value: st.MaxPressure, Unit: "kN/m²"},
		{Name: "min base pressure", Value: st.MinPressure, Unit: "kN/m²"},
	}
	return res
}

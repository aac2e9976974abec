// Package steel checks doubly symmetric I-sections under combined axial
// compression, major-axis bending and shear (IS 800:2007 limit state).
package steel

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/section"
)

// SlendernessLimit for members carrying compression from dead and imposed
// loads
const SlendernessLimit = 180.0

// UnitMass of structural steel (kg/m³)
const UnitMass = 7850.0

// Params describes the member and its factored actions
type Params struct {
	FlangeWidth     float64 `json:"flange_width"`     // bf (mm)
	FlangeThickness float64 `json:"flange_thickness"` // tf (mm)
	Depth           float64 `json:"depth"`            // h (mm)
	WebThickness    float64 `json:"web_thickness"`    // tw (mm)
	Length          float64 `json:"length"`           // m
	EffectiveLength float64 `json:"effective_length"` // factor K, 0 means 1
	Axial           float64 `json:"axial"`            // kN
	Moment          float64 `json:"moment"`           // kNm
	Shear           float64 `json:"shear"`            // kN
	SteelGrade      int     `json:"steel_grade"`
}

// Archetype implements engine.Params
func (p Params) Archetype() design.Archetype {
	return design.SteelSection
}

// Section builds the outline of the member
func (p Params) Section() section.Polygon {
	return section.ISection(p.FlangeWidth, p.FlangeThickness, p.Depth, p.WebThickness)
}

func (p Params) effectiveLengthFactor() float64 {
	if p.EffectiveLength == 0 {
		return 1
	}
	return p.EffectiveLength
}

// Validate reports the first rejected input
func (p Params) Validate() error {
	if err := design.RequirePositive(
		design.F("flange width", p.FlangeWidth),
		design.F("flange thickness", p.FlangeThickness),
		design.F("depth", p.Depth),
		design.F("web thickness", p.WebThickness),
		design.F("length", p.Length),
	); err != nil {
		return err
	}
	if err := design.RequireNonNegative(
		design.F("effective length factor", p.EffectiveLength),
		design.F("axial", p.Axial),
		design.F("moment", p.Moment),
		design.F("shear", p.Shear),
	); err != nil {
		return err
	}
	if 2*p.FlangeThickness >= p.Depth || p.WebThickness > p.FlangeWidth {
		return fmt.Errorf("%w: flanges %.1f×%.1f and web %.1f do not form an I-section of depth %.1f",
			design.ErrInvalidGeometry, p.FlangeWidth, p.FlangeThickness, p.WebThickness, p.Depth)
	}
	return nil
}

// Solve checks the member
func (p Params) Solve() design.Result {
	if err := p.Validate(); err != nil {
		return design.Invalid(design.SteelSection, err)
	}

	mat, issues := design.ResolveSteel(p.SteelGrade)
	fy := mat.Steel.Strength

	poly := p.Section()
	props := poly.Properties()
	rmin := props.Rmin()
	if rmin <= 0 {
		res := design.Invalid(design.SteelSection, fmt.Errorf("%w: zero radius of gyration", design.ErrDegenerateSection))
		res.Materials = mat
		return res
	}

	lambda := p.effectiveLengthFactor() * p.Length * 1000 / rmin
	fcd := section.BucklingStress(lambda, fy)
	zp := poly.PlasticModulus()

	pd := fcd * props.Area / 1000
	md := fy * zp / section.GammaM0 / 1e6
	vd := fy * p.Depth * p.WebThickness / (math.Sqrt(3) * section.GammaM0) / 1000

	res := design.Result{
		Archetype: design.SteelSection,
		Valid:     true,
		Issues:    issues,
		Materials: mat,
		Forces: design.Forces{
			Axial:     p.Axial,
			MaxMoment: p.Moment,
			MaxShear:  p.Shear,
		},
	}
	if pd <= 0 || md <= 0 || vd <= 0 {
		res.Issues = append(res.Issues, fmt.Errorf("%w: Pd=%.1f kN, Md=%.1f kNm, Vd=%.1f kN", design.ErrZeroCapacity, pd, md, vd))
	}

	interaction := design.Utilization(p.Axial, pd) + design.Utilization(p.Moment, md)
	res.Reinforcement = design.Reinforcement{
		MomentCapacity: md * 1e6,
		ShearCapacity:  vd * 1000,
		Utilization:    math.Min(interaction, design.Saturated),
	}

	var c design.Checker
	c.Ratio("axial", p.Axial, pd, "kN")
	c.Ratio("flexure", p.Moment, md, "kNm")
	c.Ratio("shear", p.Shear, vd, "kN")
	c.Ratio("interaction", interaction, 1, "")
	c.Ratio("slenderness", lambda, SlendernessLimit, "")
	res.Verdict = c.Verdict()

	res.Quantities = []design.Quantity{
		{Name: "area", Value: props.Area, Unit: "mm²"},
		{Name: "Ixx", Value: props.Ixx, Unit: "mm⁴"},
		{Name: "rmin", Value: rmin, Unit: "mm"},
		{Name: "slenderness", Value: lambda},
		{Name: "design stress", Value: fcd, Unit: "MPa"},
		{Name: "plastic modulus", Value: zp, Unit: "mm³"},
		{Name: "self weight", Value: props.Area * UnitMass / 1e6, Unit: "kg/m"},
	}
	return res
}

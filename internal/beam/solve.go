package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/section"
)

// Minimum shear reinforcement: two-legged 8 mm stirrups
const (
	StirrupDiameter = 8.0
	StirrupLegs     = 2
)

// Solve designs the beam for flexure and checks shear and deflection
func (p Params) Solve() design.Result {
	if err := p.Validate(); err != nil {
		return design.Invalid(design.Beam, err)
	}

	mat, issues := design.ResolveMaterials(p.ConcreteGrade, p.SteelGrade)
	fck, fy := mat.Concrete.Strength, mat.Steel.Strength

	res := design.Result{
		Archetype: design.Beam,
		Valid:     true,
		Issues:    issues,
		Materials: mat,
		Forces:    p.Forces(mat.Concrete.Modulus),
	}

	b, D := p.Width, p.Depth
	d := p.EffectiveDepth()
	dc := p.CompressionCover
	if dc == 0 {
		dc = is456.CompressionCover
	}

	mu := res.Forces.MaxMoment * 1e6
	flex, err := section.DesignFlexure(mu, fck, fy, b, d, dc)
	if err != nil {
		res.Valid = false
		res.Issues = append(res.Issues, err)
		res.Verdict = design.Verdict{Utilization: design.Saturated, Governing: "moment"}
		return res
	}
	if flex.Degenerate {
		res.Issues = append(res.Issues, fmt.Errorf("%w: lever-arm radicand clamped at zero", design.ErrDegenerateSection))
	}

	astMin := is456.MinTensionSteel(b, d, fy)
	tension := rebar.Select(math.Max(flex.Tension, astMin))

	rf := design.Reinforcement{
		AreaRequired: flex.Tension,
		AreaMinimum:  astMin,
		AreaProvided: tension.Area,
		BarCallout:   report.FormatLayout(tension),
		BarDiameter:  tension.Diameter,
		BarCount:     tension.Count,
	}

	if flex.Doubly {
		compression := rebar.Select(flex.Compression)
		rf.AreaCompression = compression.Area
		rf.BarCallout += " + " + report.FormatLayout(compression) + " top"
		rf.MomentCapacity = section.DoublyMomentCapacity(tension.Area, flex.Ast1, fy, fck, b, d, dc)
	} else {
		rf.MomentCapacity = section.MomentCapacity(tension.Area, fy, fck, b, d)
	}
	rf.ShearCapacity = section.ShearCapacity(fck, b, d)
	if rf.MomentCapacity <= 0 || rf.ShearCapacity <= 0 {
		res.Issues = append(res.Issues, fmt.Errorf("%w: moment %.0f Nmm, shear %.0f N", design.ErrZeroCapacity, rf.MomentCapacity, rf.ShearCapacity))
	}
	rf.Utilization = design.Utilization(mu, rf.MomentCapacity)
	res.Reinforcement = rf

	var c design.Checker
	c.Ratio("moment", res.Forces.MaxMoment, rf.MomentCapacity/1e6, "kNm")
	c.Ratio("shear", res.Forces.MaxShear, rf.ShearCapacity/1000, "kN")
	c.Strict("deflection", res.Forces.MaxDeflection, p.Span*1000/is456.DeflectionRatio, "mm")
	c.Ratio("max tension steel", rf.AreaProvided, is456.MaxTensionRatio*b*D, "mm²")
	if rf.AreaCompression > 0 {
		c.Ratio("max compression steel", rf.AreaCompression, is456.MaxCompressionRatio*b*D, "mm²")
	}
	res.Verdict = c.Verdict()

	res.Quantities = []design.Quantity{
		{Name: "effective depth", Value: d, Unit: "mm"},
		{Name: "limiting moment", Value: flex.Limit / 1e6, Unit: "kNm"},
		stirrups(fy, b, d),
	}
	if flex.Doubly {
		res.Quantities = append(res.Quantities, design.Quantity{
			Name: "compression steel", Value: flex.Compression, Unit: "mm²", Note: "doubly reinforced",
		})
	}

	return res
}

// stirrups returns the spacing of minimum shear reinforcement,
// min(0.87·fy·Asv/(0.4·b), 0.75·d, 300)
func stirrups(fy, b, d float64) design.Quantity {
	asv := StirrupLegs * rebar.Area(StirrupDiameter)
	sv := math.Min(is456.SteelStressFactor*fy*asv/(0.4*b), 0.75*d)
	sv = math.Min(sv, rebar.MaxSpacing)
	sv = math.Floor(sv/10) * 10
	return design.Quantity{
		Name:  "stirrup spacing",
		Value: sv,
		Unit:  "mm",
		Note:  "2L-T8 @ " + report.Num(sv, 0) + " c/c",
	}
}

// Package column solves short and slender rectangular tied columns under
// axial load with biaxial bending.
package column

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/section"
)

// Coefficients of the short-column axial capacity
const (
	ConcreteAxialFactor = 0.4
	SteelAxialFactor    = 0.67
)

// Params describes a rectangular tied column. Loads are factored.
type Params struct {
	Width           float64 `json:"width"`            // b (mm)
	Depth           float64 `json:"depth"`            // D (mm), along the major axis
	Length          float64 `json:"length"`           // unsupported length (m)
	EffectiveLength float64 `json:"effective_length"` // factor k, 0 means 1
	Axial           float64 `json:"axial"`            // Pu (kN)
	MomentX         float64 `json:"moment_x"`         // Mux about the major axis (kNm)
	MomentY         float64 `json:"moment_y"`         // Muy about the minor axis (kNm)
	Cover           float64 `json:"cover"`            // clear cover (mm)
	BarDiameter     float64 `json:"bar_diameter"`     // mm
	ConcreteGrade   int     `json:"concrete_grade"`
	SteelGrade      int     `json:"steel_grade"`
}

// Archetype implements engine.Params
func (p Params) Archetype() design.Archetype {
	return design.Column
}

func (p Params) effectiveLengthFactor() float64 {
	if p.EffectiveLength == 0 {
		return 1
	}
	return p.EffectiveLength
}

// Slenderness is Leff / least lateral dimension
func (p Params) Slenderness() float64 {
	return p.effectiveLengthFactor() * p.Length * 1000 / math.Min(p.Width, p.Depth)
}

// Validate reports the first rejected input
func (p Params) Validate() error {
	if err := design.RequirePositive(
		design.F("width", p.Width),
		design.F("depth", p.Depth),
	); err != nil {
		return err
	}
	if err := design.RequireNonNegative(
		design.F("length", p.Length),
		design.F("effective length factor", p.EffectiveLength),
		design.F("axial load", p.Axial),
		design.F("moment x", p.MomentX),
		design.F("moment y", p.MomentY),
		design.F("cover", p.Cover),
		design.F("bar diameter", p.BarDiameter),
	); err != nil {
		return err
	}
	inset := p.Cover + p.BarDiameter/2
	return design.RequirePositive(
		design.F("effective depth x", p.Depth-inset),
		design.F("effective depth y", p.Width-inset),
	)
}

// AxialCapacity is 0.4·fck·Ag + 0.67·fy·Asc (N)
func AxialCapacity(fck, fy, ag, asc float64) float64 {
	return ConcreteAxialFactor*fck*ag + SteelAxialFactor*fy*asc
}

// AxialSteel is the steel needed for the axial load alone (mm²), never
// negative
func AxialSteel(pu, fck, fy, ag float64) float64 {
	return math.Max(0, (pu-ConcreteAxialFactor*fck*ag)/(SteelAxialFactor*fy-ConcreteAxialFactor*fck))
}

// Solve sizes the longitudinal steel and checks the column
func (p Params) Solve() design.Result {
	if err := p.Validate(); err != nil {
		return design.Invalid(design.Column, err)
	}

	mat, issues := design.ResolveMaterials(p.ConcreteGrade, p.SteelGrade)
	fck, fy := mat.Concrete.Strength, mat.Steel.Strength

	b, D := p.Width, p.Depth
	ag := b * D
	lmm := p.Length * 1000
	inset := p.Cover + p.BarDiameter/2
	dx, dy := D-inset, b-inset

	// Moments are at least the axial load at the minimum eccentricity
	ex := is456.MinEccentricity(lmm, D)
	ey := is456.MinEccentricity(lmm, b)
	mux := math.Max(p.MomentX, p.Axial*ex/1000)
	muy := math.Max(p.MomentY, p.Axial*ey/1000)

	res := design.Result{
		Archetype: design.Column,
		Valid:     true,
		Issues:    issues,
		Materials: mat,
		Forces: design.Forces{
			Axial:     p.Axial,
			MaxMoment: math.Max(mux, muy),
		},
	}

	pu := p.Axial * 1000
	ascAxial := AxialSteel(pu, fck, fy, ag)
	astX, errX := section.RequiredSteelArea(mux*1e6, fck, fy, b, dx)
	astY, errY := section.RequiredSteelArea(muy*1e6, fck, fy, D, dy)
	for _, err := range []error{errX, errY} {
		if err != nil {
			res.Valid = false
			res.Issues = append(res.Issues, err)
		}
	}
	if !res.Valid {
		res.Verdict = design.Verdict{Utilization: design.Saturated, Governing: "input"}
		return res
	}

	ascMin := is456.ColumnMinSteel * ag
	ascMax := is456.ColumnMaxSteel * ag
	required := math.Max(ascAxial, math.Max(astX, astY))
	asc := math.Min(math.Max(required, ascMin), ascMax)
	if required > ascMax {
		res.Issues = append(res.Issues, fmt.Errorf("%w: steel demand %.0f mm² above 4%% of Ag, capped at %.0f mm²",
			design.ErrDegenerateSection, required, ascMax))
	}

	bars := rebar.SelectColumn(asc)
	pc := AxialCapacity(fck, fy, ag, asc)

	// Each face carries half of the provided steel in bending
	face := bars.Area / 2
	mcx := section.MomentCapacity(face, fy, fck, b, dx)
	mcy := section.MomentCapacity(face, fy, fck, D, dy)
	if pc <= 0 || mcx <= 0 || mcy <= 0 {
		res.Issues = append(res.Issues, fmt.Errorf("%w: Pc=%.0f N, Mcx=%.0f Nmm, Mcy=%.0f Nmm", design.ErrZeroCapacity, pc, mcx, mcy))
	}

	res.Reinforcement = design.Reinforcement{
		AreaRequired:   asc,
		AreaMinimum:    ascMin,
		AreaProvided:   bars.Area,
		BarCallout:     report.FormatLayout(bars),
		BarDiameter:    bars.Diameter,
		BarCount:       bars.Count,
		MomentCapacity: mcx,
		ShearCapacity:  section.ShearCapacity(fck, b, dx),
		Utilization:    design.Utilization(pu, pc),
	}

	interaction := design.Utilization(mux*1e6, mcx) + design.Utilization(muy*1e6, mcy)
	lambda := p.Slenderness()

	var c design.Checker
	c.Ratio("axial", p.Axial, pc/1000, "kN")
	c.Range("steel percentage", 100*bars.Area/ag, 100*is456.ColumnMinSteel, 100*is456.ColumnMaxSteel, "%")
	c.Ratio("biaxial", interaction, 1, "")
	c.Ratio("slenderness", lambda, is456.SlendernessLimit, "")
	res.Verdict = c.Verdict()

	kind := "short"
	if lambda >= is456.ShortColumnLimit {
		kind = "slender"
	}
	res.Quantities = []design.Quantity{
		{Name: "short column", Value: boolValue(lambda < is456.ShortColumnLimit), Note: kind},
		{Name: "slenderness", Value: lambda},
		{Name: "axial steel", Value: ascAxial, Unit: "mm²"},
		{Name: "steel demand", Value: required, Unit: "mm²", Note: "before the 0.8% to 4% limits"},
		{Name: "min eccentricity x", Value: ex, Unit: "mm"},
		{Name: "min eccentricity y", Value: ey, Unit: "mm"},
		{Name: "design moment x", Value: mux, Unit: "kNm"},
		{Name: "design moment y", Value: muy, Unit: "kNm"},
		ties(bars.Diameter, b, D),
	}
	return res
}

// TieDiameter is 8 mm unless a quarter of the main bar is larger
func TieDiameter(dia float64) float64 {
	if dia/4 > 8 {
		return 10
	}
	return 8
}

// ties returns lateral tie spacing, the least of the least lateral
// dimension, 16 bar diameters and 300 mm
func ties(dia, b, D float64) design.Quantity {
	tie := TieDiameter(dia)
	s := math.Min(math.Min(b, D), math.Min(16*dia, rebar.MaxSpacing))
	s = math.Floor(s/5) * 5
	return design.Quantity{
		Name:  "tie spacing",
		Value: s,
		Unit:  "mm",
		Note:  fmt.Sprintf("T%s @ %s c/c", report.Num(tie, 0), report.Num(s, 0)),
	}
}

func boolValue(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

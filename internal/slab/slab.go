// Package slab designs one-way and two-way solid slabs per metre width.
package slab

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/section"
)

// Strip is the design width of a slab (mm)
const Strip = 1000.0

// MinDepth is the least overall depth a sized slab gets (mm)
const MinDepth = 100.0

// TwoWayLimit is the largest Ly/Lx designed as a two-way slab
const TwoWayLimit = 2.0

// Edge is the support condition of the panel
type Edge int

const (
	Simple Edge = iota
	Continuous
	Cantilever
)

var edgeNames = [...]string{"simply-supported", "continuous", "cantilever"}

func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return fmt.Sprintf("edge(%d)", int(e))
	}
	return edgeNames[e]
}

// ParseEdge accepts the names printed by String
func ParseEdge(v string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "simply-supported", "simply", "simple", "ss", "":
		return Simple, nil
	case "continuous", "cont":
		return Continuous, nil
	case "cantilever", "cant":
		return Cantilever, nil
	}
	return 0, fmt.Errorf("%w: slab support %q", design.ErrInvalidInput, v)
}

func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Edge) UnmarshalText(text []byte) error {
	v, err := ParseEdge(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Params describes a slab panel. Area loads are unfactored service loads.
type Params struct {
	Support       Edge    `json:"support"`
	ShortSpan     float64 `json:"short_span"` // Lx (m)
	LongSpan      float64 `json:"long_span"`  // Ly (m), 0 for a one-way strip
	Depth         float64 `json:"depth"`      // overall (mm), 0 to size from span/depth
	LiveLoad      float64 `json:"live_load"`  // kN/m²
	FloorFinish   float64 `json:"floor_finish"`
	Cover         float64 `json:"cover"`        // clear cover (mm)
	BarDiameter   float64 `json:"bar_diameter"` // mm
	ConcreteGrade int     `json:"concrete_grade"`
	SteelGrade    int     `json:"steel_grade"`
}

// Archetype implements engine.Params
func (p Params) Archetype() design.Archetype {
	return design.Slab
}

// spans returns the short and long span with Lx ≤ Ly
func (p Params) spans() (lx, ly float64) {
	lx, ly = p.ShortSpan, p.LongSpan
	if ly > 0 && ly < lx {
		lx, ly = ly, lx
	}
	return lx, ly
}

// TwoWay reports whether the panel spans in both directions
func (p Params) TwoWay() bool {
	lx, ly := p.spans()
	return p.Support != Cantilever && ly > 0 && ly/lx <= TwoWayLimit
}

// SpanDepthRatio is the basic span to effective depth ratio for the panel
func (p Params) SpanDepthRatio() float64 {
	switch {
	case p.Support == Cantilever:
		return is456.SpanDepthCantilever
	case p.TwoWay() && p.Support == Continuous:
		return is456.SpanDepthTwoWayContinuous
	case p.TwoWay():
		return is456.SpanDepthTwoWaySimple
	case p.Support == Continuous:
		return is456.SpanDepthContinuous
	default:
		return is456.SpanDepthSimple
	}
}

// OverallDepth returns the given depth, or sizes one from the span/depth
// ratio rounded up to 10 mm
func (p Params) OverallDepth() float64 {
	if p.Depth > 0 {
		return p.Depth
	}
	lx, _ := p.spans()
	d := lx * 1000 / p.SpanDepthRatio()
	D := math.Ceil((d+p.Cover+p.barDiameter()/2)/10) * 10
	return math.Max(D, MinDepth)
}

// Validate reports the first rejected input
func (p Params) Validate() error {
	if p.Support < Simple || p.Support > Cantilever {
		return fmt.Errorf("%w: support %d", design.ErrInvalidInput, int(p.Support))
	}
	if err := design.RequirePositive(design.F("short span", p.ShortSpan)); err != nil {
		return err
	}
	if err := design.RequireNonNegative(
		design.F("long span", p.LongSpan),
		design.F("depth", p.Depth),
		design.F("live load", p.LiveLoad),
		design.F("floor finish", p.FloorFinish),
		design.F("cover", p.Cover),
		design.F("bar diameter", p.BarDiameter),
	); err != nil {
		return err
	}
	return design.RequirePositive(design.F("effective depth", p.OverallDepth()-p.Cover-p.barDiameter()/2))
}

// Moments per metre width (kNm/m) for factored area load w (kN/m²)
type Moments struct {
	ShortPositive float64
	ShortNegative float64
	LongPositive  float64
	LongNegative  float64
}

// Short is the governing short-span moment
func (m Moments) Short() float64 {
	return math.Max(m.ShortPositive, m.ShortNegative)
}

// Long is the governing long-span moment
func (m Moments) Long() float64 {
	return math.Max(m.LongPositive, m.LongNegative)
}

// Moments returns the design moments for factored load w
func (p Params) Moments(w float64) Moments {
	lx, ly := p.spans()
	wl2 := w * lx * lx

	if p.TwoWay() {
		r := ly / lx
		if p.Support == Continuous {
			return Moments{
				ShortPositive: is456.ContinuousAlphaXPos.At(r) * wl2,
				ShortNegative: is456.ContinuousAlphaXNeg.At(r) * wl2,
				LongPositive:  is456.ContinuousAlphaYPos * wl2,
				LongNegative:  is456.ContinuousAlphaYNeg * wl2,
			}
		}
		return Moments{
			ShortPositive: is456.SimpleAlphaX.At(r) * wl2,
			LongPositive:  is456.SimpleAlphaY.At(r) * wl2,
		}
	}

	switch p.Support {
	case Continuous:
		return Moments{ShortPositive: wl2 / 12, ShortNegative: wl2 / 10}
	case Cantilever:
		return Moments{ShortNegative: wl2 / 2}
	default:
		return Moments{ShortPositive: wl2 / 8}
	}
}

// Shear per metre width (kN/m) for factored load w
func (p Params) Shear(w float64) float64 {
	lx, _ := p.spans()
	switch {
	case p.TwoWay():
		return w * lx / 2
	case p.Support == Continuous:
		return 0.6 * w * lx
	case p.Support == Cantilever:
		return w * lx
	default:
		return w * lx / 2
	}
}

// deflectionCoefficient of the strip analogy
func (p Params) deflectionCoefficient() float64 {
	switch p.Support {
	case Continuous:
		return 1.0 / 185
	case Cantilever:
		return 1.0 / 8
	default:
		return 5.0 / 384
	}
}

// Solve sizes the slab and its steel
func (p Params) Solve() design.Result {
	if err := p.Validate(); err != nil {
		return design.Invalid(design.Slab, err)
	}

	mat, issues := design.ResolveMaterials(p.ConcreteGrade, p.SteelGrade)
	fck, fy := mat.Concrete.Strength, mat.Steel.Strength

	lx, ly := p.spans()
	D := p.OverallDepth()
	d := D - p.Cover - p.barDiameter()/2

	service := is456.ConcreteUnitWeight*D/1000 + p.FloorFinish + p.LiveLoad
	w := is456.LoadFactor * service

	m := p.Moments(w)
	v := p.Shear(w)

	// Strip analogy deflection on the service load, 1 m strip
	E := mat.Concrete.Modulus * 1000
	I := section.MomentOfInertia(1, D/1000)
	delta := p.deflectionCoefficient() * service * math.Pow(lx, 4) / (E * I) * 1000

	res := design.Result{
		Archetype: design.Slab,
		Valid:     true,
		Issues:    issues,
		Materials: mat,
		Forces: design.Forces{
			MaxMoment:     m.Short(),
			MaxShear:      v,
			MaxDeflection: delta,
		},
	}

	astMin := is456.MinSlabSteel(Strip, D, fy)
	maxSpacing := math.Min(3*d, rebar.MaxSpacing)

	required, err := section.RequiredSteelArea(m.Short()*1e6, fck, fy, Strip, d)
	if err != nil {
		res.Valid = false
		res.Issues = append(res.Issues, err)
		res.Verdict = design.Verdict{Utilization: design.Saturated, Governing: "input"}
		return res
	}
	main := rebar.SpaceBars(math.Max(required, astMin), p.barDiameter(), maxSpacing)

	mc := section.MomentCapacity(main.AreaPerMetre, fy, fck, Strip, d)
	vc := section.ShearCapacity(fck, Strip, d)
	if mc <= 0 || vc <= 0 {
		res.Issues = append(res.Issues, fmt.Errorf("%w: moment %.0f Nmm, shear %.0f N", design.ErrZeroCapacity, mc, vc))
	}

	res.Reinforcement = design.Reinforcement{
		AreaRequired:   required,
		AreaMinimum:    astMin,
		AreaProvided:   main.AreaPerMetre,
		BarCallout:     report.FormatSpacingLayout(main),
		BarDiameter:    main.Diameter,
		BarCount:       int(math.Ceil(Strip / main.Spacing)),
		BarSpacing:     main.Spacing,
		MomentCapacity: mc,
		ShearCapacity:  vc,
		Utilization:    design.Utilization(m.Short()*1e6, mc),
	}

	var c design.Checker
	c.Ratio("moment", m.Short(), mc/1e6, "kNm/m")
	c.Ratio("shear", v, vc/1000, "kN/m")
	c.Ratio("span/depth", lx*1000/d, p.SpanDepthRatio(), "")
	c.Strict("deflection", delta, lx*1000/is456.DeflectionRatio, "mm")

	res.Quantities = []design.Quantity{
		{Name: "overall depth", Value: D, Unit: "mm"},
		{Name: "effective depth", Value: d, Unit: "mm"},
		{Name: "factored load", Value: w, Unit: "kN/m²"},
	}

	if p.TwoWay() {
		// Long-span bars sit inside the short-span layer
		dy := d - p.barDiameter()
		longReq, err := section.RequiredSteelArea(m.Long()*1e6, fck, fy, Strip, dy)
		if err != nil {
			res.Issues = append(res.Issues, err)
			longReq = 0
		}
		long := rebar.SpaceBars(math.Max(longReq, astMin), p.barDiameter(), maxSpacing)
		mcy := section.MomentCapacity(long.AreaPerMetre, fy, fck, Strip, dy)
		c.Ratio("long-span moment", m.Long(), mcy/1e6, "kNm/m")
		res.Quantities = append(res.Quantities,
			design.Quantity{Name: "ly/lx", Value: ly / lx, Note: "two-way"},
			design.Quantity{Name: "long-span moment", Value: m.Long(), Unit: "kNm/m"},
			design.Quantity{Name: "long-span steel", Value: long.AreaPerMetre, Unit: "mm²/m", Note: report.FormatSpacingLayout(long)},
		)
	} else {
		dist := rebar.SpaceBars(astMin, rebar.Diameters[0], math.Min(5*d, 450))
		res.Quantities = append(res.Quantities,
			design.Quantity{Name: "distribution steel", Value: dist.AreaPerMetre, Unit: "mm²/m", Note: report.FormatSpacingLayout(dist)},
		)
	}

	res.Verdict = c.Verdict()
	return res
}

func (p Params) barDiameter() float64 {
	if p.BarDiameter > 0 {
		return p.BarDiameter
	}
	return 10
}

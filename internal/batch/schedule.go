package batch

import (
	"math"

	"github.com/alexiusacademia/gorcd/internal/beam"
	"github.com/alexiusacademia/gorcd/internal/column"
	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/footing"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/alexiusacademia/gorcd/internal/slab"
)

// Detailing allowances (IS 2502): a 90° bend at each end of main bars and
// 24 bar diameters of hooks on stirrups and ties
const (
	EndAnchorage = 12.0
	LinkHooks    = 24.0
	LapSplice    = 50.0
)

// BarMark is one line of a bar bending schedule
type BarMark struct {
	Member   string
	Mark     string
	Shape    string
	Diameter float64 // mm
	Count    int
	Length   float64 // cut length of one bar (m)
}

// TotalLength of all bars of the mark (m)
func (b BarMark) TotalLength() float64 {
	return float64(b.Count) * b.Length
}

// Weight of all bars of the mark (kg)
func (b BarMark) Weight() float64 {
	return b.TotalLength() * rebar.UnitWeight(b.Diameter)
}

// Schedule lists the bars of a solved member. Members without detailed bars
// (walls, tanks, stairs, steel sections, mixes) and invalid results give nil.
func Schedule(r Row) []BarMark {
	if !r.Result.Valid {
		return nil
	}
	switch p := r.Params.(type) {
	case *beam.Params:
		return beamBars(r.Label, *p, r.Result)
	case beam.Params:
		return beamBars(r.Label, p, r.Result)
	case *column.Params:
		return columnBars(r.Label, *p, r.Result)
	case column.Params:
		return columnBars(r.Label, p, r.Result)
	case *slab.Params:
		return slabBars(r.Label, *p, r.Result)
	case slab.Params:
		return slabBars(r.Label, p, r.Result)
	case *footing.Params:
		return footingBars(r.Label, *p, r.Result)
	case footing.Params:
		return footingBars(r.Label, p, r.Result)
	}
	return nil
}

func straight(span, cover, dia float64) float64 {
	return (span - 2*cover + 2*EndAnchorage*dia) / 1000
}

func link(b, D, cover, dia float64) float64 {
	return (2*((b-2*cover)+(D-2*cover)) + LinkHooks*dia) / 1000
}

func linkCount(length, spacing float64) int {
	if spacing <= 0 {
		return 0
	}
	return int(math.Floor(length/spacing)) + 1
}

func beamBars(label string, p beam.Params, res design.Result) []BarMark {
	rf := res.Reinforcement
	span := p.Length() * 1000

	marks := []BarMark{{
		Member:   label,
		Mark:     "B1",
		Shape:    "bottom straight",
		Diameter: rf.BarDiameter,
		Count:    rf.BarCount,
		Length:   straight(span, p.Cover, rf.BarDiameter),
	}}

	if q, ok := res.Quantity("compression steel"); ok {
		top := rebar.Select(q.Value)
		marks = append(marks, BarMark{
			Member:   label,
			Mark:     "B2",
			Shape:    "top straight",
			Diameter: top.Diameter,
			Count:    top.Count,
			Length:   straight(span, p.Cover, top.Diameter),
		})
	}

	if q, ok := res.Quantity("stirrup spacing"); ok {
		marks = append(marks, BarMark{
			Member:   label,
			Mark:     "S1",
			Shape:    "closed stirrup",
			Diameter: beam.StirrupDiameter,
			Count:    linkCount(span, q.Value),
			Length:   link(p.Width, p.Depth, p.Cover, beam.StirrupDiameter),
		})
	}
	return marks
}

func columnBars(label string, p column.Params, res design.Result) []BarMark {
	rf := res.Reinforcement
	height := p.Length * 1000

	marks := []BarMark{{
		Member:   label,
		Mark:     "C1",
		Shape:    "vertical with lap",
		Diameter: rf.BarDiameter,
		Count:    rf.BarCount,
		Length:   (height + LapSplice*rf.BarDiameter) / 1000,
	}}

	if q, ok := res.Quantity("tie spacing"); ok {
		tie := column.TieDiameter(rf.BarDiameter)
		marks = append(marks, BarMark{
			Member:   label,
			Mark:     "T1",
			Shape:    "closed tie",
			Diameter: tie,
			Count:    linkCount(height, q.Value),
			Length:   link(p.Width, p.Depth, p.Cover, tie),
		})
	}
	return marks
}

func slabBars(label string, p slab.Params, res design.Result) []BarMark {
	rf := res.Reinforcement
	lx := math.Min(p.ShortSpan, p.LongSpan)
	ly := math.Max(p.ShortSpan, p.LongSpan)
	if p.LongSpan == 0 {
		lx, ly = p.ShortSpan, 1
	}

	marks := []BarMark{{
		Member:   label,
		Mark:     "S1",
		Shape:    "short span straight",
		Diameter: rf.BarDiameter,
		Count:    linkCount(ly*1000, rf.BarSpacing),
		Length:   straight(lx*1000, p.Cover, rf.BarDiameter),
	}}

	q, ok := res.Quantity("long-span steel")
	if !ok {
		q, ok = res.Quantity("distribution steel")
	}
	if ok && q.Value > 0 {
		s := rebar.SpaceBars(q.Value, rf.BarDiameter, rebar.MaxSpacing)
		marks = append(marks, BarMark{
			Member:   label,
			Mark:     "S2",
			Shape:    "long span straight",
			Diameter: s.Diameter,
			Count:    linkCount(lx*1000, s.Spacing),
			Length:   straight(ly*1000, p.Cover, s.Diameter),
		})
	}
	return marks
}

func footingBars(label string, p footing.Params, res design.Result) []BarMark {
	rf := res.Reinforcement
	B, _ := res.Quantity("footing width")
	L, _ := res.Quantity("footing length")

	// Bars each way across the pad
	return []BarMark{
		{
			Member:   label,
			Mark:     "F1",
			Shape:    "bottom straight, along length",
			Diameter: rf.BarDiameter,
			Count:    rf.BarCount,
			Length:   straight(L.Value*1000, p.Cover, rf.BarDiameter),
		},
		{
			Member:   label,
			Mark:     "F2",
			Shape:    "bottom straight, along width",
			Diameter: rf.BarDiameter,
			Count:    rf.BarCount,
			Length:   straight(B.Value*1000, p.Cover, rf.BarDiameter),
		},
	}
}

// Package report turns solver results into display-ready strings, diagram
// samples and printable calculation sheets. Nothing here changes a result.
package report

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/rebar"
	"github.com/shopspring/decimal"
)

// Round applies the display rounding policy: half away from zero at the
// given number of decimal places. Non-finite values are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Num formats v with the display rounding policy
func Num(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return decimal.NewFromFloat(v).Round(places).StringFixed(places)
}

// FormatReinforcement picks bars for an area and describes them,
// e.g. "4 - T16 bars (804 mm²)"
func FormatReinforcement(area float64) string {
	return FormatLayout(rebar.Select(area))
}

// FormatLayout describes a chosen group of bars
func FormatLayout(l rebar.Layout) string {
	return fmt.Sprintf("%d - T%s bars (%s mm²)", l.Count, Num(l.Diameter, 0), Num(l.Area, 0))
}

// FormatSpacing describes distributed bars for an area per metre width,
// e.g. "T10 @ 150 c/c (524 mm²/m)"
func FormatSpacing(areaPerMetre, dia float64) string {
	return FormatSpacingLayout(rebar.SpaceBars(areaPerMetre, dia, rebar.MaxSpacing))
}

// FormatSpacingLayout describes an already chosen bar spacing
func FormatSpacingLayout(s rebar.Spacing) string {
	return fmt.Sprintf("T%s @ %s c/c (%s mm²/m)", Num(s.Diameter, 0), Num(s.Spacing, 0), Num(s.AreaPerMetre, 0))
}

// FormatVerdict maps a verdict to fixed PASS/FAIL phrasing with the governing
// ratio appended
func FormatVerdict(v design.Verdict) string {
	if v.IsSafe {
		return fmt.Sprintf("PASS (utilization %s)", Num(v.Utilization, 2))
	}
	if v.Governing == "" {
		return fmt.Sprintf("FAIL (utilization %s)", Num(v.Utilization, 2))
	}
	return fmt.Sprintf("FAIL (utilization %s, governing: %s)", Num(v.Utilization, 2), v.Governing)
}

// FormatCheck renders one check as a single line
func FormatCheck(c design.Check) string {
	status := "PASS"
	if !c.Pass {
		status = "FAIL"
	}
	unit := ""
	if c.Unit != "" {
		unit = " " + c.Unit
	}
	return fmt.Sprintf("%-16s %s / %s%s  (%s)  %s",
		c.Name, Num(c.Demand, 2), Num(c.Capacity, 2), unit, Num(c.Ratio, 2), status)
}

// Samples returns n+1 evenly spaced points of f over [0, length]. The
// sequence is finite and can be ranged over any number of times.
func Samples(length float64, n int, f func(x float64) float64) iter.Seq[design.Point] {
	return func(yield func(design.Point) bool) {
		if n < 1 || !(length > 0) {
			return
		}
		for i := 0; i <= n; i++ {
			x := length * float64(i) / float64(n)
			if !yield(design.Point{X: x, Y: f(x)}) {
				return
			}
		}
	}
}

// Collect gathers a point sequence into parallel x/y slices
func Collect(seq iter.Seq[design.Point]) (xs, ys []float64) {
	for p := range seq {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	return xs, ys
}

// MaterialNames joins the grades a solver used, e.g. "M25 / Fe500"
func MaterialNames(m design.Materials) string {
	var names []string
	if m.Concrete.Label != 0 {
		names = append(names, m.Concrete.Name())
	}
	if m.Steel.Label != 0 {
		names = append(names, m.Steel.Name())
	}
	return strings.Join(names, " / ")
}

// Summary lists the headline numbers of a result, one per line
func Summary(r design.Result) []string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Member: %s", r.Archetype))
	if !r.Valid {
		lines = append(lines, "Status: INVALID INPUT")
		for _, err := range r.Issues {
			lines = append(lines, "  "+err.Error())
		}
		return lines
	}

	if names := MaterialNames(r.Materials); names != "" {
		lines = append(lines, "Materials: "+names)
	}

	f := r.Forces
	if f.MaxMoment != 0 || f.MaxShear != 0 || f.Axial != 0 {
		lines = append(lines,
			fmt.Sprintf("Max moment: %s kNm", Num(f.MaxMoment, 2)),
			fmt.Sprintf("Max shear: %s kN", Num(f.MaxShear, 2)))
		if f.Axial != 0 {
			lines = append(lines, fmt.Sprintf("Axial force: %s kN", Num(f.Axial, 2)))
		}
		if f.MaxDeflection != 0 {
			lines = append(lines, fmt.Sprintf("Max deflection: %s mm", Num(f.MaxDeflection, 2)))
		}
	}

	rf := r.Reinforcement
	if rf.BarCallout != "" {
		lines = append(lines,
			fmt.Sprintf("Steel required: %s mm²", Num(rf.AreaRequired, 0)),
			fmt.Sprintf("Steel minimum: %s mm²", Num(rf.AreaMinimum, 0)),
			fmt.Sprintf("Steel provided: %s", rf.BarCallout))
	}

	for _, q := range r.Quantities {
		line := fmt.Sprintf("%s: %s %s", q.Name, Num(q.Value, 2), q.Unit)
		if q.Note != "" {
			line += " (" + q.Note + ")"
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	lines = append(lines, "Verdict: "+FormatVerdict(r.Verdict))
	return lines
}

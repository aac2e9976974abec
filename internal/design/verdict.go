package design

import (
	"fmt"

	"github.com/alexiusacademia/gorcd/internal/material"
)

// Checker collects checks and derives a Verdict from them. A member is safe
// only if every check passes; every check is reported.
type Checker struct {
	checks []Check
}

// Ratio adds a check that passes when demand/capacity ≤ 1
func (c *Checker) Ratio(name string, demand, capacity float64, unit string) {
	r := Utilization(demand, capacity)
	c.checks = append(c.checks, Check{
		Name:     name,
		Pass:     r <= 1,
		Demand:   demand,
		Capacity: capacity,
		Ratio:    r,
		Unit:     unit,
	})
}

// Strict adds a check that passes only when demand < limit
func (c *Checker) Strict(name string, demand, limit float64, unit string) {
	r := Utilization(demand, limit)
	c.checks = append(c.checks, Check{
		Name:     name,
		Pass:     r < 1,
		Demand:   demand,
		Capacity: limit,
		Ratio:    r,
		Unit:     unit,
	})
}

// Minimum adds a check that passes when value ≥ required. The ratio is
// required/value so that values below 1 are adequate.
func (c *Checker) Minimum(name string, value, required float64, unit string) {
	r := Utilization(required, value)
	c.checks = append(c.checks, Check{
		Name:     name,
		Pass:     r <= 1,
		Demand:   required,
		Capacity: value,
		Ratio:    r,
		Unit:     unit,
	})
}

// Range adds a check that passes when lo ≤ value ≤ hi. Its ratio is the
// distance outside the band relative to the violated bound.
func (c *Checker) Range(name string, value, lo, hi float64, unit string) {
	pass := value >= lo && value <= hi
	var r float64
	switch {
	case value > hi:
		r = Utilization(value, hi)
	case value < lo:
		r = Utilization(lo, value)
	default:
		r = Utilization(value, hi)
	}
	c.checks = append(c.checks, Check{
		Name:     name,
		Pass:     pass,
		Demand:   value,
		Capacity: hi,
		Ratio:    r,
		Unit:     unit,
	})
}

// Verdict derives the verdict from the collected checks
func (c *Checker) Verdict() Verdict {
	v := Verdict{IsSafe: len(c.checks) > 0, Checks: c.checks}
	for _, ch := range c.checks {
		if !ch.Pass {
			v.IsSafe = false
		}
		if ch.Ratio > v.Utilization || v.Governing == "" {
			v.Utilization = ch.Ratio
			v.Governing = ch.Name
		}
	}
	return v
}

// ResolveMaterials looks up both grades and returns an issue for each one
// that fell back to a substitute.
func ResolveMaterials(concrete, steel int) (Materials, []error) {
	m, issues := ResolveConcrete(concrete)
	s, steelIssues := ResolveSteel(steel)
	m.Steel, m.SteelFallback = s.Steel, s.SteelFallback
	return m, append(issues, steelIssues...)
}

// ResolveSteel looks up a structural steel grade alone, for members without
// concrete.
func ResolveSteel(steel int) (Materials, []error) {
	var issues []error
	m := Materials{}
	var ok bool

	m.Steel, ok = material.SteelGrade(steel)
	if !ok {
		m.SteelFallback = true
		issues = append(issues, fmt.Errorf("%w: steel Fe%d, using %s", ErrInvalidMaterialGrade, steel, m.Steel.Name()))
	}
	return m, issues
}

// ResolveConcrete looks up a concrete grade alone, for mix proportioning
func ResolveConcrete(concrete int) (Materials, []error) {
	var issues []error
	m := Materials{}
	var ok bool

	m.Concrete, ok = material.ConcreteGrade(concrete)
	if !ok {
		m.ConcreteFallback = true
		issues = append(issues, fmt.Errorf("%w: concrete M%d, using %s", ErrInvalidMaterialGrade, concrete, m.Concrete.Name()))
	}
	return m, issues
}

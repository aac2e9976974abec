package design

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/material"
)

// Archetype identifies a member solver
type Archetype int

const (
	Beam Archetype = iota + 1
	Column
	Slab
	Footing
	Staircase
	RetainingWall
	WaterTank
	SteelSection
	MixDesign
)

var archetypeNames = map[Archetype]string{
	Beam:          "beam",
	Column:        "column",
	Slab:          "slab",
	Footing:       "footing",
	Staircase:     "stair",
	RetainingWall: "wall",
	WaterTank:     "tank",
	SteelSection:  "steel",
	MixDesign:     "mix",
}

// Archetypes lists every archetype in declaration order
func Archetypes() []Archetype {
	return []Archetype{Beam, Column, Slab, Footing, Staircase, RetainingWall, WaterTank, SteelSection, MixDesign}
}

func (a Archetype) String() string {
	if s, ok := archetypeNames[a]; ok {
		return s
	}
	return fmt.Sprintf("archetype(%d)", int(a))
}

// Valid reports whether a names a known solver
func (a Archetype) Valid() bool {
	_, ok := archetypeNames[a]
	return ok
}

// ParseArchetype resolves a command/file key such as "beam" or "wall"
func ParseArchetype(s string) (Archetype, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a, name := range archetypeNames {
		if name == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, s)
}

// Saturated is the utilization reported when a capacity is zero or
// negative. It is finite and always fails.
const Saturated = 999.0

// Utilization returns demand/capacity, or Saturated when the capacity is not
// strictly positive or either value is not finite.
func Utilization(demand, capacity float64) float64 {
	if !isFinite(demand) || !isFinite(capacity) || capacity <= 0 {
		return Saturated
	}
	r := demand / capacity
	if r > Saturated {
		return Saturated
	}
	return r
}

// Reactions at the supports (kN)
type Reactions struct {
	Left   float64 `json:"left"`
	Middle float64 `json:"middle,omitempty"`
	Right  float64 `json:"right"`
}

// Forces are the internal actions of a member
type Forces struct {
	MaxShear      float64   `json:"max_shear"`      // kN
	MaxMoment     float64   `json:"max_moment"`     // kNm
	MaxDeflection float64   `json:"max_deflection"` // mm
	Axial         float64   `json:"axial"`          // kN
	Reactions     Reactions `json:"reactions"`
}

// Reinforcement is the steel demand and resulting section capacity
type Reinforcement struct {
	AreaRequired    float64 `json:"area_required"`    // mm² (or mm²/m for slabs)
	AreaMinimum     float64 `json:"area_minimum"`     // mm²
	AreaProvided    float64 `json:"area_provided"`    // mm²
	AreaCompression float64 `json:"area_compression"` // mm², doubly reinforced only
	BarCallout      string  `json:"bar_callout"`
	BarDiameter     float64 `json:"bar_diameter"` // mm
	BarCount        int     `json:"bar_count"`
	BarSpacing      float64 `json:"bar_spacing,omitempty"` // mm c/c for slabs and walls
	MomentCapacity  float64 `json:"moment_capacity"`       // Nmm
	ShearCapacity   float64 `json:"shear_capacity"`        // N
	Utilization     float64 `json:"utilization"`
}

// Check is one named pass/fail test of the verdict
type Check struct {
	Name     string  `json:"name"`
	Pass     bool    `json:"pass"`
	Demand   float64 `json:"demand"`
	Capacity float64 `json:"capacity"`
	Ratio    float64 `json:"ratio"`
	Unit     string  `json:"unit,omitempty"`
}

// Verdict combines every check of a member
type Verdict struct {
	IsSafe      bool    `json:"is_safe"`
	Utilization float64 `json:"utilization"`
	Governing   string  `json:"governing"`
	Checks      []Check `json:"checks"`
}

// Map returns check name → pass
func (v Verdict) Map() map[string]bool {
	m := make(map[string]bool, len(v.Checks))
	for _, c := range v.Checks {
		m[c.Name] = c.Pass
	}
	return m
}

// Check returns the named check
func (v Verdict) Check(name string) (Check, bool) {
	for _, c := range v.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Quantity is a named auxiliary output such as a slab depth or a mix
// proportion
type Quantity struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Note  string  `json:"note,omitempty"`
}

// Materials records the grades actually used by a solver
type Materials struct {
	Concrete         material.Grade `json:"concrete"`
	Steel            material.Grade `json:"steel"`
	ConcreteFallback bool           `json:"concrete_fallback"`
	SteelFallback    bool           `json:"steel_fallback"`
}

// Result is what every member solver returns
type Result struct {
	Archetype     Archetype     `json:"archetype"`
	Valid         bool          `json:"valid"`
	Issues        []error       `json:"-"`
	Materials     Materials     `json:"materials"`
	Forces        Forces        `json:"forces"`
	Reinforcement Reinforcement `json:"reinforcement"`
	Verdict       Verdict       `json:"verdict"`
	Quantities    []Quantity    `json:"quantities,omitempty"`
}

// Has reports whether an issue of the given kind was recorded
func (r *Result) Has(kind error) bool {
	for _, err := range r.Issues {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// Quantity returns the named quantity
func (r *Result) Quantity(name string) (Quantity, bool) {
	for _, q := range r.Quantities {
		if q.Name == name {
			return q, true
		}
	}
	return Quantity{}, false
}

// Point is one sample of a shear or moment diagram
type Point struct {
	X float64 `json:"x"` // m from the left support
	Y float64 `json:"y"` // kN or kNm
}

// Invalid builds the result returned when the inputs are rejected
func Invalid(a Archetype, err error) Result {
	return Result{
		Archetype: a,
		Valid:     false,
		Issues:    []error{err},
		Verdict: Verdict{
			IsSafe:      false,
			Utilization: Saturated,
			Governing:   "input",
		},
	}
}

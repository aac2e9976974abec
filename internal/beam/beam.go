// Package beam solves rectangular reinforced concrete beams under a factored
// uniformly distributed load and an optional point load.
package beam

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/section"
)

// Support is the support condition of a beam
type Support int

const (
	SimplySupported Support = iota
	Cantilever              // fixed at the left end, free at the right
	Fixed                   // fixed at both ends
	Continuous              // two equal spans over three supports
)

var supportNames = [...]string{"simply-supported", "cantilever", "fixed", "continuous"}

func (s Support) String() string {
	if s < 0 || int(s) >= len(supportNames) {
		return fmt.Sprintf("support(%d)", int(s))
	}
	return supportNames[s]
}

// ParseSupport accepts the names printed by String plus a few short forms
func ParseSupport(v string) (Support, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "simply-supported", "simply", "simple", "ss", "":
		return SimplySupported, nil
	case "cantilever", "cant":
		return Cantilever, nil
	case "fixed", "fixed-fixed":
		return Fixed, nil
	case "continuous", "cont":
		return Continuous, nil
	}
	return 0, fmt.Errorf("%w: support %q", design.ErrInvalidInput, v)
}

func (s Support) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Support) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	v, err := ParseSupport(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Params describes a beam. Loads are factored design loads.
type Params struct {
	Support          Support `json:"support"`
	Span             float64 `json:"span"`              // m (each span for continuous beams)
	UDL              float64 `json:"udl"`               // kN/m
	PointLoad        float64 `json:"point_load"`        // kN
	PointPosition    float64 `json:"point_position"`    // m from the left support
	Width            float64 `json:"width"`             // mm
	Depth            float64 `json:"depth"`             // overall depth (mm)
	Cover            float64 `json:"cover"`             // clear cover (mm)
	BarDiameter      float64 `json:"bar_diameter"`      // main bar (mm)
	CompressionCover float64 `json:"compression_cover"` // d' (mm), 0 means 50
	ConcreteGrade    int     `json:"concrete_grade"`
	SteelGrade       int     `json:"steel_grade"`
}

// Archetype implements engine.Params
func (p Params) Archetype() design.Archetype {
	return design.Beam
}

// EffectiveDepth is D − cover − bar/2 (mm)
func (p Params) EffectiveDepth() float64 {
	return p.Depth - p.Cover - p.BarDiameter/2
}

// Length is the sampled length of the beam (m), both spans for continuous
// beams
func (p Params) Length() float64 {
	if p.Support == Continuous {
		return 2 * p.Span
	}
	return p.Span
}

// Validate reports the first rejected input
func (p Params) Validate() error {
	if p.Support < SimplySupported || p.Support > Continuous {
		return fmt.Errorf("%w: support %d", design.ErrInvalidInput, int(p.Support))
	}
	if err := design.RequirePositive(
		design.F("span", p.Span),
		design.F("width", p.Width),
		design.F("depth", p.Depth),
	); err != nil {
		return err
	}
	if err := design.RequireNonNegative(
		design.F("udl", p.UDL),
		design.F("point load", p.PointLoad),
		design.F("cover", p.Cover),
		design.F("bar diameter", p.BarDiameter),
		design.F("compression cover", p.CompressionCover),
	); err != nil {
		return err
	}
	if err := design.RequirePositive(design.F("effective depth", p.EffectiveDepth())); err != nil {
		return err
	}
	if p.PointLoad > 0 {
		if p.Support == Continuous {
			return fmt.Errorf("%w: continuous beams take a uniform load only", design.ErrInvalidInput)
		}
		a := p.PointPosition
		if math.IsNaN(a) || a < 0 || a > p.Span {
			return fmt.Errorf("%w: point position %.3g outside span 0..%.3g m", design.ErrInvalidGeometry, a, p.Span)
		}
	}
	return nil
}

// reactions returns the left and right support reactions (kN). For
// continuous beams these are the end reactions.
func (p Params) reactions() (left, right float64) {
	w, L, P, a := p.UDL, p.Span, p.PointLoad, p.PointPosition
	b := L - a
	switch p.Support {
	case Cantilever:
		return w*L + P, 0
	case Fixed:
		return w*L/2 + P*b*b*(3*a+b)/(L*L*L), w*L/2 + P*a*a*(a+3*b)/(L*L*L)
	case Continuous:
		return 3 * w * L / 8, 3 * w * L / 8
	default:
		return w*L/2 + P*b/L, w*L/2 + P*a/L
	}
}

// fixedEndMoment is the hogging moment at the left support of a fixed beam
// (kNm)
func (p Params) fixedEndMoment() float64 {
	w, L, P, a := p.UDL, p.Span, p.PointLoad, p.PointPosition
	b := L - a
	return w*L*L/12 + P*a*b*b/(L*L)
}

// ShearAt is the shear force at x metres from the left end (kN)
func (p Params) ShearAt(x float64) float64 {
	w, L, P, a := p.UDL, p.Span, p.PointLoad, p.PointPosition
	left, _ := p.reactions()

	switch p.Support {
	case Cantilever:
		v := w * (L - x)
		if x < a {
			v += P
		}
		return v
	case Continuous:
		if x > L {
			return -p.ShearAt(2*L - x)
		}
		return left - w*x
	default:
		v := left - w*x
		if x > a {
			v -= P
		}
		return v
	}
}

// MomentAt is the bending moment at x metres from the left end, sagging
// positive (kNm)
func (p Params) MomentAt(x float64) float64 {
	w, L, P, a := p.UDL, p.Span, p.PointLoad, p.PointPosition
	left, _ := p.reactions()

	switch p.Support {
	case Cantilever:
		m := w * (L - x) * (L - x) / 2
		if x < a {
			m += P * (a - x)
		}
		return -m
	case Continuous:
		if x > L {
			return p.MomentAt(2*L - x)
		}
		return left*x - w*x*x/2
	default:
		m := left*x - w*x*x/2
		if x > a {
			m -= P * (x - a)
		}
		if p.Support == Fixed {
			m -= p.fixedEndMoment()
		}
		return m
	}
}

// Forces computes reactions, maximum shear, maximum moment and maximum
// deflection from the closed-form expressions of the support condition.
// ec is the concrete modulus in MPa.
func (p Params) Forces(ec float64) design.Forces {
	w, L, P, a := p.UDL, p.Span, p.PointLoad, p.PointPosition
	b := L - a

	// kN/m² and m⁴ so that deflections come out in metres
	E := ec * 1000
	I := section.MomentOfInertia(p.Width/1000, p.Depth/1000)
	EI := E * I

	left, right := p.reactions()
	f := design.Forces{Reactions: design.Reactions{Left: left, Right: right}}

	var delta float64
	switch p.Support {
	case Cantilever:
		f.MaxShear = left
		f.MaxMoment = w*L*L/2 + P*a
		delta = w*L*L*L*L/(8*EI) + P*a*a*a/(3*EI)
	case Fixed:
		f.MaxShear = math.Max(left, right)
		f.MaxMoment = w*L*L/12 + math.Max(P*a*b*b, P*a*a*b)/(L*L)
		delta = w*L*L*L*L/(384*EI) + P*a*a*a*b*b*b/(3*EI*L*L*L)
	case Continuous:
		f.Reactions.Middle = 10 * w * L / 8
		f.MaxShear = 5 * w * L / 8
		f.MaxMoment = w * L * L / 8
		delta = w * L * L * L * L / (185 * EI)
	default:
		f.MaxShear = math.Max(left, right)
		f.MaxMoment = w*L*L/8 + P*a*b/L
		an := math.Min(a, b)
		delta = 5*w*L*L*L*L/(384*EI) + P*an*(3*L*L-4*an*an)/(48*EI)
	}
	f.MaxDeflection = delta * 1000
	return f
}

package section

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/is456"
)

// Steel modulus used by the column curve (MPa)
const Es = 200000.0

// Buckling class c imperfection factor and the IS 800 partial safety factor
// for yielding.
const (
	ImperfectionFactor = 0.49
	GammaM0            = 1.1
)

// leverCoefficient is the coefficient of the lever-arm quadratic derived from
// the stress block, 4·0.416/0.36.
const leverCoefficient = 4 * is456.CentroidFactor / is456.StressBlockFactor

// GeometryError reports a section dimension that cannot be designed
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string {
	return e.msg
}

// Unwrap lets errors.Is match design.ErrInvalidGeometry
func (e *GeometryError) Unwrap() error {
	return design.ErrInvalidGeometry
}

func geometryErrorf(format string, args ...any) error {
	return &GeometryError{msg: "invalid geometry: " + fmt.Sprintf(format, args...)}
}

// MomentOfInertia of a rectangle b×D about its centroidal axis. Units follow
// the inputs (m in, m⁴ out).
func MomentOfInertia(b, D float64) float64 {
	return b * D * D * D / 12
}

// LimitingMomentCapacity is the balanced singly reinforced capacity
// 0.138·fck·b·d² (Nmm for MPa and mm)
func LimitingMomentCapacity(fck, b, d float64) float64 {
	return is456.LimitingMomentFactor * fck * b * d * d
}

// Flexure holds the tension and compression steel needed for a moment
type Flexure struct {
	Moment      float64 // Mu (Nmm)
	Limit       float64 // Mu,lim (Nmm)
	LeverArm    float64 // lever arm of the concrete couple (mm)
	Ast1        float64 // tension steel of the concrete couple (mm²)
	Ast2        float64 // tension steel of the steel couple (mm²)
	Tension     float64 // Ast1 + Ast2 (mm²)
	Compression float64 // Asc (mm²)
	Doubly      bool
	Degenerate  bool // lever-arm radicand clamped at zero
}

// DesignFlexure computes the steel needed to resist m (Nmm) in a rectangular
// section b×d with compression steel at dc from the compression face.
// A moment equal to the limiting moment is designed as singly reinforced.
func DesignFlexure(m, fck, fy, b, d, dc float64) (Flexure, error) {
	if !(b > 0) || !(d > 0) {
		return Flexure{}, geometryErrorf("width=%.2f, d=%.2f", b, d)
	}
	if !(fck > 0) || !(fy > 0) {
		return Flexure{}, fmt.Errorf("%w: fck=%.2f, fy=%.2f", design.ErrInvalidInput, fck, fy)
	}
	if math.IsNaN(m) || m < 0 {
		return Flexure{}, fmt.Errorf("%w: moment=%.2f", design.ErrInvalidInput, m)
	}

	f := Flexure{Moment: m, Limit: LimitingMomentCapacity(fck, b, d)}

	if m <= f.Limit {
		k := m / (fck * b * d * d)
		rad := 1 - leverCoefficient*k
		if rad < 0 {
			rad = 0
			f.Degenerate = true
		}
		la := 0.5 * (1 + math.Sqrt(rad))
		f.LeverArm = la * d
		f.Ast1 = m / (is456.SteelStressFactor * fy * f.LeverArm)
		f.Tension = f.Ast1
		return f, nil
	}

	// Doubly reinforced: Mu,lim by the balanced concrete couple, the rest by
	// a compression/tension steel couple.
	if !(dc > 0) || d-dc <= 0 {
		return Flexure{}, geometryErrorf("d=%.2f must exceed compression cover d'=%.2f", d, dc)
	}
	f.Doubly = true
	xuMax := is456.XuMaxRatio * d
	f.LeverArm = d - is456.CentroidFactor*xuMax
	f.Ast1 = f.Limit / (is456.SteelStressFactor * fy * f.LeverArm)

	m2 := m - f.Limit
	lever2 := d - dc
	f.Ast2 = m2 / (is456.SteelStressFactor * fy * lever2)
	f.Tension = f.Ast1 + f.Ast2

	fsc := is456.SteelStressFactor*fy - is456.CompressionConcreteFactor*fck
	f.Compression = m2 / (fsc * lever2)

	return f, nil
}

// RequiredSteelArea is the tension steel (mm²) needed for m (Nmm) with the
// default 50 mm compression cover.
func RequiredSteelArea(m, fck, fy, b, d float64) (float64, error) {
	f, err := DesignFlexure(m, fck, fy, b, d, is456.CompressionCover)
	if err != nil {
		return 0, err
	}
	return f.Tension, nil
}

// NeutralAxisDepth from force equilibrium 0.87·fy·Ast = 0.36·fck·b·xu (mm)
func NeutralAxisDepth(ast, fy, fck, b float64) float64 {
	return is456.SteelStressFactor * fy * ast / (is456.StressBlockFactor * fck * b)
}

// MomentCapacity of a singly reinforced section (Nmm). Over-reinforced
// sections are capped at the limiting moment.
func MomentCapacity(ast, fy, fck, b, d float64) float64 {
	if !(ast > 0) || !(fy > 0) || !(fck > 0) || !(b > 0) || !(d > 0) {
		return 0
	}
	x := NeutralAxisDepth(ast, fy, fck, b)
	if x > is456.XuMaxRatio*d {
		return LimitingMomentCapacity(fck, b, d)
	}
	z := d - is456.CentroidFactor*x
	return is456.SteelStressFactor * fy * ast * z
}

// DoublyMomentCapacity of a doubly reinforced section whose compression steel
// balances the tension steel in excess of ast1 (Nmm).
func DoublyMomentCapacity(ast, ast1, fy, fck, b, d, dc float64) float64 {
	if ast <= ast1 || d-dc <= 0 {
		return MomentCapacity(ast, fy, fck, b, d)
	}
	return LimitingMomentCapacity(fck, b, d) + is456.SteelStressFactor*fy*(ast-ast1)*(d-dc)
}

// ShearCapacity is τc·b·d (N) with τc = 0.25·√fck
func ShearCapacity(fck, b, d float64) float64 {
	if !(fck > 0) || !(b > 0) || !(d > 0) {
		return 0
	}
	return is456.ShearStrength(fck) * b * d
}

// NormalizedSlenderness is λn = √(fy/fcc) with the Euler stress
// fcc = π²·Es/λ² (IS 800 7.1.2.1), written as λ / (π·√(Es/250)·ε) with
// ε = √(250/fy).
func NormalizedSlenderness(lambda, fy float64) float64 {
	eps := math.Sqrt(250 / fy)
	return lambda / (math.Pi * math.Sqrt(Es/250) * eps)
}

// BucklingStress is the design compressive stress (MPa) of a steel member
// with slenderness λ, from the IS 800 column curve:
//
//	φ  = 0.5·(1 + α·(λn − 0.2) + λn²)
//	χ  = 1 / (φ + √(φ² − λn²))
//	fcd = min(χ·fy/γm0, fy/γm0)
//
// A negative φ² − λn² gives χ = 0 rather than NaN.
func BucklingStress(lambda, fy float64) float64 {
	if !(fy > 0) || math.IsNaN(lambda) || lambda < 0 {
		return 0
	}
	lambdaN := NormalizedSlenderness(lambda, fy)
	phi := 0.5 * (1 + ImperfectionFactor*(lambdaN-0.2) + lambdaN*lambdaN)
	rad := phi*phi - lambdaN*lambdaN

	var chi float64
	if rad >= 0 {
		chi = 1 / (phi + math.Sqrt(rad))
	}
	return math.Min(chi*fy/GammaM0, fy/GammaM0)
}

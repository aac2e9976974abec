// Package mix proportions a nominal concrete mix by the IS 10262 absolute
// volume method, with the durability limits of IS 456 Table 5.
package mix

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/design"
)

// Specific gravities and entrapped air used in the volume balance
const (
	CementSG = 3.15
	CoarseSG = 2.74
	FineSG   = 2.65
	AirRatio = 0.01
)

// MaxCement is the upper limit on cement content (kg/m³)
const MaxCement = 450.0

// DefaultAggregate is the nominal maximum aggregate size used when the
// requested one is not tabulated (mm)
const DefaultAggregate = 20

// BaseSlump is the slump the water contents are tabulated at (mm)
const BaseSlump = 50.0

const tolerance = 1.65

// Exposure is the environment class of IS 456 Table 3
type Exposure int

const (
	Mild Exposure = iota
	Moderate
	Severe
	VerySevere
	Extreme
)

var exposureNames = [...]string{"mild", "moderate", "severe", "very-severe", "extreme"}

func (e Exposure) String() string {
	if e < 0 || int(e) >= len(exposureNames) {
		return fmt.Sprintf("exposure(%d)", int(e))
	}
	return exposureNames[e]
}

// ParseExposure accepts the names printed by String
func ParseExposure(v string) (Exposure, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), " ", "-")
	if key == "" {
		return Mild, nil
	}
	for i, name := range exposureNames {
		if name == key {
			return Exposure(i), nil
		}
	}
	return 0, fmt.Errorf("%w: exposure %q", design.ErrInvalidInput, v)
}

func (e Exposure) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Exposure) UnmarshalText(text []byte) error {
	v, err := ParseExposure(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Durability limits for reinforced concrete (IS 456 Table 5)
type Durability struct {
	MaxWaterCement float64
	MinCement      float64 // kg/m³
}

var durability = [...]Durability{
	Mild:       {0.55, 300},
	Moderate:   {0.50, 300},
	Severe:     {0.45, 320},
	VerySevere: {0.45, 340},
	Extreme:    {0.40, 360},
}

// Limits returns the durability limits of the exposure class
func (e Exposure) Limits() Durability {
	if e < 0 || int(e) >= len(durability) {
		return durability[Mild]
	}
	return durability[e]
}

// Water content at 50 mm slump and coarse aggregate volume fraction at
// w/c 0.5, keyed by nominal maximum aggregate size (mm)
var (
	waterContent   = map[int]float64{10: 208, 20: 186, 40: 165}
	coarseFraction = map[int]float64{10: 0.48, 20: 0.62, 40: 0.71}
)

// Params describes the mix to proportion
type Params struct {
	ConcreteGrade     int      `json:"concrete_grade"`
	StandardDeviation float64  `json:"standard_deviation"` // MPa, 0 for the assumed value
	Exposure          Exposure `json:"exposure"`
	AggregateSize     int      `json:"aggregate_size"` // mm, 0 for 20
	Slump             float64  `json:"slump"`          // mm, 0 for 50
}

// Archetype implements engine.Params
func (p Params) Archetype() design.Archetype {
	return design.MixDesign
}

// AssumedDeviation is the standard deviation used without site data
func AssumedDeviation(fck float64) float64 {
	switch {
	case fck <= 15:
		return 3.5
	case fck <= 25:
		return 4.0
	default:
		return 5.0
	}
}

// WaterCementRatio for a target mean strength, before durability limits
func WaterCementRatio(target float64) float64 {
	switch {
	case target <= 20:
		return 0.55
	case target <= 25:
		return 0.50
	case target <= 30:
		return 0.45
	case target <= 35:
		return 0.40
	default:
		return 0.35
	}
}

// Validate reports the first rejected input
func (p Params) Validate() error {
	if err := design.RequireNonNegative(
		design.F("standard deviation", p.StandardDeviation),
		design.F("slump", p.Slump),
		design.F("aggregate size", float64(p.AggregateSize)),
	); err != nil {
		return err
	}
	if p.Exposure < Mild || p.Exposure > Extreme {
		return fmt.Errorf("%w: %s", design.ErrInvalidInput, p.Exposure)
	}
	return nil
}

func (p Params) aggregate() (int, error) {
	if p.AggregateSize == 0 {
		return DefaultAggregate, nil
	}
	if _, ok := waterContent[p.AggregateSize]; ok {
		return p.AggregateSize, nil
	}
	return DefaultAggregate, fmt.Errorf("%w: aggregate %d mm, using %d mm",
		design.ErrInvalidMaterialGrade, p.AggregateSize, DefaultAggregate)
}

// Solve proportions one cubic metre of concrete
func (p Params) Solve() design.Result {
	if err := p.Validate(); err != nil {
		return design.Invalid(design.MixDesign, err)
	}

	mat, issues := design.ResolveConcrete(p.ConcreteGrade)
	fck := mat.Concrete.Strength

	agg, err := p.aggregate()
	if err != nil {
		issues = append(issues, err)
	}

	s := p.StandardDeviation
	if s == 0 {
		s = AssumedDeviation(fck)
	}
	target := fck + tolerance*s

	limits := p.Exposure.Limits()
	wc := math.Min(WaterCementRatio(target), limits.MaxWaterCement)

	slump := p.Slump
	if slump == 0 {
		slump = BaseSlump
	}
	water := waterContent[agg]
	if slump > BaseSlump {
		water *= 1 + 0.03*(slump-BaseSlump)/25
	}

	cement := math.Max(water/wc, limits.MinCement)

	// Coarse fraction rises 0.01 for every 0.05 the w/c drops below 0.5
	ca := coarseFraction[agg] + (0.5-wc)/0.05*0.01

	aggregateVolume := 1 - AirRatio - cement/(CementSG*1000) - water/1000
	coarse := aggregateVolume * ca * CoarseSG * 1000
	fine := aggregateVolume * (1 - ca) * FineSG * 1000

	res := design.Result{
		Archetype: design.MixDesign,
		Valid:     true,
		Issues:    issues,
		Materials: mat,
	}
	if aggregateVolume <= 0 {
		res.Issues = append(res.Issues, fmt.Errorf("%w: no volume left for aggregate", design.ErrZeroCapacity))
	}

	var c design.Checker
	c.Ratio("w/c ratio", wc, limits.MaxWaterCement, "")
	c.Minimum("min cement", cement, limits.MinCement, "kg/m³")
	c.Ratio("max cement", cement, MaxCement, "kg/m³")
	res.Verdict = c.Verdict()

	res.Quantities = []design.Quantity{
		{Name: "target strength", Value: target, Unit: "MPa"},
		{Name: "standard deviation", Value: s, Unit: "MPa"},
		{Name: "w/c ratio", Value: wc},
		{Name: "water", Value: water, Unit: "kg/m³"},
		{Name: "cement", Value: cement, Unit: "kg/m³"},
		{Name: "coarse aggregate", Value: coarse, Unit: "kg/m³", Note: fmt.Sprintf("%d mm", agg)},
		{Name: "fine aggregate", Value: fine, Unit: "kg/m³"},
		{Name: "coarse fraction", Value: ca},
		{Name: "proportion", Value: 1, Note: fmt.Sprintf("1 : %.2f : %.2f, w/c %.2f", fine/cement, coarse/cement, wc)},
	}
	return res
}

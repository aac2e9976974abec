package material

import (
	"sort"
	"strconv"

	"github.com/alexiusacademia/gorcd/internal/is456"
)

// Kind distinguishes concrete grades from reinforcing/structural steel grades
type Kind int

const (
	Concrete Kind = iota
	Steel
)

func (k Kind) String() string {
	if k == Steel {
		return "steel"
	}
	return "concrete"
}

// Default grades used when a requested grade is not tabulated
const (
	DefaultConcreteGrade = 25
	DefaultSteelGrade    = 500
)

// Grade is one row of the material table
type Grade struct {
	Kind     Kind    `json:"kind"`
	Label    int     `json:"label"`    // 25 for M25, 500 for Fe500
	Strength float64 `json:"strength"` // fck or fy (MPa)
	Modulus  float64 `json:"modulus"`  // Ec or Es (MPa)
	Density  float64 `json:"density"`  // kN/m³
}

// Name returns the code designation, e.g. "M25" or "Fe500"
func (g Grade) Name() string {
	if g.Kind == Steel {
		return "Fe" + strconv.Itoa(g.Label)
	}
	return "M" + strconv.Itoa(g.Label)
}

var (
	concreteGrades = buildConcrete(15, 20, 25, 30, 35, 40, 45, 50)
	steelGrades    = buildSteel(250, 415, 500, 550)
)

func buildConcrete(labels ...int) map[int]Grade {
	m := make(map[int]Grade, len(labels))
	for _, l := range labels {
		fck := float64(l)
		m[l] = Grade{
			Kind:     Concrete,
			Label:    l,
			Strength: fck,
			Modulus:  is456.ElasticModulus(fck),
			Density:  is456.ConcreteUnitWeight,
		}
	}
	return m
}

func buildSteel(labels ...int) map[int]Grade {
	m := make(map[int]Grade, len(labels))
	for _, l := range labels {
		m[l] = Grade{
			Kind:     Steel,
			Label:    l,
			Strength: float64(l),
			Modulus:  200000,
			Density:  78.5,
		}
	}
	return m
}

// ConcreteGrade looks up a concrete grade. When the grade is not tabulated it
// returns M25 and ok=false so the caller can report the substitution.
func ConcreteGrade(label int) (g Grade, ok bool) {
	if g, ok := concreteGrades[label]; ok {
		return g, true
	}
	return concreteGrades[DefaultConcreteGrade], false
}

// SteelGrade looks up a steel grade. When the grade is not tabulated it
// returns the nearest defined grade (ties resolve to the lower grade) and
// ok=false.
func SteelGrade(label int) (g Grade, ok bool) {
	if g, ok := steelGrades[label]; ok {
		return g, true
	}
	if label <= 0 {
		return steelGrades[DefaultSteelGrade], false
	}
	best := -1
	for _, l := range steelLabels() {
		if best < 0 || abs(l-label) < abs(best-label) {
			best = l
		}
	}
	return steelGrades[best], false
}

// ConcreteGrades lists the tabulated concrete grades in ascending order
func ConcreteGrades() []Grade {
	return sorted(concreteGrades)
}

// SteelGrades lists the tabulated steel grades in ascending order
func SteelGrades() []Grade {
	return sorted(steelGrades)
}

func steelLabels() []int {
	labels := make([]int, 0, len(steelGrades))
	for l := range steelGrades {
		labels = append(labels, l)
	}
	sort.Ints(labels)
	return labels
}

func sorted(m map[int]Grade) []Grade {
	out := make([]Grade, 0, len(m))
	for _, g := range m {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

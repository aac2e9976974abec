package material

import (
	"testing"

	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/stretchr/testify/assert"
)

func TestConcreteGrade(t *testing.T) {
	g, ok := ConcreteGrade(25)
	assert.True(t, ok)
	assert.Equal(t, "M25", g.Name())
	assert.Equal(t, 25000.0, g.Modulus)
	assert.Equal(t, 25.0, g.Density)

	g, ok = ConcreteGrade(27)
	assert.False(t, ok)
	assert.Equal(t, DefaultConcreteGrade, g.Label)
}

func TestConcreteModulus(t *testing.T) {
	for _, g := range ConcreteGrades() {
		assert.Equal(t, is456.ElasticModulus(g.Strength), g.Modulus, g.Name())
	}
}

func TestSteelGradeFallback(t *testing.T) {
	tests := []struct {
		label int
		want  int
		ok    bool
	}{
		{415, 415, true},
		{0, 500, false},
		{-10, 500, false},
		{457, 415, false},
		{525, 500, false}, // tie goes to the lower grade
		{1000, 550, false},
	}
	for _, tt := range tests {
		g, ok := SteelGrade(tt.label)
		assert.Equal(t, tt.want, g.Label, "Fe%d", tt.label)
		assert.Equal(t, tt.ok, ok, "Fe%d", tt.label)
		assert.Equal(t, Steel, g.Kind)
	}
}

func TestGradeLists(t *testing.T) {
	var labels []int
	for _, g := range SteelGrades() {
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []int{250, 415, 500, 550}, labels)

	concrete := ConcreteGrades()
	assert.Len(t, concrete, 8)
	assert.Equal(t, "M15", concrete[0].Name())
	assert.Equal(t, "M50", concrete[len(concrete)-1].Name())
	assert.Equal(t, "concrete", concrete[0].Kind.String())
}

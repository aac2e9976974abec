package report

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/material"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 2.5, Round(2.45, 1))
	assert.Equal(t, -2.5, Round(-2.45, 1))
	assert.Equal(t, 3.0, Round(2.5, 0))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))

	assert.Equal(t, "0.63", Num(0.625, 2))
	assert.Equal(t, "90.00", Num(90, 2))
	assert.Equal(t, "n/a", Num(math.Inf(1), 2))
}

func TestFormatReinforcement(t *testing.T) {
	tests := []struct {
		area float64
		want string
	}{
		{0, "2 - T8 bars (101 mm²)"},
		{800, "4 - T16 bars (804 mm²)"},
		{1500, "5 - T20 bars (1571 mm²)"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.area), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatReinforcement(tt.area))
		})
	}
}

func TestFormatSpacing(t *testing.T) {
	assert.Equal(t, "T10 @ 150 c/c (524 mm²/m)", FormatSpacing(500, 10))
}

func TestFormatVerdict(t *testing.T) {
	assert.Equal(t, "PASS (utilization 0.62)",
		FormatVerdict(design.Verdict{IsSafe: true, Utilization: 0.62, Governing: "moment"}))
	assert.Equal(t, "FAIL (utilization 1.23, governing: shear)",
		FormatVerdict(design.Verdict{Utilization: 1.234, Governing: "shear"}))
	assert.Equal(t, "FAIL (utilization 0.00)", FormatVerdict(design.Verdict{}))
}

func TestSamples(t *testing.T) {
	seq := Samples(6, 4, func(x float64) float64 { return 2 * x })

	xs, ys := Collect(seq)
	assert.Equal(t, []float64{0, 1.5, 3, 4.5, 6}, xs)
	assert.Equal(t, []float64{0, 3, 6, 9, 12}, ys)

	// restartable
	again, _ := Collect(seq)
	assert.Equal(t, xs, again)

	// early break
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	empty, _ := Collect(Samples(0, 10, math.Sin))
	assert.Empty(t, empty)
	empty, _ = Collect(Samples(5, 0, math.Sin))
	assert.Empty(t, empty)
}

func sampleResult() design.Result {
	concrete, _ := material.ConcreteGrade(25)
	steel, _ := material.SteelGrade(500)
	var c design.Checker
	c.Ratio("moment", 90, 120, "kNm")
	c.Ratio("shear", 60, 55, "kN")
	return design.Result{
		Archetype: design.Beam,
		Valid:     true,
		Materials: design.Materials{Concrete: concrete, Steel: steel},
		Forces:    design.Forces{MaxMoment: 90, MaxShear: 60, MaxDeflection: 8.5, Reactions: design.Reactions{Left: 60, Right: 60}},
		Reinforcement: design.Reinforcement{
			AreaRequired: 560,
			AreaMinimum:  176,
			AreaProvided: 603,
			BarCallout:   "3 - T16 bars (603 mm²)",
		},
		Verdict:    c.Verdict(),
		Quantities: []design.Quantity{{Name: "effective depth", Value: 417, Unit: "mm"}},
	}
}

func TestSummary(t *testing.T) {
	lines := Summary(sampleResult())
	assert.Contains(t, lines, "Member: beam")
	assert.Contains(t, lines, "Materials: M25 / Fe500")
	assert.Contains(t, lines, "Max moment: 90.00 kNm")
	assert.Contains(t, lines, "Steel provided: 3 - T16 bars (603 mm²)")
	assert.Contains(t, lines, "effective depth: 417.00 mm")
	assert.Equal(t, "Verdict: FAIL (utilization 1.09, governing: shear)", lines[len(lines)-1])

	invalid := Summary(design.Invalid(design.Slab, fmt.Errorf("%w: span", design.ErrInvalidGeometry)))
	assert.Equal(t, []string{"Member: slab", "Status: INVALID INPUT", "  invalid geometry: span"}, invalid)
}

func TestMaterialNames(t *testing.T) {
	steel, _ := material.SteelGrade(250)
	assert.Equal(t, "Fe250", MaterialNames(design.Materials{Steel: steel}))
	assert.Equal(t, "", MaterialNames(design.Materials{}))
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	id, err := WritePDF(&buf, "Beam B1", sampleResult())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	t.Run("with diagrams", func(t *testing.T) {
		var out bytes.Buffer
		xs, _ := Collect(Samples(6, 10, func(x float64) float64 { return x }))
		pts := make([]design.Point, len(xs))
		for i, x := range xs {
			pts[i] = design.Point{X: x, Y: 60 - 20*x}
		}
		_, err := Sheet{Title: "B1", Project: "House", Shear: pts, Moment: pts}.Write(&out, sampleResult())
		require.NoError(t, err)
		assert.Greater(t, out.Len(), buf.Len())
	})

	t.Run("invalid result", func(t *testing.T) {
		var out bytes.Buffer
		_, err := WritePDF(&out, "", design.Invalid(design.Column, design.ErrInvalidGeometry))
		require.NoError(t, err)
		assert.NotZero(t, out.Len())
	})
}

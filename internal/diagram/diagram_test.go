package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSectionData(t *testing.T) {
	// 230×450, d = 417, 3-T16
	data := NewSectionData(230, 450, 417, 603, 0, 0, 25, 500)
	assert.False(t, data.IsDoubly)
	assert.InDelta(t, 0.87*500*603/(0.36*25*230), data.NeutralAxisDepth, 1e-9)
	assert.InDelta(t, 33, data.TensionSteelY, 1e-12)
	assert.InDelta(t, 0.87*500/200000+0.002, data.EpsilonY, 1e-12)
	assert.True(t, data.TensionYields)

	doubly := NewSectionData(230, 450, 417, 1800, 400, 50, 25, 500)
	assert.True(t, doubly.IsDoubly)
	assert.InDelta(t, 0.48*417, doubly.NeutralAxisDepth, 1e-9)
	assert.Greater(t, doubly.EpsilonSC, 0.0)
}

func TestDrawASCIISectionDiagram(t *testing.T) {
	out := DrawASCIISectionDiagram(NewSectionData(230, 450, 417, 603, 0, 0, 25, 500))
	assert.Contains(t, out, "◄─ N.A.")
	assert.Contains(t, out, "●────●")
	assert.Contains(t, out, "εcu = 0.0035")
	assert.Contains(t, out, "Ast = 603 mm²")

	assert.Empty(t, DrawASCIISectionDiagram(SectionDiagramData{}))
}

func TestDrawISection(t *testing.T) {
	data := NewPolygonData(section.ISection(140, 12.4, 300, 7.5))
	out := DrawASCIISectionDiagram(data)
	lines := strings.Split(out, "\n")

	between := func(l, open, close string) int {
		i, j := strings.Index(l, open), strings.LastIndex(l, close)
		if i < 0 || j <= i {
			return -1
		}
		return len([]rune(l[i:j])) - 1
	}

	// the top flange is drawn wider than the web
	flange, web := -1, -1
	for _, l := range lines {
		if flange < 0 {
			flange = between(l, "┌", "┐")
		}
		if web < 0 {
			web = between(l, "│", "│")
		}
	}
	require.Positive(t, flange)
	require.Positive(t, web)
	assert.Greater(t, flange, web)
	assert.NotContains(t, out, "N.A.")
}

func TestDrawStrainDiagram(t *testing.T) {
	out := DrawStrainDiagram(NewSectionData(230, 450, 417, 603, 0, 0, 25, 500))
	assert.Contains(t, out, "STRAIN DISTRIBUTION DIAGRAM")
	assert.Contains(t, out, "εcu=0.0035")
	assert.Empty(t, DrawStrainDiagram(SectionDiagramData{}))
}

func TestDrawForceChart(t *testing.T) {
	seq := report.Samples(6, 24, func(x float64) float64 { return 60 - 20*x })
	out := DrawForceChart("Shear (kN)", seq, 8)
	assert.Contains(t, out, "Shear (kN), 0 to 6.00 m")
	assert.Contains(t, out, "60.0")

	assert.Empty(t, DrawForceChart("empty", report.Samples(0, 10, nil), 8))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("Beam", []string{"Mu = 90 kNm", "Verdict: PASS"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(l)))
	}
}

func TestExportDiagrams(t *testing.T) {
	dir := t.TempDir()

	t.Run("section", func(t *testing.T) {
		path := filepath.Join(dir, "section.png")
		require.NoError(t, ExportSectionDiagram(NewSectionData(230, 450, 417, 603, 0, 0, 25, 500), path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	})

	t.Run("forces", func(t *testing.T) {
		var shear, moment []design.Point
		for p := range report.Samples(6, 12, func(x float64) float64 { return 60 - 20*x }) {
			shear = append(shear, p)
		}
		for p := range report.Samples(6, 12, func(x float64) float64 { return 60*x - 10*x*x }) {
			moment = append(moment, p)
		}
		path := filepath.Join(dir, "nested", "forces.svg")
		require.NoError(t, ExportForceDiagram("Beam", shear, moment, path))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("no samples", func(t *testing.T) {
		assert.Error(t, ExportForceDiagram("Beam", nil, nil, filepath.Join(dir, "x.png")))
	})
}

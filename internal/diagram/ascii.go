package diagram

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/section"
	"github.com/guptarohit/asciigraph"
)

// SectionDiagramData holds data for drawing a member cross-section
type SectionDiagramData struct {
	// Outline, counter-clockwise from bottom-left. Width and Height are the
	// bounding box.
	Outline section.Polygon
	Width   float64 // mm
	Height  float64 // mm

	// Compression zone
	NeutralAxisDepth float64 // xu from top (mm)

	// Reinforcement
	TensionSteelY    float64 // from bottom (mm)
	TensionSteelArea float64 // mm²
	CompSteelY       float64 // from top (mm), 0 if none
	CompSteelArea    float64 // mm², 0 if none

	// Strains
	EpsilonCU float64 // 0.0035
	EpsilonT  float64 // tension steel
	EpsilonSC float64 // compression steel
	EpsilonY  float64 // design yield strain

	// Stresses (MPa)
	Fc        float64 // 0.446·fck
	FsTension float64 // 0.87·fy
	FsComp    float64

	TensionYields bool
	CompYields    bool
	IsDoubly      bool
}

// NewSectionData builds the diagram data of a rectangular concrete section
// with tension steel ast at effective depth d and optional compression steel
// asc at dc from the top
func NewSectionData(b, D, d, ast, asc, dc, fck, fy float64) SectionDiagramData {
	data := SectionDiagramData{
		Outline:          section.Rectangle(b, D),
		Width:            b,
		Height:           D,
		TensionSteelY:    D - d,
		TensionSteelArea: ast,
		EpsilonCU:        is456.ConcreteStrainLimit,
		EpsilonY:         is456.SteelStressFactor*fy/section.Es + is456.YieldStrainOffset,
		Fc:               0.67 * fck / is456.GammaConcrete,
		FsTension:        is456.SteelStressFactor * fy,
	}

	xuMax := is456.XuMaxRatio * d
	xu := section.NeutralAxisDepth(ast, fy, fck, b)
	if asc > 0 && dc > 0 {
		data.IsDoubly = true
		data.CompSteelY = dc
		data.CompSteelArea = asc
		xu = xuMax
	}
	xu = math.Min(xu, xuMax)
	data.NeutralAxisDepth = xu

	if xu > 0 {
		data.EpsilonT = data.EpsilonCU * (d - xu) / xu
		if data.IsDoubly {
			data.EpsilonSC = data.EpsilonCU * (xu - dc) / xu
			data.FsComp = is456.SteelStressFactor*fy - is456.CompressionConcreteFactor*fck
			data.CompYields = data.EpsilonSC >= data.EpsilonY
		}
	}
	data.TensionYields = data.EpsilonT >= data.EpsilonY
	return data
}

// NewPolygonData builds diagram data for a plain outline such as a steel
// I-section
func NewPolygonData(outline section.Polygon) SectionDiagramData {
	props := outline.Properties()
	return SectionDiagramData{
		Outline: outline,
		Width:   props.Width,
		Height:  props.Height,
	}
}

// DrawASCIISectionDiagram creates an ASCII representation of a section with
// its compression zone, strain and stress
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20
	if data.Height <= 0 || data.Width <= 0 {
		return ""
	}

	props := data.Outline.Properties()
	row := func(i int) float64 {
		// level of row i from the bottom of the bounding box (mm)
		return props.MinY + data.Height*(1-(float64(i)+0.5)/float64(heightChars+1))
	}

	naLine := -1
	if data.NeutralAxisDepth > 0 {
		naLine = int(data.NeutralAxisDepth / data.Height * float64(heightChars))
	}
	tensionLine := -1
	if data.TensionSteelArea > 0 {
		tensionLine = heightChars - int(data.TensionSteelY/data.Height*float64(heightChars))
	}
	compLine := -1
	if data.IsDoubly {
		compLine = int(data.CompSteelY / data.Height * float64(heightChars))
	}

	sb.WriteString("\n")
	sb.WriteString("  SECTION                         STRAIN              STRESS\n")
	sb.WriteString("  ───────                         ──────              ──────\n")

	for i := 0; i <= heightChars; i++ {
		w := data.Outline.WidthAt(row(i))
		n := int(math.Round(w / data.Width * float64(widthChars)))
		if n < 1 && w > 0 {
			n = 1
		}
		pad := (widthChars - n) / 2

		fill := make([]rune, n)
		for j := range fill {
			if naLine >= 0 && i <= naLine {
				fill[j] = '░'
			} else {
				fill[j] = ' '
			}
		}
		mark := func(glyph string) {
			g := []rune(glyph)
			if len(g) > len(fill) {
				return
			}
			start := (len(fill) - len(g)) / 2
			copy(fill[start:], g)
		}
		if i == compLine {
			mark("●──●")
		}
		if i == tensionLine {
			mark("●────●")
		}

		left := strings.Repeat(" ", pad)
		right := strings.Repeat(" ", widthChars-n-pad)
		switch {
		case n == 0:
			sb.WriteString("   " + strings.Repeat(" ", widthChars) + " ")
		case i == 0:
			sb.WriteString(fmt.Sprintf("  %s┌%s┐%s", left, strings.Repeat("─", n), right))
		case i == heightChars:
			sb.WriteString(fmt.Sprintf("  %s└%s┘%s", left, strings.Repeat("─", n), right))
		default:
			sb.WriteString(fmt.Sprintf("  %s│%s│%s", left, string(fill), right))
		}
		if i == naLine {
			sb.WriteString(" ◄─ N.A.")
		} else {
			sb.WriteString("        ")
		}

		// Strain column
		switch {
		case data.EpsilonCU == 0:
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ├── εcu = %.4f", data.EpsilonCU))
		case i == naLine:
			sb.WriteString("  ├── ε = 0")
		case i == tensionLine:
			yield := ""
			if data.TensionYields {
				yield = " (yields)"
			}
			sb.WriteString(fmt.Sprintf("  ├── εst = %.4f%s", data.EpsilonT, yield))
		case i == compLine:
			yield := ""
			if data.CompYields {
				yield = " (yields)"
			}
			sb.WriteString(fmt.Sprintf("  ├── εsc = %.4f%s", data.EpsilonSC, yield))
		case i < heightChars:
			sb.WriteString("  │")
		}

		// Stress column
		switch {
		case data.Fc == 0:
		case i == 0:
			sb.WriteString(fmt.Sprintf("      ┌── 0.446fck = %.1f MPa", data.Fc))
		case i == naLine && naLine > 0:
			sb.WriteString("      └── (parabolic-rectangular)")
		case i == tensionLine:
			sb.WriteString(fmt.Sprintf("      ── fst = %.1f MPa", data.FsTension))
		case i == compLine:
			sb.WriteString(fmt.Sprintf("      ── fsc = %.1f MPa", data.FsComp))
		}

		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	if data.NeutralAxisDepth > 0 {
		sb.WriteString("  ░░░ = Compression zone\n")
	}
	if data.TensionSteelArea > 0 {
		sb.WriteString("  ●●● = Reinforcement\n")
		sb.WriteString(fmt.Sprintf("  N.A. = Neutral axis at xu = %.1f mm from top\n", data.NeutralAxisDepth))
		sb.WriteString(fmt.Sprintf("  Ast = %.0f mm²", data.TensionSteelArea))
		if data.IsDoubly {
			sb.WriteString(fmt.Sprintf(", Asc = %.0f mm²", data.CompSteelArea))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// DrawStrainDiagram creates an ASCII strain distribution diagram
func DrawStrainDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	height := 15
	width := 40
	if data.NeutralAxisDepth <= 0 || data.Height <= 0 {
		return ""
	}

	maxStrain := max(data.EpsilonCU, data.EpsilonT)
	scale := float64(width-10) / maxStrain

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION DIAGRAM\n")
	sb.WriteString("  ───────────────────────────\n\n")

	naLine := int(data.NeutralAxisDepth / data.Height * float64(height))
	tensionLine := height - int((data.TensionSteelY/data.Height)*float64(height))

	for i := 0; i <= height; i++ {
		depth := float64(i) / float64(height) * data.Height
		strain := data.EpsilonCU * math.Abs(data.NeutralAxisDepth-depth) / data.NeutralAxisDepth

		barLen := max(int(strain*scale), 0)

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu=%.4f\n", strings.Repeat("█", barLen), data.EpsilonCU))
		case i == naLine:
			sb.WriteString(fmt.Sprintf("  N.A.   ├%s (ε=0)\n", strings.Repeat("─", 5)))
		case i == tensionLine:
			mark := ""
			if data.TensionYields {
				mark = " ✓yields"
			}
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εst=%.4f%s\n", strings.Repeat("█", barLen), data.EpsilonT, mark))
		case i == height:
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", strings.Repeat("█", barLen)))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", strings.Repeat("█", barLen)))
		}
	}

	yieldBar := int(data.EpsilonY * scale)
	sb.WriteString(fmt.Sprintf("\n  εy = %.4f %s (design yield strain)\n", data.EpsilonY, strings.Repeat("─", yieldBar)+"┤"))

	return sb.String()
}

// DrawForceChart plots a shear or moment diagram in the terminal
func DrawForceChart(title string, pts iter.Seq[design.Point], height int) string {
	xs, ys := report.Collect(pts)
	if len(ys) < 2 {
		return ""
	}
	length := xs[len(xs)-1]
	graph := asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("%s, 0 to %.2f m", title, length)),
	)
	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

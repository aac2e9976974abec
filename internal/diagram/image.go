package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/section"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	outlineColor = color.Black
	zoneColor    = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	zoneEdge     = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	steelColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	axisColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	shearColor   = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	momentColor  = color.RGBA{R: 0, G: 0, B: 180, A: 255}
)

func polygonXYs(p section.Polygon, closed bool) plotter.XYs {
	n := len(p.Vertices)
	if closed {
		n++
	}
	xys := make(plotter.XYs, 0, n)
	for _, v := range p.Vertices {
		xys = append(xys, plotter.XY{X: v.X, Y: v.Y})
	}
	if closed && len(p.Vertices) > 0 {
		xys = append(xys, plotter.XY{X: p.Vertices[0].X, Y: p.Vertices[0].Y})
	}
	return xys
}

// ExportSectionDiagram exports a section diagram to an image file. The
// format follows the extension (png, svg, pdf); anything else gets .png.
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	if len(data.Outline.Vertices) < 3 {
		return fmt.Errorf("section outline needs at least 3 vertices")
	}

	p := plot.New()
	p.Title.Text = "Section"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	props := data.Outline.Properties()
	minX, maxX := props.MinX, props.MaxX

	outline, err := plotter.NewLine(polygonXYs(data.Outline, true))
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = outlineColor
	p.Add(outline)

	if data.NeutralAxisDepth > 0 {
		naY := props.MaxY - data.NeutralAxisDepth

		zone := data.Outline.ClipAbove(naY)
		if len(zone.Vertices) >= 3 {
			poly, err := plotter.NewPolygon(polygonXYs(zone, false))
			if err != nil {
				return err
			}
			poly.Color = zoneColor
			poly.LineStyle.Color = zoneEdge
			p.Add(poly)
		}

		naLine, err := plotter.NewLine(plotter.XYs{
			{X: minX - 20, Y: naY},
			{X: maxX + 20, Y: naY},
		})
		if err != nil {
			return err
		}
		naLine.LineStyle.Width = vg.Points(1.5)
		naLine.LineStyle.Color = axisColor
		naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(naLine)

		if err := addLabel(p, maxX+30, naY, fmt.Sprintf("xu=%.1fmm", data.NeutralAxisDepth)); err != nil {
			return err
		}
	}

	if data.TensionSteelArea > 0 {
		y := props.MinY + data.TensionSteelY
		if err := addBars(p, data.Outline, y, 0.2, vg.Points(6)); err != nil {
			return err
		}
		if err := addLabel(p, (minX+maxX)/2, y-25, fmt.Sprintf("Ast=%.0fmm²", data.TensionSteelArea)); err != nil {
			return err
		}
	}
	if data.IsDoubly && data.CompSteelArea > 0 {
		y := props.MaxY - data.CompSteelY
		if err := addBars(p, data.Outline, y, 0.15, vg.Points(5)); err != nil {
			return err
		}
		if err := addLabel(p, (minX+maxX)/2, y+25, fmt.Sprintf("Asc=%.0fmm²", data.CompSteelArea)); err != nil {
			return err
		}
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// addBars marks three bars (or two for compression steel) about the middle
// of the section at level y
func addBars(p *plot.Plot, outline section.Polygon, y, spread float64, radius vg.Length) error {
	props := outline.Properties()
	center := (props.MinX + props.MaxX) / 2
	width := outline.WidthAt(y)
	if width == 0 {
		width = props.Width
	}

	pts := plotter.XYs{{X: center - width*spread, Y: y}, {X: center + width*spread, Y: y}}
	if spread >= 0.2 {
		pts = append(pts, plotter.XY{X: center, Y: y})
	}
	bars, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	bars.GlyphStyle.Color = steelColor
	bars.GlyphStyle.Radius = radius
	bars.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(bars)
	return nil
}

func addLabel(p *plot.Plot, x, y float64, text string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

// ExportForceDiagram exports shear force and bending moment diagrams on one
// plot
func ExportForceDiagram(title string, shear, moment []design.Point, filename string) error {
	if len(shear) < 2 && len(moment) < 2 {
		return fmt.Errorf("no diagram samples")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Shear (kN) / Moment (kNm)"
	p.Legend.Top = true

	add := func(name string, pts []design.Point, c color.Color) error {
		if len(pts) < 2 {
			return nil
		}
		xys := make(plotter.XYs, len(pts))
		for i, pt := range pts {
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = c
		p.Add(line)
		p.Legend.Add(name, line)
		return nil
	}
	if err := add("Shear", shear, shearColor); err != nil {
		return err
	}
	if err := add("Moment", moment, momentColor); err != nil {
		return err
	}
	p.Add(plotter.NewGrid())

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/google/uuid"
)

// Sheet is a printable calculation sheet for one solved member
type Sheet struct {
	Title   string
	Project string
	Date    time.Time      // zero means now
	Shear   []design.Point // optional diagrams, drawn when present
	Moment  []design.Point
}

// WritePDF writes a calculation sheet for r and returns its calculation id
func WritePDF(w io.Writer, title string, r design.Result) (uuid.UUID, error) {
	return Sheet{Title: title}.Write(w, r)
}

const (
	lineHeight = 6.0
	labelWidth = 60.0
)

// Write renders the sheet as A4 portrait
func (s Sheet) Write(w io.Writer, r design.Result) (uuid.UUID, error) {
	id := uuid.New()
	date := s.Date
	if date.IsZero() {
		date = time.Now()
	}
	title := s.Title
	if title == "" {
		title = fmt.Sprintf("%s design", r.Archetype)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetCreator("gorcd", true)
	pdf.SetSubject("IS 456 limit state calculation", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	row := func(label, value string) {
		pdf.CellFormat(labelWidth, lineHeight, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHeight, tr(value), "", 1, "L", false, 0, "")
	}
	if s.Project != "" {
		row("Project", s.Project)
	}
	row("Calculation id", id.String())
	row("Date", date.Format("2006-01-02"))
	row("Member", r.Archetype.String())
	if names := MaterialNames(r.Materials); names != "" {
		row("Materials", names)
	}
	pdf.Ln(4)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(text))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}

	if !r.Valid {
		heading("Input rejected")
		for _, err := range r.Issues {
			pdf.MultiCell(0, lineHeight, tr(err.Error()), "", "L", false)
		}
		return id, pdf.Output(w)
	}

	f := r.Forces
	if f.MaxMoment != 0 || f.MaxShear != 0 || f.Axial != 0 {
		heading("Design actions")
		row("Max moment", Num(f.MaxMoment, 2)+" kNm")
		row("Max shear", Num(f.MaxShear, 2)+" kN")
		if f.Axial != 0 {
			row("Axial force", Num(f.Axial, 2)+" kN")
		}
		if f.MaxDeflection != 0 {
			row("Max deflection", Num(f.MaxDeflection, 2)+" mm")
		}
		if f.Reactions.Left != 0 || f.Reactions.Right != 0 {
			reactions := fmt.Sprintf("%s / %s kN", Num(f.Reactions.Left, 2), Num(f.Reactions.Right, 2))
			if f.Reactions.Middle != 0 {
				reactions = fmt.Sprintf("%s / %s / %s kN", Num(f.Reactions.Left, 2), Num(f.Reactions.Middle, 2), Num(f.Reactions.Right, 2))
			}
			row("Reactions", reactions)
		}
		pdf.Ln(2)
	}

	if rf := r.Reinforcement; rf.BarCallout != "" {
		heading("Reinforcement")
		row("Required", Num(rf.AreaRequired, 0)+" mm²")
		row("Minimum", Num(rf.AreaMinimum, 0)+" mm²")
		row("Provided", rf.BarCallout)
		pdf.Ln(2)
	}

	if len(r.Quantities) > 0 {
		heading("Quantities")
		for _, q := range r.Quantities {
			v := Num(q.Value, 2)
			if q.Unit != "" {
				v += " " + q.Unit
			}
			if q.Note != "" {
				v += " (" + q.Note + ")"
			}
			row(q.Name, v)
		}
		pdf.Ln(2)
	}

	heading("Checks")
	widths := []float64{50, 35, 35, 25, 25}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Check", "Demand", "Capacity", "Ratio", "Status"} {
		pdf.CellFormat(widths[i], lineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, c := range r.Verdict.Checks {
		status := "PASS"
		if !c.Pass {
			status = "FAIL"
			pdf.SetTextColor(180, 0, 0)
		}
		unit := ""
		if c.Unit != "" {
			unit = " " + c.Unit
		}
		pdf.CellFormat(widths[0], lineHeight, tr(c.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], lineHeight, tr(Num(c.Demand, 2)+unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], lineHeight, tr(Num(c.Capacity, 2)+unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], lineHeight, Num(c.Ratio, 2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], lineHeight, status, "1", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Verdict: "+FormatVerdict(r.Verdict)))
	pdf.Ln(10)

	if len(r.Issues) > 0 {
		heading("Notes")
		for _, err := range r.Issues {
			pdf.MultiCell(0, lineHeight, tr(err.Error()), "", "L", false)
		}
	}

	if len(s.Shear) > 1 || len(s.Moment) > 1 {
		pdf.AddPage()
		if len(s.Shear) > 1 {
			heading("Shear force diagram (kN)")
			plotPoints(pdf, s.Shear)
		}
		if len(s.Moment) > 1 {
			heading("Bending moment diagram (kNm)")
			plotPoints(pdf, s.Moment)
		}
	}

	return id, pdf.Output(w)
}

// plotPoints draws a filled diagram below the cursor, 50 mm high
func plotPoints(pdf *fpdf.Fpdf, pts []design.Point) {
	const height = 50.0
	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	width := pageW - left - right
	top := pdf.GetY()

	xmax := pts[len(pts)-1].X
	ymax := 0.0
	for _, p := range pts {
		ymax = math.Max(ymax, math.Abs(p.Y))
	}
	if xmax <= 0 || ymax == 0 {
		pdf.Ln(lineHeight)
		return
	}

	base := top + height/2
	sx := width / xmax
	sy := (height / 2) / ymax

	poly := make([]fpdf.PointType, 0, len(pts)+2)
	poly = append(poly, fpdf.PointType{X: left, Y: base})
	for _, p := range pts {
		// positive values are drawn above the axis
		poly = append(poly, fpdf.PointType{X: left + p.X*sx, Y: base - p.Y*sy})
	}
	poly = append(poly, fpdf.PointType{X: left + xmax*sx, Y: base})

	pdf.SetFillColor(200, 220, 240)
	pdf.SetDrawColor(40, 80, 160)
	pdf.Polygon(poly, "DF")
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(left, base, left+width, base)

	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(left+width-25, top+4, fmt.Sprintf("max %s", Num(ymax, 2)))
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetY(top + height + 4)
}

// Package batch reads member records from a spreadsheet, solves them and
// writes a results workbook with a bar bending schedule.
package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/engine"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/alexiusacademia/gorcd/internal/version"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the results workbook
const (
	ResultsSheet  = "Results"
	ScheduleSheet = "Bar Bending Schedule"
	RunSheet      = "Run"
)

// Row is one member of a batch
type Row struct {
	Label  string
	Params engine.Params
	Result design.Result
}

// Read parses the first sheet of a workbook. The header row names the
// parameter keys of the member ("span", "udl", "concrete_grade", ...) plus
// "archetype" (default beam) and "label". Rows that cannot be decoded are
// skipped and reported; the rest are returned in sheet order.
func Read(r io.Reader) ([]Row, []error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, []error{fmt.Errorf("invalid workbook: %w", err)}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, []error{err}
	}
	if len(rows) < 2 {
		return nil, []error{fmt.Errorf("sheet %q has no member rows", sheet)}
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var out []Row
	var errs []error
	for i := 1; i < len(rows); i++ {
		row, ok, err := parseRow(header, rows[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		if !ok {
			continue
		}
		if row.Label == "" {
			row.Label = fmt.Sprintf("%s-%d", row.Params.Archetype(), i)
		}
		out = append(out, row)
	}
	return out, errs
}

// parseRow turns one sheet row into a decoded record. Blank rows give
// ok == false.
func parseRow(header, cells []string) (Row, bool, error) {
	var row Row
	archetype := design.Beam.String()
	fields := map[string]any{}

	for i, cell := range cells {
		if i >= len(header) || header[i] == "" {
			continue
		}
		v := strings.TrimSpace(cell)
		if v == "" {
			continue
		}
		switch header[i] {
		case "archetype", "type":
			archetype = v
		case "label", "member":
			row.Label = v
		default:
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				fields[header[i]] = n
			} else {
				fields[header[i]] = v
			}
		}
	}
	if len(fields) == 0 && row.Label == "" {
		return row, false, nil
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return row, false, err
	}
	p, err := engine.Job{Archetype: archetype, Params: raw}.Decode()
	if err != nil {
		return row, false, err
	}
	row.Params = p
	return row, true, nil
}

// Solve fills the result of every row
func Solve(rows []Row) error {
	for i := range rows {
		res, err := engine.Solve(rows[i].Params)
		if err != nil {
			return fmt.Errorf("%s: %w", rows[i].Label, err)
		}
		rows[i].Result = res
	}
	return nil
}

var resultsHeader = []any{
	"#", "Member", "Archetype", "Valid", "Mu (kNm)", "Vu (kN)",
	"Ast req (mm²)", "Ast prov (mm²)", "Bars", "Utilization", "Governing", "Verdict", "Issues",
}

var scheduleHeader = []any{
	"Member", "Mark", "Shape", "Dia (mm)", "No.", "Length (m)", "Total (m)", "Weight (kg)",
}

// Write saves the solved rows as a workbook with results, bar bending
// schedule and run sheets. The returned id is printed on the run sheet.
func Write(w io.Writer, rows []Row) (uuid.UUID, error) {
	id := uuid.New()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return id, err
	}
	for _, name := range []string{ScheduleSheet, RunSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return id, err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return id, err
	}

	if err := writeRow(f, ResultsSheet, 1, resultsHeader); err != nil {
		return id, err
	}
	var marks []BarMark
	for i, r := range rows {
		if err := writeRow(f, ResultsSheet, i+2, resultCells(i+1, r)); err != nil {
			return id, err
		}
		marks = append(marks, Schedule(r)...)
	}

	if err := writeRow(f, ScheduleSheet, 1, scheduleHeader); err != nil {
		return id, err
	}
	var total float64
	for i, m := range marks {
		total += m.Weight()
		err := writeRow(f, ScheduleSheet, i+2, []any{
			m.Member, m.Mark, m.Shape, m.Diameter, m.Count,
			report.Round(m.Length, 3), report.Round(m.TotalLength(), 2), report.Round(m.Weight(), 2),
		})
		if err != nil {
			return id, err
		}
	}
	if len(marks) > 0 {
		if err := writeRow(f, ScheduleSheet, len(marks)+2, []any{"Total", "", "", "", "", "", "", report.Round(total, 2)}); err != nil {
			return id, err
		}
	}

	run := [][]any{
		{"Calculation", id.String()},
		{"Date", time.Now().Format("2006-01-02 15:04")},
		{"Members", len(rows)},
		{"Version", version.Version},
		{"Code", version.Code},
	}
	for i, cells := range run {
		if err := writeRow(f, RunSheet, i+1, cells); err != nil {
			return id, err
		}
	}

	for _, sheet := range []string{ResultsSheet, ScheduleSheet} {
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return id, err
		}
		if err := f.SetColWidth(sheet, "A", "M", 14); err != nil {
			return id, err
		}
	}
	if err := f.SetColWidth(RunSheet, "B", "B", 40); err != nil {
		return id, err
	}

	if err := f.Write(w); err != nil {
		return id, fmt.Errorf("failed to write workbook: %w", err)
	}
	return id, nil
}

func resultCells(n int, r Row) []any {
	res := r.Result
	issues := make([]string, len(res.Issues))
	for i, err := range res.Issues {
		issues[i] = err.Error()
	}
	archetype := res.Archetype.String()
	if r.Params != nil {
		archetype = r.Params.Archetype().String()
	}
	if !res.Valid {
		return []any{n, r.Label, archetype, false, "", "", "", "", "", "", "", "INVALID INPUT", strings.Join(issues, "; ")}
	}
	rf := res.Reinforcement
	return []any{
		n, r.Label, archetype, true,
		report.Round(res.Forces.MaxMoment, 2),
		report.Round(res.Forces.MaxShear, 2),
		report.Round(rf.AreaRequired, 0),
		report.Round(rf.AreaProvided, 0),
		rf.BarCallout,
		report.Round(res.Verdict.Utilization, 3),
		res.Verdict.Governing,
		report.FormatVerdict(res.Verdict),
		strings.Join(issues, "; "),
	}
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

// Template writes an input workbook with one example row per concrete
// member archetype
func Template(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{
		{"label", "archetype", "support", "span", "udl", "width", "depth", "length", "axial",
			"short_span", "long_span", "live_load", "floor_finish", "bearing_sbc", "column_width", "column_depth",
			"cover", "bar_diameter", "concrete_grade", "steel_grade"},
		{"B1", "beam", "simply-supported", 6, 20, 230, 450, "", "", "", "", "", "", "", "", "", 25, 16, 25, 500},
		{"C1", "column", "", "", "", 300, 450, 3, 1000, "", "", "", "", "", "", "", 40, 16, 25, 500},
		{"S1", "slab", "simply-supported", "", "", "", "", "", "", 3.5, "", 3, 1, "", "", "", 20, 10, 25, 500},
		{"F1", "footing", "", "", "", "", "", "", 1000, "", "", "", "", 200, 400, 400, 50, 12, 25, 500},
	}
	for i, cells := range rows {
		if err := writeRow(f, "Sheet1", i+1, cells); err != nil {
			return err
		}
	}
	return f.Write(w)
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Output options shared by every member command
	showDiagram bool
	exportFile  string
	pdfFile     string
	projectName string
)

const rule = "───────────────────────────────────────────────────────────────"

func addOutputFlags(c *cobra.Command) {
	c.Flags().BoolVar(&showDiagram, "diagram", false, "Show ASCII section and force diagrams")
	c.Flags().StringVarP(&exportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	c.Flags().StringVar(&pdfFile, "pdf", "", "Write a PDF calculation sheet")
	c.Flags().StringVar(&projectName, "project", "", "Project name printed on the calculation sheet")
}

// memberView is what a command knows about its member beyond the result
type memberView struct {
	title  string
	inputs [][2]string

	section *diagram.SectionDiagramData

	// force functions for shear and moment diagrams, x in m
	length float64
	shear  func(x float64) float64
	moment func(x float64) float64
}

func (v memberView) input(label, format string, args ...any) memberView {
	v.inputs = append(v.inputs, [2]string{label, fmt.Sprintf(format, args...)})
	return v
}

const diagramSamples = 48

func (v memberView) points(f func(x float64) float64) []design.Point {
	if f == nil || v.length <= 0 {
		return nil
	}
	var pts []design.Point
	for p := range report.Samples(v.length, diagramSamples, f) {
		pts = append(pts, p)
	}
	return pts
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

// render prints a solved member and writes the requested diagram and
// calculation sheet files
func render(v memberView, res design.Result) {
	logResult(res)
	printHeader(v.title)

	if len(v.inputs) > 0 {
		fmt.Println("INPUT DATA:")
		fmt.Println(rule)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, in := range v.inputs {
			fmt.Fprintf(w, "  %s:\t%s\n", in[0], in[1])
		}
		w.Flush()
		fmt.Println()
	}

	if !res.Valid {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  INVALID INPUT                          ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		for _, err := range res.Issues {
			fmt.Printf("  %v\n", err)
		}
		fmt.Println()
		return
	}

	printForces(res)
	printReinforcement(res)
	printQuantities(res)
	printChecks(res)

	fmt.Print(diagram.DrawSummaryBox("DESIGN RESULT", []string{
		"Materials: " + report.MaterialNames(res.Materials),
		"Verdict: " + report.FormatVerdict(res.Verdict),
	}))
	fmt.Println()

	shear, moment := v.points(v.shear), v.points(v.moment)
	if showDiagram {
		if v.section != nil {
			fmt.Println(diagram.DrawASCIISectionDiagram(*v.section))
			if s := diagram.DrawStrainDiagram(*v.section); s != "" {
				fmt.Println(s)
			}
		}
		if v.shear != nil {
			fmt.Println(diagram.DrawForceChart("Shear (kN)", report.Samples(v.length, diagramSamples, v.shear), 10))
		}
		if v.moment != nil {
			fmt.Println(diagram.DrawForceChart("Moment (kNm)", report.Samples(v.length, diagramSamples, v.moment), 10))
		}
	}

	if exportFile != "" {
		path := outputPath(exportFile)
		var err error
		switch {
		case v.section != nil && v.shear != nil:
			err = diagram.ExportSectionDiagram(*v.section, path)
			if err == nil {
				err = diagram.ExportForceDiagram(v.title, shear, moment, forcePath(path))
			}
		case v.section != nil:
			err = diagram.ExportSectionDiagram(*v.section, path)
		case v.shear != nil:
			err = diagram.ExportForceDiagram(v.title, shear, moment, path)
		default:
			err = fmt.Errorf("no diagram for %s", res.Archetype)
		}
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", path)
		}
	}

	if pdfFile != "" {
		writeSheet(v, res, shear, moment)
	}
}

func writeSheet(v memberView, res design.Result, shear, moment []design.Point) {
	path := outputPath(pdfFile)
	sheet := report.Sheet{
		Title:   v.title,
		Project: projectName,
		Date:    time.Now(),
		Shear:   shear,
		Moment:  moment,
	}
	var id uuid.UUID
	err := writeFile(path, func(w io.Writer) error {
		var err error
		id, err = sheet.Write(w, res)
		return err
	})
	if err != nil {
		fmt.Printf("Error writing calculation sheet: %v\n", err)
		return
	}
	logrus.WithFields(logrus.Fields{"file": path, "calculation": id}).Debug("calculation sheet written")
	fmt.Printf("Calculation sheet written to: %s (id %s)\n", path, id)
}

// outputPath places relative file names under the configured output
// directory
func outputPath(name string) string {
	if filepath.IsAbs(name) || cfg.OutputDir == "" || cfg.OutputDir == "." {
		return name
	}
	return filepath.Join(cfg.OutputDir, name)
}

func forcePath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "-forces" + ext
}

func printForces(res design.Result) {
	f := res.Forces
	if f == (design.Forces{}) {
		return
	}
	fmt.Println("DESIGN ACTIONS:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if f.Axial != 0 {
		fmt.Fprintf(w, "  Axial force:\t%s kN\n", report.Num(f.Axial, 2))
	}
	if f.MaxMoment != 0 {
		fmt.Fprintf(w, "  Max moment:\t%s kNm\n", report.Num(f.MaxMoment, 2))
	}
	if f.MaxShear != 0 {
		fmt.Fprintf(w, "  Max shear:\t%s kN\n", report.Num(f.MaxShear, 2))
	}
	if f.MaxDeflection != 0 {
		fmt.Fprintf(w, "  Max deflection:\t%s mm\n", report.Num(f.MaxDeflection, 2))
	}
	r := f.Reactions
	if r.Left != 0 || r.Right != 0 {
		fmt.Fprintf(w, "  Reactions:\tleft %s / right %s kN", report.Num(r.Left, 2), report.Num(r.Right, 2))
		if r.Middle != 0 {
			fmt.Fprintf(w, " / middle %s kN", report.Num(r.Middle, 2))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()
}

func printReinforcement(res design.Result) {
	rf := res.Reinforcement
	if rf.BarCallout == "" {
		return
	}
	fmt.Println("REINFORCEMENT:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  As required:\t%s mm²\n", report.Num(rf.AreaRequired, 0))
	fmt.Fprintf(w, "  As minimum:\t%s mm²\n", report.Num(rf.AreaMinimum, 0))
	fmt.Fprintf(w, "  As provided:\t%s mm²\n", report.Num(rf.AreaProvided, 0))
	if rf.AreaCompression > 0 {
		fmt.Fprintf(w, "  Asc provided:\t%s mm²\n", report.Num(rf.AreaCompression, 0))
	}
	fmt.Fprintf(w, "  Bars:\t%s\n", rf.BarCallout)
	if rf.MomentCapacity > 0 {
		fmt.Fprintf(w, "  Moment capacity:\t%s kNm\n", report.Num(rf.MomentCapacity/1e6, 2))
	}
	if rf.ShearCapacity > 0 {
		fmt.Fprintf(w, "  Shear capacity:\t%s kN\n", report.Num(rf.ShearCapacity/1000, 2))
	}
	w.Flush()
	fmt.Println()
}

func printQuantities(res design.Result) {
	if len(res.Quantities) == 0 {
		return
	}
	fmt.Println("QUANTITIES:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, q := range res.Quantities {
		fmt.Fprintf(w, "  %s:\t%s %s\t%s\n", q.Name, report.Num(q.Value, 2), q.Unit, q.Note)
	}
	w.Flush()
	fmt.Println()
}

func printChecks(res design.Result) {
	fmt.Println("CHECKS:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tDemand\tCapacity\tRatio\tStatus\n")
	fmt.Fprintf(w, "  ─────\t──────\t────────\t─────\t──────\n")
	for _, c := range res.Verdict.Checks {
		status := "✓"
		if !c.Pass {
			status = "✗"
		}
		marker := ""
		if c.Name == res.Verdict.Governing {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s %s\t%s %s\t%s\t%s%s\n",
			c.Name, report.Num(c.Demand, 2), c.Unit, report.Num(c.Capacity, 2), c.Unit,
			report.Num(c.Ratio, 3), status, marker)
	}
	w.Flush()
	fmt.Println()
}

// logResult records every issue of a result as a warning
func logResult(res design.Result) {
	entry := logrus.WithField("archetype", res.Archetype.String())
	for _, err := range res.Issues {
		entry.WithField("issue", err.Error()).Warn("solver issue")
	}
	for _, c := range res.Verdict.Checks {
		entry.Debug(report.FormatCheck(c))
	}
	entry.WithFields(logrus.Fields{
		"valid":       res.Valid,
		"utilization": res.Verdict.Utilization,
		"governing":   res.Verdict.Governing,
	}).Debug("member solved")
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcd/internal/batch"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	batchIn       string
	batchOut      string
	batchTemplate string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Design members listed in an Excel workbook",
	Long: `Design every member listed on the first sheet of an Excel workbook
and write a results workbook with a bar bending schedule.

The header row names the parameter keys (span, udl, width, depth, cover,
bar_diameter, concrete_grade, steel_grade, ...) plus "label" and
"archetype" (beam when omitted). Rows that cannot be read are reported and
skipped.

Examples:
  # Write an input template
  gorcd batch --template members.xlsx

  # Design the members
  gorcd batch --in members.xlsx --out results.xlsx`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchIn, "in", "i", "", "Input workbook (.xlsx)")
	batchCmd.Flags().StringVar(&batchOut, "out", "results.xlsx", "Results workbook (.xlsx)")
	batchCmd.Flags().StringVar(&batchTemplate, "template", "", "Write an input template to this file and exit")
	batchCmd.MarkFlagsOneRequired("in", "template")
}

func runBatch(cmd *cobra.Command, args []string) {
	if batchTemplate != "" {
		if err := writeFile(outputPath(batchTemplate), batch.Template); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Template written to: %s\n", outputPath(batchTemplate))
		return
	}

	in, err := os.Open(batchIn)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	rows, errs := batch.Read(in)
	in.Close()
	for _, err := range errs {
		logrus.WithField("file", batchIn).Warn(err)
	}
	if len(rows) == 0 {
		fmt.Println("Error: no members to design.")
		return
	}
	if err := batch.Solve(rows); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printHeader("BATCH DESIGN - IS 456:2000")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Member\tType\tBars\tVerdict\n")
	fmt.Fprintf(w, "  ──────\t────\t────\t───────\n")
	for _, r := range rows {
		logResult(r.Result)
		verdict := "INVALID INPUT"
		if r.Result.Valid {
			verdict = report.FormatVerdict(r.Result.Verdict)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", r.Label, r.Params.Archetype(), r.Result.Reinforcement.BarCallout, verdict)
	}
	w.Flush()
	fmt.Println()

	path := outputPath(batchOut)
	var id uuid.UUID
	err = writeFile(path, func(w io.Writer) error {
		u, err := batch.Write(w, rows)
		id = u
		return err
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Results written to: %s (run %s)\n", path, id)
	if len(errs) > 0 {
		fmt.Printf("%d row(s) skipped, see warnings above.\n", len(errs))
	}
}

// writeFile creates path, with its directory, and hands it to write
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

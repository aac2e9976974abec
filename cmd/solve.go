package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcd/internal/design"
	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/engine"
	"github.com/alexiusacademia/gorcd/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	solveFile  string
	solveJSON  bool
	solveBrief bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve members described in a JSON file",
	Long: `Solve one or more members described in a JSON file. The file holds a
single job or an array of jobs:

  {"archetype": "beam", "params": {"support": "simply-supported", "span": 6,
   "udl": 20, "width": 230, "depth": 450, "cover": 25, "bar_diameter": 16,
   "concrete_grade": 25, "steel_grade": 500}}

Archetypes: beam, column, slab, footing, stair, wall, tank, steel, mix.
The parameter keys match the flags of the member commands in snake case.

Examples:
  gorcd solve --file beams.json
  gorcd solve --file beams.json --brief
  gorcd solve --file beams.json --json > results.json`,
	Run: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "JSON job file [required]")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Print results as JSON")
	solveCmd.Flags().BoolVar(&solveBrief, "brief", false, "Print one summary box per job")
	solveCmd.MarkFlagRequired("file")

	addOutputFlags(solveCmd)
}

// jsonResult adds the issue messages dropped by design.Result's encoding
type jsonResult struct {
	design.Result
	Issues []string `json:"issues,omitempty"`
}

func runSolve(cmd *cobra.Command, args []string) {
	jobs, err := engine.LoadFile(solveFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	logrus.WithFields(logrus.Fields{"file": solveFile, "jobs": len(jobs)}).Debug("jobs loaded")

	results, err := engine.SolveAll(jobs)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if solveJSON {
		out := make([]jsonResult, len(results))
		for i, res := range results {
			logResult(res)
			out[i] = jsonResult{Result: res}
			for _, issue := range res.Issues {
				out[i].Issues = append(out[i].Issues, issue.Error())
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	for i, res := range results {
		title := fmt.Sprintf("JOB %d: %s", i+1, res.Archetype)
		if solveBrief {
			logResult(res)
			fmt.Print(diagram.DrawSummaryBox(title, report.Summary(res)))
			fmt.Println()
			continue
		}
		render(memberView{title: title}, res)
	}

	if len(results) > 1 {
		fmt.Println("SUMMARY:")
		fmt.Println(rule)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tMember\tVerdict\n")
		fmt.Fprintf(w, "  ─\t──────\t───────\n")
		for i, res := range results {
			verdict := "INVALID INPUT"
			if res.Valid {
				verdict = report.FormatVerdict(res.Verdict)
			}
			fmt.Fprintf(w, "  %d\t%s\t%s\n", i+1, res.Archetype, verdict)
		}
		w.Flush()
		fmt.Println()
	}
}

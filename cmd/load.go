package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/spf13/cobra"
)

var (
	// Unfactored actions (kN/m, kN or kNm)
	loadDead       float64
	loadLive       float64
	loadWind       float64
	loadEarthquake float64

	// Options
	showAll     bool
	gravityOnly bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate the factored load using IS 456 load combinations",
	Long: `Calculate the factored design action based on the IS 456:2000 Table 18
load combinations for the limit state of collapse.

Provide unfactored actions of one kind (loads, shears or moments) and this
command will compute the factored value for every applicable combination.
Wind and earthquake are taken in both directions.

Load Types:
  DL - Dead load
  IL - Imposed (live) load
  WL - Wind load
  EL - Earthquake load

Examples:
  # Gravity loads
  gorcd load --dead 12 --live 8

  # With wind, show every combination
  gorcd load --dead 12 --live 8 --wind 5 --all`,
	Run: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Dead load action")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Imposed load action")
	loadCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Wind load action")
	loadCmd.Flags().Float64VarP(&loadEarthquake, "earthquake", "e", 0, "Earthquake load action")

	loadCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	loadCmd.Flags().BoolVarP(&gravityOnly, "gravity", "g", false, "Use the gravity combination only: 1.5(DL + IL)")
}

func runLoad(cmd *cobra.Command, args []string) {
	loads := is456.Loads{
		Dead:       loadDead,
		Live:       loadLive,
		Wind:       loadWind,
		Earthquake: loadEarthquake,
	}

	if loads == (is456.Loads{}) {
		fmt.Println("Error: Please provide at least one unfactored load.")
		fmt.Println("Use 'gorcd load --help' for usage information.")
		return
	}

	combinations := is456.LoadCombinations
	if gravityOnly {
		combinations = is456.GravityCombinations
	}

	printHeader("IS 456:2000 FACTORED LOAD CALCULATION")

	fmt.Println("UNFACTORED LOADS:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if loads.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (DL):\t%.2f\n", loads.Dead)
	}
	if loads.Live != 0 {
		fmt.Fprintf(w, "  Imposed Load (IL):\t%.2f\n", loads.Live)
	}
	if loads.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (WL):\t%.2f\n", loads.Wind)
	}
	if loads.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake Load (EL):\t%.2f\n", loads.Earthquake)
	}
	w.Flush()
	fmt.Println()

	factored, governing := is456.Governing(loads, combinations)

	if showAll {
		fmt.Println("LOAD COMBINATIONS (IS 456:2000 Table 18):")
		fmt.Println(rule)
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tFactored\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\n")
		for _, combo := range combinations {
			v := max(combo.Factored(loads),
				combo.Factored(is456.Loads{Dead: loads.Dead, Live: loads.Live, Wind: -loads.Wind, Earthquake: -loads.Earthquake}))
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, v, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println(rule)
	fmt.Printf("  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED LOAD = %.2f  \n", factored)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()
}

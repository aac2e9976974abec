package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcd/internal/mix"
	"github.com/spf13/cobra"
)

var (
	mixParams   mix.Params
	mixExposure string
)

var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Concrete mix proportioning",
	Long: `Proportion a nominal concrete mix per IS 10262:2019 with the
durability limits of IS 456 Table 5.

Exposure conditions:
  mild, moderate, severe, very-severe, extreme

Examples:
  gorcd mix --grade 25 --exposure moderate
  gorcd mix --grade 30 --exposure severe --aggregate 10 --slump 100`,
	Run: runMix,
}

func init() {
	rootCmd.AddCommand(mixCmd)

	f := mixCmd.Flags()
	f.IntVar(&mixParams.ConcreteGrade, "grade", cfg.ConcreteGrade, "Concrete grade (M)")
	f.Float64Var(&mixParams.StandardDeviation, "sd", 0, "Standard deviation (MPa), 0 for the assumed value")
	f.StringVar(&mixExposure, "exposure", "moderate", "Exposure condition")
	f.IntVar(&mixParams.AggregateSize, "aggregate", mix.DefaultAggregate, "Maximum aggregate size (mm)")
	f.Float64Var(&mixParams.Slump, "slump", mix.BaseSlump, "Target slump (mm)")

	addOutputFlags(mixCmd)
}

func runMix(cmd *cobra.Command, args []string) {
	exposure, err := mix.ParseExposure(mixExposure)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	p := mixParams
	p.Exposure = exposure
	res := p.Solve()

	v := memberView{title: "CONCRETE MIX DESIGN - IS 10262:2019"}.
		input("Grade", "M%d", p.ConcreteGrade).
		input("Exposure", "%s", p.Exposure).
		input("Aggregate size", "%d mm", p.AggregateSize).
		input("Slump", "%.0f mm", p.Slump)
	render(v, res)
}

package cmd

import (
	"github.com/alexiusacademia/gorcd/internal/stair"
	"github.com/spf13/cobra"
)

var stairParams stair.Params

var stairCmd = &cobra.Command{
	Use:   "stair",
	Short: "Waist slab staircase design",
	Long: `Design a waist slab staircase spanning horizontally between
supports. The waist is sized for span/20 when not given.

Examples:
  gorcd stair --span 3 --riser 150 --tread 300 --live 3`,
	Run: runStair,
}

func init() {
	rootCmd.AddCommand(stairCmd)

	f := stairCmd.Flags()
	f.Float64Var(&stairParams.Span, "span", 0, "Effective horizontal span (m) [required]")
	f.Float64Var(&stairParams.Riser, "riser", 150, "Riser R (mm)")
	f.Float64Var(&stairParams.Tread, "tread", 300, "Tread T (mm)")
	f.Float64Var(&stairParams.Waist, "waist", 0, "Waist thickness (mm), 0 to size from span")
	f.Float64Var(&stairParams.LiveLoad, "live", 3, "Live load (kN/m²)")
	f.Float64Var(&stairParams.FloorFinish, "finish", 1, "Floor finish (kN/m²)")
	f.Float64VarP(&stairParams.Cover, "cover", "c", 20, "Clear cover (mm)")
	f.Float64Var(&stairParams.BarDiameter, "bar", 12, "Main bar diameter (mm)")
	f.IntVar(&stairParams.ConcreteGrade, "concrete", cfg.ConcreteGrade, "Concrete grade (M)")
	f.IntVar(&stairParams.SteelGrade, "steel", cfg.SteelGrade, "Steel grade (Fe)")

	stairCmd.MarkFlagRequired("span")

	addOutputFlags(stairCmd)
}

func runStair(cmd *cobra.Command, args []string) {
	p := stairParams
	res := p.Solve()

	v := memberView{title: "STAIRCASE DESIGN - IS 456:2000"}.
		input("Span", "%.2f m", p.Span).
		input("Riser / tread", "%.0f / %.0f mm", p.Riser, p.Tread).
		input("Live load", "%.2f kN/m²", p.LiveLoad).
		input("Grades", "M%d / Fe%d", p.ConcreteGrade, p.SteelGrade)

	if res.Valid {
		// simply supported under the factored load per plan metre
		w, L := res.Forces.MaxShear*2/p.Span, p.Span
		v.length = L
		v.shear = func(x float64) float64 { return w*L/2 - w*x }
		v.moment = func(x float64) float64 { return w * x * (L - x) / 2 }
	}
	render(v, res)
}

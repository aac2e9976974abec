package cmd

import (
	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/steel"
	"github.com/spf13/cobra"
)

var steelParams steel.Params

var steelCmd = &cobra.Command{
	Use:   "steel",
	Short: "Steel I-section member check",
	Long: `Check a symmetric rolled or built-up I-section for axial
compression, major axis bending and shear.

The checks follow IS 800:2007:
  - Clause 7.1.2: Design compressive stress, buckling class c
  - Clause 8.2.1: Plastic moment capacity fy·Zp/γm0
  - Clause 8.4: Shear yielding of the web
  - Clause 9.3.1: Linear interaction P/Pd + M/Md ≤ 1

Examples:
  # ISMB 300
  gorcd steel --bf 140 --tf 12.4 --depth 300 --tw 7.5 --length 3 --axial 300 --moment 40 --shear 50`,
	Run: runSteel,
}

func init() {
	rootCmd.AddCommand(steelCmd)

	f := steelCmd.Flags()
	f.Float64Var(&steelParams.FlangeWidth, "bf", 0, "Flange width (mm) [required]")
	f.Float64Var(&steelParams.FlangeThickness, "tf", 0, "Flange thickness (mm) [required]")
	f.Float64Var(&steelParams.Depth, "depth", 0, "Overall depth (mm) [required]")
	f.Float64Var(&steelParams.WebThickness, "tw", 0, "Web thickness (mm) [required]")
	f.Float64Var(&steelParams.Length, "length", 0, "Member length (m) [required]")
	f.Float64Var(&steelParams.EffectiveLength, "k", 1, "Effective length factor")
	f.Float64Var(&steelParams.Axial, "axial", 0, "Factored axial compression (kN)")
	f.Float64Var(&steelParams.Moment, "moment", 0, "Factored moment (kNm)")
	f.Float64Var(&steelParams.Shear, "shear", 0, "Factored shear (kN)")
	f.IntVar(&steelParams.SteelGrade, "grade", 250, "Structural steel grade (Fe)")

	for _, name := range []string{"bf", "tf", "depth", "tw", "length"} {
		steelCmd.MarkFlagRequired(name)
	}

	addOutputFlags(steelCmd)
}

func runSteel(cmd *cobra.Command, args []string) {
	p := steelParams
	res := p.Solve()

	v := memberView{title: "STEEL SECTION CHECK - IS 800:2007"}.
		input("Flanges (bf × tf)", "%.1f × %.1f mm", p.FlangeWidth, p.FlangeThickness).
		input("Web (h × tw)", "%.1f × %.1f mm", p.Depth, p.WebThickness).
		input("Length", "%.2f m (K = %.2f)", p.Length, p.EffectiveLength).
		input("Actions (P, M, V)", "%.1f kN, %.1f kNm, %.1f kN", p.Axial, p.Moment, p.Shear).
		input("Grade", "Fe%d", p.SteelGrade)

	if res.Valid {
		data := diagram.NewPolygonData(p.Section())
		v.section = &data
	}
	render(v, res)
}

package cmd

import (
	"github.com/alexiusacademia/gorcd/internal/footing"
	"github.com/spf13/cobra"
)

var footingParams footing.Params

var footingCmd = &cobra.Command{
	Use:   "footing",
	Short: "Isolated pad footing design",
	Long: `Size and design an isolated pad footing under a rectangular column.

The plan area is 1.1·P/SBC with equal projections. The depth grows in
25 mm steps until one-way and punching shear pass (IS 456 Clause 34).

Examples:
  gorcd footing --axial 1000 --sbc 200 --column-width 400 --column-depth 400`,
	Run: runFooting,
}

func init() {
	rootCmd.AddCommand(footingCmd)

	f := footingCmd.Flags()
	f.Float64Var(&footingParams.Axial, "axial", 0, "Service column load P (kN) [required]")
	f.Float64Var(&footingParams.BearingSBC, "sbc", 0, "Safe bearing capacity (kN/m²) [required]")
	f.Float64Var(&footingParams.ColumnWidth, "column-width", 0, "Column width (mm) [required]")
	f.Float64Var(&footingParams.ColumnDepth, "column-depth", 0, "Column depth (mm) [required]")
	f.Float64Var(&footingParams.Depth, "depth", 0, "Overall depth (mm), 0 to size from moment and shear")
	f.Float64VarP(&footingParams.Cover, "cover", "c", 50, "Clear cover (mm)")
	f.Float64Var(&footingParams.BarDiameter, "bar", 12, "Bar diameter (mm)")
	f.IntVar(&footingParams.ConcreteGrade, "concrete", cfg.ConcreteGrade, "Concrete grade (M)")
	f.IntVar(&footingParams.SteelGrade, "steel", cfg.SteelGrade, "Steel grade (Fe)")

	footingCmd.MarkFlagRequired("axial")
	footingCmd.MarkFlagRequired("sbc")
	footingCmd.MarkFlagRequired("column-width")
	footingCmd.MarkFlagRequired("column-depth")

	addOutputFlags(footingCmd)
}

func runFooting(cmd *cobra.Command, args []string) {
	p := footingParams
	res := p.Solve()

	v := memberView{title: "ISOLATED FOOTING DESIGN - IS 456:2000"}.
		input("Column load (P)", "%.2f kN", p.Axial).
		input("Safe bearing capacity", "%.0f kN/m²", p.BearingSBC).
		input("Column (b × D)", "%.0f × %.0f mm", p.ColumnWidth, p.ColumnDepth).
		input("Grades", "M%d / Fe%d", p.ConcreteGrade, p.SteelGrade)
	render(v, res)
}

package cmd

import (
	"github.com/alexiusacademia/gorcd/internal/column"
	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/section"
	"github.com/spf13/cobra"
)

var columnParams column.Params

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Rectangular tied column design",
	Long: `Design a rectangular tied column for a factored axial load and
optional biaxial moments.

The design follows IS 456:2000:
  - Clause 25.4: Minimum eccentricity L/500 + D/30, at least 20 mm
  - Clause 39.3: Pu = 0.4·fck·Ac + 0.67·fy·Asc
  - Clause 39.6: Biaxial bending interaction
  - Clause 26.5.3: 0.8% to 4% longitudinal steel, lateral ties

Examples:
  gorcd column --width 300 --depth 450 --length 3 --axial 1000
  gorcd column -b 400 --depth 400 --length 3.5 --axial 1500 --mx 60 --my 40`,
	Run: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)

	f := columnCmd.Flags()
	f.Float64VarP(&columnParams.Width, "width", "b", 0, "Column width b (mm) [required]")
	f.Float64Var(&columnParams.Depth, "depth", 0, "Column depth D (mm) [required]")
	f.Float64Var(&columnParams.Length, "length", 0, "Unsupported length (m) [required]")
	f.Float64Var(&columnParams.EffectiveLength, "k", 1, "Effective length factor")
	f.Float64Var(&columnParams.Axial, "axial", 0, "Factored axial load Pu (kN) [required]")
	f.Float64Var(&columnParams.MomentX, "mx", 0, "Factored moment about the major axis (kNm)")
	f.Float64Var(&columnParams.MomentY, "my", 0, "Factored moment about the minor axis (kNm)")
	f.Float64VarP(&columnParams.Cover, "cover", "c", 40, "Clear cover (mm)")
	f.Float64Var(&columnParams.BarDiameter, "bar", 16, "Longitudinal bar diameter (mm)")
	f.IntVar(&columnParams.ConcreteGrade, "concrete", cfg.ConcreteGrade, "Concrete grade (M)")
	f.IntVar(&columnParams.SteelGrade, "steel", cfg.SteelGrade, "Steel grade (Fe)")

	columnCmd.MarkFlagRequired("width")
	columnCmd.MarkFlagRequired("depth")
	columnCmd.MarkFlagRequired("length")
	columnCmd.MarkFlagRequired("axial")

	addOutputFlags(columnCmd)
}

func runColumn(cmd *cobra.Command, args []string) {
	p := columnParams
	res := p.Solve()

	v := memberView{title: "RC COLUMN DESIGN - IS 456:2000"}.
		input("Section (b × D)", "%.0f × %.0f mm", p.Width, p.Depth).
		input("Unsupported length", "%.2f m (k = %.2f)", p.Length, p.EffectiveLength).
		input("Axial load (Pu)", "%.2f kN", p.Axial).
		input("Moments (Mux, Muy)", "%.2f, %.2f kNm", p.MomentX, p.MomentY).
		input("Grades", "M%d / Fe%d", p.ConcreteGrade, p.SteelGrade)

	if res.Valid {
		data := diagram.NewPolygonData(section.Rectangle(p.Width, p.Depth))
		v.section = &data
	}
	render(v, res)
}

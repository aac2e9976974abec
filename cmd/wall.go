package cmd

import (
	"github.com/alexiusacademia/gorcd/internal/wall"
	"github.com/spf13/cobra"
)

var wallParams wall.Params

var wallCmd = &cobra.Command{
	Use:   "wall",
	Short: "Cantilever retaining wall design",
	Long: `Design the stem of a cantilever retaining wall and check its
stability against overturning, sliding and bearing using Rankine active
pressure.

Examples:
  gorcd wall --height 4 --stem 300 --soil-weight 18 --phi 30 --sbc 200`,
	Run: runWall,
}

func init() {
	rootCmd.AddCommand(wallCmd)

	f := wallCmd.Flags()
	f.Float64Var(&wallParams.Height, "height", 0, "Retained height (m) [required]")
	f.Float64Var(&wallParams.StemThickness, "stem", 0, "Stem and base thickness (mm) [required]")
	f.Float64Var(&wallParams.BaseWidth, "base", 0, "Base width (m), 0 for 0.6·H")
	f.Float64Var(&wallParams.SoilWeight, "soil-weight", 18, "Soil unit weight (kN/m³)")
	f.Float64Var(&wallParams.FrictionAngle, "phi", 30, "Angle of internal friction (degrees)")
	f.Float64Var(&wallParams.Surcharge, "surcharge", 0, "Surcharge (kN/m²)")
	f.Float64Var(&wallParams.BearingSBC, "sbc", 0, "Safe bearing capacity (kN/m²) [required]")
	f.Float64Var(&wallParams.Friction, "mu", 0.5, "Base friction coefficient")
	f.Float64VarP(&wallParams.Cover, "cover", "c", 50, "Clear cover (mm)")
	f.Float64Var(&wallParams.BarDiameter, "bar", 12, "Bar diameter (mm)")
	f.IntVar(&wallParams.ConcreteGrade, "concrete", cfg.ConcreteGrade, "Concrete grade (M)")
	f.IntVar(&wallParams.SteelGrade, "steel", cfg.SteelGrade, "Steel grade (Fe)")

	wallCmd.MarkFlagRequired("height")
	wallCmd.MarkFlagRequired("stem")
	wallCmd.MarkFlagRequired("sbc")

	addOutputFlags(wallCmd)
}

func runWall(cmd *cobra.Command, args []string) {
	p := wallParams
	res := p.Solve()

	v := memberView{title: "RETAINING WALL DESIGN - IS 456:2000"}.
		input("Retained height", "%.2f m", p.Height).
		input("Stem thickness", "%.0f mm", p.StemThickness).
		input("Soil", "γ = %.1f kN/m³, φ = %.1f°", p.SoilWeight, p.FrictionAngle).
		input("Surcharge", "%.2f kN/m²", p.Surcharge).
		input("Safe bearing capacity", "%.0f kN/m²", p.BearingSBC).
		input("Grades", "M%d / Fe%d", p.ConcreteGrade, p.SteelGrade)
	render(v, res)
}

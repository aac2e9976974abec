package cmd

import (
	"github.com/alexiusacademia/gorcd/internal/tank"
	"github.com/spf13/cobra"
)

var tankParams tank.Params

var tankCmd = &cobra.Command{
	Use:   "tank",
	Short: "Rectangular water tank wall design",
	Long: `Design the wall of an open rectangular water tank as a vertical
cantilever with direct tension, checked for cracking per IS 3370.

Examples:
  gorcd tank --height 3 --length 6 --width 4 --thickness 250`,
	Run: runTank,
}

func init() {
	rootCmd.AddCommand(tankCmd)

	f := tankCmd.Flags()
	f.Float64Var(&tankParams.Height, "height", 0, "Water depth (m) [required]")
	f.Float64Var(&tankParams.Length, "length", 0, "Plan length (m) [required]")
	f.Float64Var(&tankParams.Width, "width", 0, "Plan width (m) [required]")
	f.Float64Var(&tankParams.Thickness, "thickness", 0, "Wall thickness (mm) [required]")
	f.Float64VarP(&tankParams.Cover, "cover", "c", 30, "Clear cover (mm)")
	f.Float64Var(&tankParams.BarDiameter, "bar", 12, "Bar diameter (mm)")
	f.IntVar(&tankParams.ConcreteGrade, "concrete", 30, "Concrete grade (M)")
	f.IntVar(&tankParams.SteelGrade, "steel", cfg.SteelGrade, "Steel grade (Fe)")

	tankCmd.MarkFlagRequired("height")
	tankCmd.MarkFlagRequired("length")
	tankCmd.MarkFlagRequired("width")
	tankCmd.MarkFlagRequired("thickness")

	addOutputFlags(tankCmd)
}

func runTank(cmd *cobra.Command, args []string) {
	p := tankParams
	res := p.Solve()

	v := memberView{title: "WATER TANK WALL DESIGN - IS 456 / IS 3370"}.
		input("Water depth", "%.2f m", p.Height).
		input("Plan (L × W)", "%.2f × %.2f m", p.Length, p.Width).
		input("Wall thickness", "%.0f mm", p.Thickness).
		input("Grades", "M%d / Fe%d", p.ConcreteGrade, p.SteelGrade)
	render(v, res)
}

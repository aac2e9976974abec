package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcd/internal/beam"
	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/is456"
	"github.com/spf13/cobra"
)

var (
	beamParams  beam.Params
	beamSupport string
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Rectangular reinforced concrete beam design",
	Long: `Design a rectangular reinforced concrete beam for a factored
uniformly distributed load and an optional point load.

The design follows IS 456:2000 limit state of collapse:
  - Clause 38.1: Singly reinforced flexure, xu,max = 0.48d for Fe500
  - Annex G: Doubly reinforced sections above the limiting moment
  - Clause 40: Shear strength and minimum stirrups
  - Clause 23.2: Deflection limit span/250

Support conditions:
  simply-supported, cantilever, fixed, continuous (two equal spans, UDL only)

Examples:
  # Simply supported 6 m beam, 230x450, 20 kN/m
  gorcd beam --span 6 --udl 20 --width 230 --depth 450

  # Cantilever with a point load at the tip and diagrams
  gorcd beam --support cantilever --span 2 --udl 10 --point-load 30 --point-position 2 --width 230 --depth 450 --diagram`,
	Run: runBeam,
}

func init() {
	rootCmd.AddCommand(beamCmd)

	f := beamCmd.Flags()
	f.StringVar(&beamSupport, "support", "simply-supported", "Support condition")
	f.Float64Var(&beamParams.Span, "span", 0, "Span (m) [required]")
	f.Float64Var(&beamParams.UDL, "udl", 0, "Factored uniformly distributed load (kN/m)")
	f.Float64Var(&beamParams.PointLoad, "point-load", 0, "Factored point load (kN)")
	f.Float64Var(&beamParams.PointPosition, "point-position", 0, "Point load distance from the left support (m)")

	f.Float64VarP(&beamParams.Width, "width", "b", 0, "Beam width (mm) [required]")
	f.Float64Var(&beamParams.Depth, "depth", 0, "Beam overall depth (mm) [required]")
	f.Float64VarP(&beamParams.Cover, "cover", "c", cfg.Cover, "Clear cover (mm)")
	f.Float64Var(&beamParams.BarDiameter, "bar", 16, "Main bar diameter (mm)")
	f.Float64Var(&beamParams.CompressionCover, "compression-cover", is456.CompressionCover, "Cover to compression steel d' (mm)")

	f.IntVar(&beamParams.ConcreteGrade, "concrete", cfg.ConcreteGrade, "Concrete grade (M)")
	f.IntVar(&beamParams.SteelGrade, "steel", cfg.SteelGrade, "Steel grade (Fe)")

	beamCmd.MarkFlagRequired("span")
	beamCmd.MarkFlagRequired("width")
	beamCmd.MarkFlagRequired("depth")

	addOutputFlags(beamCmd)
}

func runBeam(cmd *cobra.Command, args []string) {
	support, err := beam.ParseSupport(beamSupport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	p := beamParams
	p.Support = support
	res := p.Solve()

	v := memberView{title: "RC BEAM DESIGN - IS 456:2000"}.
		input("Support", "%s", p.Support).
		input("Span (L)", "%.2f m", p.Span).
		input("UDL (wu)", "%.2f kN/m", p.UDL)
	if p.PointLoad != 0 {
		v = v.input("Point load (Pu)", "%.2f kN at %.2f m", p.PointLoad, p.PointPosition)
	}
	v = v.input("Section (b × D)", "%.0f × %.0f mm", p.Width, p.Depth).
		input("Effective depth (d)", "%.1f mm", p.EffectiveDepth()).
		input("Clear cover", "%.0f mm", p.Cover).
		input("Grades", "M%d / Fe%d", p.ConcreteGrade, p.SteelGrade)

	if res.Valid {
		rf := res.Reinforcement
		data := diagram.NewSectionData(p.Width, p.Depth, p.EffectiveDepth(),
			rf.AreaProvided, rf.AreaCompression, p.CompressionCover,
			res.Materials.Concrete.Strength, res.Materials.Steel.Strength)
		v.section = &data
		v.length = p.Length()
		v.shear = p.ShearAt
		v.moment = p.MomentAt
	}
	render(v, res)
}

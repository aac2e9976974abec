package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcd/internal/diagram"
	"github.com/alexiusacademia/gorcd/internal/slab"
	"github.com/spf13/cobra"
)

var (
	slabParams  slab.Params
	slabSupport string
)

var slabCmd = &cobra.Command{
	Use:   "slab",
	Short: "One-way and two-way slab design",
	Long: `Design a solid slab panel per metre width. A panel with a long span
of at most twice the short span is designed as two-way using the IS 456
Annex D coefficients; otherwise as a one-way strip.

The design follows IS 456:2000:
  - Clause 24.1: Span to depth ratios for sizing
  - Clause 26.5.2: Minimum steel 0.12% (0.15% for Fe250)
  - Clause 26.3.3: Bar spacing at most 3d or 300 mm

Support conditions:
  simply-supported, continuous, cantilever (one-way only)

Examples:
  gorcd slab --short-span 3.5 --live 3 --finish 1
  gorcd slab --support continuous --short-span 4 --long-span 5 --live 4`,
	Run: runSlab,
}

func init() {
	rootCmd.AddCommand(slabCmd)

	f := slabCmd.Flags()
	f.StringVar(&slabSupport, "support", "simply-supported", "Support condition")
	f.Float64Var(&slabParams.ShortSpan, "short-span", 0, "Short span Lx (m) [required]")
	f.Float64Var(&slabParams.LongSpan, "long-span", 0, "Long span Ly (m), 0 for a one-way strip")
	f.Float64Var(&slabParams.Depth, "depth", 0, "Overall depth (mm), 0 to size from span/depth")
	f.Float64Var(&slabParams.LiveLoad, "live", 3, "Live load (kN/m²)")
	f.Float64Var(&slabParams.FloorFinish, "finish", 1, "Floor finish (kN/m²)")
	f.Float64VarP(&slabParams.Cover, "cover", "c", 20, "Clear cover (mm)")
	f.Float64Var(&slabParams.BarDiameter, "bar", 10, "Main bar diameter (mm)")
	f.IntVar(&slabParams.ConcreteGrade, "concrete", cfg.ConcreteGrade, "Concrete grade (M)")
	f.IntVar(&slabParams.SteelGrade, "steel", cfg.SteelGrade, "Steel grade (Fe)")

	slabCmd.MarkFlagRequired("short-span")

	addOutputFlags(slabCmd)
}

func runSlab(cmd *cobra.Command, args []string) {
	support, err := slab.ParseEdge(slabSupport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	p := slabParams
	p.Support = support
	res := p.Solve()

	kind := "one-way"
	if p.TwoWay() {
		kind = "two-way"
	}
	v := memberView{title: "RC SLAB DESIGN - IS 456:2000"}.
		input("Support", "%s, %s", p.Support, kind).
		input("Spans (Lx, Ly)", "%.2f, %.2f m", p.ShortSpan, p.LongSpan).
		input("Live load", "%.2f kN/m²", p.LiveLoad).
		input("Floor finish", "%.2f kN/m²", p.FloorFinish).
		input("Grades", "M%d / Fe%d", p.ConcreteGrade, p.SteelGrade)

	D, okD := res.Quantity("overall depth")
	d, okd := res.Quantity("effective depth")
	if res.Valid && okD && okd {
		data := diagram.NewSectionData(1000, D.Value, d.Value, res.Reinforcement.AreaProvided, 0, 0,
			res.Materials.Concrete.Strength, res.Materials.Steel.Strength)
		v.section = &data
	}
	render(v, res)
}

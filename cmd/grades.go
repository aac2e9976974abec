package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcd/internal/material"
	"github.com/spf13/cobra"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List the concrete and steel grades",
	Long: `List the material grades known to the solvers. Requests for a grade
not in the table fall back to M25 for concrete and the nearest grade for
steel, and the fallback is reported with the result.`,
	Run: runGrades,
}

func init() {
	rootCmd.AddCommand(gradesCmd)
}

func runGrades(cmd *cobra.Command, args []string) {
	printHeader("MATERIAL GRADES - IS 456:2000")

	fmt.Println("CONCRETE:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade\tfck (MPa)\tEc (MPa)\tDensity (kN/m³)\n")
	fmt.Fprintf(w, "  ─────\t─────────\t────────\t───────────────\n")
	for _, g := range material.ConcreteGrades() {
		marker := ""
		if g.Label == cfg.ConcreteGrade {
			marker = " ← default"
		}
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.1f%s\n", g.Name(), g.Strength, g.Modulus, g.Density, marker)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("STEEL:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade\tfy (MPa)\tEs (MPa)\tDensity (kN/m³)\n")
	fmt.Fprintf(w, "  ─────\t────────\t────────\t───────────────\n")
	for _, g := range material.SteelGrades() {
		marker := ""
		if g.Label == cfg.SteelGrade {
			marker = " ← default"
		}
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.1f%s\n", g.Name(), g.Strength, g.Modulus, g.Density, marker)
	}
	w.Flush()
	fmt.Println()
}

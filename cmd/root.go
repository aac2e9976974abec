package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcd/internal/config"
	"github.com/alexiusacademia/gorcd/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cfg seeds flag defaults, so it is loaded before any init registers flags
var cfg = loadConfig()

var verbose bool

func loadConfig() config.Config {
	c, err := config.Load()
	if err != nil {
		logrus.WithError(err).Warn("using default configuration")
	}
	return c
}

var rootCmd = &cobra.Command{
	Use:   "gorcd",
	Short: "IS 456 limit state design of structural members",
	Long: `gorcd - Go Reinforced Concrete Designer

A CLI tool for the limit state design of structural members
based on IS 456:2000, with IS 800 steel sections and IS 10262 mixes.

This tool helps structural engineers perform:
  - Beam design for simply supported, cantilever, fixed and continuous spans
  - Column, slab, footing, staircase, retaining wall and water tank design
  - Steel I-section checks and concrete mix proportioning
  - Batch design from spreadsheets with a bar bending schedule

Defaults are read from the environment or a .env file:
  GORCD_CONCRETE_GRADE, GORCD_STEEL_GRADE, GORCD_COVER,
  GORCD_OUTPUT_DIR, GORCD_LOG_LEVEL`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		logrus.SetLevel(cfg.LogLevel)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		logrus.WithFields(logrus.Fields{
			"command":  cmd.Name(),
			"concrete": cfg.ConcreteGrade,
			"steel":    cfg.SteelGrade,
		}).Debug("starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcd v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Designer                         ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the limit state design of structural members")
		fmt.Printf("  based on %s.\n", version.Code)
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored loads using IS 456 Table 18 combinations")
		fmt.Println("    • Beam, column, slab and footing design")
		fmt.Println("    • Staircase, retaining wall and water tank design")
		fmt.Println("    • Steel I-section checks and concrete mix design")
		fmt.Println("    • Batch runs from JSON or Excel with bar bending schedules")
		fmt.Println()
		fmt.Println("  Use 'gorcd --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
}

package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcd/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcd v%s\n", version.Version)
		fmt.Println("Structural Member Design Tool")
		fmt.Printf("Based on %s\n", version.Code)
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

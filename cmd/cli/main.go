package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heatgrid",
		Short: "Render pivoted tables as SVG heatmap panels",
	}

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newInfoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

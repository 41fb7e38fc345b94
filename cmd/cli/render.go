package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/heatgrid/heatgrid/pkg/config"
	"github.com/heatgrid/heatgrid/pkg/frame"
	"github.com/heatgrid/heatgrid/pkg/heatmap"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		inFile        string
		outFile       string
		width         int
		height        int
		direction     string
		noToggle      bool
		keepEmptyCols bool
		background    string
		quiet         bool
	)

	// Load config to get defaults
	defaultCfg := config.Load(config.ConstantConfigFilename)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a table file as an SVG heatmap panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s *spinner.Spinner
			if !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Suffix = fmt.Sprintf(" Rendering %s...", inFile)
				s.Start()
			}
			svg, err := renderFile(inFile, width, height, direction, !noToggle, !keepEmptyCols, background)
			if s != nil {
				s.Stop()
			}
			if err != nil {
				return err
			}

			if outFile == "" || outFile == "-" {
				fmt.Println(svg)
				return nil
			}
			if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(os.Stderr, "Wrote %s\n", outFile)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inFile, "in", "", "Input table file (.csv, .json or .xlsx)")
	cmd.Flags().StringVar(&outFile, "out", "", "Output SVG file (default stdout)")
	cmd.Flags().IntVar(&width, "width", defaultCfg.Width, "Panel width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultCfg.Height, "Panel height in pixels")
	cmd.Flags().StringVar(&direction, "direction", defaultCfg.Direction, "Change direction (topToBottom or bottomToTop)")
	cmd.Flags().BoolVar(&noToggle, "no-toggle", !defaultCfg.ToggleColor, "Disable the click-to-toggle color interaction")
	cmd.Flags().BoolVar(&keepEmptyCols, "keep-empty-cols", !defaultCfg.RemoveEmptyCols, "Keep category columns that sum to zero")
	cmd.Flags().StringVar(&background, "background", defaultCfg.Background, "Panel background color")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func renderFile(inFile string, width, height int, direction string, toggle, removeEmpty bool, background string) (string, error) {
	table, err := frame.LoadFile(inFile)
	if err != nil {
		return "", err
	}

	opts := heatmap.DefaultOptions()
	dir, err := heatmap.ParseDirection(direction)
	if err != nil {
		return "", err
	}
	opts.Direction = dir
	opts.ToggleColor = toggle
	opts.RemoveEmptyCols = removeEmpty
	opts.Background = background

	panel, err := heatmap.New(table, opts, width, height)
	if err != nil {
		return "", err
	}
	return panel.Generate()
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/giftwrap/internal/engine"
	"github.com/piwi3910/giftwrap/internal/export"
	"github.com/piwi3910/giftwrap/internal/model"
)

// pattern: tile a canvas with a paper's pattern and report or export it.
func patternCmd() *cobra.Command {
	var (
		quality string
		colour  string
		width   float64
		height  float64
		pngPath string
		dxfPath string
	)
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Count, draw or export the tile pattern of a paper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !engine.ValidCanvas(width, height) || width > engine.MaxCanvasSize || height > engine.MaxCanvasSize {
				return fmt.Errorf("canvas %gx%g: sizes must be positive and at most %g", width, height, engine.MaxCanvasSize)
			}
			wrap := model.NewWrap()
			var err error
			if wrap.Quality, err = model.ParsePaperQuality(quality); err != nil {
				return err
			}
			if wrap.Colour, err = model.ParseColour(colour); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			shape := engine.ShapeFor(wrap.Quality)
			fmt.Fprintf(out, "%s paper, %s %s tiles on %gx%g: %d polygons\n",
				wrap.Quality, wrap.Colour, shape.Name, width, height, engine.TileCount(width, height, wrap.Quality))

			if pngPath != "" {
				if err := export.SavePatternPNG(pngPath, int(width), int(height), wrap); err != nil {
					return err
				}
				fmt.Fprintln(out, "Wrote", pngPath)
			}
			if dxfPath != "" {
				if err := export.ExportPatternDXF(dxfPath, width, height, wrap); err != nil {
					return err
				}
				fmt.Fprintln(out, "Wrote", dxfPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&quality, "quality", "cheap", "paper quality: cheap (trapezium) or expensive (hexagon)")
	cmd.Flags().StringVar(&colour, "colour", "purple", "paper colour")
	cmd.Flags().Float64Var(&width, "width", 400, "canvas width")
	cmd.Flags().Float64Var(&height, "height", 300, "canvas height")
	cmd.Flags().StringVar(&pngPath, "png", "", "write a PNG preview to this path")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "write a DXF outline to this path")
	return cmd
}

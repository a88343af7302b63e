package export

import (
	"fmt"

	"github.com/piwi3910/giftwrap/internal/engine"
	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/yofu/dxf"
)

// CanvasLayer holds the outline of the paper sheet in pattern DXF files.
const CanvasLayer = "Canvas"

// ExportPatternDXF writes the paper pattern as closed polylines, one per
// tile, on a layer named after the tile shape, plus the sheet outline on
// CanvasLayer. DXF's Y axis points up, so rows are mirrored to keep the
// first row at the top.
func ExportPatternDXF(path string, width, height float64, wrap model.Wrap) error {
	if !engine.ValidCanvas(width, height) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidCanvas, width, height)
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer(CanvasLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add layer %s: %w", CanvasLayer, err)
	}
	if _, err := d.LwPolyline(true,
		[]float64{0, 0},
		[]float64{width, 0},
		[]float64{width, height},
		[]float64{0, height},
	); err != nil {
		return fmt.Errorf("draw canvas outline: %w", err)
	}

	shape := engine.ShapeFor(wrap.Quality)
	if _, err := d.AddLayer(shape.Name, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add layer %s: %w", shape.Name, err)
	}

	tiles := 0
	for p := range engine.TilePattern(width, height, wrap) {
		vertices := make([][]float64, len(p.Vertices))
		for i, v := range p.Vertices {
			vertices[i] = []float64{v.X, height - v.Y}
		}
		if _, err := d.LwPolyline(true, vertices...); err != nil {
			return fmt.Errorf("draw tile %d: %w", tiles, err)
		}
		tiles++
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("write dxf %s: %w", path, err)
	}
	model.Logger().Debug("pattern dxf saved", "path", path, "tiles", tiles)
	return nil
}

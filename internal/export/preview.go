package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/piwi3910/giftwrap/internal/engine"
	"github.com/piwi3910/giftwrap/internal/model"
)

// ErrInvalidCanvas is returned when a preview is requested with a
// non-positive width or height.
var ErrInvalidCanvas = errors.New("canvas dimensions must be finite and positive")

// drawPattern rasterises the paper pattern onto a white canvas, one filled
// and outlined polygon per tile.
func drawPattern(width, height int, wrap model.Wrap) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, width, height)
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	dc.SetLineWidth(1)

	for p := range engine.TilePattern(float64(width), float64(height), wrap) {
		for i, v := range p.Vertices {
			if i == 0 {
				dc.MoveTo(v.X, v.Y)
			} else {
				dc.LineTo(v.X, v.Y)
			}
		}
		dc.ClosePath()

		dc.SetHexColor(p.Fill.Hex())
		if err := dc.FillPreserve(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("fill tile: %w", err)
		}
		dc.SetRGB(0, 0, 0)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("outline tile: %w", err)
		}
	}
	return dc, nil
}

// RenderPatternPNG writes a width x height PNG preview of the paper to w.
func RenderPatternPNG(w io.Writer, width, height int, wrap model.Wrap) error {
	dc, err := drawPattern(width, height, wrap)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePatternPNG writes a PNG preview of the paper to path.
func SavePatternPNG(path string, width, height int, wrap model.Wrap) error {
	dc, err := drawPattern(width, height, wrap)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write preview %s: %w", path, err)
	}
	model.Logger().Debug("pattern preview saved", "path", path, "quality", wrap.Quality.String(), "colour", wrap.Colour.String())
	return nil
}

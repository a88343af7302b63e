// Package engine generates wrapping paper previews and what-if price
// comparisons on top of the model package.
package engine

import (
	"iter"
	"math"
	"slices"

	"github.com/piwi3910/giftwrap/internal/model"
)

// TileShape is the repeating unit of a paper pattern.
type TileShape struct {
	Name       string
	Vertices   model.Outline
	CellWidth  float64 // Horizontal step between tiles
	CellHeight float64 // Vertical step between rows
	Stagger    float64 // Shift applied to every odd row
}

// Built-in tile shapes, one per paper quality.
var (
	Trapezium = TileShape{
		Name:       "Trapezium",
		Vertices:   model.Outline{{X: 0, Y: 15}, {X: 7.25, Y: 0}, {X: 30, Y: 0}, {X: 37.25, Y: 15}},
		CellWidth:  38,
		CellHeight: 15,
		Stagger:    0,
	}
	Hexagon = TileShape{
		Name:       "Hexagon",
		Vertices:   model.Outline{{X: 0, Y: 15}, {X: 15, Y: 0}, {X: 30, Y: 0}, {X: 45, Y: 15}, {X: 30, Y: 30}, {X: 15, Y: 30}},
		CellWidth:  45,
		CellHeight: 30,
		Stagger:    30,
	}
)

// ShapeFor returns the tile used to preview paper of the given quality.
func ShapeFor(q model.PaperQuality) TileShape {
	if q == model.QualityExpensive {
		return Hexagon
	}
	return Trapezium
}

// Polygon is one placed tile ready for a renderer.
type Polygon struct {
	Shape    string
	Vertices model.Outline
	Fill     model.Colour
}

// TilePattern yields the tiles covering a canvasWidth x canvasHeight area in
// a staggered brick layout. Tiles at the right and bottom edges may extend
// past the canvas; renderers are expected to clip. The sequence is finite
// and can be ranged over any number of times with identical results.
// Canvases that are not finite and positive yield nothing.
func TilePattern(canvasWidth, canvasHeight float64, wrap model.Wrap) iter.Seq[Polygon] {
	shape := ShapeFor(wrap.Quality)
	rows, cols := grid(canvasWidth, canvasHeight, shape)
	return func(yield func(Polygon) bool) {
		for row := range rows {
			y := float64(row) * shape.CellHeight
			for col := range cols {
				x := float64(col) * shape.CellWidth
				if row%2 == 1 {
					x -= shape.Stagger
				}
				p := Polygon{
					Shape:    shape.Name,
					Vertices: shape.Vertices.Translate(x, y),
					Fill:     wrap.Colour,
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// MaxCanvasSize is the largest canvas side accepted from user input.
const MaxCanvasSize = 10000.0

// ValidCanvas reports whether both sizes are finite and positive.
func ValidCanvas(width, height float64) bool {
	return width > 0 && height > 0 && !math.IsInf(width, 0) && !math.IsInf(height, 0)
}

// grid returns the number of tile rows and columns covering the canvas.
// Invalid canvases have none.
func grid(width, height float64, shape TileShape) (rows, cols int) {
	if !ValidCanvas(width, height) {
		return 0, 0
	}
	return cells(height, shape.CellHeight), cells(width, shape.CellWidth)
}

func cells(size, step float64) int {
	n := math.Ceil(size / step)
	if n >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// Tiles collects TilePattern into a slice.
func Tiles(canvasWidth, canvasHeight float64, wrap model.Wrap) []Polygon {
	return slices.Collect(TilePattern(canvasWidth, canvasHeight, wrap))
}

// TileCount returns how many tiles TilePattern yields without building them.
func TileCount(canvasWidth, canvasHeight float64, q model.PaperQuality) int {
	rows, cols := grid(canvasWidth, canvasHeight, ShapeFor(q))
	return rows * cols
}

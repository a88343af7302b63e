package export

import (
	"testing"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/stretchr/testify/require"
)

// buildTestOrder creates an order with a mix of shapes, papers and extras.
func buildTestOrder(t *testing.T) *model.Order {
	t.Helper()
	o, err := model.NewOrder(42)
	require.NoError(t, err)

	cube := model.NewQuote()
	cube.Gift = model.Gift{Shape: model.ShapeCube, X: 10, Y: 1, Z: 1}
	o.Append(cube)

	box := model.NewQuote()
	box.Gift = model.Gift{Shape: model.ShapeCuboid, X: 30, Y: 20, Z: 10}
	box.Wrap = model.Wrap{Colour: model.ColourGold, Quality: model.QualityExpensive}
	box.IncludesBow = true
	box.IncludesLabel = true
	box.LabelText = "Happy Birthday Grandma"
	o.Append(box)

	tube := model.NewQuote()
	tube.Gift = model.Gift{Shape: model.ShapeCylinder, X: 4, Y: 25, Z: 1}
	tube.Wrap = model.Wrap{Colour: model.ColourDeepSkyBlue, Quality: model.QualityCheap}
	tube.IncludesLabel = true
	tube.LabelText = "Dad"
	o.Append(tube)

	return o
}

func emptyOrder(t *testing.T) *model.Order {
	t.Helper()
	o, err := model.NewOrder(1)
	require.NoError(t, err)
	return o
}

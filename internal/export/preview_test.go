package export

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgbAt(img image.Image, x, y int) (int, int, int) {
	r, g, b, _ := img.At(x, y).RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

func TestRenderPatternPNG(t *testing.T) {
	var buf bytes.Buffer
	wrap := model.Wrap{Colour: model.ColourPurple, Quality: model.QualityCheap}
	require.NoError(t, RenderPatternPNG(&buf, 120, 60, wrap))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())

	// Outside the first trapezium, in its top-left corner.
	r, g, b := rgbAt(img, 1, 1)
	assert.Equal(t, [3]int{255, 255, 255}, [3]int{r, g, b})

	// Well inside the first trapezium.
	wr, wg, wb := model.ColourPurple.RGB()
	r, g, b = rgbAt(img, 18, 8)
	assert.InDelta(t, wr, r, 3)
	assert.InDelta(t, wg, g, 3)
	assert.InDelta(t, wb, b, 3)
}

func TestRenderPatternPNG_InvalidCanvas(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPatternPNG(&buf, 0, 10, model.NewWrap())
	assert.True(t, errors.Is(err, ErrInvalidCanvas))
	assert.Zero(t, buf.Len())
}

func TestSavePatternPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	wrap := model.Wrap{Colour: model.ColourGold, Quality: model.QualityExpensive}
	require.NoError(t, SavePatternPNG(path, 90, 60, wrap))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 90, 60), img.Bounds())

	// Centre of the first hexagon.
	wr, wg, wb := model.ColourGold.RGB()
	r, g, b := rgbAt(img, 22, 15)
	assert.InDelta(t, wr, r, 3)
	assert.InDelta(t, wg, g, 3)
	assert.InDelta(t, wb, b, 3)
}

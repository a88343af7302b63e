package export

import (
	"math"
	"errors"
	"path/filepath"
	"testing"

	"github.com/piwi3910/giftwrap/internal/engine"
	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func TestExportPatternDXF(t *testing.T) {
	tests := []struct {
		name     string
		quality  model.PaperQuality
		vertices int
	}{
		{"cheap", model.QualityCheap, 4},
		{"expensive", model.QualityExpensive, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pattern.dxf")
			wrap := model.Wrap{Colour: model.ColourLightSeaGreen, Quality: tt.quality}
			require.NoError(t, ExportPatternDXF(path, 200, 120, wrap))

			drawing, err := dxf.Open(path)
			require.NoError(t, err)

			var polylines []*entity.LwPolyline
			for _, e := range drawing.Entities() {
				if lw, ok := e.(*entity.LwPolyline); ok {
					polylines = append(polylines, lw)
				}
			}

			// Sheet outline plus one polyline per tile.
			require.Len(t, polylines, engine.TileCount(200, 120, tt.quality)+1)
			assert.Len(t, polylines[0].Vertices, 4)
			for _, lw := range polylines[1:] {
				assert.Len(t, lw.Vertices, tt.vertices)
			}
		})
	}
}

func TestExportPatternDXF_FlipsY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pattern.dxf")
	require.NoError(t, ExportPatternDXF(path, 38, 15, model.NewWrap()))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	var tile *entity.LwPolyline
	for _, e := range drawing.Entities() {
		if lw, ok := e.(*entity.LwPolyline); ok {
			tile = lw
		}
	}
	require.NotNil(t, tile)
	// The trapezium's first vertex (0,15) sits on the bottom edge once mirrored.
	assert.InDelta(t, 0.0, tile.Vertices[0][0], 1e-6)
	assert.InDelta(t, 0.0, tile.Vertices[0][1], 1e-6)
	assert.InDelta(t, 15.0, tile.Vertices[1][1], 1e-6)
}

func TestExportPatternDXF_InvalidCanvas(t *testing.T) {
	for _, size := range [][2]float64{{10, -1}, {math.Inf(1), 10}, {10, math.NaN()}} {
		err := ExportPatternDXF(filepath.Join(t.TempDir(), "p.dxf"), size[0], size[1], model.NewWrap())
		assert.True(t, errors.Is(err, ErrInvalidCanvas), "canvas %v", size)
	}
}

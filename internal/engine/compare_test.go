package engine

import (
	"testing"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compareQuote() model.Quote {
	q := model.NewQuote()
	q.Gift = model.Gift{Shape: model.ShapeCube, X: 10, Y: 10, Z: 10}
	q.Wrap = model.Wrap{Colour: model.ColourPurple, Quality: model.QualityCheap}
	return q
}

func TestBuildDefaultScenarios_Plain(t *testing.T) {
	scenarios := BuildDefaultScenarios(compareQuote())

	require.Len(t, scenarios, 2)
	assert.Equal(t, "Current Quote", scenarios[0].Name)
	assert.Equal(t, "Expensive Paper", scenarios[1].Name)
	assert.Equal(t, model.QualityExpensive, scenarios[1].Quote.Wrap.Quality)
}

func TestBuildDefaultScenarios_WithExtras(t *testing.T) {
	q := compareQuote()
	q.Wrap.Quality = model.QualityExpensive
	q.IncludesBow = true
	q.IncludesLabel = true
	q.LabelText = "Mum"

	scenarios := BuildDefaultScenarios(q)
	require.Len(t, scenarios, 4)
	assert.Equal(t, "Cheap Paper", scenarios[1].Name)
	assert.Equal(t, "No Bow", scenarios[2].Name)
	assert.False(t, scenarios[2].Quote.IncludesBow)
	assert.True(t, scenarios[2].Quote.IncludesLabel)
	assert.Equal(t, "No Label", scenarios[3].Name)
	assert.False(t, scenarios[3].Quote.IncludesLabel)

	// The source quote is untouched.
	assert.True(t, q.IncludesBow)
	assert.Equal(t, model.QualityExpensive, q.Wrap.Quality)
}

func TestCompareQualities_Deltas(t *testing.T) {
	q := compareQuote()
	q.IncludesBow = true

	results := CompareQualities(q)
	require.Len(t, results, 3)

	current := results[0]
	assert.Equal(t, int64(0), current.Delta)
	assert.Equal(t, q.Total(), current.Breakdown.Total)

	expensive := results[1]
	assert.Greater(t, expensive.Delta, int64(0))
	assert.Equal(t, expensive.Breakdown.Total-current.Breakdown.Total, expensive.Delta)

	noBow := results[2]
	assert.Equal(t, -model.Settings().BowPrice, noBow.Delta)
}

func TestCompareScenarios_Empty(t *testing.T) {
	assert.Empty(t, CompareScenarios(nil))
}

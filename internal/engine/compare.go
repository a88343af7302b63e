package engine

import (
	"fmt"

	"github.com/piwi3910/giftwrap/internal/model"
)

// ComparisonScenario is a named variation of a quote.
type ComparisonScenario struct {
	Name  string
	Quote model.Quote
}

// ComparisonResult holds the price of one scenario and its difference from
// the first (current) scenario.
type ComparisonResult struct {
	Scenario  ComparisonScenario
	Breakdown model.PriceBreakdown
	Delta     int64
}

// CompareScenarios prices every scenario. Delta is measured against the
// first scenario, so callers list the current configuration first.
func CompareScenarios(scenarios []ComparisonScenario) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))
	var base int64

	for i, scenario := range scenarios {
		b := model.EstimateQuote(scenario.Quote)
		if i == 0 {
			base = b.Total
		}
		results = append(results, ComparisonResult{
			Scenario:  scenario,
			Breakdown: b,
			Delta:     b.Total - base,
		})
	}
	return results
}

// BuildDefaultScenarios derives what-if alternatives from a quote: the other
// paper quality, and the quote without each extra it carries.
func BuildDefaultScenarios(q model.Quote) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Quote", Quote: q.Copy()},
	}

	alt := q.Copy()
	if q.Wrap.Quality == model.QualityCheap {
		alt.Wrap.Quality = model.QualityExpensive
	} else {
		alt.Wrap.Quality = model.QualityCheap
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:  fmt.Sprintf("%s Paper", alt.Wrap.Quality),
		Quote: alt,
	})

	if q.IncludesBow {
		noBow := q.Copy()
		noBow.IncludesBow = false
		scenarios = append(scenarios, ComparisonScenario{Name: "No Bow", Quote: noBow})
	}

	if q.IncludesLabel {
		noLabel := q.Copy()
		noLabel.IncludesLabel = false
		scenarios = append(scenarios, ComparisonScenario{Name: "No Label", Quote: noLabel})
	}

	return scenarios
}

// CompareQualities prices a quote against its default what-if scenarios.
func CompareQualities(q model.Quote) []ComparisonResult {
	return CompareScenarios(BuildDefaultScenarios(q))
}

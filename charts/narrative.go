package charts

import (
	"fmt"
	"math"

	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// NARRATIVE BUILDER — story copy derived from the dataset
// ============================================================================
// The scroll layout pairs each chart with a short text block. Findings are
// computed, never hand-written, so they stay consistent with the charts.
// ============================================================================

// BuildNarrative derives the headline and findings for the chosen
// aggregation method.
func BuildNarrative(ds *dataset.Dataset, method dataset.Method) (*Narrative, error) {
	rows, err := worldRows(ds, method)
	if err != nil {
		return nil, err
	}

	label := method.Label()
	agg, err := ds.FactorScoresFor(label)
	if err != nil {
		return nil, err
	}

	var aggRank int
	for _, r := range rows {
		if r.Country == label {
			aggRank = r.Rank
			break
		}
	}

	breakdown, err := dataset.DimensionBreakdown(ds, label)
	if err != nil {
		return nil, err
	}
	largest := breakdown[0]
	for _, r := range breakdown {
		if r.Gap > largest.Gap {
			largest = r
		}
	}

	simple, _ := ds.FactorScoresFor(dataset.LabelSimple)
	weighted, _ := ds.FactorScoresFor(dataset.LabelWeighted)

	findings := []string{
		fmt.Sprintf("As a single economy, the %s bloc would rank %d of %d worldwide with a score of %.1f.",
			label, aggRank, len(rows), agg.OverallScore),
		fmt.Sprintf("The widest gap to the frontier is %s at %.1f points.",
			largest.Dimension, largest.Gap),
		fmt.Sprintf("GDP weighting shifts the bloc score by %.1f points versus the simple mean, reflecting the largest economies' pull.",
			weighted.OverallScore-simple.OverallScore),
	}

	if country, delta := bestMover(ds); delta > 0 {
		findings = append(findings, fmt.Sprintf(
			"%s is the strongest five-year mover, climbing %d overall ranking places since joining the window.",
			country, delta))
	}

	return &Narrative{
		Headline: fmt.Sprintf("Gulf competitiveness in %d, measured as one economy", ds.Year),
		Findings: findings,
	}, nil
}

// bestMover scans the five-year overall factor ranks for the largest
// rank improvement between a country's first and latest surveyed year.
func bestMover(ds *dataset.Dataset) (string, int) {
	best := ""
	bestDelta := math.MinInt
	for _, f := range ds.FactorRanks {
		if f.Factor != dataset.DimOverall {
			continue
		}
		var first, latest *int
		for _, r := range f.Ranks {
			if r == nil {
				continue
			}
			if first == nil {
				first = r
			}
			latest = r
		}
		if first == nil || latest == nil {
			continue
		}
		delta := *first - *latest // positive = improved
		if delta > bestDelta {
			bestDelta = delta
			best = f.Country
		}
	}
	if best == "" {
		return "", 0
	}
	return best, bestDelta
}

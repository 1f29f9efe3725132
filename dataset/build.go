package dataset

import "sort"

// ============================================================================
// DATASET BUILDER
// ============================================================================
// Build() is deterministic: the catalog is compile-time constant, so two
// calls always produce identical datasets. Each call returns a fresh value
// so concurrent consumers never share mutable intermediates.
// ============================================================================

// Build constructs the dataset: the fixed catalog plus the two derived
// regional aggregate rows, merged into both the factor table and the
// re-ranked world table.
func Build() *Dataset {
	scores := make([]CountryFactorScores, len(factorScores2025))
	copy(scores, factorScores2025)
	for i := range scores {
		scores[i].GDPUSDBillion = gdp2024[scores[i].Country]
	}

	simple := aggregateRow(scores, LabelSimple, nil)
	weighted := aggregateRow(scores, LabelWeighted, gdp2024)
	scores = append(scores, simple, weighted)

	world := make([]WorldRankingRow, len(worldBase), len(worldBase)+2)
	copy(world, worldBase)
	world = append(world,
		WorldRankingRow{Country: LabelSimple, Score: simple.OverallScore, Region: RegionAggregate},
		WorldRankingRow{Country: LabelWeighted, Score: weighted.OverallScore, Region: RegionAggregate},
	)
	world = Rerank(world)

	yr := make([]CountryYearRank, len(yearRanks))
	copy(yr, yearRanks)
	fr := make([]FiveYearFactorRank, len(factorRanks))
	copy(fr, factorRanks)
	members := make([]string, len(memberOrder))
	copy(members, memberOrder)

	return &Dataset{
		Year:         CatalogYear,
		Members:      members,
		YearRanks:    yr,
		FactorScores: scores,
		WorldRanking: world,
		FactorRanks:  fr,
	}
}

// ============================================================================
// AGGREGATE COMPUTATION
// ============================================================================

// aggregateRow derives one synthetic bloc row over the member rows. With
// nil weights every member counts equally; otherwise each dimension is the
// GDP-weighted mean. The GDP field is always the member sum.
func aggregateRow(members []CountryFactorScores, label string, weights map[string]float64) CountryFactorScores {
	agg := CountryFactorScores{Country: label, Year: CatalogYear}

	var totalWeight, totalGDP float64
	for _, m := range members {
		w := 1.0
		if weights != nil {
			w = weights[m.Country]
		}
		totalWeight += w
		totalGDP += m.GDPUSDBillion

		agg.OverallRank += w * m.OverallRank
		agg.OverallScore += w * m.OverallScore
		agg.EconRank += w * m.EconRank
		agg.EconScore += w * m.EconScore
		agg.GovRank += w * m.GovRank
		agg.GovScore += w * m.GovScore
		agg.BizRank += w * m.BizRank
		agg.BizScore += w * m.BizScore
		agg.InfraRank += w * m.InfraRank
		agg.InfraScore += w * m.InfraScore
	}

	if totalWeight > 0 {
		agg.OverallRank /= totalWeight
		agg.OverallScore /= totalWeight
		agg.EconRank /= totalWeight
		agg.EconScore /= totalWeight
		agg.GovRank /= totalWeight
		agg.GovScore /= totalWeight
		agg.BizRank /= totalWeight
		agg.BizScore /= totalWeight
		agg.InfraRank /= totalWeight
		agg.InfraScore /= totalWeight
	}
	agg.GDPUSDBillion = totalGDP
	return agg
}

// WeightedMean computes the weighted mean of values: sum(value*weight)
// divided by sum(weight). A zero total weight yields 0.
func WeightedMean(values, weights []float64) float64 {
	var num, den float64
	for i := range values {
		num += values[i] * weights[i]
		den += weights[i]
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// ============================================================================
// RE-RANK
// ============================================================================

// Rerank stable-sorts rows by descending score and reassigns dense ranks
// 1..N. Ties keep their incoming relative order; this is the one place a
// rank is computed rather than stored. The input slice is not modified.
func Rerank(rows []WorldRankingRow) []WorldRankingRow {
	out := make([]WorldRankingRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

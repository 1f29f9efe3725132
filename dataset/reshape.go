package dataset

// ============================================================================
// DIMENSION RESHAPER — wide factor row → long {dimension, score, gap}
// ============================================================================

// DimensionBreakdown reshapes one entity's five dimension scores into long
// format with the gap to the 100-point frontier. Row order follows
// BreakdownOrder; downstream chart axes depend on it.
func DimensionBreakdown(ds *Dataset, entity string) ([]DimensionRow, error) {
	row, err := ds.FactorScoresFor(entity)
	if err != nil {
		return nil, err
	}

	out := make([]DimensionRow, 0, len(BreakdownOrder))
	for _, d := range BreakdownOrder {
		score := row.Score(d)
		out = append(out, DimensionRow{
			Dimension: d,
			Score:     score,
			Gap:       100 - score,
		})
	}
	return out, nil
}

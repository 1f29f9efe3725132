package charts

import "github.com/gulfpulse/gulfpulse/dataset"

// ============================================================================
// HEATMAP — members × dimensions score matrix
// ============================================================================

// Heatmap builds the 6-country × 5-dimension score matrix on the fixed
// diverging scale anchored at [45, 100].
func Heatmap(ds *dataset.Dataset) (*ChartSpec, error) {
	x := make([]string, len(dataset.Dimensions))
	for i, d := range dataset.Dimensions {
		x[i] = string(d)
	}

	z := make([][]float64, 0, len(ds.Members))
	for _, country := range ds.Members {
		row, err := ds.FactorScoresFor(country)
		if err != nil {
			return nil, err
		}
		vals := make([]float64, len(dataset.Dimensions))
		for j, d := range dataset.Dimensions {
			vals[j] = row.Score(d)
		}
		z = append(z, vals)
	}

	return &ChartSpec{
		ChartType: TypeHeatmap,
		Title:     "Competitiveness scores by country and dimension",
		Series: []Series{{
			Name: "Score",
			Type: TypeHeatmap,
			X:    x,
			Text: ds.Members, // row labels, top to bottom
			Z:    z,
		}},
		Layout: Layout{
			ColorScale: &ColorScale{Name: "RdYlGn", Min: 45, Max: 100},
		},
	}, nil
}

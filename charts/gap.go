package charts

import (
	"fmt"

	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// GAP ANALYSIS — achieved score vs distance to the 100-point frontier
// ============================================================================

// GapAnalysis builds the stacked achieved-plus-gap chart for the chosen
// aggregate and annotates the dimension with the widest gap.
func GapAnalysis(ds *dataset.Dataset, method dataset.Method) (*ChartSpec, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: aggregation method %q", dataset.ErrInvalidParameter, method)
	}

	rows, err := dataset.DimensionBreakdown(ds, method.Label())
	if err != nil {
		return nil, err
	}

	x := make([]string, len(rows))
	scores := make([]float64, len(rows))
	gaps := make([]float64, len(rows))
	largest := rows[0]
	for i, r := range rows {
		x[i] = string(r.Dimension)
		scores[i] = r.Score
		gaps[i] = r.Gap
		if r.Gap > largest.Gap {
			largest = r
		}
	}

	return &ChartSpec{
		ChartType: TypeBar,
		Title:     fmt.Sprintf("Gap to frontier — %s", method.Label()),
		Series: []Series{
			{
				Name:  "Achieved",
				Type:  TypeBar,
				X:     x,
				Y:     scores,
				Color: ColorFor(method.Label(), dataset.RegionAggregate),
			},
			{
				Name:  "Gap to 100",
				Type:  TypeBar,
				X:     x,
				Y:     gaps,
				Color: colorGap,
			},
		},
		Layout: Layout{
			Barmode:    "stack",
			ShowLegend: true,
			XAxis:      &Axis{Title: "Dimension"},
			YAxis:      &Axis{Title: "Score", Range: []float64{0, 100}},
			Annotations: []Annotation{{
				Text: fmt.Sprintf("Largest gap: %s (%.1f pts)", largest.Dimension, largest.Gap),
				X:    string(largest.Dimension),
				Y:    100,
			}},
		},
	}, nil
}

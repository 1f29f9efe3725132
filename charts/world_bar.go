package charts

import (
	"fmt"

	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// WORLD RANKING BAR
// ============================================================================

// visibleRanks is the default window shown before the range slider is used.
const visibleRanks = 25

// worldRows returns the world table with only the chosen aggregate present,
// re-ranked. Works on a derived copy; the dataset's merged table is never
// touched.
func worldRows(ds *dataset.Dataset, method dataset.Method) ([]dataset.WorldRankingRow, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: aggregation method %q", dataset.ErrInvalidParameter, method)
	}

	drop := dataset.LabelWeighted
	if method == dataset.MethodWeighted {
		drop = dataset.LabelSimple
	}

	rows := make([]dataset.WorldRankingRow, 0, len(ds.WorldRanking))
	for _, r := range ds.WorldRanking {
		if r.Country == drop {
			continue
		}
		rows = append(rows, r)
	}
	return dataset.Rerank(rows), nil
}

// WorldRankingBar builds the world competitiveness bar chart with the
// chosen GCC aggregate inserted among the 69 economies. GCC members keep
// their fixed colors, the aggregate gets its accent, everyone else is grey.
func WorldRankingBar(ds *dataset.Dataset, method dataset.Method) (*ChartSpec, error) {
	rows, err := worldRows(ds, method)
	if err != nil {
		return nil, err
	}

	x := make([]string, len(rows))
	y := make([]float64, len(rows))
	colors := make([]string, len(rows))
	for i, r := range rows {
		x[i] = r.Country
		y[i] = r.Score
		colors[i] = ColorFor(r.Country, r.Region)
	}

	return &ChartSpec{
		ChartType: TypeBar,
		Title:     fmt.Sprintf("World competitiveness ranking %d — %s", ds.Year, method.Label()),
		Series: []Series{{
			Name:   "Score",
			Type:   TypeBar,
			X:      x,
			Y:      y,
			Colors: colors,
		}},
		Layout: Layout{
			XAxis:       &Axis{Title: "Economy", Range: []float64{-0.5, visibleRanks - 0.5}},
			YAxis:       &Axis{Title: "Score"},
			RangeSlider: true,
		},
	}, nil
}

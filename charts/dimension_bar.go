package charts

import (
	"sort"

	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// DIMENSION BAR — pillar scores for the GDP-weighted aggregate
// ============================================================================

// DimensionBar builds the pillar bar chart for the GDP-weighted regional
// aggregate: the four sub-dimension scores sorted ascending, banded into
// performance tiers.
func DimensionBar(ds *dataset.Dataset) (*ChartSpec, error) {
	rows, err := dataset.DimensionBreakdown(ds, dataset.LabelWeighted)
	if err != nil {
		return nil, err
	}

	pillars := make([]dataset.DimensionRow, 0, len(dataset.SubDimensions))
	for _, r := range rows {
		if r.Dimension != dataset.DimOverall {
			pillars = append(pillars, r)
		}
	}
	sort.SliceStable(pillars, func(i, j int) bool { return pillars[i].Score < pillars[j].Score })

	x := make([]string, len(pillars))
	y := make([]float64, len(pillars))
	text := make([]string, len(pillars))
	colors := make([]string, len(pillars))
	for i, p := range pillars {
		tier, color := tierColor(p.Score)
		x[i] = string(p.Dimension)
		y[i] = p.Score
		text[i] = tier
		colors[i] = color
	}

	return &ChartSpec{
		ChartType: TypeBar,
		Title:     "Regional performance by pillar (GDP-weighted)",
		Series: []Series{{
			Name:   "Score",
			Type:   TypeBar,
			X:      x,
			Y:      y,
			Text:   text,
			Colors: colors,
		}},
		Layout: Layout{
			XAxis: &Axis{Title: "Pillar"},
			YAxis: &Axis{Title: "Score", Range: []float64{0, 100}},
		},
	}, nil
}

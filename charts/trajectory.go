package charts

import (
	"fmt"
	"strconv"

	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// TRAJECTORY LINE — overall rank per year, with highlight dimming
// ============================================================================

// Highlight styling is fixed: dimmed series keep just enough presence to
// read as context.
var (
	highlightStyle = SeriesStyle{Opacity: 1, Width: 3, MarkerSize: 10}
	averageStyle   = SeriesStyle{Opacity: 1, Width: 4, MarkerSize: 10, Dash: "dash"}
	dimmedStyle    = SeriesStyle{Opacity: 0.2, Width: 1, MarkerSize: 5}
)

// HighlightAll is the token that selects every country.
const HighlightAll = "All"

// TrajectoryLine builds the ranking-trajectory line chart. highlight names
// the countries drawn at full strength; an empty set (or the HighlightAll
// token) highlights everything. Each highlighted series gets an annotation
// at its most recent value. Unknown highlight names are rejected.
func TrajectoryLine(ds *dataset.Dataset, highlight []string) (*ChartSpec, error) {
	selected, err := highlightSet(ds, highlight)
	if err != nil {
		return nil, err
	}

	points := dataset.TrajectorySeries(ds)

	// Series order: members as catalogued, then the dashed average line.
	order := append(append([]string{}, ds.Members...), dataset.LabelAverage)

	spec := &ChartSpec{
		ChartType: TypeLine,
		Title:     "Overall ranking trajectory",
		Layout: Layout{
			XAxis:      &Axis{Title: "Year"},
			YAxis:      &Axis{Title: "World rank", Autorange: "reversed"},
			ShowLegend: true,
		},
	}

	for _, country := range order {
		var x []string
		var y []float64
		for _, p := range points {
			if p.Country != country {
				continue
			}
			x = append(x, strconv.Itoa(p.Year))
			y = append(y, p.Rank)
		}
		if len(x) == 0 {
			continue
		}

		on := selected == nil || selected[country] || country == dataset.LabelAverage
		style := dimmedStyle
		switch {
		case country == dataset.LabelAverage:
			style = averageStyle
		case on:
			style = highlightStyle
		}

		spec.Series = append(spec.Series, Series{
			Name:  country,
			Type:  TypeLine,
			X:     x,
			Y:     y,
			Color: ColorFor(country, dataset.RegionMember),
			Style: &style,
		})

		if on {
			spec.Layout.Annotations = append(spec.Layout.Annotations, Annotation{
				Text: fmt.Sprintf("%s: %s", country, fmtRank(y[len(y)-1])),
				X:    x[len(x)-1],
				Y:    y[len(y)-1],
			})
		}
	}

	return spec, nil
}

// highlightSet resolves the highlight parameter. nil means highlight all.
func highlightSet(ds *dataset.Dataset, highlight []string) (map[string]bool, error) {
	if len(highlight) == 0 {
		return nil, nil
	}
	set := make(map[string]bool, len(highlight))
	for _, h := range highlight {
		if h == HighlightAll {
			return nil, nil
		}
		if !ds.IsMember(h) && h != dataset.LabelAverage {
			return nil, fmt.Errorf("%w: %q", dataset.ErrEntityNotFound, h)
		}
		set[h] = true
	}
	return set, nil
}

// fmtRank prints whole ranks without decimals and partial means with one.
func fmtRank(r float64) string {
	if r == float64(int64(r)) {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

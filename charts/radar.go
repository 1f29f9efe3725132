package charts

import (
	"fmt"
	"math"

	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// RADAR BUILDERS — single, side-by-side and overlay polygons
// ============================================================================
// Every polygon repeats its first category/value pair as the last entry so
// the outline closes. All three builders share SubDimensions category order.
// ============================================================================

// radarPolygon extracts an entity's closed four-dimension polygon.
func radarPolygon(ds *dataset.Dataset, entity string) ([]string, []float64, dataset.CountryFactorScores, error) {
	row, err := ds.FactorScoresFor(entity)
	if err != nil {
		return nil, nil, dataset.CountryFactorScores{}, err
	}

	n := len(dataset.SubDimensions)
	x := make([]string, 0, n+1)
	y := make([]float64, 0, n+1)
	for _, d := range dataset.SubDimensions {
		x = append(x, string(d))
		y = append(y, row.Score(d))
	}
	x = append(x, x[0])
	y = append(y, y[0])
	return x, y, row, nil
}

// Radar builds a single entity's dimension polygon.
func Radar(ds *dataset.Dataset, entity string) (*ChartSpec, error) {
	x, y, _, err := radarPolygon(ds, entity)
	if err != nil {
		return nil, err
	}

	return &ChartSpec{
		ChartType: TypeRadar,
		Title:     fmt.Sprintf("%s — dimension profile", entity),
		Series: []Series{{
			Name:        entity,
			Type:        TypeRadar,
			X:           x,
			Y:           y,
			Color:       ColorFor(entity, dataset.RegionMember),
			Fill:        "toself",
			FillOpacity: 0.35,
		}},
		Layout: Layout{
			Polar: []RadialAxis{{Range: []float64{0, 100}}},
		},
	}, nil
}

// DualRadar builds two side-by-side polygons with independent radial
// scales — useful when the compared entities sit far apart on the scale.
func DualRadar(ds *dataset.Dataset, a, b string) (*ChartSpec, error) {
	xa, ya, _, err := radarPolygon(ds, a)
	if err != nil {
		return nil, err
	}
	xb, yb, _, err := radarPolygon(ds, b)
	if err != nil {
		return nil, err
	}

	return &ChartSpec{
		ChartType: TypeRadar,
		Title:     fmt.Sprintf("%s vs %s", a, b),
		Series: []Series{
			{
				Name:        a,
				Type:        TypeRadar,
				X:           xa,
				Y:           ya,
				Color:       ColorFor(a, dataset.RegionAggregate),
				Fill:        "toself",
				FillOpacity: 0.35,
				AxisIndex:   0,
			},
			{
				Name:        b,
				Type:        TypeRadar,
				X:           xb,
				Y:           yb,
				Color:       ColorFor(b, dataset.RegionMember),
				Fill:        "toself",
				FillOpacity: 0.35,
				AxisIndex:   1,
			},
		},
		Layout: Layout{
			ShowLegend: true,
			Polar: []RadialAxis{
				{Domain: []float64{0, 0.45}, Range: []float64{0, radialCeil(ya)}},
				{Domain: []float64{0.55, 1}, Range: []float64{0, radialCeil(yb)}},
			},
		},
	}, nil
}

// OverlayRadar builds both polygons on one shared radial axis with
// translucent fills; legend labels carry the numeric overall score.
func OverlayRadar(ds *dataset.Dataset, a, b string) (*ChartSpec, error) {
	xa, ya, rowA, err := radarPolygon(ds, a)
	if err != nil {
		return nil, err
	}
	xb, yb, rowB, err := radarPolygon(ds, b)
	if err != nil {
		return nil, err
	}

	return &ChartSpec{
		ChartType: TypeRadar,
		Title:     fmt.Sprintf("%s vs %s — overlay", a, b),
		Series: []Series{
			{
				Name:        fmt.Sprintf("%s (%.1f)", a, rowA.OverallScore),
				Type:        TypeRadar,
				X:           xa,
				Y:           ya,
				Color:       ColorFor(a, dataset.RegionAggregate),
				Fill:        "toself",
				FillOpacity: 0.3,
			},
			{
				Name:        fmt.Sprintf("%s (%.1f)", b, rowB.OverallScore),
				Type:        TypeRadar,
				X:           xb,
				Y:           yb,
				Color:       ColorFor(b, dataset.RegionMember),
				Fill:        "toself",
				FillOpacity: 0.3,
			},
		},
		Layout: Layout{
			ShowLegend: true,
			Polar:      []RadialAxis{{Range: []float64{0, 100}}},
		},
	}, nil
}

// radialCeil rounds the polygon maximum up to the next ten so the outline
// never touches the rim.
func radialCeil(vals []float64) float64 {
	m := 0.0
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return math.Ceil(m/10) * 10
}

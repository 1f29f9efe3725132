package charts

import (
	"fmt"

	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// DISPATCHER — name-keyed entry point for server and CLI
// ============================================================================

// Chart names accepted by Build.
const (
	ChartWorldRanking = "world-ranking"
	ChartTrajectory   = "trajectory"
	ChartDimensions   = "dimensions"
	ChartHeatmap      = "heatmap"
	ChartGap          = "gap"
	ChartRadar        = "radar"
	ChartDualRadar    = "dual-radar"
	ChartOverlayRadar = "overlay-radar"
)

// Names lists every chart the dispatcher knows, in presentation order.
var Names = []string{
	ChartWorldRanking,
	ChartTrajectory,
	ChartDimensions,
	ChartHeatmap,
	ChartGap,
	ChartRadar,
	ChartDualRadar,
	ChartOverlayRadar,
}

// Params carries the UI-controlled builder parameters. Zero values select
// the documented defaults: weighted aggregation, highlight all, the
// weighted aggregate as radar entity.
type Params struct {
	Method    string   `json:"method,omitempty"`
	Highlight []string `json:"highlight,omitempty"`
	Entity    string   `json:"entity,omitempty"`
	Compare   string   `json:"compare,omitempty"`
}

// Build dispatches a chart name plus parameters to its builder. Unknown
// names and malformed parameters fail with ErrInvalidParameter; unknown
// entities with ErrEntityNotFound.
func Build(name string, ds *dataset.Dataset, p Params) (*ChartSpec, error) {
	method := dataset.MethodWeighted
	if p.Method != "" {
		m, err := dataset.ParseMethod(p.Method)
		if err != nil {
			return nil, err
		}
		method = m
	}

	entity := p.Entity
	if entity == "" {
		entity = dataset.LabelWeighted
	}
	compare := p.Compare
	if compare == "" {
		compare = ds.Members[0]
	}

	switch name {
	case ChartWorldRanking:
		return WorldRankingBar(ds, method)
	case ChartTrajectory:
		return TrajectoryLine(ds, p.Highlight)
	case ChartDimensions:
		return DimensionBar(ds)
	case ChartHeatmap:
		return Heatmap(ds)
	case ChartGap:
		return GapAnalysis(ds, method)
	case ChartRadar:
		return Radar(ds, entity)
	case ChartDualRadar:
		return DualRadar(ds, entity, compare)
	case ChartOverlayRadar:
		return OverlayRadar(ds, entity, compare)
	}
	return nil, fmt.Errorf("%w: unknown chart %q", dataset.ErrInvalidParameter, name)
}

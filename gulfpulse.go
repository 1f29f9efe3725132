// Package gulfpulse provides the data and chart-specification layer behind
// a GCC economic-competitiveness dashboard.
//
// Usage:
//
//	import (
//	    "github.com/gulfpulse/gulfpulse/charts"
//	    "github.com/gulfpulse/gulfpulse/dataset"
//	)
//
//	ds := dataset.Build()
//	spec, err := charts.WorldRankingBar(ds, dataset.MethodWeighted)
//
// The dataset package builds an immutable catalog of country rankings,
// factor scores and GDP weights, and derives the two regional aggregate
// rows (simple and GDP-weighted means). The charts package turns that
// dataset into renderer-agnostic ChartSpec values — series, colors,
// annotations — ready for any charting frontend.
//
// All chart builders are pure functions over the dataset. The engine never
// calls an external service; all computation is local.
package gulfpulse

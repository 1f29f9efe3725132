package charts

// ============================================================================
// CHART SPEC TYPES — Renderer-Agnostic Output
// ============================================================================
// A ChartSpec fully describes one chart: series data, per-point styling,
// axis configuration and annotations. Any charting frontend can consume it;
// nothing here knows how pixels get drawn.
// ============================================================================

// Chart type tokens.
const (
	TypeBar     = "bar"
	TypeLine    = "line"
	TypeHeatmap = "heatmap"
	TypeRadar   = "radar"
)

// ChartSpec is the output of every builder.
type ChartSpec struct {
	ChartType string   `json:"chartType"`
	Title     string   `json:"title"`
	Series    []Series `json:"series"`
	Layout    Layout   `json:"layout"`
}

// Series is one plotted data series. X carries category labels (country,
// year, dimension); Y the values. Heatmaps use the Z matrix instead of Y.
type Series struct {
	Name        string       `json:"name"`
	Type        string       `json:"type,omitempty"`
	X           []string     `json:"x,omitempty"`
	Y           []float64    `json:"y,omitempty"`
	Z           [][]float64  `json:"z,omitempty"`
	Text        []string     `json:"text,omitempty"`
	Color       string       `json:"color,omitempty"`
	Colors      []string     `json:"colors,omitempty"` // per-point override
	Fill        string       `json:"fill,omitempty"`
	FillOpacity float64      `json:"fillOpacity,omitempty"`
	Style       *SeriesStyle `json:"style,omitempty"`
	AxisIndex   int          `json:"axisIndex,omitempty"` // polar axis for side-by-side radars
}

// SeriesStyle carries the line/marker styling a builder decides per series.
type SeriesStyle struct {
	Opacity    float64 `json:"opacity"`
	Width      float64 `json:"width"`
	MarkerSize float64 `json:"markerSize"`
	Dash       string  `json:"dash,omitempty"`
}

// Layout is the chart-level configuration.
type Layout struct {
	XAxis       *Axis        `json:"xAxis,omitempty"`
	YAxis       *Axis        `json:"yAxis,omitempty"`
	Barmode     string       `json:"barmode,omitempty"`
	ShowLegend  bool         `json:"showLegend"`
	RangeSlider bool         `json:"rangeSlider,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Polar       []RadialAxis `json:"polar,omitempty"`
	ColorScale  *ColorScale  `json:"colorScale,omitempty"`
}

// Axis configures one cartesian axis.
type Axis struct {
	Title     string    `json:"title,omitempty"`
	Range     []float64 `json:"range,omitempty"`
	Autorange string    `json:"autorange,omitempty"`
}

// Annotation is a text callout anchored to a category/value position.
type Annotation struct {
	Text string  `json:"text"`
	X    string  `json:"x"`
	Y    float64 `json:"y"`
}

// RadialAxis configures one polar axis. Domain splits the canvas when two
// radars sit side by side.
type RadialAxis struct {
	Domain []float64 `json:"domain,omitempty"`
	Range  []float64 `json:"range"`
}

// ColorScale is a named continuous scale with fixed anchor points.
type ColorScale struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// TableData is a render-ready tabular view.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary string     `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Align string `json:"align"` // "left", "center", "right"
}

// Narrative is the text block accompanying the charts in the story layout.
type Narrative struct {
	Headline string   `json:"headline"`
	Findings []string `json:"findings"`
}

package dataset

// ============================================================================
// DATASET TYPES — GCC Competitiveness Catalog
// ============================================================================
// All records are immutable value types produced once by Build(). Chart
// builders read them; nothing mutates a Dataset after construction.
// ============================================================================

// Dimension is one of the five competitiveness sub-scores.
type Dimension string

const (
	DimOverall        Dimension = "Overall"
	DimEconomy        Dimension = "Economic Performance"
	DimGovernment     Dimension = "Government Efficiency"
	DimBusiness       Dimension = "Business Efficiency"
	DimInfrastructure Dimension = "Infrastructure"
)

// Dimensions is the canonical five-dimension order used by matrix-style
// charts (heatmap rows/columns).
var Dimensions = []Dimension{
	DimOverall,
	DimEconomy,
	DimGovernment,
	DimBusiness,
	DimInfrastructure,
}

// SubDimensions excludes Overall. Radar polygons and the pillar bar chart
// operate on these four, in this order.
var SubDimensions = []Dimension{
	DimEconomy,
	DimGovernment,
	DimBusiness,
	DimInfrastructure,
}

// BreakdownOrder is the fixed axis order for the dimension-breakdown
// reshape. Downstream charts rely on it, do not reorder.
var BreakdownOrder = []Dimension{
	DimInfrastructure,
	DimEconomy,
	DimGovernment,
	DimBusiness,
	DimOverall,
}

// ============================================================================
// AGGREGATION METHOD
// ============================================================================

// Method selects which regional aggregate row a builder works with.
type Method string

const (
	MethodSimple   Method = "simple"
	MethodWeighted Method = "weighted"
)

// Entity labels for the synthetic aggregate rows and the trajectory
// pseudo-country.
const (
	LabelSimple   = "GCC (Simple)"
	LabelWeighted = "GCC (Weighted)"
	LabelAverage  = "GCC Average"
)

// Label returns the aggregate entity label for the method.
func (m Method) Label() string {
	if m == MethodSimple {
		return LabelSimple
	}
	return LabelWeighted
}

// Valid reports whether m is a supported aggregation method.
func (m Method) Valid() bool {
	return m == MethodSimple || m == MethodWeighted
}

// ============================================================================
// RECORDS
// ============================================================================

// CountryYearRank is one country's overall world ranking in one survey year.
// Rank is nil for years before the country joined the survey.
type CountryYearRank struct {
	Country string `json:"country"`
	Year    int    `json:"year"`
	Rank    *int   `json:"rank"`
}

// CountryFactorScores holds one entity's current-year rank and score per
// dimension plus its GDP weight. Rank fields are float64 so the synthetic
// aggregate rows can carry fractional mean ranks.
type CountryFactorScores struct {
	Country       string  `json:"country"`
	Year          int     `json:"year"`
	OverallRank   float64 `json:"overallRank"`
	OverallScore  float64 `json:"overallScore"`
	EconRank      float64 `json:"econRank"`
	EconScore     float64 `json:"econScore"`
	GovRank       float64 `json:"govRank"`
	GovScore      float64 `json:"govScore"`
	BizRank       float64 `json:"bizRank"`
	BizScore      float64 `json:"bizScore"`
	InfraRank     float64 `json:"infraRank"`
	InfraScore    float64 `json:"infraScore"`
	GDPUSDBillion float64 `json:"gdpUsdBillion"`
}

// Score returns the entity's score for a dimension.
func (c CountryFactorScores) Score(d Dimension) float64 {
	switch d {
	case DimOverall:
		return c.OverallScore
	case DimEconomy:
		return c.EconScore
	case DimGovernment:
		return c.GovScore
	case DimBusiness:
		return c.BizScore
	case DimInfrastructure:
		return c.InfraScore
	}
	return 0
}

// RankOf returns the entity's rank for a dimension.
func (c CountryFactorScores) RankOf(d Dimension) float64 {
	switch d {
	case DimOverall:
		return c.OverallRank
	case DimEconomy:
		return c.EconRank
	case DimGovernment:
		return c.GovRank
	case DimBusiness:
		return c.BizRank
	case DimInfrastructure:
		return c.InfraRank
	}
	return 0
}

// Region classifies a world-ranking row.
type Region string

const (
	RegionMember    Region = "GCC Member"
	RegionAggregate Region = "GCC Aggregate"
	RegionOther     Region = "Other"
)

// WorldRankingRow is one entity in the world competitiveness table.
// Rank is the dense 1..N ordering by descending score and is recomputed
// whenever an aggregate row is inserted.
type WorldRankingRow struct {
	Rank    int     `json:"rank"`
	Country string  `json:"country"`
	Score   float64 `json:"score"`
	Region  Region  `json:"region"`
}

// FactorRankStartYear is the first year covered by FiveYearFactorRank.
const FactorRankStartYear = 2021

// FiveYearFactorRank tracks one country's rank in one factor across the
// 2021–2025 window. Ranks[0] is 2021; nil marks a year before the country
// joined the survey.
type FiveYearFactorRank struct {
	Country string    `json:"country"`
	Factor  Dimension `json:"factor"`
	Ranks   []*int    `json:"ranks"`
}

// RankIn returns the country's factor rank for a year, or nil.
func (f FiveYearFactorRank) RankIn(year int) *int {
	i := year - FactorRankStartYear
	if i < 0 || i >= len(f.Ranks) {
		return nil
	}
	return f.Ranks[i]
}

// ============================================================================
// DERIVED ROW TYPES
// ============================================================================

// TrajectoryPoint is one line-chart point: an entity's overall rank in one
// year. Rank is float64 because the GCC Average pseudo-country carries
// fractional per-year partial means.
type TrajectoryPoint struct {
	Country string  `json:"country"`
	Year    int     `json:"year"`
	Rank    float64 `json:"rank"`
}

// DimensionRow is one long-format row of the dimension-breakdown reshape.
// Gap is the distance to the 100-point frontier.
type DimensionRow struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Gap       float64   `json:"gap"`
}

// ============================================================================
// DATASET
// ============================================================================

// Dataset is the immutable catalog every chart builder consumes.
type Dataset struct {
	Year         int                   `json:"year"`
	Members      []string              `json:"members"`
	YearRanks    []CountryYearRank     `json:"yearRanks"`
	FactorScores []CountryFactorScores `json:"factorScores"`
	WorldRanking []WorldRankingRow     `json:"worldRanking"`
	FactorRanks  []FiveYearFactorRank  `json:"factorRanks"`
}

// FactorScoresFor returns the factor-score row for a member country or
// aggregate label, or ErrEntityNotFound.
func (ds *Dataset) FactorScoresFor(entity string) (CountryFactorScores, error) {
	for _, row := range ds.FactorScores {
		if row.Country == entity {
			return row, nil
		}
	}
	return CountryFactorScores{}, notFound(entity)
}

// IsMember reports whether the name is one of the six bloc members.
func (ds *Dataset) IsMember(country string) bool {
	for _, m := range ds.Members {
		if m == country {
			return true
		}
	}
	return false
}

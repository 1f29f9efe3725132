package dataset

// ============================================================================
// CATALOG — Fixed Source Tables (2025 survey edition)
// ============================================================================
// The catalog is compile-time constant data; Build() derives everything
// else from it. A future live loader replaces this file's role behind the
// same Build contract (see live.go).
// ============================================================================

// CatalogYear is the survey edition the factor scores belong to.
const CatalogYear = 2025

// memberOrder is the fixed presentation order for the six bloc members.
var memberOrder = []string{
	"UAE",
	"Qatar",
	"Saudi Arabia",
	"Bahrain",
	"Oman",
	"Kuwait",
}

// gdp2024 holds each member's 2024 GDP in USD billion, the weight basis
// for the GCC (Weighted) aggregate.
var gdp2024 = map[string]float64{
	"UAE":          552.3,
	"Qatar":        221.4,
	"Saudi Arabia": 1085.4,
	"Bahrain":      47.8,
	"Oman":         110.0,
	"Kuwait":       161.8,
}

// factorScores2025 is the per-member current-year dimension table.
// Scores are on the 0–100 survey scale; ranks are positions among the 69
// surveyed economies.
var factorScores2025 = []CountryFactorScores{
	{Country: "UAE", Year: CatalogYear,
		OverallRank: 5, OverallScore: 96.09,
		EconRank: 3, EconScore: 92.40,
		GovRank: 2, GovScore: 95.10,
		BizRank: 4, BizScore: 93.75,
		InfraRank: 29, InfraScore: 65.90},
	{Country: "Qatar", Year: CatalogYear,
		OverallRank: 9, OverallScore: 89.54,
		EconRank: 8, EconScore: 85.10,
		GovRank: 7, GovScore: 88.70,
		BizRank: 9, BizScore: 87.20,
		InfraRank: 33, InfraScore: 62.40},
	{Country: "Saudi Arabia", Year: CatalogYear,
		OverallRank: 16, OverallScore: 82.09,
		EconRank: 14, EconScore: 78.30,
		GovRank: 20, GovScore: 75.60,
		BizRank: 13, BizScore: 83.10,
		InfraRank: 30, InfraScore: 64.80},
	{Country: "Bahrain", Year: CatalogYear,
		OverallRank: 21, OverallScore: 77.46,
		EconRank: 27, EconScore: 66.20,
		GovRank: 12, GovScore: 82.40,
		BizRank: 17, BizScore: 79.50,
		InfraRank: 38, InfraScore: 58.10},
	{Country: "Oman", Year: CatalogYear,
		OverallRank: 48, OverallScore: 55.73,
		EconRank: 47, EconScore: 52.40,
		GovRank: 35, GovScore: 61.80,
		BizRank: 44, BizScore: 56.20,
		InfraRank: 50, InfraScore: 48.90},
	{Country: "Kuwait", Year: CatalogYear,
		OverallRank: 37, OverallScore: 64.01,
		EconRank: 24, EconScore: 70.10,
		GovRank: 40, GovScore: 58.30,
		BizRank: 41, BizScore: 59.70,
		InfraRank: 46, InfraScore: 51.60},
}

// yearRanks covers 2020–2025 overall rankings. A nil rank means the
// country had not yet joined the survey: Bahrain enters 2022, Kuwait 2023,
// Oman 2025.
var yearRanks = []CountryYearRank{
	{"UAE", 2020, rank(9)}, {"UAE", 2021, rank(9)}, {"UAE", 2022, rank(12)},
	{"UAE", 2023, rank(10)}, {"UAE", 2024, rank(7)}, {"UAE", 2025, rank(5)},

	{"Qatar", 2020, rank(14)}, {"Qatar", 2021, rank(17)}, {"Qatar", 2022, rank(18)},
	{"Qatar", 2023, rank(12)}, {"Qatar", 2024, rank(11)}, {"Qatar", 2025, rank(9)},

	{"Saudi Arabia", 2020, rank(24)}, {"Saudi Arabia", 2021, rank(32)}, {"Saudi Arabia", 2022, rank(24)},
	{"Saudi Arabia", 2023, rank(17)}, {"Saudi Arabia", 2024, rank(16)}, {"Saudi Arabia", 2025, rank(16)},

	{"Bahrain", 2020, nil}, {"Bahrain", 2021, nil}, {"Bahrain", 2022, rank(30)},
	{"Bahrain", 2023, rank(25)}, {"Bahrain", 2024, rank(21)}, {"Bahrain", 2025, rank(21)},

	{"Oman", 2020, nil}, {"Oman", 2021, nil}, {"Oman", 2022, nil},
	{"Oman", 2023, nil}, {"Oman", 2024, nil}, {"Oman", 2025, rank(48)},

	{"Kuwait", 2020, nil}, {"Kuwait", 2021, nil}, {"Kuwait", 2022, nil},
	{"Kuwait", 2023, rank(38)}, {"Kuwait", 2024, rank(37)}, {"Kuwait", 2025, rank(37)},
}

// factorRanks is the 2021–2025 per-factor rank trajectory table, one row
// per member per dimension. Independent of factorScores2025 except that
// the 2025 column agrees with it.
var factorRanks = []FiveYearFactorRank{
	{Country: "UAE", Factor: DimOverall, Ranks: ranks(9, 12, 10, 7, 5)},
	{Country: "UAE", Factor: DimEconomy, Ranks: ranks(5, 7, 4, 4, 3)},
	{Country: "UAE", Factor: DimGovernment, Ranks: ranks(4, 5, 3, 3, 2)},
	{Country: "UAE", Factor: DimBusiness, Ranks: ranks(8, 9, 6, 5, 4)},
	{Country: "UAE", Factor: DimInfrastructure, Ranks: ranks(33, 34, 32, 30, 29)},

	{Country: "Qatar", Factor: DimOverall, Ranks: ranks(17, 18, 12, 11, 9)},
	{Country: "Qatar", Factor: DimEconomy, Ranks: ranks(12, 14, 10, 9, 8)},
	{Country: "Qatar", Factor: DimGovernment, Ranks: ranks(11, 12, 9, 8, 7)},
	{Country: "Qatar", Factor: DimBusiness, Ranks: ranks(14, 15, 11, 10, 9)},
	{Country: "Qatar", Factor: DimInfrastructure, Ranks: ranks(37, 38, 36, 34, 33)},

	{Country: "Saudi Arabia", Factor: DimOverall, Ranks: ranks(32, 24, 17, 16, 16)},
	{Country: "Saudi Arabia", Factor: DimEconomy, Ranks: ranks(29, 22, 17, 15, 14)},
	{Country: "Saudi Arabia", Factor: DimGovernment, Ranks: ranks(33, 28, 24, 22, 20)},
	{Country: "Saudi Arabia", Factor: DimBusiness, Ranks: ranks(26, 20, 15, 14, 13)},
	{Country: "Saudi Arabia", Factor: DimInfrastructure, Ranks: ranks(36, 34, 32, 31, 30)},

	{Country: "Bahrain", Factor: DimOverall, Ranks: []*int{nil, rank(30), rank(25), rank(21), rank(21)}},
	{Country: "Bahrain", Factor: DimEconomy, Ranks: []*int{nil, rank(34), rank(30), rank(28), rank(27)}},
	{Country: "Bahrain", Factor: DimGovernment, Ranks: []*int{nil, rank(17), rank(14), rank(13), rank(12)}},
	{Country: "Bahrain", Factor: DimBusiness, Ranks: []*int{nil, rank(24), rank(20), rank(18), rank(17)}},
	{Country: "Bahrain", Factor: DimInfrastructure, Ranks: []*int{nil, rank(43), rank(41), rank(39), rank(38)}},

	{Country: "Oman", Factor: DimOverall, Ranks: []*int{nil, nil, nil, nil, rank(48)}},
	{Country: "Oman", Factor: DimEconomy, Ranks: []*int{nil, nil, nil, nil, rank(47)}},
	{Country: "Oman", Factor: DimGovernment, Ranks: []*int{nil, nil, nil, nil, rank(35)}},
	{Country: "Oman", Factor: DimBusiness, Ranks: []*int{nil, nil, nil, nil, rank(44)}},
	{Country: "Oman", Factor: DimInfrastructure, Ranks: []*int{nil, nil, nil, nil, rank(50)}},

	{Country: "Kuwait", Factor: DimOverall, Ranks: []*int{nil, nil, rank(38), rank(37), rank(37)}},
	{Country: "Kuwait", Factor: DimEconomy, Ranks: []*int{nil, nil, rank(27), rank(25), rank(24)}},
	{Country: "Kuwait", Factor: DimGovernment, Ranks: []*int{nil, nil, rank(43), rank(41), rank(40)}},
	{Country: "Kuwait", Factor: DimBusiness, Ranks: []*int{nil, nil, rank(45), rank(43), rank(41)}},
	{Country: "Kuwait", Factor: DimInfrastructure, Ranks: []*int{nil, nil, rank(49), rank(47), rank(46)}},
}

// worldBase is the 69-economy world ranking before aggregate insertion,
// ordered by descending score. GCC member scores match factorScores2025.
var worldBase = []WorldRankingRow{
	{1, "Switzerland", 100.00, RegionOther},
	{2, "Singapore", 99.81, RegionOther},
	{3, "Hong Kong SAR", 99.22, RegionOther},
	{4, "Denmark", 98.83, RegionOther},
	{5, "UAE", 96.09, RegionMember},
	{6, "Taiwan", 95.52, RegionOther},
	{7, "Ireland", 94.74, RegionOther},
	{8, "Sweden", 93.40, RegionOther},
	{9, "Qatar", 89.54, RegionMember},
	{10, "Netherlands", 89.19, RegionOther},
	{11, "Norway", 87.80, RegionOther},
	{12, "Canada", 86.83, RegionOther},
	{13, "Finland", 86.01, RegionOther},
	{14, "USA", 85.70, RegionOther},
	{15, "Iceland", 84.72, RegionOther},
	{16, "Saudi Arabia", 82.09, RegionMember},
	{17, "Luxembourg", 81.69, RegionOther},
	{18, "Australia", 80.81, RegionOther},
	{19, "Germany", 80.53, RegionOther},
	{20, "China", 79.50, RegionOther},
	{21, "Bahrain", 77.46, RegionMember},
	{22, "Belgium", 76.97, RegionOther},
	{23, "Israel", 76.71, RegionOther},
	{24, "Austria", 75.32, RegionOther},
	{25, "South Korea", 74.94, RegionOther},
	{26, "United Kingdom", 73.60, RegionOther},
	{27, "Czech Republic", 72.70, RegionOther},
	{28, "Estonia", 71.88, RegionOther},
	{29, "New Zealand", 71.21, RegionOther},
	{30, "Lithuania", 70.60, RegionOther},
	{31, "France", 69.73, RegionOther},
	{32, "Malaysia", 68.92, RegionOther},
	{33, "Japan", 68.54, RegionOther},
	{34, "Spain", 67.76, RegionOther},
	{35, "Thailand", 66.55, RegionOther},
	{36, "Kazakhstan", 64.98, RegionOther},
	{37, "Kuwait", 64.01, RegionMember},
	{38, "Portugal", 63.74, RegionOther},
	{39, "Indonesia", 62.97, RegionOther},
	{40, "Latvia", 62.15, RegionOther},
	{41, "Italy", 61.73, RegionOther},
	{42, "Cyprus", 60.84, RegionOther},
	{43, "Poland", 60.17, RegionOther},
	{44, "Chile", 59.36, RegionOther},
	{45, "Croatia", 58.44, RegionOther},
	{46, "Slovenia", 57.61, RegionOther},
	{47, "India", 56.29, RegionOther},
	{48, "Oman", 55.73, RegionMember},
	{49, "Hungary", 54.92, RegionOther},
	{50, "Greece", 54.10, RegionOther},
	{51, "Romania", 53.31, RegionOther},
	{52, "Slovak Republic", 52.47, RegionOther},
	{53, "Bulgaria", 51.66, RegionOther},
	{54, "Mexico", 50.93, RegionOther},
	{55, "Turkey", 50.12, RegionOther},
	{56, "Colombia", 49.27, RegionOther},
	{57, "Philippines", 48.53, RegionOther},
	{58, "Botswana", 47.60, RegionOther},
	{59, "Brazil", 46.79, RegionOther},
	{60, "Jordan", 45.86, RegionOther},
	{61, "Peru", 44.95, RegionOther},
	{62, "South Africa", 44.01, RegionOther},
	{63, "Mongolia", 42.88, RegionOther},
	{64, "Nigeria", 41.50, RegionOther},
	{65, "Ghana", 40.23, RegionOther},
	{66, "Argentina", 38.74, RegionOther},
	{67, "Kenya", 36.91, RegionOther},
	{68, "Namibia", 34.82, RegionOther},
	{69, "Venezuela", 30.15, RegionOther},
}

func rank(r int) *int { return &r }

func ranks(vals ...int) []*int {
	out := make([]*int, len(vals))
	for i := range vals {
		v := vals[i]
		out[i] = &v
	}
	return out
}

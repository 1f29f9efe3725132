package dataset

// ============================================================================
// TRAJECTORY AGGREGATOR
// ============================================================================

// TrajectorySeries returns the 2021+ overall-rank rows for every surveyed
// member year, followed by the per-year "GCC Average" pseudo-country.
//
// The average for a year covers only the members with data that year: the
// denominator grows as Bahrain (2022), Kuwait (2023) and Oman (2025) enter
// the survey. It is a partial mean, never a fixed six-way mean.
func TrajectorySeries(ds *Dataset) []TrajectoryPoint {
	points := make([]TrajectoryPoint, 0, len(ds.YearRanks))
	sumByYear := make(map[int]float64)
	countByYear := make(map[int]int)
	years := make([]int, 0, 8)

	for _, r := range ds.YearRanks {
		if r.Year < FactorRankStartYear || r.Rank == nil {
			continue
		}
		points = append(points, TrajectoryPoint{
			Country: r.Country,
			Year:    r.Year,
			Rank:    float64(*r.Rank),
		})
		if countByYear[r.Year] == 0 {
			years = append(years, r.Year)
		}
		sumByYear[r.Year] += float64(*r.Rank)
		countByYear[r.Year]++
	}

	for _, y := range years {
		points = append(points, TrajectoryPoint{
			Country: LabelAverage,
			Year:    y,
			Rank:    sumByYear[y] / float64(countByYear[y]),
		})
	}
	return points
}

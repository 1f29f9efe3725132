package charts

import (
	"fmt"

	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// TABLE BUILDER — world ranking as a render-ready table
// ============================================================================

// WorldRankingTable produces the re-ranked world table with the chosen
// aggregate inserted, formatted for direct display.
func WorldRankingTable(ds *dataset.Dataset, method dataset.Method) (*TableData, error) {
	rows, err := worldRows(ds, method)
	if err != nil {
		return nil, err
	}

	columns := []Column{
		{Key: "rank", Label: "Rank", Align: "right"},
		{Key: "country", Label: "Economy", Align: "left"},
		{Key: "score", Label: "Score", Align: "right"},
		{Key: "region", Label: "Region", Align: "left"},
	}

	out := make([][]string, 0, len(rows))
	members := 0
	for _, r := range rows {
		if r.Region == dataset.RegionMember {
			members++
		}
		out = append(out, []string{
			fmt.Sprintf("%d", r.Rank),
			r.Country,
			fmt.Sprintf("%.2f", r.Score),
			string(r.Region),
		})
	}

	return &TableData{
		Title:   fmt.Sprintf("World competitiveness ranking %d", ds.Year),
		Columns: columns,
		Rows:    out,
		Summary: fmt.Sprintf("%d economies, %d GCC members, %s inserted", len(rows), members, method.Label()),
	}, nil
}

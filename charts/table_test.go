package charts

import (
	"strconv"
	"strings"
	"testing"

	"github.com/gulfpulse/gulfpulse/dataset"
)

func TestWorldRankingTableShape(t *testing.T) {
	ds := dataset.Build()
	table, err := WorldRankingTable(ds, dataset.MethodWeighted)
	if err != nil {
		t.Fatal(err)
	}

	if len(table.Columns) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(table.Columns))
	}
	if len(table.Rows) != 70 {
		t.Fatalf("expected 70 rows, got %d", len(table.Rows))
	}

	for i, row := range table.Rows {
		if row[0] != strconv.Itoa(i+1) {
			t.Fatalf("row %d rank cell = %q", i, row[0])
		}
	}
	if !strings.Contains(table.Summary, dataset.MethodWeighted.Label()) {
		t.Fatalf("summary = %q, want inserted aggregate named", table.Summary)
	}
}

func TestWorldRankingTableOmitsOtherAggregate(t *testing.T) {
	ds := dataset.Build()
	table, err := WorldRankingTable(ds, dataset.MethodSimple)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range table.Rows {
		if row[1] == dataset.LabelWeighted {
			t.Fatal("weighted aggregate leaked into the simple-method table")
		}
	}
}

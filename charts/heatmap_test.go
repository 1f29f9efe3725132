package charts

import (
	"reflect"
	"testing"

	"github.com/gulfpulse/gulfpulse/dataset"
)

func TestHeatmapMatrixShape(t *testing.T) {
	ds := dataset.Build()
	spec, err := Heatmap(ds)
	if err != nil {
		t.Fatal(err)
	}

	s := spec.Series[0]
	if len(s.Z) != len(ds.Members) {
		t.Fatalf("matrix has %d rows, want %d", len(s.Z), len(ds.Members))
	}
	for i, row := range s.Z {
		if len(row) != len(dataset.Dimensions) {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), len(dataset.Dimensions))
		}
	}
	if !reflect.DeepEqual(s.Text, ds.Members) {
		t.Fatalf("row labels = %v, want member order", s.Text)
	}
}

func TestHeatmapRowsMatchFactorTable(t *testing.T) {
	ds := dataset.Build()
	spec, err := Heatmap(ds)
	if err != nil {
		t.Fatal(err)
	}

	s := spec.Series[0]
	for i, country := range ds.Members {
		row, err := ds.FactorScoresFor(country)
		if err != nil {
			t.Fatal(err)
		}
		for j, d := range dataset.Dimensions {
			if s.Z[i][j] != row.Score(d) {
				t.Fatalf("%s %s = %v, want %v", country, d, s.Z[i][j], row.Score(d))
			}
		}
	}
}

func TestHeatmapFixedColorScale(t *testing.T) {
	ds := dataset.Build()
	spec, err := Heatmap(ds)
	if err != nil {
		t.Fatal(err)
	}

	cs := spec.Layout.ColorScale
	if cs == nil || cs.Name != "RdYlGn" || cs.Min != 45 || cs.Max != 100 {
		t.Fatalf("color scale = %+v, want RdYlGn anchored at [45, 100]", cs)
	}
}

package charts

import (
	"errors"
	"strings"
	"testing"

	"github.com/gulfpulse/gulfpulse/dataset"
)

func TestBuildDispatchesEveryChart(t *testing.T) {
	ds := dataset.Build()
	for _, name := range Names {
		spec, err := Build(name, ds, Params{})
		if err != nil {
			t.Fatalf("%s with default params: %v", name, err)
		}
		if spec == nil || len(spec.Series) == 0 {
			t.Fatalf("%s produced an empty spec", name)
		}
	}
}

func TestBuildUnknownChart(t *testing.T) {
	ds := dataset.Build()
	_, err := Build("sankey", ds, Params{})
	if !errors.Is(err, dataset.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestBuildRejectsBadMethod(t *testing.T) {
	ds := dataset.Build()
	_, err := Build(ChartWorldRanking, ds, Params{Method: "median"})
	if !errors.Is(err, dataset.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestBuildDefaultsToWeightedEntity(t *testing.T) {
	ds := dataset.Build()
	spec, err := Build(ChartRadar, ds, Params{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(spec.Title, dataset.LabelWeighted) {
		t.Fatalf("default radar entity should be the weighted aggregate, title = %q", spec.Title)
	}
}

func TestBuildPropagatesEntityNotFound(t *testing.T) {
	ds := dataset.Build()
	_, err := Build(ChartRadar, ds, Params{Entity: "France"})
	if !errors.Is(err, dataset.ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

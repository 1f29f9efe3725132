package charts

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/gulfpulse/gulfpulse/dataset"
)

func TestNarrativeFindings(t *testing.T) {
	ds := dataset.Build()
	n, err := BuildNarrative(ds, dataset.MethodWeighted)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(n.Headline, strconv.Itoa(ds.Year)) {
		t.Fatalf("headline %q does not name the edition year", n.Headline)
	}
	if len(n.Findings) < 3 {
		t.Fatalf("expected at least 3 findings, got %d", len(n.Findings))
	}
	if !strings.Contains(n.Findings[0], dataset.LabelWeighted) {
		t.Fatalf("bloc finding %q does not name the aggregate", n.Findings[0])
	}
}

func TestNarrativeNamesBestMover(t *testing.T) {
	ds := dataset.Build()
	n, err := BuildNarrative(ds, dataset.MethodSimple)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, f := range n.Findings {
		if strings.Contains(f, "five-year mover") {
			found = true
		}
	}
	if !found {
		t.Fatal("mover finding missing even though the rank history shows improvement")
	}
}

func TestNarrativeInvalidMethod(t *testing.T) {
	ds := dataset.Build()
	_, err := BuildNarrative(ds, dataset.Method("median"))
	if !errors.Is(err, dataset.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

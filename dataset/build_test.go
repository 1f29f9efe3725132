package dataset

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const eps = 1e-9

func memberRows(t *testing.T, ds *Dataset) []CountryFactorScores {
	t.Helper()
	rows := make([]CountryFactorScores, 0, len(ds.Members))
	for _, m := range ds.Members {
		row, err := ds.FactorScoresFor(m)
		if err != nil {
			t.Fatalf("member %s missing from factor table: %v", m, err)
		}
		rows = append(rows, row)
	}
	return rows
}

func TestSimpleAggregateIsUnweightedMean(t *testing.T) {
	ds := Build()
	members := memberRows(t, ds)

	var sum float64
	for _, m := range members {
		sum += m.OverallScore
	}
	want := sum / float64(len(members))

	agg, err := ds.FactorScoresFor(LabelSimple)
	if err != nil {
		t.Fatalf("simple aggregate missing: %v", err)
	}
	if math.Abs(agg.OverallScore-want) > eps {
		t.Fatalf("simple overall score = %v, want %v", agg.OverallScore, want)
	}
}

func TestWeightedAggregateIsGDPWeightedMean(t *testing.T) {
	ds := Build()
	members := memberRows(t, ds)

	var num, den float64
	for _, m := range members {
		num += m.OverallScore * m.GDPUSDBillion
		den += m.GDPUSDBillion
	}
	want := num / den

	agg, err := ds.FactorScoresFor(LabelWeighted)
	if err != nil {
		t.Fatalf("weighted aggregate missing: %v", err)
	}
	if math.Abs(agg.OverallScore-want) > eps {
		t.Fatalf("weighted overall score = %v, want %v", agg.OverallScore, want)
	}
}

func TestAggregateGDPIsMemberSum(t *testing.T) {
	ds := Build()
	members := memberRows(t, ds)

	var total float64
	for _, m := range members {
		total += m.GDPUSDBillion
	}

	for _, label := range []string{LabelSimple, LabelWeighted} {
		agg, err := ds.FactorScoresFor(label)
		if err != nil {
			t.Fatalf("%s missing: %v", label, err)
		}
		if math.Abs(agg.GDPUSDBillion-total) > eps {
			t.Fatalf("%s gdp = %v, want member sum %v", label, agg.GDPUSDBillion, total)
		}
	}
}

func TestWeightedMeanTwoEntityScenario(t *testing.T) {
	// Reduced check: Saudi Arabia and UAE only.
	values := []float64{82.09, 96.09}
	weights := []float64{1085.4, 552.3}

	want := (1085.4*82.09 + 552.3*96.09) / (1085.4 + 552.3)
	got := WeightedMean(values, weights)
	if math.Abs(got-want) > eps {
		t.Fatalf("weighted mean = %v, want %v", got, want)
	}
	// The weighted mean must sit between the two inputs, pulled toward
	// the heavier economy.
	if got <= 82.09 || got >= 96.09 {
		t.Fatalf("weighted mean %v outside input range", got)
	}
	mid := (82.09 + 96.09) / 2
	if got >= mid {
		t.Fatalf("weighted mean %v not pulled toward the heavier economy", got)
	}
}

func TestWorldRankingRerankInvariant(t *testing.T) {
	ds := Build()
	rows := ds.WorldRanking

	if len(rows) != 71 {
		t.Fatalf("expected 69 economies + 2 aggregates, got %d rows", len(rows))
	}
	for i, r := range rows {
		if r.Rank != i+1 {
			t.Fatalf("rank at index %d = %d, want dense sequence", i, r.Rank)
		}
		if i > 0 && rows[i-1].Score < r.Score {
			t.Fatalf("scores not descending at rank %d: %v < %v", r.Rank, rows[i-1].Score, r.Score)
		}
	}
}

func TestWorldRankingContainsBothAggregates(t *testing.T) {
	ds := Build()

	found := map[string]Region{}
	for _, r := range ds.WorldRanking {
		if r.Region == RegionAggregate {
			found[r.Country] = r.Region
		}
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 aggregate rows, got %v", found)
	}
	for _, label := range []string{LabelSimple, LabelWeighted} {
		if _, ok := found[label]; !ok {
			t.Fatalf("aggregate %q missing from world ranking", label)
		}
	}
}

func TestRerankStableOnTies(t *testing.T) {
	rows := []WorldRankingRow{
		{Country: "A", Score: 50, Region: RegionOther},
		{Country: "B", Score: 70, Region: RegionOther},
		{Country: "C", Score: 50, Region: RegionOther},
	}
	got := Rerank(rows)

	want := []string{"B", "A", "C"}
	for i, name := range want {
		if got[i].Country != name {
			t.Fatalf("position %d = %s, want %s (ties must keep original order)", i, got[i].Country, name)
		}
		if got[i].Rank != i+1 {
			t.Fatalf("rank at position %d = %d", i, got[i].Rank)
		}
	}
	// Input untouched.
	if rows[0].Country != "A" || rows[0].Rank != 0 {
		t.Fatal("Rerank mutated its input")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Build()
	b := Build()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two Build() calls produced different datasets")
	}
}

func TestFactorScoresForUnknownEntity(t *testing.T) {
	ds := Build()
	_, err := ds.FactorScoresFor("France")
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestParseMethod(t *testing.T) {
	if _, err := ParseMethod("simple"); err != nil {
		t.Fatalf("simple rejected: %v", err)
	}
	if _, err := ParseMethod("weighted"); err != nil {
		t.Fatalf("weighted rejected: %v", err)
	}
	_, err := ParseMethod("median")
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for unknown token, got %v", err)
	}
}

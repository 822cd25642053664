package mocksearch

import (
	"math"
	"reflect"
	"testing"
)

func TestPairs(t *testing.T) {
	rows := []AbunRow{
		{Method: "usearch", Feature: "Otu1", Sample: "mock2", Count: 5, RelAbun: 0.5},
		{Method: "usearch", Feature: "Otu1", Sample: "mock1", Count: 4, RelAbun: 0.4},
		{Method: "usearch", Feature: "Otu2", Sample: "mock1", Count: 6, RelAbun: 0.6},
		{Method: "vsearch", Feature: "Otu1", Sample: "mock1", Count: 9, RelAbun: 1.0},
	}
	got := Pairs(rows, "usearch")
	want := []ReplicatePair{
		{Feature: "Otu1", Rep1: 0.4, Rep2: 0.5},
		{Feature: "Otu2", Rep1: 0.6, Rep2: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPairsSumsDuplicates(t *testing.T) {
	// Case-folded dada2 ids can collide in the abundance table; their
	// abundances add rather than the later row clobbering the earlier.
	rows := []AbunRow{
		{Method: "dada2", Feature: "ACGT", Sample: "mock1", Count: 2, RelAbun: 0.25},
		{Method: "dada2", Feature: "ACGT", Sample: "mock1", Count: 1, RelAbun: 0.25},
		{Method: "dada2", Feature: "ACGT", Sample: "mock2", Count: 4, RelAbun: 0.625},
	}
	got := Pairs(rows, "dada2")
	want := []ReplicatePair{{Feature: "ACGT", Rep1: 0.5, Rep2: 0.625}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReproLinear(t *testing.T) {
	// rep2 == rep1 exactly: corr 1, slope 1, intercept 0.
	var pairs []ReplicatePair
	for i, v := range []float64{0.1, 0.2, 0.3, 0.4} {
		pairs = append(pairs, ReplicatePair{Feature: string(rune('a' + i)), Rep1: v, Rep2: v})
	}
	s, e := Repro("usearch", pairs)
	if e != nil {
		t.Fatal(e)
	}
	if s.N != 4 {
		t.Errorf("n = %v, want 4", s.N)
	}
	tol := 1e-6
	if math.Abs(s.Corr-1) > tol || math.Abs(s.Slope-1) > tol || math.Abs(s.Intercept) > tol {
		t.Errorf("corr %v slope %v intercept %v, want 1 1 0", s.Corr, s.Slope, s.Intercept)
	}
}

func TestReproTooFew(t *testing.T) {
	_, e := Repro("dada2", []ReplicatePair{{Feature: "ACGT", Rep1: 1, Rep2: 1}})
	if e == nil {
		t.Errorf("single-feature regression did not error")
	}
}

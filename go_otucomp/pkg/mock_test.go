package otucomp

import (
	"reflect"
	"testing"
)

func TestMockFeatures(t *testing.T) {
	summary := []Record{
		{Method: Usearch, Feature: "Otu2", Sample: "mock1", Count: 3, RelAbun: 0.3},
		{Method: Usearch, Feature: "Otu1", Sample: "mock1", Count: 7, RelAbun: 0.7},
		{Method: Usearch, Feature: "Otu1", Sample: "real1", Count: 5, RelAbun: 1.0},
		{Method: Dada2, Feature: "acgt", Sample: "mock1", Count: 2, RelAbun: 0.5},
		{Method: Dada2, Feature: "ACGT", Sample: "mock1", Count: 2, RelAbun: 0.5},
	}
	got := MockFeatures(summary, []string{"mock1", "mock2"})

	want := []MockList{
		{Method: Usearch, Sample: "mock1", Features: []string{"Otu1", "Otu2"}},
		{Method: Usearch, Sample: "mock2"},
		{Method: Vsearch, Sample: "mock1"},
		{Method: Vsearch, Sample: "mock2"},
		{Method: Dada2, Sample: "mock1", Features: []string{"ACGT"}},
		{Method: Dada2, Sample: "mock2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMockIgnoresFilters(t *testing.T) {
	// Mock extraction reads the full summary; a record that would be
	// dropped as an absolute singleton still appears in the id list.
	summary := []Record{
		{Method: Vsearch, Feature: "Otu9", Sample: "mock2", Count: 1, RelAbun: 1.0},
	}
	got := MockFeatures(summary, []string{"mock2"})
	want := []MockList{
		{Method: Usearch, Sample: "mock2"},
		{Method: Vsearch, Sample: "mock2", Features: []string{"Otu9"}},
		{Method: Dada2, Sample: "mock2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

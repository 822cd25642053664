package otucomp

import (
	"strings"
	"testing"
)

func TestFprintAggregates(t *testing.T) {
	as := []Aggregate{
		{Scope: ByMethod, Stage: StageRaw, Method: Usearch, Reads: 106, Features: 3},
		{Scope: BySample, Stage: StageBeta, Sample: "s1", Reads: 50, Features: 2},
		{Scope: ByMethodSample, Stage: StageNoSingle, Method: Dada2, Sample: "mock1", Reads: 20, Features: 1},
	}
	var b strings.Builder
	if e := FprintAggregates(&b, as); e != nil {
		t.Fatal(e)
	}
	want := "method\tscope\tstage\tsample\treads\tfeatures\n" +
		"usearch\tmethod\traw\t-\t106\t3\n" +
		"-\tsample\tbeta\ts1\t50\t2\n" +
		"dada2\tmethod_sample\tnosingle\tmock1\t20\t1\n"
	if b.String() != want {
		t.Errorf("got:\n%vwant:\n%v", b.String(), want)
	}
}

func TestFprintMockAbun(t *testing.T) {
	summary := []Record{
		{Method: Dada2, Feature: "acgt", Sample: "mock1", Count: 20, RelAbun: 0.5},
		{Method: Dada2, Feature: "acgt", Sample: "s1", Count: 20, RelAbun: 1},
	}
	var b strings.Builder
	if e := FprintMockAbun(&b, summary, []string{"mock1", "mock2"}); e != nil {
		t.Fatal(e)
	}
	want := "method\tfeature\tsample\tcount\trel_abun\n" +
		"dada2\tACGT\tmock1\t20\t0.5\n"
	if b.String() != want {
		t.Errorf("got:\n%vwant:\n%v", b.String(), want)
	}
}

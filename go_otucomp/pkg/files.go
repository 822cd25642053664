package otucomp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
)

func FprintAggregates(w io.Writer, as []Aggregate) error {
	if _, e := fmt.Fprintln(w, "method\tscope\tstage\tsample\treads\tfeatures"); e != nil {
		return e
	}
	for _, a := range as {
		method := a.Method.String()
		if a.Scope == BySample {
			method = "-"
		}
		sample := a.Sample
		if a.Scope == ByMethod {
			sample = "-"
		}
		if _, e := fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\t%v\n", method, a.Scope, a.Stage, sample, a.Reads, a.Features); e != nil {
			return e
		}
	}
	return nil
}

func WriteAggregates(path string, as []Aggregate) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()
	bw := bufio.NewWriter(w)
	defer func() { csvh.DeferE(&err, bw.Flush()) }()
	return FprintAggregates(bw, as)
}

func FprintTableSummaries(w io.Writer, ts []TableSummary) error {
	if _, e := fmt.Fprintln(w, "method\tn_otus\tn_samples"); e != nil {
		return e
	}
	for _, t := range ts {
		if _, e := fmt.Fprintf(w, "%v\t%v\t%v\n", t.Method, t.NOtus, t.NSamples); e != nil {
			return e
		}
	}
	return nil
}

func WriteTableSummaries(path string, ts []TableSummary) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()
	bw := bufio.NewWriter(w)
	defer func() { csvh.DeferE(&err, bw.Flush()) }()
	return FprintTableSummaries(bw, ts)
}

func FprintSingletonReports(w io.Writer, rs []SingletonReport) error {
	if _, e := fmt.Fprintln(w, "method\tabsolute_singletons\tabundant_singletons"); e != nil {
		return e
	}
	for _, r := range rs {
		if _, e := fmt.Fprintf(w, "%v\t%v\t%v\n", r.Method, r.Absolute, r.Abundant); e != nil {
			return e
		}
	}
	return nil
}

func WriteSingletonReports(path string, rs []SingletonReport) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()
	bw := bufio.NewWriter(w)
	defer func() { csvh.DeferE(&err, bw.Flush()) }()
	return FprintSingletonReports(bw, rs)
}

// WriteMockList writes one identifier per line, the format the downstream
// sequence-extraction tool expects.
func WriteMockList(path string, l MockList) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()
	bw := bufio.NewWriter(w)
	defer func() { csvh.DeferE(&err, bw.Flush()) }()
	for _, f := range l.Features {
		if _, e := fmt.Fprintln(bw, f); e != nil {
			return e
		}
	}
	return nil
}

func WriteMockLists(outpre string, ls []MockList) error {
	for _, l := range ls {
		path := fmt.Sprintf("%v_%v_%v_ids.txt", outpre, l.Method, l.Sample)
		if e := WriteMockList(path, l); e != nil {
			return e
		}
	}
	return nil
}

// FprintMockAbun writes the unfiltered mock-sample rows for the replicate
// reproducibility stats in mock_search.
func FprintMockAbun(w io.Writer, summary []Record, mocks []string) error {
	want := map[string]bool{}
	for _, s := range mocks {
		want[s] = true
	}
	if _, e := fmt.Fprintln(w, "method\tfeature\tsample\tcount\trel_abun"); e != nil {
		return e
	}
	for _, r := range summary {
		if !want[r.Sample] {
			continue
		}
		if _, e := fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", r.Method, NormFeature(r.Method, r.Feature), r.Sample, r.Count, r.RelAbun); e != nil {
			return e
		}
	}
	return nil
}

func WriteMockAbun(path string, summary []Record, mocks []string) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()
	bw := bufio.NewWriter(w)
	defer func() { csvh.DeferE(&err, bw.Flush()) }()
	return FprintMockAbun(bw, summary, mocks)
}

// WriteOutputs writes every artifact the downstream plotting and search
// tools consume.
func WriteOutputs(outpre string, mocks []string, res *Result) error {
	if e := WriteAggregates(outpre+"_counts.txt", res.Aggregates); e != nil {
		return e
	}
	if e := WriteTableSummaries(outpre+"_summary.txt", TableSummaries(res.Tables)); e != nil {
		return e
	}
	if e := WriteSingletonReports(outpre+"_singletons.txt", SingletonReports(res.Prevs)); e != nil {
		return e
	}
	if e := WriteMockAbun(outpre+"_mock_abun.txt", res.Summary, mocks); e != nil {
		return e
	}
	return WriteMockLists(outpre, res.Mocks)
}

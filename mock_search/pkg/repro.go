package mocksearch

import (
	"fmt"
	"io"
	"sort"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/montanaflynn/stats"
	"github.com/sajari/regression"
)

// AbunRow is one line of the mock abundance table written by go_otucomp.
type AbunRow struct {
	Method string
	Feature string
	Sample string
	Count int64
	RelAbun float64
}

func ReadMockAbun(r io.Reader) ([]AbunRow, error) {
	h := handleErr("ReadMockAbun: %w")
	cr := csvh.CsvIn(r)
	var out []AbunRow
	header := true
	for l, e := cr.Read(); e != io.EOF; l, e = cr.Read() {
		if e != nil {
			return nil, h(e)
		}
		if header {
			header = false
			continue
		}
		if len(l) < 5 {
			continue
		}
		var row AbunRow
		if _, e := csvh.Scan(l, &row.Method, &row.Feature, &row.Sample, &row.Count, &row.RelAbun); e != nil {
			return nil, h(e)
		}
		out = append(out, row)
	}
	return out, nil
}

func ReadMockAbunPath(path string) ([]AbunRow, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()
	return ReadMockAbun(r)
}

func handleErr(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// ReplicatePair is one feature's relative abundance in the two mock
// replicates; a feature absent from one replicate contributes zero there.
type ReplicatePair struct {
	Feature string
	Rep1 float64
	Rep2 float64
}

func methodSamples(rows []AbunRow, method string) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if r.Method == method && !seen[r.Sample] {
			seen[r.Sample] = true
			out = append(out, r.Sample)
		}
	}
	sort.Strings(out)
	return out
}

func methodList(rows []AbunRow) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rows {
		if !seen[r.Method] {
			seen[r.Method] = true
			out = append(out, r.Method)
		}
	}
	return out
}

// Pairs pivots one method's mock rows into replicate pairs, using the two
// lexically-first sample labels as the replicates. Duplicate (feature,
// sample) rows sum: the abundance table folds identifier case, so distinct
// raw ids can land on the same feature here.
func Pairs(rows []AbunRow, method string) []ReplicatePair {
	samples := methodSamples(rows, method)
	if len(samples) < 1 {
		return nil
	}
	rep1 := samples[0]
	rep2 := ""
	if len(samples) > 1 {
		rep2 = samples[1]
	}

	idx := map[string]int{}
	var out []ReplicatePair
	for _, r := range rows {
		if r.Method != method {
			continue
		}
		i, ok := idx[r.Feature]
		if !ok {
			i = len(out)
			idx[r.Feature] = i
			out = append(out, ReplicatePair{Feature: r.Feature})
		}
		switch r.Sample {
		case rep1:
			out[i].Rep1 += r.RelAbun
		case rep2:
			out[i].Rep2 += r.RelAbun
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Feature < out[j].Feature })
	return out
}

// ReproStat measures how reproducibly one method recovers the mock
// community: Pearson correlation of the two replicates and the slope and
// intercept of regressing replicate 2 on replicate 1.
type ReproStat struct {
	Method string
	N int
	Corr float64
	Intercept float64
	Slope float64
}

func Repro(method string, pairs []ReplicatePair) (ReproStat, error) {
	out := ReproStat{Method: method, N: len(pairs)}
	if len(pairs) < 2 {
		return out, fmt.Errorf("Repro %v: need >= 2 features, got %v", method, len(pairs))
	}

	xs := make([]float64, 0, len(pairs))
	ys := make([]float64, 0, len(pairs))
	for _, p := range pairs {
		xs = append(xs, p.Rep1)
		ys = append(ys, p.Rep2)
	}

	c, e := stats.Correlation(xs, ys)
	if e != nil {
		return out, e
	}
	out.Corr = c

	var ds regression.DataPoints
	for i := range xs {
		ds = append(ds, regression.DataPoint(ys[i], []float64{xs[i]}))
	}
	r := new(regression.Regression)
	r.SetObserved("rep2")
	r.SetVar(0, "rep1")
	r.Train(ds...)
	r.Run()

	coeffs := r.GetCoeffs()
	if len(coeffs) >= 2 {
		out.Intercept = coeffs[0]
		out.Slope = coeffs[1]
	}
	return out, nil
}

func FprintRepro(w io.Writer, rs []ReproStat) error {
	if _, e := fmt.Fprintln(w, "method\tn_features\tcorr\tintercept\tslope"); e != nil {
		return e
	}
	for _, r := range rs {
		if _, e := fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", r.Method, r.N, r.Corr, r.Intercept, r.Slope); e != nil {
			return e
		}
	}
	return nil
}

// ReproFull reads the mock abundance table and writes the per-method
// replicate reproducibility table.
func ReproFull(abunPath string, w io.Writer) error {
	rows, e := ReadMockAbunPath(abunPath)
	if e != nil {
		return e
	}

	var out []ReproStat
	for _, m := range methodList(rows) {
		s, e := Repro(m, Pairs(rows, m))
		if e != nil {
			return e
		}
		out = append(out, s)
	}
	return FprintRepro(w, out)
}

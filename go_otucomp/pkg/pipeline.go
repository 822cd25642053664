package otucomp

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// Input names one method's raw table export on disk.
type Input struct {
	Method Method
	Path string
}

// Result carries every stage of the comparison. Each stage owns its output;
// later stages are new sets or key masks, never in-place edits of earlier
// ones.
type Result struct {
	Tables []RawTable
	Raw []Record
	Summary []Record
	Prevs []Prevalence
	NoSingle []Record
	NSamples map[Method]int
	Beta map[Key]bool
	Aggregates []Aggregate
	Mocks []MockList
}

// RunTables runs the comparison over already-loaded tables: per-method
// normalize+summarize in parallel, then the shared filter stages and
// reductions. A malformed method halts everything before any aggregate is
// produced for it.
func RunTables(mocks []string, tables ...RawTable) (*Result, error) {
	h := handle("RunTables: %w")

	raws := make([][]Record, len(tables))
	sums := make([][]Record, len(tables))

	var g errgroup.Group
	for i := range tables {
		i := i
		g.Go(func() error {
			raws[i] = Normalize(tables[i])
			sums[i] = Summarize(raws[i])
			return nil
		})
	}
	if e := g.Wait(); e != nil {
		return nil, h(e)
	}

	res := &Result{Tables: tables}
	for i := range tables {
		res.Raw = append(res.Raw, raws[i]...)
		res.Summary = append(res.Summary, sums[i]...)
	}

	res.Prevs = PrevalenceTable(res.Summary)
	drop := AbsoluteSingletons(res.Prevs)
	res.NoSingle = DropKeys(res.Summary, drop)

	// The denominator is fixed per method from the singleton-filtered
	// summary and does not shrink as further features are removed.
	res.NSamples = SampleCounts(res.NoSingle)
	for _, t := range tables {
		if res.NSamples[t.Method] == 0 {
			return nil, h(DivisionError{Method: t.Method})
		}
	}

	beta, e := BetaKeys(res.NoSingle, res.NSamples)
	if e != nil {
		return nil, h(e)
	}
	res.Beta = beta

	rawKeys := KeySet(res.Summary)
	noSingleKeys := KeySet(res.NoSingle)
	if e := CheckSubset(noSingleKeys, rawKeys, StageNoSingle); e != nil {
		return nil, h(e)
	}
	if e := CheckSubset(beta, noSingleKeys, StageBeta); e != nil {
		return nil, h(e)
	}

	stagekeys := []struct {
		stage Stage
		keep map[Key]bool
	}{
		{StageRaw, nil},
		{StageNoSingle, noSingleKeys},
		{StageBeta, beta},
	}
	for _, sk := range stagekeys {
		for _, sc := range Scopes {
			res.Aggregates = append(res.Aggregates, Count(res.Raw, sk.keep, sc, sk.stage)...)
		}
	}

	res.Mocks = MockFeatures(res.Summary, mocks)
	return res, nil
}

// RunAll reads the raw exports in parallel and runs the comparison.
func RunAll(ctx context.Context, threads int, mocks []string, inputs ...Input) (*Result, error) {
	h := handle("RunAll: %w")

	tables := make([]RawTable, len(inputs))
	g, _ := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			t, e := ReadTablePath(Spec(in.Method), in.Path)
			if e != nil {
				return e
			}
			tables[i] = t
			log.Printf("%v: %v features, %v samples", in.Method, len(t.Rows), len(t.Samples))
			return nil
		})
	}
	if e := g.Wait(); e != nil {
		return nil, h(e)
	}

	return RunTables(mocks, tables...)
}

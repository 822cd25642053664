package mocksearch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fastats/pkg"
	"github.com/jgbaldwinbrown/iter"
	"golang.org/x/sync/errgroup"
)

func Must(e error) {
	if e != nil {
		panic(e)
	}
}

// Job cross-references one method+mock-sample identifier list against the
// known mock community reference sequences.
type Job struct {
	IdPath string
	FaPath string
	RefPath string
	Outpre string
	MinId float64
	SeqIds bool
}

func ReadIds(path string) (map[string]bool, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()

	ids := map[string]bool{}
	s := bufio.NewScanner(r)
	s.Buffer([]byte{}, 1e12)
	for s.Scan() {
		if s.Text() != "" {
			ids[s.Text()] = true
		}
	}
	return ids, s.Err()
}

// SubsetFa keeps the fasta entries named by ids. Names come from the first
// word of the header; when the identifiers are sequences (dada2 ASVs) the
// match is case-folded and falls back to the entry's sequence itself.
func SubsetFa(ids map[string]bool, seqids bool, it iter.Iter[fastats.FaEntry]) *iter.Iterator[fastats.FaEntry] {
	return &iter.Iterator[fastats.FaEntry]{Iteratef: func(yield func(fastats.FaEntry) error) error {
		return it.Iterate(func(f fastats.FaEntry) error {
			name := f.Header
			if fields := strings.Fields(f.Header); len(fields) > 0 {
				name = fields[0]
			}
			if seqids {
				name = strings.ToUpper(name)
			}
			ok := ids[name]
			if seqids && !ok {
				ok = ids[strings.ToUpper(f.Seq)]
			}
			if !ok {
				return nil
			}
			return yield(f)
		})
	}}
}

func CollectFa(path string) ([]fastats.FaEntry, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, e
	}
	defer r.Close()

	return iter.Collect[fastats.FaEntry](fastats.ParseFasta(r))
}

func WriteFa(path string, it iter.Iter[fastats.FaEntry]) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()
	bw := bufio.NewWriter(w)
	defer func() { csvh.DeferE(&err, bw.Flush()) }()

	return it.Iterate(func(f fastats.FaEntry) error {
		_, e := fmt.Fprintf(bw, ">%v\n%v\n", f.Header, f.Seq)
		return e
	})
}

// RunVsearch aligns the subset against the mock reference. The alignment
// itself is vsearch's problem, not ours.
func RunVsearch(ctx context.Context, j Job, subsetPath string) error {
	cmd := exec.CommandContext(
		ctx,
		"vsearch",
		"--usearch_global", subsetPath,
		"--db", j.RefPath,
		"--id", fmt.Sprintf("%v", j.MinId),
		"--blast6out", j.Outpre+".b6",
		"--strand", "both",
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func RunJob(ctx context.Context, j Job) error {
	h := func(e error) error { return fmt.Errorf("RunJob %v: %w", j.IdPath, e) }

	ids, e := ReadIds(j.IdPath)
	if e != nil {
		return h(e)
	}

	fa, e := CollectFa(j.FaPath)
	if e != nil {
		return h(e)
	}

	subpath := j.Outpre + "_subset.fa.gz"
	sub := SubsetFa(ids, j.SeqIds, iter.SliceIter[fastats.FaEntry](fa))
	if e := WriteFa(subpath, sub); e != nil {
		return h(e)
	}

	// An empty id list still gets its (empty) subset and hit files, but
	// there is nothing to align.
	if len(ids) == 0 {
		w, e := os.Create(j.Outpre + ".b6")
		if e != nil {
			return h(e)
		}
		return w.Close()
	}
	return RunVsearch(ctx, j, subpath)
}

func SearchMulti(ctx context.Context, threads int, jobs ...Job) error {
	g, ctx2 := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			return RunJob(ctx2, job)
		})
	}
	return g.Wait()
}

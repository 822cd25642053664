package countplots

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/jgbaldwinbrown/covplots/pkg"
	"golang.org/x/sync/errgroup"
)

func Must(e error) {
	if e != nil {
		panic(e)
	}
}

// Job is one bar chart comparing read or feature recovery across the three
// filter stages for one grouping of the counts table.
type Job struct {
	Countspath string
	Outpre string
	Scope string
	Quantity string
	Ylab string
}

// RunPlotCmd renders one chart with the external plotting script.
func RunPlotCmd(ctx context.Context, j Job) error {
	cmd := exec.CommandContext(
		ctx,
		"plototucounts",
		j.Countspath, j.Outpre, j.Scope, j.Quantity, j.Ylab,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func PlotMulti(ctx context.Context, threads int, jobs ...Job) error {
	g, ctx2 := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			return RunPlotCmd(ctx2, job)
		})
	}
	return g.Wait()
}

func MakeInputSet(j Job) covplots.InputSet {
	var out covplots.InputSet
	out.Paths = append(out.Paths, j.Countspath)
	out.Name = j.Scope + "_" + j.Quantity
	out.Functions = []string{
		"strip_header_some",
	}
	out.FunctionArgs = []any{
		[]int{0},
	}
	return out
}

func MakePlotConfig(j Job, sets ...covplots.InputSet) covplots.UltimateConfig {
	var c covplots.UltimateConfig
	c.Plotfunc = "plot_self_vs_pair_pretty"
	c.PlotfuncArgs = covplots.PlotSelfVsPairArgs{
		Ylab: j.Ylab,
		Xlab: "Filter stage",
		Width: 8,
		Height: 6,
		ResScale: 300,
		TextSize: 18,
	}
	c.Fullchr = true
	c.Outpre = j.Outpre
	c.InputSets = append(c.InputSets, sets...)
	return c
}

// PlotCovplots renders the charts in-process through covplots instead of
// shelling out.
func PlotCovplots(jobs ...Job) error {
	var cs []covplots.UltimateConfig
	for _, j := range jobs {
		cs = append(cs, MakePlotConfig(j, MakeInputSet(j)))
	}
	return covplots.AllMultiplotParallel(cs, 0, 0, 1, true, nil)
}

// StandardJobs covers every scope and counted quantity for one counts table.
func StandardJobs(countspath, outpre string) []Job {
	scopes := []string{"method", "sample", "method_sample"}
	quants := []struct{ name, ylab string }{
		{"reads", "Reads retained"},
		{"features", "Features retained"},
	}

	var out []Job
	for _, s := range scopes {
		for _, q := range quants {
			out = append(out, Job{
				Countspath: countspath,
				Outpre: fmt.Sprintf("%v_%v_%v", outpre, s, q.name),
				Scope: s,
				Quantity: q.name,
				Ylab: q.ylab,
			})
		}
	}
	return out
}

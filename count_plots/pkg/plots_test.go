package countplots

import (
	"testing"

	"github.com/jgbaldwinbrown/covplots/pkg"
)

func TestMakePlotConfig(t *testing.T) {
	j := Job{
		Countspath: "counts.txt",
		Outpre: "out_method_reads",
		Scope: "method",
		Quantity: "reads",
		Ylab: "Reads retained",
	}
	c := MakePlotConfig(j, MakeInputSet(j))

	if c.Plotfunc != "plot_self_vs_pair_pretty" {
		t.Errorf("plotfunc %v", c.Plotfunc)
	}
	args, ok := c.PlotfuncArgs.(covplots.PlotSelfVsPairArgs)
	if !ok {
		t.Fatalf("plot args are %T, want PlotSelfVsPairArgs", c.PlotfuncArgs)
	}
	if args.Ylab != "Reads retained" {
		t.Errorf("ylab %v", args.Ylab)
	}
	if len(c.InputSets) != 1 || c.InputSets[0].Name != "method_reads" {
		t.Errorf("input sets %v", c.InputSets)
	}
}

func TestStandardJobs(t *testing.T) {
	jobs := StandardJobs("counts.txt", "out")
	if len(jobs) != 6 {
		t.Fatalf("got %v jobs, want 6", len(jobs))
	}
	seen := map[string]bool{}
	for _, j := range jobs {
		seen[j.Outpre] = true
	}
	if !seen["out_method_reads"] || !seen["out_method_sample_features"] {
		t.Errorf("job prefixes %v", seen)
	}
}

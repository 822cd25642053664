package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/jgbaldwinbrown/otucomp/count_plots/pkg"
)

type Flags struct {
	Counts string
	Outpre string
	External bool
	Threads int
}

func GetFlags() (f Flags) {
	flag.StringVar(&f.Counts, "c", "", "Counts table written by go_otucomp.")
	flag.StringVar(&f.Outpre, "o", "counts_plot", "Output prefix.")
	flag.BoolVar(&f.External, "x", false, "Render with the external plototucounts command instead of covplots.")
	flag.IntVar(&f.Threads, "t", -1, "Threads to use (default infinite).")
	flag.Parse()

	if f.Counts == "" {
		panic(fmt.Errorf("missing -c"))
	}
	return
}

func main() {
	f := GetFlags()
	jobs := countplots.StandardJobs(f.Counts, f.Outpre)

	if f.External {
		countplots.Must(countplots.PlotMulti(context.Background(), f.Threads, jobs...))
		return
	}
	countplots.Must(countplots.PlotCovplots(jobs...))
}

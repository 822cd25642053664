package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/jgbaldwinbrown/otucomp/go_otucomp/pkg"
)

type Flags struct {
	Usearch string
	Vsearch string
	Dada2 string
	Outpre string
	Mocks string
	Threads int
}

func GetFlags() (f Flags) {
	flag.StringVar(&f.Usearch, "u", "", "Path to usearch OTU table (.txt or .txt.gz).")
	flag.StringVar(&f.Vsearch, "v", "", "Path to vsearch OTU table (.txt or .txt.gz).")
	flag.StringVar(&f.Dada2, "d", "", "Path to dada2 ASV table (.csv or .csv.gz).")
	flag.StringVar(&f.Outpre, "o", "otucomp_out", "Output prefix.")
	flag.StringVar(&f.Mocks, "m", "mock1,mock2", "Comma-separated mock community sample labels.")
	flag.IntVar(&f.Threads, "t", -1, "Threads to use (default infinite).")
	flag.Parse()

	if f.Usearch == "" || f.Vsearch == "" || f.Dada2 == "" {
		panic(fmt.Errorf("missing -u, -v, or -d"))
	}
	return
}

func main() {
	f := GetFlags()
	inputs := []otucomp.Input{
		{Method: otucomp.Usearch, Path: f.Usearch},
		{Method: otucomp.Vsearch, Path: f.Vsearch},
		{Method: otucomp.Dada2, Path: f.Dada2},
	}
	mocks := strings.Split(f.Mocks, ",")

	res, e := otucomp.RunAll(context.Background(), f.Threads, mocks, inputs...)
	if e != nil {
		panic(e)
	}
	if e := otucomp.WriteOutputs(f.Outpre, mocks, res); e != nil {
		panic(e)
	}
}

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"

	"github.com/jgbaldwinbrown/otucomp/mock_search/pkg"
)

func main() {
	threads := flag.Int("t", -1, "Threads to use (default infinite).")
	abun := flag.String("a", "", "Mock abundance table for replicate reproducibility stats (optional).")
	flag.Parse()

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	dec := json.NewDecoder(os.Stdin)
	var jobs []mocksearch.Job
	var j mocksearch.Job
	for e := dec.Decode(&j); e != io.EOF; e = dec.Decode(&j) {
		mocksearch.Must(e)
		jobs = append(jobs, j)
	}

	mocksearch.Must(mocksearch.SearchMulti(context.Background(), *threads, jobs...))

	var b6s []string
	for _, job := range jobs {
		b6s = append(b6s, job.Outpre+".b6")
	}
	counts, e := mocksearch.CountHitsPaths(b6s...)
	mocksearch.Must(e)
	mocksearch.PrintPathHits(stdout, b6s, counts)

	if *abun != "" {
		mocksearch.Must(mocksearch.ReproFull(*abun, stdout))
	}
}

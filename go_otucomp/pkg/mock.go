package otucomp

import "sort"

// MockList is the deduplicated feature identifier list for one method in one
// designated mock-community sample.
type MockList struct {
	Method Method
	Sample string
	Features []string
}

// MockFeatures selects, from the unfiltered summary, the distinct feature
// ids present (count > 0) in each designated mock sample, per method, with
// per-method identifier normalization applied. A method+sample with nothing
// present yields an empty list, never an error. No filter state is shared
// with the main pipeline; mock extraction always sees the full summary.
func MockFeatures(summary []Record, mocks []string) []MockList {
	want := map[string]bool{}
	for _, s := range mocks {
		want[s] = true
	}

	sets := map[methodSample]map[string]bool{}
	for _, r := range summary {
		if r.Count <= 0 || !want[r.Sample] {
			continue
		}
		g := methodSample{r.Method, r.Sample}
		if sets[g] == nil {
			sets[g] = map[string]bool{}
		}
		sets[g][NormFeature(r.Method, r.Feature)] = true
	}

	var out []MockList
	for _, m := range Methods {
		for _, s := range mocks {
			l := MockList{Method: m, Sample: s}
			for f := range sets[methodSample{m, s}] {
				l.Features = append(l.Features, f)
			}
			sort.Strings(l.Features)
			out = append(out, l)
		}
	}
	return out
}

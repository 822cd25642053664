package otucomp

import "sort"

// Record is the canonical long-form unit: one method, feature, sample,
// count. RelAbun is zero until Summarize fills it.
type Record struct {
	Method Method
	Feature string
	Sample string
	Count int64
	RelAbun float64
}

type methodSample struct {
	m Method
	s string
}

// Summarize computes relative abundance per method+sample, sorts by
// (feature, sample) for determinism, and drops zero-count rows. A sample
// whose total count is zero emits no rows at all; zeros are elided, never
// stored.
func Summarize(recs []Record) []Record {
	totals := map[methodSample]int64{}
	for _, r := range recs {
		totals[methodSample{r.Method, r.Sample}] += r.Count
	}

	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if r.Count <= 0 {
			continue
		}
		r.RelAbun = float64(r.Count) / float64(totals[methodSample{r.Method, r.Sample}])
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Feature != out[j].Feature {
			return out[i].Feature < out[j].Feature
		}
		return out[i].Sample < out[j].Sample
	})
	return out
}

// KeySet collects the distinct combination keys of a record set.
func KeySet(recs []Record) map[Key]bool {
	out := map[Key]bool{}
	for _, r := range recs {
		out[Key{r.Method, r.Feature}] = true
	}
	return out
}

// CheckSubset verifies that a downstream stage's key set only holds keys
// present in its upstream stage.
func CheckSubset(down, up map[Key]bool, stage Stage) error {
	for k := range down {
		if !up[k] {
			return ConsistencyError{Key: k, Stage: stage}
		}
	}
	return nil
}

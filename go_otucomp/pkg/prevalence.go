package otucomp

import "sort"

// Prevalence summarizes one combination key: total supporting reads and the
// number of samples with a nonzero count.
type Prevalence struct {
	Key Key
	Total int64
	Prevalence int
}

// PrevalenceTable groups summarized records by combination key. The input is
// post-Summarize, so zero-count rows are already gone and prevalence equals
// the per-key row count.
func PrevalenceTable(recs []Record) []Prevalence {
	idx := map[Key]int{}
	var out []Prevalence
	for _, r := range recs {
		k := Key{r.Method, r.Feature}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, Prevalence{Key: k})
		}
		out[i].Total += r.Count
		if r.Count > 0 {
			out[i].Prevalence++
		}
	}
	sort.Slice(out, func(i, j int) bool { return KeyLess(out[i].Key, out[j].Key) })
	return out
}

// AbsoluteSingletons marks keys supported by at most one read in at most one
// sample. These are the keys the prevalence filter removes.
func AbsoluteSingletons(prevs []Prevalence) map[Key]bool {
	out := map[Key]bool{}
	for _, p := range prevs {
		if p.Total <= 1 && p.Prevalence <= 1 {
			out[p.Key] = true
		}
	}
	return out
}

// AbundantSingletons lists keys whose reads all sit in a single sample.
// Reported for diagnostics only, never removed.
func AbundantSingletons(prevs []Prevalence) []Key {
	var out []Key
	for _, p := range prevs {
		if p.Total > 1 && p.Prevalence <= 1 {
			out = append(out, p.Key)
		}
	}
	return out
}

// DropKeys removes every row whose combination key is in drop. Removal is
// keyed on (method, feature) only, so all of a key's rows go, across every
// sample.
func DropKeys(recs []Record, drop map[Key]bool) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if !drop[Key{r.Method, r.Feature}] {
			out = append(out, r)
		}
	}
	return out
}

// SingletonReport is the per-method diagnostic written next to the counts
// table.
type SingletonReport struct {
	Method Method
	Absolute int
	Abundant int
}

func SingletonReports(prevs []Prevalence) []SingletonReport {
	idx := map[Method]int{}
	out := make([]SingletonReport, 0, len(Methods))
	for _, m := range Methods {
		idx[m] = len(out)
		out = append(out, SingletonReport{Method: m})
	}
	for _, p := range prevs {
		i, ok := idx[p.Key.Method]
		if !ok {
			continue
		}
		if p.Prevalence <= 1 {
			if p.Total <= 1 {
				out[i].Absolute++
			} else {
				out[i].Abundant++
			}
		}
	}
	return out
}

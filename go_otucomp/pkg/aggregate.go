package otucomp

import (
	"fmt"
	"sort"
)

type Scope int

const (
	ByMethod Scope = iota
	BySample
	ByMethodSample
)

var Scopes = []Scope{ByMethod, BySample, ByMethodSample}

func (s Scope) String() string {
	switch s {
	case ByMethod: return "method"
	case BySample: return "sample"
	case ByMethodSample: return "method_sample"
	}
	return fmt.Sprintf("scope(%d)", int(s))
}

type Stage int

const (
	StageRaw Stage = iota
	StageNoSingle
	StageBeta
)

var Stages = []Stage{StageRaw, StageNoSingle, StageBeta}

func (s Stage) String() string {
	switch s {
	case StageRaw: return "raw"
	case StageNoSingle: return "nosingle"
	case StageBeta: return "beta"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Aggregate is one reduced row of the comparison output. Reads sums counts;
// Features counts distinct combination keys with a nonzero count in the
// group.
type Aggregate struct {
	Scope Scope
	Stage Stage
	Method Method
	Sample string
	Reads int64
	Features int
}

// Count reduces recs to aggregate rows for one scope and stage: a pure
// function of the record set and the stage's retained-key set (nil keeps
// everything). Run it on the full pre-positivity record set so a sample with
// no surviving reads still appears as an explicit zero row rather than going
// missing.
func Count(recs []Record, keep map[Key]bool, scope Scope, stage Stage) []Aggregate {
	idx := map[methodSample]int{}
	feats := map[methodSample]map[Key]bool{}
	var out []Aggregate

	for _, r := range recs {
		k := Key{r.Method, r.Feature}
		if keep != nil && !keep[k] {
			continue
		}

		var g methodSample
		switch scope {
		case ByMethod:
			g.m = r.Method
		case BySample:
			g.s = r.Sample
		case ByMethodSample:
			g.m, g.s = r.Method, r.Sample
		}

		i, ok := idx[g]
		if !ok {
			i = len(out)
			idx[g] = i
			out = append(out, Aggregate{Scope: scope, Stage: stage, Method: g.m, Sample: g.s})
			feats[g] = map[Key]bool{}
		}
		out[i].Reads += r.Count
		if r.Count > 0 {
			feats[g][k] = true
		}
	}

	for g, i := range idx {
		out[i].Features = len(feats[g])
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Method != out[j].Method {
			return out[i].Method < out[j].Method
		}
		return out[i].Sample < out[j].Sample
	})
	return out
}

package otucomp

// RawRow is one feature's counts, in the table's sample column order.
type RawRow struct {
	Feature string
	Counts []int64
}

// RawTable is one method's abundance table in canonical wide form: an
// identifying feature column plus one count column per sample. Rows whose
// counts are all zero have been pruned.
type RawTable struct {
	Method Method
	Samples []string
	Rows []RawRow
}

// NewRawTable validates the canonical schema and prunes all-zero rows. The
// table is immutable after this.
func NewRawTable(m Method, samples []string, rows []RawRow) (RawTable, error) {
	t := RawTable{Method: m, Samples: samples}
	if len(samples) < 1 {
		return t, SchemaError{Method: m, Msg: "no sample columns"}
	}

	seensamp := map[string]bool{}
	for _, s := range samples {
		if s == "" {
			return t, SchemaError{Method: m, Msg: "empty sample label"}
		}
		if seensamp[s] {
			return t, SchemaError{Method: m, Name: s, Msg: "duplicate sample label"}
		}
		seensamp[s] = true
	}

	seenfeat := map[string]bool{}
	for _, r := range rows {
		if r.Feature == "" {
			return t, SchemaError{Method: m, Msg: "missing feature id"}
		}
		if seenfeat[r.Feature] {
			return t, SchemaError{Method: m, Name: r.Feature, Msg: "duplicate feature id"}
		}
		seenfeat[r.Feature] = true

		if len(r.Counts) != len(samples) {
			return t, SchemaError{Method: m, Name: r.Feature, Msg: "row length does not match sample columns"}
		}
		nonzero := false
		for _, c := range r.Counts {
			if c < 0 {
				return t, SchemaError{Method: m, Name: r.Feature, Msg: "negative count"}
			}
			if c > 0 {
				nonzero = true
			}
		}
		if nonzero {
			t.Rows = append(t.Rows, r)
		}
	}
	return t, nil
}

// Normalize reshapes wide to long, one Record per cell. Zero-count cells are
// kept here; only all-zero rows are gone. Summarize drops the zero cells.
func Normalize(t RawTable) []Record {
	recs := make([]Record, 0, len(t.Rows)*len(t.Samples))
	for _, r := range t.Rows {
		for i, s := range t.Samples {
			recs = append(recs, Record{Method: t.Method, Feature: r.Feature, Sample: s, Count: r.Counts[i]})
		}
	}
	return recs
}

// TableSummary is one line of the initial data-exploration display.
type TableSummary struct {
	Method Method
	NOtus int
	NSamples int
}

func TableSummaries(tables []RawTable) []TableSummary {
	out := make([]TableSummary, 0, len(tables))
	for _, t := range tables {
		out = append(out, TableSummary{t.Method, len(t.Rows), len(t.Samples)})
	}
	return out
}

package otucomp

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fasttsv"
)

// ReadSpec holds the per-pipeline export quirks that have to be undone
// before the canonical schema applies: what the identifier column is called,
// which suffix the pipeline glues onto sample labels, and which metadata
// columns to drop.
type ReadSpec struct {
	Method Method
	Comma rune
	IDCols []string
	StripSuffix string
	DropCols map[string]bool
}

func Spec(m Method) ReadSpec {
	switch m {
	case Usearch:
		return ReadSpec{
			Method: Usearch,
			Comma: '\t',
			IDCols: []string{"#OTU ID"},
			StripSuffix: ".usearch",
		}
	case Vsearch:
		return ReadSpec{
			Method: Vsearch,
			Comma: '\t',
			IDCols: []string{"OTU ID", "#OTU ID"},
			StripSuffix: ".vsearch",
			DropCols: map[string]bool{"taxonomy": true},
		}
	case Dada2:
		// R's write.csv leaves the rowname column unnamed; the rownames
		// are the ASV sequences themselves.
		return ReadSpec{
			Method: Dada2,
			Comma: ',',
			IDCols: []string{"", "X", "feature_id"},
		}
	}
	panic(fmt.Errorf("Spec: unknown method %v", m))
}

func (s ReadSpec) isID(name string) bool {
	for _, c := range s.IDCols {
		if name == c {
			return true
		}
	}
	return false
}

func readMatrix(comma rune, r io.Reader) ([][]string, error) {
	if comma == '\t' {
		s := fasttsv.NewScanner(r)
		var out [][]string
		for s.Scan() {
			line := make([]string, len(s.Line()))
			copy(line, s.Line())
			out = append(out, line)
		}
		return out, nil
	}

	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	var out [][]string
	for l, e := cr.Read(); e != io.EOF; l, e = cr.Read() {
		if e != nil {
			return nil, e
		}
		out = append(out, append([]string{}, l...))
	}
	return out, nil
}

// ParseTable resolves one pipeline's export to the canonical wide form:
// identifier column found by name, sample labels suffix-stripped, metadata
// columns dropped. Everything funnels through NewRawTable so schema
// validation is uniform, including labels that collide only after the suffix
// is stripped.
func ParseTable(spec ReadSpec, lines [][]string) (RawTable, error) {
	if len(lines) < 1 {
		return RawTable{}, SchemaError{Method: spec.Method, Msg: "empty table"}
	}

	header := lines[0]
	idcol := -1
	for i, name := range header {
		if spec.isID(name) {
			idcol = i
			break
		}
	}
	if idcol == -1 {
		return RawTable{}, SchemaError{Method: spec.Method, Msg: "missing identifier column"}
	}

	var samples []string
	var cols []int
	for i, name := range header {
		if i == idcol || spec.DropCols[name] {
			continue
		}
		samples = append(samples, strings.TrimSuffix(name, spec.StripSuffix))
		cols = append(cols, i)
	}

	var rows []RawRow
	for _, l := range lines[1:] {
		if len(l) == 0 {
			continue
		}
		if idcol >= len(l) {
			return RawTable{}, SchemaError{Method: spec.Method, Msg: "short row"}
		}
		row := RawRow{Feature: l[idcol], Counts: make([]int64, 0, len(cols))}
		for _, c := range cols {
			if c >= len(l) {
				return RawTable{}, SchemaError{Method: spec.Method, Name: row.Feature, Msg: "short row"}
			}
			n, e := strconv.ParseInt(l[c], 10, 64)
			if e != nil {
				return RawTable{}, SchemaError{Method: spec.Method, Name: row.Feature, Msg: fmt.Sprintf("bad count %q", l[c])}
			}
			row.Counts = append(row.Counts, n)
		}
		rows = append(rows, row)
	}
	return NewRawTable(spec.Method, samples, rows)
}

func ReadTable(spec ReadSpec, r io.Reader) (RawTable, error) {
	lines, e := readMatrix(spec.Comma, r)
	if e != nil {
		return RawTable{}, handle("ReadTable: %w")(e)
	}
	return ParseTable(spec, lines)
}

func ReadTablePath(spec ReadSpec, path string) (RawTable, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return RawTable{}, e
	}
	defer r.Close()
	return ReadTable(spec, r)
}

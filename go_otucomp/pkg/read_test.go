package otucomp

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestReadUsearch(t *testing.T) {
	in := "#OTU ID\ts1.usearch\ts2.usearch\n" +
		"Otu1\t5\t3\n" +
		"Otu2\t0\t1\n"
	tab, e := ReadTable(Spec(Usearch), strings.NewReader(in))
	if e != nil {
		t.Fatal(e)
	}
	if !reflect.DeepEqual(tab.Samples, []string{"s1", "s2"}) {
		t.Errorf("got samples %v, want suffix-stripped s1 s2", tab.Samples)
	}
	want := []RawRow{
		{"Otu1", []int64{5, 3}},
		{"Otu2", []int64{0, 1}},
	}
	if !reflect.DeepEqual(tab.Rows, want) {
		t.Errorf("got rows %v, want %v", tab.Rows, want)
	}
}

func TestReadVsearchDropsTaxonomy(t *testing.T) {
	in := "#OTU ID\ts1.vsearch\ttaxonomy\ts2.vsearch\n" +
		"Otu1\t4\tk__Bacteria\t2\n"
	tab, e := ReadTable(Spec(Vsearch), strings.NewReader(in))
	if e != nil {
		t.Fatal(e)
	}
	if !reflect.DeepEqual(tab.Samples, []string{"s1", "s2"}) {
		t.Errorf("got samples %v, want taxonomy dropped", tab.Samples)
	}
	if !reflect.DeepEqual(tab.Rows, []RawRow{{"Otu1", []int64{4, 2}}}) {
		t.Errorf("got rows %v", tab.Rows)
	}
}

func TestReadDada2(t *testing.T) {
	in := "\"\",\"s1\",\"s2\"\n" +
		"\"ACGT\",9,0\n" +
		"\"TTGA\",1,2\n"
	tab, e := ReadTable(Spec(Dada2), strings.NewReader(in))
	if e != nil {
		t.Fatal(e)
	}
	if !reflect.DeepEqual(tab.Samples, []string{"s1", "s2"}) {
		t.Errorf("got samples %v", tab.Samples)
	}
	want := []RawRow{
		{"ACGT", []int64{9, 0}},
		{"TTGA", []int64{1, 2}},
	}
	if !reflect.DeepEqual(tab.Rows, want) {
		t.Errorf("got rows %v, want %v", tab.Rows, want)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		spec ReadSpec
		in string
	}{
		{"missing_id_col", Spec(Usearch), "OtuId\ts1\nOtu1\t5\n"},
		{"bad_count", Spec(Usearch), "#OTU ID\ts1\nOtu1\tfive\n"},
		{"short_row", Spec(Usearch), "#OTU ID\ts1\ts2\nOtu1\t5\n"},
		{"suffix_collision", Spec(Vsearch), "#OTU ID\ts1.vsearch\ts1\nOtu1\t5\t3\n"},
		{"empty", Spec(Usearch), ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, e := ReadTable(test.spec, strings.NewReader(test.in))
			var se SchemaError
			if !errors.As(e, &se) {
				t.Fatalf("got %v, want SchemaError", e)
			}
			if se.Method != test.spec.Method {
				t.Errorf("error names method %v, want %v", se.Method, test.spec.Method)
			}
		})
	}
}

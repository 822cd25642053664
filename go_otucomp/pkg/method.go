package otucomp

import (
	"fmt"
	"strings"
)

// Method identifies one of the clustering pipelines under comparison. The
// declaration order is the display order and is carried through every table
// that emits a method column; it is deliberately not alphabetical.
type Method int

const (
	Usearch Method = iota
	Vsearch
	Dada2
)

var Methods = []Method{Usearch, Vsearch, Dada2}

func (m Method) String() string {
	switch m {
	case Usearch: return "usearch"
	case Vsearch: return "vsearch"
	case Dada2: return "dada2"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("ParseMethod: unknown method %v", s)
}

// Key is the combination key naming one feature within one method. Filter
// decisions are made per Key, never per field, so the same feature id in two
// methods never collides.
type Key struct {
	Method Method
	Feature string
}

func KeyLess(a, b Key) bool {
	if a.Method != b.Method {
		return a.Method < b.Method
	}
	return a.Feature < b.Feature
}

// NormFeature case-folds identifiers for methods whose feature ids are
// sequences rather than arbitrary OTU names.
func NormFeature(m Method, id string) string {
	if m == Dada2 {
		return strings.ToUpper(id)
	}
	return id
}

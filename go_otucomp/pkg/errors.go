package otucomp

import "fmt"

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// SchemaError marks a malformed or ambiguous raw table. Name is the
// offending feature id or sample label when one exists.
type SchemaError struct {
	Method Method
	Name string
	Msg  string
}

func (e SchemaError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%v: schema error: %v", e.Method, e.Msg)
	}
	return fmt.Sprintf("%v: schema error: %v: %v", e.Method, e.Msg, e.Name)
}

// DivisionError marks a per-sample mean requested for a method with no
// observed samples.
type DivisionError struct {
	Method Method
}

func (e DivisionError) Error() string {
	return fmt.Sprintf("%v: no observed samples; per-sample mean undefined", e.Method)
}

// ConsistencyError marks a combination key present in a filter stage that is
// missing from the upstream stage it must be a subset of.
type ConsistencyError struct {
	Key Key
	Stage Stage
}

func (e ConsistencyError) Error() string {
	return fmt.Sprintf("%v: feature %v: stage %v contains a key missing upstream", e.Key.Method, e.Key.Feature, e.Stage)
}

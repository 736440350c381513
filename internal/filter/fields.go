package filter

import (
	"fmt"
	"time"
)

// Kind is how a query parameter is tested against its fields.
type Kind int

const (
	Bilingual Kind = iota
	Scalar
	ExactMatch
)

// Field binds one query parameter to the document fields it tests.
type Field struct {
	Param  string
	Kind   Kind
	Fields []string
	// Layout, when set, is a time layout every constraining value must parse
	// with.
	Layout string
}

// FieldMap is the declarative list of filterable parameters of one entity
// kind, in the order their clauses are emitted.
type FieldMap []Field

// Params lists the parameter names the map recognizes.
func (m FieldMap) Params() []string {
	params := make([]string, len(m))
	for i, f := range m {
		params[i] = f.Param
	}
	return params
}

// Validate rejects values that cannot be used as constraints.
func (m FieldMap) Validate(values map[string]string) error {
	for _, field := range m {
		value := values[field.Param]
		if field.Layout == "" || value == "" || value == All {
			continue
		}
		if _, err := time.Parse(field.Layout, value); err != nil {
			return fmt.Errorf("%s must be formatted as %s", field.Param, field.Layout)
		}
	}
	return nil
}

// Build produces the filter for the given parameter values. Unknown keys are
// ignored. Empty values and the All sentinel contribute nothing; every other
// parameter adds its own clause, so two groups can never replace each other.
func (m FieldMap) Build(values map[string]string) Filter {
	var f Filter
	for _, field := range m {
		value, ok := values[field.Param]
		if !ok || value == "" || value == All {
			continue
		}
		f.Clauses = append(f.Clauses, field.clause(value))
	}
	return f
}

func (f Field) clause(value string) Clause {
	switch f.Kind {
	case Scalar:
		return ScalarContains(value, f.Fields[0])
	case ExactMatch:
		return Exact(value, f.Fields[0])
	default:
		return BilingualContains(value, f.Fields...)
	}
}

// Package filter turns optional query parameters into store-neutral
// predicates. A Filter is a conjunction of clauses; each clause matches when
// its value matches at least one of its paths.
package filter

import "github.com/dimitrije/kisan-api/internal/models"

// All is the parameter value meaning "no constraint". It is handled by the
// same branch as an absent parameter.
const All = "all"

// Path addresses a value inside a document, e.g. {"season", "hindi"}.
type Path []string

// Match selects how a clause compares its value.
type Match int

const (
	// Contains is a case-insensitive literal substring test.
	Contains Match = iota
	// Equals is an exact string comparison.
	Equals
)

// Clause is one AND-ed term of a Filter.
type Clause struct {
	Paths []Path
	Match Match
	Value string
}

// Filter is the predicate handed to a store. The zero value matches every
// document.
type Filter struct {
	Clauses []Clause
}

// And returns a filter with c appended as an independent clause.
func (f Filter) And(c Clause) Filter {
	clauses := make([]Clause, 0, len(f.Clauses)+1)
	clauses = append(clauses, f.Clauses...)
	return Filter{Clauses: append(clauses, c)}
}

// Empty reports whether f places no constraint.
func (f Filter) Empty() bool {
	return len(f.Clauses) == 0
}

// BilingualContains matches value as a substring of either language variant
// of any of the given bilingual fields.
func BilingualContains(value string, fields ...string) Clause {
	paths := make([]Path, 0, len(fields)*2)
	for _, field := range fields {
		paths = append(paths,
			Path{field, models.LanguageHindi},
			Path{field, models.LanguageEnglish},
		)
	}
	return Clause{Paths: paths, Match: Contains, Value: value}
}

// ScalarContains matches value as a substring of a single field.
func ScalarContains(value, field string) Clause {
	return Clause{Paths: []Path{{field}}, Match: Contains, Value: value}
}

// Exact matches a single field equal to value.
func Exact(value, field string) Clause {
	return Clause{Paths: []Path{{field}}, Match: Equals, Value: value}
}

// Sort orders query results by the string value at Path.
type Sort struct {
	Path Path
	Desc bool
}

package filter

import "strings"

// Matches evaluates f against a decoded JSON document.
func (f Filter) Matches(doc map[string]any) bool {
	for _, c := range f.Clauses {
		if !c.Matches(doc) {
			return false
		}
	}
	return true
}

// Matches reports whether any path of c satisfies the clause.
func (c Clause) Matches(doc map[string]any) bool {
	needle := strings.ToLower(c.Value)
	for _, p := range c.Paths {
		value, ok := Lookup(doc, p)
		if !ok {
			continue
		}
		switch c.Match {
		case Equals:
			if value == c.Value {
				return true
			}
		default:
			if strings.Contains(strings.ToLower(value), needle) {
				return true
			}
		}
	}
	return false
}

// Lookup returns the string stored at p. Missing paths and non-string values
// report false.
func Lookup(doc map[string]any, p Path) (string, bool) {
	var current any = doc
	for _, key := range p {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		if current, ok = m[key]; !ok {
			return "", false
		}
	}
	s, ok := current.(string)
	return s, ok
}

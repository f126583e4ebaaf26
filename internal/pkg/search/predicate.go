package search

import "strings"

// MatchText reports whether any of the fields contains the free-text query as
// a case-insensitive substring. An empty or whitespace-only query means
// "no constraint" and matches everything.
func MatchText(query string, fields ...string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// MatchExact reports whether value equals the filter, case-sensitively.
// An empty filter means no constraint.
func MatchExact(filter, value string) bool {
	return filter == "" || filter == value
}

// MatchFold reports whether value equals the filter ignoring case.
// An empty filter means no constraint.
func MatchFold(filter, value string) bool {
	return filter == "" || strings.EqualFold(filter, value)
}

// MatchBool reports whether value equals the filter. A nil filter means no
// constraint.
func MatchBool(filter *bool, value bool) bool {
	return filter == nil || *filter == value
}

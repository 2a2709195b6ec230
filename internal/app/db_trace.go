package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	// NOT IN / ANY lists grow with team size; fold them so span names group.
	placeholderListRegex = regexp.MustCompile(`\(\s*\$\d+(\s*,\s*\$\d+)+\s*\)`)
)

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = placeholderListRegex.ReplaceAllString(normalized, "(...)")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}

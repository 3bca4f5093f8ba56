package windows

import (
	"strings"
)

// trim removes leading blanks and tabs, and trailing blanks, tabs and line endings.
func trim(s string) string {
	return strings.TrimLeft(strings.TrimRight(s, " \t\r\n"), " \t")
}

// stripComment cuts s at the first ';'.
func stripComment(s string) string {
	before, _, _ := strings.Cut(s, ";")
	return before
}

// stripQuotes returns the text between the first pair of double quotes, or s
// unchanged if there's no such pair.
func stripQuotes(s string) string {
	start := strings.IndexByte(s, '"')
	if start == -1 {
		return s
	}

	end := strings.IndexByte(s[start+1:], '"')
	if end == -1 {
		return s
	}

	return s[start+1 : start+1+end]
}

// splitKeyVal splits "key=value" at the last '=' which still leaves a
// non-empty value. Both sides are trimmed.
func splitKeyVal(line string) (key string, value string, ok bool) {
	for i := len(line) - 2; i >= 1; i-- {
		if line[i] == '=' {
			return trim(line[:i]), trim(line[i+1:]), true
		}
	}

	return "", "", false
}

// tokenize splits s on sep and drops empty tokens. Tokens are not trimmed.
func tokenize(s string, sep byte) []string {
	var tokens []string

	for _, token := range strings.Split(s, string(sep)) {
		if token == "" {
			continue
		}

		tokens = append(tokens, token)
	}

	return tokens
}

// firstField returns the first run of non-blank characters of s.
func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// substitute replaces a value of the exact form %KEY% with the matching
// string table entry. Unknown keys resolve to KEY itself.
func substitute(s string, strs *Table) string {
	if len(s) < 3 || s[0] != '%' || strings.LastIndexByte(s, '%') != len(s)-1 {
		return s
	}

	return strs.Lookup(s[1 : len(s)-1])
}

// hasPrefixFold reports whether s begins with prefix, ignoring case.
func hasPrefixFold(s string, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

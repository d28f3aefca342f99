package terminal

import "strings"

// Complete performs cd prefix completion on the raw input field contents.
// It returns "cd <name>" and true only when exactly one name starts with the
// case-folded prefix typed after "cd"; otherwise the input must be left as is.
func Complete(input string, names []string) (string, bool) {
	if !strings.HasPrefix(input, "cd") {
		return "", false
	}

	prefix := strings.TrimSpace(input[2:])
	if prefix == "" {
		return "", false
	}

	matches := Matches(strings.ToLower(prefix), names)
	if len(matches) != 1 {
		return "", false
	}
	return "cd " + matches[0], true
}

// Matches returns the names starting with prefix, in order.
func Matches(prefix string, names []string) []string {
	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

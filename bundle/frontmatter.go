package bundle

import "strings"

// ParseFrontmatter parses the flat key-value header delimited by "---" at
// the top of a record or manifest file.
//
// This is a lenient, best-effort parser: when the text has fewer than two
// delimiters it returns an empty map, lines without a ": " separator are
// skipped, and duplicate keys keep the last occurrence. Malformed headers
// degrade to missing fields, never to an error, so hand-edited records stay
// scannable.
func ParseFrontmatter(text string) map[string]string {
	fm := make(map[string]string)

	parts := strings.SplitN(text, "---", 3)
	if len(parts) < 3 {
		return fm
	}

	for _, line := range strings.Split(strings.TrimSpace(parts[1]), "\n") {
		key, val, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		fm[strings.TrimSpace(key)] = unquote(strings.TrimSpace(val))
	}
	return fm
}

// unquote strips one layer of surrounding single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == s[len(s)-1] && (s[0] == '"' || s[0] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

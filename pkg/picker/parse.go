package picker

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/forPelevin/gomoji"
)

// firstJSONArray extracts the first well-formed bracketed array from
// free-form model output and returns its string entries. Non-string
// entries are dropped. Models tend to wrap arrays in prose or code
// fences, so the scan is positional rather than whole-document.
func firstJSONArray(s string) ([]string, bool) {
	for start := strings.IndexByte(s, '['); start != -1; {
		if end := matchingBracket(s, start); end != -1 {
			var entries []any
			if err := json.Unmarshal([]byte(s[start:end+1]), &entries); err == nil {
				out := make([]string, 0, len(entries))
				for _, e := range entries {
					if str, ok := e.(string); ok {
						out = append(out, str)
					}
				}
				return out, true
			}
		}
		next := strings.IndexByte(s[start+1:], '[')
		if next == -1 {
			break
		}
		start += 1 + next
	}
	return nil, false
}

// matchingBracket returns the index of the bracket closing the one at
// start, or -1. Bracket characters inside JSON string literals are ignored.
func matchingBracket(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// validWords keeps the entries that occur verbatim in source, case
// sensitively, dropping duplicates. Verbatim containment is the sole trust
// boundary for model-suggested words.
func validWords(words []string, source string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" || !strings.Contains(source, w) {
			continue
		}
		if slices.Contains(out, w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// firstEmoji returns the first emoji grapheme in s, or "".
func firstEmoji(s string) string {
	found := gomoji.FindAll(s)
	if len(found) == 0 {
		return ""
	}
	return found[0].Character
}

package patcher

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Replacement selects one word for patching. Word must occur verbatim in
// the markup's text content. Emoji, when set, is appended after the word
// with a separating space.
type Replacement struct {
	Word  string
	Emoji string
}

// RenderFunc produces the styled markup for a matched word. A nil renderer
// keeps the original word text, which is the emoji-insertion case.
type RenderFunc func(word string) string

// segment is a run of markup: either plain text eligible for matching, or
// an opaque run (tags, comments, already patched output) carried through
// untouched.
type segment struct {
	text bool
	raw  string
}

// Apply rewrites markup so the first boundary-safe occurrence of each
// word is replaced by its rendering (and/or trailing emoji). Longer words
// are processed first so selected words that contain shorter selected
// words keep the longer match. Words that never occur are skipped without
// altering the markup.
func Apply(markup string, reps []Replacement, render RenderFunc) string {
	reps = slices.DeleteFunc(slices.Clone(reps), func(r Replacement) bool {
		return r.Word == ""
	})
	if len(reps) == 0 {
		return markup
	}
	// Longest first: shorter words that are substrings of longer selected
	// words must not pre-empt the longer match.
	slices.SortStableFunc(reps, func(a, b Replacement) int {
		return len(b.Word) - len(a.Word)
	})

	segments := tokenize(markup)
	for _, rep := range reps {
		segments = patchFirst(segments, rep, render)
	}

	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.raw)
	}
	return b.String()
}

// tokenize splits markup into text runs and opaque tag runs, preserving
// the original bytes of every token.
func tokenize(markup string) []segment {
	z := html.NewTokenizer(strings.NewReader(markup))
	var segments []segment
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := string(z.Raw())
		segments = append(segments, segment{text: tt == html.TextToken, raw: raw})
	}
	return segments
}

// patchFirst replaces the first boundary-safe occurrence of rep.Word found
// in a text segment. The replacement becomes an opaque segment so later
// words can never match inside already patched output.
func patchFirst(segments []segment, rep Replacement, render RenderFunc) []segment {
	for i, seg := range segments {
		if !seg.text {
			continue
		}
		at := findWord(seg.raw, rep.Word)
		if at < 0 {
			continue
		}

		replacement := seg.raw[at : at+len(rep.Word)]
		if render != nil {
			replacement = render(rep.Word)
		}
		if rep.Emoji != "" {
			replacement += " " + rep.Emoji
		}

		patched := make([]segment, 0, len(segments)+2)
		patched = append(patched, segments[:i]...)
		patched = append(patched,
			segment{text: true, raw: seg.raw[:at]},
			segment{text: false, raw: replacement},
			segment{text: true, raw: seg.raw[at+len(rep.Word):]},
		)
		patched = append(patched, segments[i+1:]...)
		return patched
	}
	return segments
}

// findWord returns the index of the first occurrence of word in s that is
// not part of a larger word, or -1. Boundaries require the adjacent runes
// to be non-word characters.
func findWord(s, word string) int {
	from := 0
	for {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		at := from + i
		if boundedAt(s, at, len(word)) {
			return at
		}
		from = at + 1
	}
}

func boundedAt(s string, at, length int) bool {
	if at > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:at])
		if isWordRune(r) {
			return false
		}
	}
	if at+length < len(s) {
		r, _ := utf8.DecodeRuneInString(s[at+length:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

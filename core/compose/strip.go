package compose

import (
	"strings"

	"golang.org/x/net/html"
)

// StripDecorations removes every decoration-marked span, tags and content,
// from previously composed markup. All other markup passes through
// byte-for-byte. Stripping before re-composing guards against stacking
// decorations on already decorated text.
func StripDecorations(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	depth := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := string(z.Raw())

		switch tt {
		case html.StartTagToken:
			if depth > 0 {
				depth++
				continue
			}
			if hasDecorationAttr(z) {
				depth = 1
				continue
			}
			b.WriteString(raw)
		case html.EndTagToken:
			if depth > 0 {
				depth--
				continue
			}
			b.WriteString(raw)
		default:
			if depth > 0 {
				continue
			}
			b.WriteString(raw)
		}
	}
	return b.String()
}

// PlainText extracts the text content of a markup fragment, unescaping
// entities. Tags contribute nothing.
func PlainText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(z.Text())
		}
	}
	return b.String()
}

// hasDecorationAttr reports whether the current start tag carries the
// decoration marker attribute. Must be called before the tokenizer advances.
func hasDecorationAttr(z *html.Tokenizer) bool {
	_, hasAttr := z.TagName()
	for hasAttr {
		key, _, more := z.TagAttr()
		if string(key) == DecorationAttr {
			return true
		}
		hasAttr = more
	}
	return false
}

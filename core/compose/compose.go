package compose

import (
	"fmt"
	"html"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dmitrymomot/textfx/core/effects"
)

// DecorationAttr marks spans the engine adds around composed output for
// effect decorations. Only decoration spans ever carry this attribute;
// per-character spans never do. StripDecorations relies on it to remove
// decorations without disturbing the underlying text.
const DecorationAttr = "data-textfx-decoration"

// MinFontSize is the absolute lower bound on any rendered character size.
// No curve output may push a character below it.
const MinFontSize = 8

// Selection names the active effect per category. Empty keys (and unknown
// keys) leave that category unstyled; at most one effect per category
// applies at a time.
type Selection struct {
	Color string
	Size  string
}

// Compose renders text as a styled markup fragment according to the
// selection and options. It never fails: unknown effect keys are ignored,
// options are clamped, and empty input yields empty output. With no active
// effect the text is returned HTML-escaped but otherwise unchanged.
func Compose(text string, sel Selection, opts effects.Options) string {
	if text == "" {
		return ""
	}
	opts = opts.Clamped()

	colorFx, hasColor := effects.ColorByKey(sel.Color)
	sizeFx, hasSize := effects.SizeByKey(sel.Size)
	if !hasColor && !hasSize {
		return html.EscapeString(text)
	}

	total := countNonSpace(text)

	var b strings.Builder
	if hasColor && colorFx.DecorationBefore != "" {
		writeDecoration(&b, colorFx.DecorationBefore)
	}

	charIndex := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cluster := gr.Str()
		if isSpaceCluster(cluster) {
			b.WriteString(cluster)
			continue
		}

		var styles []string
		if hasColor {
			styles = append(styles, "color: "+colorFx.Sequence[charIndex%len(colorFx.Sequence)])
		}
		if hasSize {
			offset := effects.Offset(sizeFx.Curve, charIndex, total, opts)
			size := int(math.Round(float64(opts.BaseSize) + offset))
			if size < MinFontSize {
				size = MinFontSize
			}
			styles = append(styles, fmt.Sprintf("font-size: %dpx", size))
		}

		b.WriteString(`<span style="`)
		b.WriteString(strings.Join(styles, "; "))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(cluster))
		b.WriteString(`</span>`)
		charIndex++
	}

	if hasColor && colorFx.DecorationAfter != "" {
		writeDecoration(&b, colorFx.DecorationAfter)
	}
	return b.String()
}

func writeDecoration(b *strings.Builder, glyph string) {
	b.WriteString(`<span ` + DecorationAttr + `="1">`)
	b.WriteString(html.EscapeString(glyph))
	b.WriteString(`</span>`)
}

// countNonSpace returns the number of non-space grapheme clusters in text.
func countNonSpace(text string) int {
	n := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if !isSpaceCluster(gr.Str()) {
			n++
		}
	}
	return n
}

func isSpaceCluster(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsSpace(r)
}

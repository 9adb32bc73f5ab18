package patcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textfx/core/compose"
	"github.com/dmitrymomot/textfx/core/effects"
	"github.com/dmitrymomot/textfx/pkg/patcher"
)

// brackets is a trivial renderer that makes substitutions easy to assert.
func brackets(word string) string {
	return "[" + word + "]"
}

func TestApply_Basics(t *testing.T) {
	t.Parallel()

	t.Run("replaces a word with its rendering", func(t *testing.T) {
		t.Parallel()
		out := patcher.Apply("the quick fox", []patcher.Replacement{{Word: "quick"}}, brackets)
		assert.Equal(t, "the [quick] fox", out)
	})

	t.Run("only the first occurrence is patched", func(t *testing.T) {
		t.Parallel()
		out := patcher.Apply("cat and cat", []patcher.Replacement{{Word: "cat"}}, brackets)
		assert.Equal(t, "[cat] and cat", out)
	})

	t.Run("distinct words patch independently", func(t *testing.T) {
		t.Parallel()
		out := patcher.Apply("red fish blue fish", []patcher.Replacement{
			{Word: "red"},
			{Word: "blue"},
		}, brackets)
		assert.Equal(t, "[red] fish [blue] fish", out)
	})

	t.Run("missing words leave the markup untouched", func(t *testing.T) {
		t.Parallel()
		markup := "nothing to see"
		assert.Equal(t, markup, patcher.Apply(markup, []patcher.Replacement{{Word: "zebra"}}, brackets))
	})

	t.Run("no replacements is a no-op", func(t *testing.T) {
		t.Parallel()
		markup := "<b>unchanged</b>"
		assert.Equal(t, markup, patcher.Apply(markup, nil, brackets))
		assert.Equal(t, markup, patcher.Apply(markup, []patcher.Replacement{{Word: ""}}, brackets))
	})
}

func TestApply_WordBoundaries(t *testing.T) {
	t.Parallel()

	t.Run("never matches inside a larger word", func(t *testing.T) {
		t.Parallel()
		out := patcher.Apply("cats and a cat", []patcher.Replacement{{Word: "cat"}}, brackets)
		assert.Equal(t, "cats and a [cat]", out)
	})

	t.Run("punctuation counts as a boundary", func(t *testing.T) {
		t.Parallel()
		out := patcher.Apply("hello, cat!", []patcher.Replacement{{Word: "cat"}}, brackets)
		assert.Equal(t, "hello, [cat]!", out)
	})

	t.Run("longest word wins over its substring", func(t *testing.T) {
		t.Parallel()
		out := patcher.Apply("the category is about a cat", []patcher.Replacement{
			{Word: "cat"},
			{Word: "category"},
		}, brackets)
		assert.Equal(t, "the [category] is about a [cat]", out)
	})

	t.Run("patched output is never re-patched", func(t *testing.T) {
		t.Parallel()
		// The rendering of "category" contains the text "cat"; the later,
		// shorter word must match the standalone occurrence only.
		render := func(word string) string {
			return `<span style="color: #ff0000">` + word + `</span>`
		}
		out := patcher.Apply("category cat", []patcher.Replacement{
			{Word: "cat"},
			{Word: "category"},
		}, render)
		assert.Equal(t,
			`<span style="color: #ff0000">category</span> <span style="color: #ff0000">cat</span>`,
			out)
	})
}

func TestApply_TagSafety(t *testing.T) {
	t.Parallel()

	t.Run("words inside tags are never patched", func(t *testing.T) {
		t.Parallel()
		markup := `<span class="cat">the cat</span>`
		out := patcher.Apply(markup, []patcher.Replacement{{Word: "cat"}}, brackets)
		assert.Equal(t, `<span class="cat">the [cat]</span>`, out)
	})

	t.Run("existing tags pass through byte-for-byte", func(t *testing.T) {
		t.Parallel()
		markup := `<SPAN STYLE="COLOR: RED">dog</SPAN><br/>cat`
		out := patcher.Apply(markup, []patcher.Replacement{{Word: "cat"}}, brackets)
		assert.Equal(t, `<SPAN STYLE="COLOR: RED">dog</SPAN><br/>[cat]`, out)
	})

	t.Run("matching spans multiple text runs independently", func(t *testing.T) {
		t.Parallel()
		markup := `plain <b>cat</b> tail`
		out := patcher.Apply(markup, []patcher.Replacement{{Word: "cat"}, {Word: "tail"}}, brackets)
		assert.Equal(t, `plain <b>[cat]</b> [tail]`, out)
	})
}

func TestApply_Emoji(t *testing.T) {
	t.Parallel()

	t.Run("nil renderer appends the emoji after the word", func(t *testing.T) {
		t.Parallel()
		out := patcher.Apply("happy birthday", []patcher.Replacement{{Word: "birthday", Emoji: "🎂"}}, nil)
		assert.Equal(t, "happy birthday 🎂", out)
	})

	t.Run("renderer and emoji combine", func(t *testing.T) {
		t.Parallel()
		out := patcher.Apply("happy birthday", []patcher.Replacement{{Word: "birthday", Emoji: "🎂"}}, brackets)
		assert.Equal(t, "happy [birthday] 🎂", out)
	})
}

func TestApply_WithComposeRenderer(t *testing.T) {
	t.Parallel()

	render := func(word string) string {
		return compose.Compose(word, compose.Selection{Color: "rainbow"}, effects.Options{})
	}

	out := patcher.Apply("make this word pop", []patcher.Replacement{{Word: "pop"}}, render)
	require.Contains(t, out, `<span style="color: `)
	assert.Equal(t, "make this word pop", compose.PlainText(out))
}

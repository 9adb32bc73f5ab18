package randomizer_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textfx/core/compose"
	"github.com/dmitrymomot/textfx/core/effects"
	"github.com/dmitrymomot/textfx/core/randomizer"
)

func seeded(seed uint64) *randomizer.Randomizer {
	return randomizer.New(randomizer.WithRand(rand.New(rand.NewPCG(seed, 0))))
}

func TestCompose_AppliedRecord(t *testing.T) {
	t.Parallel()

	rz := seeded(1)
	seenModes := make(map[randomizer.Mode]bool)

	for range 200 {
		markup, applied := rz.Compose("happy birthday to you", effects.Options{})
		require.NotEmpty(t, markup)
		seenModes[applied.Mode] = true

		// The font wrap is mandatory in every mode.
		require.NotEmpty(t, applied.Font)
		assert.Contains(t, markup, "font-family: "+applied.Font)

		switch applied.Mode {
		case randomizer.ModePreset:
			assert.True(t, applied.ColorEffect != "" || applied.SizeEffect != "",
				"preset mode must pick at least one effect")
			assert.Empty(t, applied.TextColor)
			assert.Empty(t, applied.Background)
			if applied.ColorEffect != "" {
				_, ok := effects.ColorByKey(applied.ColorEffect)
				assert.True(t, ok, "unknown color effect %q", applied.ColorEffect)
			}
			if applied.SizeEffect != "" {
				_, ok := effects.SizeByKey(applied.SizeEffect)
				assert.True(t, ok, "unknown size effect %q", applied.SizeEffect)
			}
		case randomizer.ModeSimple:
			assert.True(t, applied.TextColor != "" || applied.Background != "",
				"simple mode must pick at least one uniform color")
			assert.Empty(t, applied.ColorEffect)
			if applied.TextColor != "" {
				assert.Contains(t, markup, "color: "+applied.TextColor)
			}
			if applied.Background != "" {
				assert.Contains(t, markup, "background-color: "+applied.Background)
			}
		default:
			t.Fatalf("unexpected mode %q", applied.Mode)
		}
	}

	assert.True(t, seenModes[randomizer.ModePreset], "preset mode never sampled")
	assert.True(t, seenModes[randomizer.ModeSimple], "simple mode never sampled")
}

func TestCompose_ContrastInvariant(t *testing.T) {
	t.Parallel()

	rz := seeded(7)
	bothSeen := false

	for range 500 {
		_, applied := rz.Compose("contrast check", effects.Options{})
		if applied.TextColor != "" && applied.Background != "" {
			bothSeen = true
			assert.NotEqual(t, applied.TextColor, applied.Background,
				"uniform foreground and background must never match")
		}
	}
	assert.True(t, bothSeen, "both-colors branch never sampled")
}

func TestCompose_TextSurvives(t *testing.T) {
	t.Parallel()

	rz := seeded(11)
	text := "the message stays intact"

	for range 100 {
		markup, _ := rz.Compose(text, effects.Options{})
		assert.Equal(t, text, compose.PlainText(compose.StripDecorations(markup)))
	}
}

func TestComposeChaos(t *testing.T) {
	t.Parallel()

	rz := seeded(3)
	flags := map[string]bool{}

	for range 300 {
		markup, applied := rz.ComposeChaos("full chaos", effects.Options{})

		assert.Equal(t, applied.Bold, strings.Contains(markup, "<b>"))
		assert.Equal(t, applied.Italic, strings.Contains(markup, "<i>"))
		assert.Equal(t, applied.Underline, strings.Contains(markup, "<u>"))

		// Strike-through is excluded from random formatting by policy.
		assert.NotContains(t, markup, "<s>")
		assert.NotContains(t, markup, "<strike>")
		assert.NotContains(t, markup, "line-through")

		assert.NotEmpty(t, applied.Font)
		assert.Contains(t, markup, "font-family: "+applied.Font)

		if applied.Bold {
			flags["bold"] = true
		}
		if applied.Italic {
			flags["italic"] = true
		}
		if applied.Underline {
			flags["underline"] = true
		}
	}

	for _, f := range []string{"bold", "italic", "underline"} {
		assert.True(t, flags[f], "%s never sampled", f)
	}
}

func TestCompose_Reproducible(t *testing.T) {
	t.Parallel()

	m1, a1 := seeded(99).Compose("same seed", effects.Options{})
	m2, a2 := seeded(99).Compose("same seed", effects.Options{})
	assert.Equal(t, m1, m2)
	assert.Equal(t, a1, a2)
}

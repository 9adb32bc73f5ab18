package randomizer

import (
	"html"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dmitrymomot/textfx/core/compose"
	"github.com/dmitrymomot/textfx/core/effects"
)

// Mode identifies which top-level composition strategy was chosen.
type Mode string

const (
	// ModePreset delegates to catalog effects via the composition engine.
	ModePreset Mode = "preset"

	// ModeSimple assigns uniform text and/or background colors.
	ModeSimple Mode = "simple"
)

// Sampling weights. Preset vs simple is an even coin flip; within simple
// mode the color/background split follows the listed probabilities.
const (
	simpleColorOnlyWeight      = 0.4
	simpleBackgroundOnlyWeight = 0.3
	chaosFormatChance          = 0.3
)

// Applied records the exact choices a composition made. Callers drive UI
// state from this record; it is never reconstructed from markup.
type Applied struct {
	Mode        Mode
	ColorEffect string
	SizeEffect  string
	TextColor   string
	Background  string
	Font        string
	Bold        bool
	Italic      bool
	Underline   bool
}

// Randomizer samples effect combinations. Not safe for concurrent use: it
// owns a single rand source, matching the single active session model.
type Randomizer struct {
	rand *rand.Rand
}

// Option configures a Randomizer.
type Option func(*Randomizer)

// WithRand replaces the randomness source, making all choices reproducible
// under a seeded generator.
func WithRand(r *rand.Rand) Option {
	return func(rz *Randomizer) {
		rz.rand = r
	}
}

// New creates a Randomizer seeded from system entropy unless WithRand
// overrides the source.
func New(opts ...Option) *Randomizer {
	rz := &Randomizer{
		rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(rz)
	}
	return rz
}

// Compose produces a random composition of text and reports the resolved
// choices. Empty text yields empty markup with the choices that would have
// applied.
func (rz *Randomizer) Compose(text string, opts effects.Options) (string, Applied) {
	if rz.rand.IntN(2) == 0 {
		return rz.preset(text, opts)
	}
	return rz.simple(text, opts)
}

// ComposeChaos layers random bold/italic/underline formatting and the
// mandatory font wrap on top of a regular random composition.
// Strike-through is never sampled.
func (rz *Randomizer) ComposeChaos(text string, opts effects.Options) (string, Applied) {
	markup, applied := rz.Compose(text, opts)

	applied.Bold = rz.rand.Float64() < chaosFormatChance
	applied.Italic = rz.rand.Float64() < chaosFormatChance
	applied.Underline = rz.rand.Float64() < chaosFormatChance

	if applied.Underline {
		markup = "<u>" + markup + "</u>"
	}
	if applied.Italic {
		markup = "<i>" + markup + "</i>"
	}
	if applied.Bold {
		markup = "<b>" + markup + "</b>"
	}
	return markup, applied
}

func (rz *Randomizer) preset(text string, opts effects.Options) (string, Applied) {
	applied := Applied{Mode: ModePreset}

	switch rz.rand.IntN(3) {
	case 0:
		applied.ColorEffect = effects.RandomColorKey(rz.rand)
	case 1:
		applied.SizeEffect = effects.RandomSizeKey(rz.rand)
	default:
		applied.ColorEffect = effects.RandomColorKey(rz.rand)
		applied.SizeEffect = effects.RandomSizeKey(rz.rand)
	}

	markup := compose.Compose(text, compose.Selection{
		Color: applied.ColorEffect,
		Size:  applied.SizeEffect,
	}, opts)

	applied.Font = rz.randomFont()
	return wrapFont(markup, applied.Font), applied
}

func (rz *Randomizer) simple(text string, opts effects.Options) (string, Applied) {
	applied := Applied{Mode: ModeSimple}

	switch roll := rz.rand.Float64(); {
	case roll < simpleColorOnlyWeight:
		applied.TextColor = rz.randomTextColor()
	case roll < simpleColorOnlyWeight+simpleBackgroundOnlyWeight:
		applied.Background = rz.randomBackgroundColor()
	default:
		applied.TextColor = rz.randomTextColor()
		applied.Background = rz.randomBackgroundColor()
		// Uniform foreground and background must never collide.
		for applied.Background == applied.TextColor {
			applied.Background = rz.randomBackgroundColor()
		}
	}

	var inner string
	if rz.rand.IntN(2) == 0 {
		applied.SizeEffect = effects.RandomSizeKey(rz.rand)
		inner = compose.Compose(text, compose.Selection{Size: applied.SizeEffect}, opts)
	} else {
		inner = html.EscapeString(text)
	}

	style := ""
	if applied.TextColor != "" {
		style = "color: " + applied.TextColor
	}
	if applied.Background != "" {
		if style != "" {
			style += "; "
		}
		style += "background-color: " + applied.Background
	}
	markup := `<span style="` + style + `">` + inner + `</span>`

	applied.Font = rz.randomFont()
	return wrapFont(markup, applied.Font), applied
}

// randomTextColor samples a saturated, mid-to-dark color that stays legible
// against typical light mail backgrounds.
func (rz *Randomizer) randomTextColor() string {
	return colorful.Hsv(
		rz.rand.Float64()*360,
		0.55+0.45*rz.rand.Float64(),
		0.35+0.45*rz.rand.Float64(),
	).Hex()
}

// randomBackgroundColor samples from a lighter, lower-saturation band.
func (rz *Randomizer) randomBackgroundColor() string {
	return colorful.Hsv(
		rz.rand.Float64()*360,
		0.15+0.45*rz.rand.Float64(),
		0.75+0.25*rz.rand.Float64(),
	).Hex()
}

package effects

import (
	"maps"
	"math/rand/v2"
	"slices"
)

// Color is a color cycling effect. The palette repeats across the non-space
// characters of the styled text; decorations, when present, are emitted once
// around the whole output.
type Color struct {
	Name        string
	Icon        string
	Description string

	// Sequence is the ordered, non-empty palette cycled per character.
	Sequence []string

	// DecorationBefore and DecorationAfter are literal glyphs wrapped around
	// the styled output in marked spans so they can be stripped later.
	DecorationBefore string
	DecorationAfter  string
}

// Size is a per-character font size effect driven by a named curve.
type Size struct {
	Name        string
	Icon        string
	Description string
	Curve       CurveKind
}

var colorCatalog = map[string]Color{
	"rainbow": {
		Name:        "Rainbow",
		Icon:        "🌈",
		Description: "Classic rainbow cycling across every letter",
		Sequence:    []string{"#e81416", "#ffa500", "#faeb36", "#79c314", "#487de7", "#4b369d", "#70369d"},
	},
	"fire": {
		Name:             "Fire",
		Icon:             "🔥",
		Description:      "Hot reds and oranges with flame decorations",
		Sequence:         []string{"#ff4500", "#ff6347", "#ff8c00", "#ffa500", "#ffd700"},
		DecorationBefore: "🔥",
		DecorationAfter:  "🔥",
	},
	"ocean": {
		Name:        "Ocean",
		Icon:        "🌊",
		Description: "Cool blues drifting from deep to shallow",
		Sequence:    []string{"#003f5c", "#2f6690", "#3a7ca5", "#81c3d7", "#16425b"},
	},
	"neon": {
		Name:        "Neon",
		Icon:        "💡",
		Description: "Electric high-saturation glow",
		Sequence:    []string{"#ff00ff", "#00ffff", "#39ff14", "#ff3131", "#fff01f"},
	},
	"pastel": {
		Name:        "Pastel",
		Icon:        "🍬",
		Description: "Soft candy tones",
		Sequence:    []string{"#ffb3ba", "#ffdfba", "#ffffba", "#baffc9", "#bae1ff"},
	},
	"sunset": {
		Name:        "Sunset",
		Icon:        "🌇",
		Description: "Warm dusk gradient",
		Sequence:    []string{"#f9c80e", "#f86624", "#ea3546", "#662e9b", "#43bccd"},
	},
	"matrix": {
		Name:        "Matrix",
		Icon:        "🖥️",
		Description: "Terminal greens",
		Sequence:    []string{"#003b00", "#008f11", "#00ff41", "#008f11"},
	},
	"sparkle": {
		Name:             "Sparkle",
		Icon:             "✨",
		Description:      "Glittering golds wrapped in sparkles",
		Sequence:         []string{"#ffd700", "#ffdf80", "#fff8dc", "#ffdf80"},
		DecorationBefore: "✨",
		DecorationAfter:  "✨",
	},
	"celebrate": {
		Name:             "Celebrate",
		Icon:             "🎉",
		Description:      "Party palette with confetti decorations",
		Sequence:         []string{"#ff595e", "#ffca3a", "#8ac926", "#1982c4", "#6a4c93"},
		DecorationBefore: "🎉",
		DecorationAfter:  "🎊",
	},
}

var sizeCatalog = map[string]Size{
	"wave": {
		Name:        "Wave",
		Icon:        "🌊",
		Description: "Letters ride a sine wave",
		Curve:       CurveWave,
	},
	"rise": {
		Name:        "Rise",
		Icon:        "📈",
		Description: "Text grows from start to end",
		Curve:       CurveRise,
	},
	"fall": {
		Name:        "Fall",
		Icon:        "📉",
		Description: "Text shrinks from start to end",
		Curve:       CurveFall,
	},
	"pulse": {
		Name:        "Pulse",
		Icon:        "💓",
		Description: "Sizes swell and settle in a heartbeat rhythm",
		Curve:       CurvePulse,
	},
	"zigzag": {
		Name:        "Zigzag",
		Icon:        "⚡",
		Description: "Alternating big and small letters",
		Curve:       CurveZigzag,
	},
}

// ColorByKey returns the color effect registered under key.
func ColorByKey(key string) (Color, bool) {
	c, ok := colorCatalog[key]
	return c, ok
}

// SizeByKey returns the size effect registered under key.
func SizeByKey(key string) (Size, bool) {
	s, ok := sizeCatalog[key]
	return s, ok
}

// ColorKeys returns the defined color effect keys in sorted order.
func ColorKeys() []string {
	return slices.Sorted(maps.Keys(colorCatalog))
}

// SizeKeys returns the defined size effect keys in sorted order.
func SizeKeys() []string {
	return slices.Sorted(maps.Keys(sizeCatalog))
}

// RandomColorKey picks a color effect key with uniform probability using r.
func RandomColorKey(r *rand.Rand) string {
	keys := ColorKeys()
	return keys[r.IntN(len(keys))]
}

// RandomSizeKey picks a size effect key with uniform probability using r.
func RandomSizeKey(r *rand.Rand) string {
	keys := SizeKeys()
	return keys[r.IntN(len(keys))]
}

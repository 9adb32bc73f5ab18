// Package compose renders text into an email-safe styled markup fragment by
// applying per-character color and size effects from the effects catalog.
//
// The engine is a pure function: identical text, selection, and options
// always produce identical markup. Output uses only inline style
// declarations (color, font-size) on flat span elements, with no classes,
// IDs, or stylesheet references, so fragments survive mail clients that
// strip non-inline styling.
//
// Styling is computed against the non-space index of each character: spaces
// pass through verbatim and never advance the color cycle or size curve.
// Characters are iterated as Unicode grapheme clusters, so emoji and
// combining sequences stay inside a single styled span.
//
// # Basic Usage
//
//	import (
//		"github.com/dmitrymomot/textfx/core/compose"
//		"github.com/dmitrymomot/textfx/core/effects"
//	)
//
//	markup := compose.Compose("hello world",
//		compose.Selection{Color: "rainbow", Size: "wave"},
//		effects.Options{Intensity: 7},
//	)
//
// Decoration glyphs declared by a color effect are emitted once around the
// output in spans carrying the DecorationAttr marker attribute. The marker
// is the contract used by StripDecorations to remove engine-added
// decorations from previously composed markup, which keeps re-composition
// idempotent: stripping then extracting plain text recovers the original
// input exactly.
package compose

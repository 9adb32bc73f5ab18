// Package effects defines the static catalog of text styling effects used by
// the composition engine.
//
// Effects come in two categories that form independent style axes:
//
//   - Color effects cycle a fixed palette across the non-space characters of
//     a text, optionally surrounding the output with decoration glyphs.
//   - Size effects compute a per-character font size offset from a named
//     curve (wave, rise, fall, pulse, zigzag).
//
// The catalog is immutable: effect definitions are plain data declared at
// package init, identified by stable keys, and looked up by key. Adding an
// effect is a catalog edit, not a runtime API.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/textfx/core/effects"
//
//	rainbow, ok := effects.ColorByKey("rainbow")
//	if !ok {
//		// unknown key
//	}
//
//	opts := effects.Options{Intensity: 7, BaseSize: 18}.Clamped()
//	offset := effects.Offset(effects.CurveWave, 3, 12, opts)
//
// Curve evaluation is a pure function of its inputs: the same character
// index, total, and options always produce the same offset, so a composition
// can be recomputed byte-for-byte at any time.
package effects

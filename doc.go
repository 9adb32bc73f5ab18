// Package textfx is a toolkit for decorating arbitrary text with
// per-character visual styling (color cycling, size curves, decorative
// glyphs) rendered as inline-styled markup fragments that survive pasting
// into mail clients. The library implements modern Go patterns including
// functional options for configuration and interface-based design for
// flexibility and testability.
//
// # Package Organization
//
// The composition chain lives under core/, built bottom-up from the effect
// catalog; standalone collaborators live under pkg/:
//
//	github.com/dmitrymomot/textfx/core/effects    - Static catalog of color and size effect definitions
//	github.com/dmitrymomot/textfx/core/compose    - Per-character composition engine producing markup fragments
//	github.com/dmitrymomot/textfx/core/randomizer - Weighted random selection of effect combinations
//	github.com/dmitrymomot/textfx/pkg/picker      - Model-ranked AI word and emoji selection over Gemini
//	github.com/dmitrymomot/textfx/pkg/patcher     - Tag-safe injection of styled words into existing markup
//
// # Data Flow
//
// A caller hands plain text plus an effect selection (or lets the
// randomizer choose one) to the composition engine and receives a markup
// string back. Independently, the picker turns free-form model output into
// a validated, position-safe set of target words or emoji, which the
// patcher injects into existing markup without corrupting tags.
//
// The library never touches a live document: it consumes strings and
// returns strings, leaving selection, caret, clipboard, and DOM mechanics
// to the host editing surface.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/textfx/core/compose
//	go doc -all github.com/dmitrymomot/textfx/pkg/picker
package textfx

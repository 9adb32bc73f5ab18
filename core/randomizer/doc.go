// Package randomizer builds plausible random combinations of effects,
// colors, fonts, and formatting on top of the composition engine.
//
// Two top-level modes are sampled with equal probability. Preset mode picks
// one or both effect categories from the catalog and delegates to the
// engine. Simple mode assigns a uniform text color, background color, or
// both, optionally layering a single size effect. Both modes always wrap
// the result in a randomly chosen widely-supported font stack.
//
// Every call returns an Applied record of exactly what was chosen, so the
// caller can reflect the outcome in UI state without ever re-parsing
// markup.
//
//	rz := randomizer.New()
//	markup, applied := rz.Compose("party time", effects.Options{})
//	fmt.Println(applied.Mode, applied.Font)
//
// ComposeChaos layers independently sampled bold, italic, and underline
// wrapping on top of a regular random composition. Strike-through is
// deliberately never sampled.
//
// The randomness source is injectable with WithRand, which makes every
// choice reproducible under a seeded generator.
package randomizer

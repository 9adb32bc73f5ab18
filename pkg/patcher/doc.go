// Package patcher rewrites existing markup by replacing selected words with
// styled renderings or trailing emoji, without ever touching tags.
//
// The markup is tokenized into tag and text runs; matching happens only
// inside text runs, so a word that happens to appear inside a tag or an
// attribute value is never patched, and tags pass through byte-for-byte.
//
// Words are processed longest first, and only the first boundary-safe
// occurrence of each word is replaced. Both rules protect against substring
// collisions: a shorter selected word that is contained in a longer one
// cannot pre-empt the longer match, and a patched word can never be patched
// again.
//
//	styled := patcher.Apply(markup, []patcher.Replacement{
//		{Word: "birthday"},
//		{Word: "cake", Emoji: "🎂"},
//	}, func(word string) string {
//		return compose.Compose(word, compose.Selection{Color: "rainbow"}, effects.Options{})
//	})
//
// Each substitution is atomic with respect to its word: a word either gets
// its full replacement or the markup stays untouched for that word.
package patcher

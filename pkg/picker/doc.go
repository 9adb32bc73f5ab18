// Package picker selects highlight-worthy words and mood emoji from text
// using Google Gemini models, with quality-ranked fallback across the
// models available to the supplied API key.
//
// The picker discovers available models once per session, filters out
// variants that cannot do free-text generation (TTS, audio, embedding,
// question answering, image generation), and ranks the rest by a quality
// score: newer generations outrank older ones, pro tiers outrank
// flash/lite tiers, and preview/experimental variants take a fixed penalty
// so a stable release always outranks its own preview.
//
// Requests run against the ranked models in order. A quota error moves on
// to the next model; any other transport error surfaces immediately. Model
// output is never trusted as-is: suggested words must occur verbatim in
// the source text, and emoji responses must contain a matchable emoji
// grapheme.
//
// # Basic Usage
//
//	p, err := picker.New(ctx, os.Getenv("GEMINI_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pick, err := p.PickWords(ctx, "the quick brown fox", 30)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(pick.Words, pick.Model)
//
// # Model Cache
//
// The ranked model list is cached inside the Picker for the lifetime of
// the session and is lazily populated on first use. The cache is not
// invalidated automatically: on credential rotation the caller must call
// InvalidateModelCache (or construct a new Picker). The Picker is designed
// for a single active session and performs no internal locking.
//
// # Error Handling
//
//	pick, err := p.PickWords(ctx, text, density)
//	switch {
//	case errors.Is(err, picker.ErrNoModels):
//		// no compatible model for this key
//	case errors.Is(err, picker.ErrAllModelsFailed):
//		// every ranked model was exhausted
//	case err != nil:
//		// non-retryable transport failure
//	}
//
// Empty or whitespace-only input is an expected user condition and yields
// an empty result with a nil error rather than a failure.
package picker

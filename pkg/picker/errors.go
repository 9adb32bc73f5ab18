package picker

import "errors"

var (
	// ErrInvalidAPIKey indicates an invalid or missing API key.
	ErrInvalidAPIKey = errors.New("invalid or missing API key")

	// ErrClientCreationFailed indicates a failure in creating the API client.
	ErrClientCreationFailed = errors.New("failed to create API client")

	// ErrNoModels indicates no compatible generation model was found in the listing.
	ErrNoModels = errors.New("no compatible models available")

	// ErrQuotaExceeded indicates a per-model quota or rate limit was hit.
	// It triggers fallback to the next-ranked model and surfaces only when
	// every model is exhausted.
	ErrQuotaExceeded = errors.New("model quota exceeded")

	// ErrAllModelsFailed indicates the whole fallback chain was exhausted.
	ErrAllModelsFailed = errors.New("all models failed")

	// ErrNoEmojiFound indicates a model response contained no matchable
	// emoji grapheme. Counts as a failed attempt for fallback purposes.
	ErrNoEmojiFound = errors.New("no emoji found in model response")
)

package picker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Default generation parameters.
const (
	DefaultTemperature     = 0.2
	DefaultMaxOutputTokens = 512

	// DefaultWordDensity is the percentage of source words requested for
	// highlighting when the caller passes a non-positive density.
	DefaultWordDensity = 30
)

// ModelInfo is a raw entry from the remote model listing.
type ModelInfo struct {
	Name    string
	Actions []string
}

// Model is a usable generation model with its computed quality score.
type Model struct {
	Name    string
	Quality int
}

// WordPick is the validated result of a word selection call.
type WordPick struct {
	// Words occur verbatim in the source text, in model order, deduplicated.
	Words []string

	// Model identifies which ranked model produced the result.
	Model string
}

// EmojiPick is the result of an emoji suggestion call.
type EmojiPick struct {
	Emoji string
	Model string
}

// Generator abstracts the remote model endpoint: a listing call and a
// per-model text generation call. Production code uses the Gemini-backed
// implementation; tests substitute scripted fakes via WithGenerator.
type Generator interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// Picker selects words and emoji from text through ranked Gemini models.
//
// The ranked model cache is owned by the Picker instance, populated lazily
// on first use, and cleared only by InvalidateModelCache. Designed for a
// single active session; not safe for concurrent use.
type Picker struct {
	gen         Generator
	log         *slog.Logger
	temperature float32
	maxTokens   int32
	density     int

	models []Model
}

// Option is a functional option for configuring the Picker.
type Option func(*Picker)

// WithLogger sets the structured logger. Logging is discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(p *Picker) {
		if log != nil {
			p.log = log
		}
	}
}

// WithTemperature sets the sampling temperature for generation calls.
func WithTemperature(t float32) Option {
	return func(p *Picker) {
		if t >= 0 {
			p.temperature = t
		}
	}
}

// WithMaxOutputTokens caps the response length of generation calls.
func WithMaxOutputTokens(n int32) Option {
	return func(p *Picker) {
		if n > 0 {
			p.maxTokens = n
		}
	}
}

// WithWordDensity sets the default highlight density percentage used when
// PickWords receives a non-positive density.
func WithWordDensity(percent int) Option {
	return func(p *Picker) {
		if percent > 0 {
			p.density = percent
		}
	}
}

// WithGenerator replaces the model endpoint. Intended for tests.
func WithGenerator(gen Generator) Option {
	return func(p *Picker) {
		p.gen = gen
	}
}

// New creates a Picker authenticated with the given Gemini API key.
func New(ctx context.Context, apiKey string, opts ...Option) (*Picker, error) {
	p := &Picker{
		log:         slog.New(slog.DiscardHandler),
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxOutputTokens,
		density:     DefaultWordDensity,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.gen == nil {
		if apiKey == "" {
			return nil, ErrInvalidAPIKey
		}
		gen, err := newGenaiGenerator(ctx, apiKey, p.temperature, p.maxTokens)
		if err != nil {
			return nil, err
		}
		p.gen = gen
	}
	return p, nil
}

// Models returns the ranked usable models, best first, listing them from
// the remote endpoint on first call and serving the session cache after.
func (p *Picker) Models(ctx context.Context) ([]Model, error) {
	if p.models == nil {
		listed, err := p.gen.ListModels(ctx)
		if err != nil {
			return nil, err
		}
		p.models = rankModels(listed)
		p.log.Debug("ranked models", slog.Int("usable", len(p.models)), slog.Int("listed", len(listed)))
	}
	if len(p.models) == 0 {
		return nil, ErrNoModels
	}
	return append([]Model(nil), p.models...), nil
}

// InvalidateModelCache clears the session model cache. Call it after a
// credential rotation; the Picker never invalidates on its own.
func (p *Picker) InvalidateModelCache() {
	p.models = nil
}

// PickWords asks the ranked models for roughly densityPercent of the words
// in text, chosen for highlighting, and returns only the suggestions that
// occur verbatim in the source. A non-positive density falls back to the
// configured default. Empty or whitespace-only text returns an empty pick
// with no error.
//
// The requested count is advisory: the model may return more or fewer
// entries, and only verbatim validity is enforced.
func (p *Picker) PickWords(ctx context.Context, text string, densityPercent int) (WordPick, error) {
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return WordPick{}, nil
	}

	if densityPercent <= 0 {
		densityPercent = p.density
	}
	densityPercent = min(densityPercent, 100)

	target := int(math.Round(float64(wordCount) * float64(densityPercent) / 100))
	if target < 1 {
		target = 1
	}

	prompt := wordPrompt(text, target)
	var pick WordPick
	err := p.generateRanked(ctx, prompt, func(model, out string) error {
		words, ok := firstJSONArray(out)
		if !ok {
			p.log.Warn("no array in model response", slog.String("model", model))
		}
		valid := validWords(words, text)
		if dropped := len(words) - len(valid); dropped > 0 {
			p.log.Debug("dropped non-verbatim words", slog.String("model", model), slog.Int("dropped", dropped))
		}
		pick = WordPick{Words: valid, Model: model}
		return nil
	})
	return pick, err
}

// PickEmoji asks the ranked models for a single emoji matching the mood of
// text and returns the first emoji grapheme found in the response. A
// response without any emoji counts as a failed attempt and falls through
// to the next model. Empty or whitespace-only text returns an empty pick
// with no error.
func (p *Picker) PickEmoji(ctx context.Context, text string) (EmojiPick, error) {
	if strings.TrimSpace(text) == "" {
		return EmojiPick{}, nil
	}

	var pick EmojiPick
	err := p.generateRanked(ctx, emojiPrompt(text), func(model, out string) error {
		emoji := firstEmoji(out)
		if emoji == "" {
			return ErrNoEmojiFound
		}
		pick = EmojiPick{Emoji: emoji, Model: model}
		return nil
	})
	return pick, err
}

// generateRanked walks the ranked models in order, calling accept on the
// first successful response. Quota errors (and accept rejections) fall
// through to the next model; any other error surfaces immediately. When
// every model is exhausted, the last error is surfaced wrapped in
// ErrAllModelsFailed.
func (p *Picker) generateRanked(ctx context.Context, prompt string, accept func(model, out string) error) error {
	models, err := p.Models(ctx)
	if err != nil {
		return err
	}

	var lastErr error
	for _, m := range models {
		out, err := p.gen.GenerateText(ctx, m.Name, prompt)
		if err != nil {
			if !isQuotaErr(err) {
				return err
			}
			p.log.Warn("model quota exhausted, trying next", slog.String("model", m.Name))
			lastErr = err
			continue
		}
		if err := accept(m.Name, out); err != nil {
			p.log.Warn("unusable model response, trying next",
				slog.String("model", m.Name), slog.String("reason", err.Error()))
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("%w: %w", ErrAllModelsFailed, lastErr)
}

// isQuotaErr reports whether err signals a per-model quota or rate limit.
func isQuotaErr(err error) bool {
	if errors.Is(err, ErrQuotaExceeded) {
		return true
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	return false
}

func wordPrompt(text string, target int) string {
	return fmt.Sprintf(`You will be given a text. Select exactly %d words from it that are the most meaningful or emotionally charged and would benefit from colorful highlighting.

Rules:
- Every selected word must appear verbatim in the text, with identical casing.
- Do not invent, translate, or normalize words.
- Respond with ONLY a JSON array of strings, no prose, no code fences.

Text:
%s`, target, text)
}

func emojiPrompt(text string) string {
	return fmt.Sprintf(`Suggest one single emoji that best captures the mood of the following text. Respond with only the emoji and nothing else.

Text:
%s`, text)
}

package picker

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-based picker configuration.
type Config struct {
	APIKey          string  `env:"GEMINI_API_KEY,required"`
	Temperature     float32 `env:"TEXTFX_AI_TEMPERATURE" envDefault:"0.2"`
	MaxOutputTokens int32   `env:"TEXTFX_AI_MAX_OUTPUT_TOKENS" envDefault:"512"`
	WordDensity     int     `env:"TEXTFX_AI_WORD_DENSITY" envDefault:"30"`
}

// NewFromEnv creates a Picker configured from environment variables,
// loading a .env file first when one is present. Explicit options are
// applied after the environment and take precedence.
func NewFromEnv(ctx context.Context, opts ...Option) (*Picker, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse picker config: %w", err)
	}

	envOpts := []Option{
		WithTemperature(cfg.Temperature),
		WithMaxOutputTokens(cfg.MaxOutputTokens),
		WithWordDensity(cfg.WordDensity),
	}
	return New(ctx, cfg.APIKey, append(envOpts, opts...)...)
}

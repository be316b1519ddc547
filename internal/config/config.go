package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	// Retrieval tuning. Defaults match the calibrated portal behavior;
	// override only when re-tuning against a labeled query set.
	TFIDFThreshold float64 `envconfig:"TFIDF_THRESHOLD" default:"0.25"`
	KeywordBoost   float64 `envconfig:"KEYWORD_BOOST" default:"0.2"`

	SentryDSN string `envconfig:"SENTRY_DSN"`

	// EmbeddingPollInterval is the policy embedding worker's poll cadence
	// in seconds.
	EmbeddingPollInterval int `envconfig:"EMBEDDING_POLL_INTERVAL" default:"30"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("PATHFINDER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// HasOpenAI reports whether the semantic retrieval capability is configured.
// Without it the portal runs lexical-only.
func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Groq  GroqConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI,   default=mongodb://localhost:27017"`
	Database string `env:"DATABASE_NAME, default=symptom_tracker"`
}

type GroqConfig struct {
	// APIKey has no default: the report routes fail with a server error when
	// it is absent, every other route keeps working.
	APIKey string `env:"GROQ_API_KEY"`
	Model  string `env:"GROQ_MODEL, default=llama-3.3-70b-versatile"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

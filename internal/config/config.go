package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	AssistantAPIKey   string `env:"ASSISTANT_API_KEY"`
	AssistantModel    string `env:"ASSISTANT_MODEL" envDefault:"gemini-2.5-flash"`
	AssistantBaseURL  string `env:"ASSISTANT_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	AssistantTimeoutS int    `env:"ASSISTANT_TIMEOUT_S" envDefault:"30"`

	// Mimics the original mock database's round-trip delay; off by default.
	SimulatedLatencyMs int `env:"SIMULATED_LATENCY_MS" envDefault:"0"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

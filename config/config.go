package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Port the HTTP server listens on
	Port int `env:"PORT" envDefault:"8080"`

	// Path to the startup dataset. JSON arrays and SQLite snapshots
	// (.db/.sqlite) are both accepted.
	DatasetPath string `env:"DATASET_PATH" envDefault:"data/listings.json"`

	// Any level name logrus understands
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Gin mode: release, debug, or test
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// Expose the API docs UI under /swagger
	SwaggerEnabled bool `env:"SWAGGER_ENABLED" envDefault:"true"`

	// Seconds to wait for in-flight requests during shutdown
	ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
}

// LoadConfig reads configuration from the environment. A local .env file
// is honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

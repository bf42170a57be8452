package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	HTTPHost          string        `mapstructure:"HTTP_HOST"`
	HTTPPort          string        `mapstructure:"HTTP_PORT"`
	ReadHeaderTimeout time.Duration `mapstructure:"HTTP_READ_HEADER_TIMEOUT"`
	LivenessEndpoint  string        `mapstructure:"LIVENESS_ENDPOINT"`

	// Optional rate card file; the compiled-in card is used when empty.
	RatesFile string `mapstructure:"RATES_FILE"`
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (if any), then hotelrates.yaml from the working directory or
// ./config (if any), then the environment. Later sources win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("hotelrates")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "localhost")
	v.SetDefault("HTTP_PORT", "8092")
	v.SetDefault("HTTP_READ_HEADER_TIMEOUT", 20*time.Second) //nolint:gomnd
	v.SetDefault("LIVENESS_ENDPOINT", "/liveness")
	v.SetDefault("RATES_FILE", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ReadHeaderTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_READ_HEADER_TIMEOUT must be positive, got %v", cfg.ReadHeaderTimeout)
	}

	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	log "log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	List     ListConfig     `yaml:"list"`
	Workload WorkloadConfig `yaml:"workload"`
	Log      Log            `yaml:"log"`
}

type ListConfig struct {
	Length int `yaml:"length" env:"LIST_LENGTH" env-default:"5"`
	Start  int `yaml:"start" env:"LIST_START" env-default:"10"`
}

type WorkloadConfig struct {
	// busy-loop iterations spent per element before incrementing
	Iterations int `yaml:"iterations" env:"WORKLOAD_ITERATIONS" env-default:"100000000"`
	Increment  int `yaml:"increment" env:"WORKLOAD_INCREMENT" env-default:"1"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// ReadConfig loads the file named by CONFIG_FILE when it is set, otherwise
// only the environment. With a file, environment variables and env-default
// only fill the fields the file leaves at their zero value.
func ReadConfig() (*Config, error) {
	var cfg Config

	filename := getenv("CONFIG_FILE", "")
	if filename != "" {
		if err := cleanenv.ReadConfig(filename, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info("read config", "config", cfg)
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.List.Length < 0 {
		return fmt.Errorf("%w: list length %d is negative", ErrInvalidConfig, c.List.Length)
	}
	if c.Workload.Iterations < 0 {
		return fmt.Errorf("%w: workload iterations %d is negative", ErrInvalidConfig, c.Workload.Iterations)
	}
	return nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

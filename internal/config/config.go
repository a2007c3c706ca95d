package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Mode          string  `yaml:"mode" env:"GOMOKU_MODE" env-default:"ai"`
	Difficulty    int     `yaml:"difficulty" env:"GOMOKU_DIFFICULTY" env-default:"2"`
	DefenseWeight float64 `yaml:"defense-weight" env:"GOMOKU_DEFENSE_WEIGHT" env-default:"1.2"`
	Seed          int64   `yaml:"seed" env:"GOMOKU_SEED" env-default:"0"`
}

// Load - reads the config file, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

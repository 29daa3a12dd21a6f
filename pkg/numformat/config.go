package numformat

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvLoaded sync.Once

// Config describes a format through environment variables or a YAML profile entry.
type Config struct {
	Precision    int    `env:"NUMFMT_PRECISION" envDefault:"17" yaml:"precision"`
	Scale        int    `env:"NUMFMT_SCALE" envDefault:"2" yaml:"scale"`
	OnlyPositive bool   `env:"NUMFMT_ONLY_POSITIVE" envDefault:"false" yaml:"only_positive"`
	Digits       string `env:"NUMFMT_DIGITS" envDefault:"ascii" yaml:"digits"`
	FoldWidth    bool   `env:"NUMFMT_FOLD_WIDTH" envDefault:"false" yaml:"fold_width"`
}

// LoadConfig parses the NUMFMT_* environment variables into a Config.
//
// The .env file in the working directory is loaded once per process; a missing
// file is not an error. Variables already set in the environment take precedence.
// Because of the once-per-process guard, a .env file created or changed after the
// first call is not seen; use LoadConfigFrom to read specific files every time.
//
// Example:
//
//	cfg, err := numformat.LoadConfig()
//	if err != nil {
//		return err
//	}
//	f, err := cfg.Format()
func LoadConfig() (Config, error) {
	dotenvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	return parseConfig()
}

// LoadConfigFrom loads the given .env files and then parses the environment
// like LoadConfig. The files are read on every call and a missing file is an
// error. Variables already set in the environment take precedence.
func LoadConfigFrom(paths ...string) (Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}
	return parseConfig()
}

func parseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoadConfig works like LoadConfig but panics on failure.
func MustLoadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load number format configuration: %v", err))
	}
	return cfg
}

// Format builds the Format described by the config.
func (c Config) Format() (Format, error) {
	digits, err := ParseDigitProfile(c.Digits)
	if err != nil {
		return Format{}, errors.Join(ErrInvalidConfiguration, err)
	}

	opts := []Option{WithOnlyPositive(c.OnlyPositive), WithDigits(digits)}
	if c.FoldWidth {
		opts = append(opts, WithWidthFolding())
	}
	return New(c.Precision, c.Scale, opts...)
}

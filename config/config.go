// Package config holds the engine's runtime configuration. Values come
// from defaults overridable through WORDSOLVER_-prefixed environment
// variables.
package config

import (
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config collects the tunables of the engine.
type Config struct {
	// Layout names the premium-square layout solves validate against.
	Layout string `mapstructure:"layout"`
	// LetterValues names the letter valuation to score with.
	LetterValues string `mapstructure:"letter-values"`
	// BingoBonus is added when a placement plays BingoTileCount tiles.
	BingoBonus     int `mapstructure:"bingo-bonus"`
	BingoTileCount int `mapstructure:"bingo-tile-count"`
	// Workers is the width of the solve worker pool.
	Workers int `mapstructure:"workers"`
	// Debug enables debug-level logging.
	Debug bool `mapstructure:"debug"`
}

// Load builds a Config from defaults and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("layout", "CrosswordGame")
	v.SetDefault("letter-values", "english")
	v.SetDefault("bingo-bonus", 50)
	v.SetDefault("bingo-tile-count", 7)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("debug", false)
	v.SetEnvPrefix("wordsolver")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	return cfg, nil
}

// DefaultConfig returns the classic ruleset configuration; it is what
// tests use.
func DefaultConfig() *Config {
	return &Config{
		Layout:         "CrosswordGame",
		LetterValues:   "english",
		BingoBonus:     50,
		BingoTileCount: 7,
		Workers:        runtime.NumCPU(),
	}
}

// Package config resolves mathforge settings from flags, MATHFORGE_*
// environment variables and an optional mathforge.yaml file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "MATHFORGE"

// Config holds the resolved settings for one CLI invocation.
type Config struct {
	// DBPath is the SQLite file. Empty means the default data directory.
	DBPath string `mapstructure:"db"`

	// NoStore disables persistence of challenges, rewards and sessions.
	NoStore bool `mapstructure:"no-store"`

	LogLevel  string `mapstructure:"log-level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log-format" validate:"required,oneof=text json"`

	// Level is the default problem level when a command omits one.
	Level string `mapstructure:"level" validate:"required,oneof=easy medium hard expert"`

	// ChallengeType is the default daily challenge type.
	ChallengeType string `mapstructure:"challenge-type" validate:"required,oneof=standard_mixed speed_round accuracy_focus concept_mastery word_problem_day brain_teaser grade_level_challenge streak_builder"`
}

var defaults = map[string]any{
	"db":             "",
	"no-store":       false,
	"log-level":      "info",
	"log-format":     "text",
	"level":          "easy",
	"challenge-type": "standard_mixed",
}

// NewViper binds flags and the environment to a fresh viper instance and
// reads mathforge.yaml from the first of configPaths that has one. With no
// configPaths the working directory and ~/.config/mathforge are searched.
func NewViper(flags *pflag.FlagSet, configPaths ...string) (*viper.Viper, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if len(configPaths) == 0 {
		configPaths = []string{".", "$HOME/.config/mathforge"}
	}
	v.SetConfigName("mathforge")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}
	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// NewLogger builds the slog logger described by cfg, writing to w.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch cfg.LogFormat {
	case "json":
		logHandler = slog.NewJSONHandler(w, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(logHandler)
}

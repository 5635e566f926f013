package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/FlagBrew/local-pokedex/internal/funtranslations"
	"github.com/FlagBrew/local-pokedex/internal/gui"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
)

const (
	ModeCLI    = "cli"
	ModeDocker = "docker"

	defaultListeningAddr  = "0.0.0.0"
	defaultPort           = 8080
	defaultTimeoutSeconds = 10
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Setup loads the configuration, running the interactive wizard when there is
// none and we are not in docker mode. Flag and environment overrides are
// applied last.
func Setup(ctx context.Context, flags *models.Flags) *models.Config {
	logger := log.FromContext(ctx)

	cfg, err := LoadConfig(flags.ConfigPath)
	if err != nil {
		logger.WithError(err).WithField("path", flags.ConfigPath).Fatal("Failed to read configuration")
	}

	if cfg == nil {
		cfg = DefaultConfig()

		if flags.Mode == ModeDocker {
			logger.Info("No configuration file found, using defaults and environment overrides")
		} else {
			ApplyFlags(cfg, flags)

			app := gui.New(cfg, true)
			if err := app.Start(); err != nil {
				logger.WithError(err).Fatal("Failed to complete interactive wizard")
			}

			// Save the config once done.
			SetConfig(ctx, flags.ConfigPath, cfg)
		}
	}

	ApplyFlags(cfg, flags)

	if err := ValidateConfig(cfg); err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	return cfg
}

func DefaultConfig() *models.Config {
	return &models.Config{
		HTTP: models.HTTPConfig{
			ListeningAddr: defaultListeningAddr,
			Port:          defaultPort,
		},
		Upstream: models.UpstreamConfig{
			PokeAPIBaseURL:     pokeapi.DefaultBaseURL,
			TranslationBaseURL: funtranslations.DefaultBaseURL,
			TimeoutSeconds:     defaultTimeoutSeconds,
		},
	}
}

// ApplyFlags overrides config values with any flag or environment value that
// was set, and fills in defaults for anything still empty.
func ApplyFlags(cfg *models.Config, flags *models.Flags) {
	if flags.PokeAPIURL != "" {
		cfg.Upstream.PokeAPIBaseURL = flags.PokeAPIURL
	}
	if flags.TranslationURL != "" {
		cfg.Upstream.TranslationBaseURL = flags.TranslationURL
	}
	if flags.HTTPAddr != "" {
		cfg.HTTP.ListeningAddr = flags.HTTPAddr
	}
	if flags.HTTPPort != 0 {
		cfg.HTTP.Port = flags.HTTPPort
	}

	defaults := DefaultConfig()
	if cfg.HTTP.ListeningAddr == "" {
		cfg.HTTP.ListeningAddr = defaults.HTTP.ListeningAddr
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaults.HTTP.Port
	}
	if cfg.Upstream.PokeAPIBaseURL == "" {
		cfg.Upstream.PokeAPIBaseURL = defaults.Upstream.PokeAPIBaseURL
	}
	if cfg.Upstream.TranslationBaseURL == "" {
		cfg.Upstream.TranslationBaseURL = defaults.Upstream.TranslationBaseURL
	}
	if cfg.Upstream.TimeoutSeconds == 0 {
		cfg.Upstream.TimeoutSeconds = defaults.Upstream.TimeoutSeconds
	}
}

func ValidateConfig(cfg *models.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

func SetConfig(ctx context.Context, path string, cfg *models.Config) {
	logger := log.FromContext(ctx)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		logger.WithError(err).Errorf("Error opening %s", path)
		return
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(cfg)
	if err != nil {
		logger.WithError(err).Errorf("Error encoding %s", path)
	}
}

// LoadConfig reads the config file at path. A missing file is not an error
// and yields a nil config.
func LoadConfig(path string) (*models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var config models.Config
	err = json.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &config, nil
}

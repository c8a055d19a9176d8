package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reelfocus/internal/config"
	"reelfocus/internal/logging"
	"reelfocus/internal/platform"
	"reelfocus/internal/storage"
	"reelfocus/internal/storage/bolt"
	"reelfocus/internal/storage/file"
)

const boltFileName = "reelfocus.db"

// environment is the wiring shared by every command.
type environment struct {
	config          *config.Config
	logger          zerolog.Logger
	platform        platform.Service
	preferences     storage.Preferences
	preferencesPath string
	kv              storage.KV
	days            *storage.Days
}

func loadEnvironment() (*environment, error) {
	service := platform.NewService()

	path := configPath
	if path == "" {
		configDir, err := service.GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config dir: %w", err)
		}
		path = config.DefaultPath(configDir)
	}

	cfg, err := config.Load(path, config.WithLogLevel(logLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stderr).
		With().Str("run_id", uuid.NewString()).Logger()

	preferencesPath := storage.PreferencesPath(cfg.Dir)
	preferences, err := storage.LoadPreferences(preferencesPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", preferencesPath).Msg("Failed to load preferences, using defaults")
	}

	kv, err := openStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	logger.Debug().
		Str("config", path).
		Str("storage_type", cfg.Storage.Type).
		Str("storage_path", cfg.Storage.Path).
		Msg("Environment ready")

	return &environment{
		config:          cfg,
		logger:          logger,
		platform:        service,
		preferences:     preferences,
		preferencesPath: preferencesPath,
		kv:              kv,
		days:            storage.NewDays(kv, preferences.Defaults, logger),
	}, nil
}

func (env *environment) Close() {
	if err := env.kv.Close(); err != nil {
		env.logger.Error().Err(err).Msg("Failed to close storage")
	}
}

func openStorage(cfg config.StorageConfig) (storage.KV, error) {
	if err := storage.EnsureDir(cfg.Path); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case "bolt":
		return bolt.Open(filepath.Join(cfg.Path, boltFileName))
	case "file":
		return file.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage type: %q", cfg.Type)
	}
}

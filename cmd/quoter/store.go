package main

import (
	"errors"

	"github.com/quoter-cli/quoter/internal/config"
	"github.com/quoter-cli/quoter/internal/quote"
	"github.com/quoter-cli/quoter/internal/storage"
	"go.uber.org/zap"
)

// mustLoadConfig loads global config plus environment overrides, or exits.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if storeFile != "" {
		cfg.StorePath = storeFile
	}
	return cfg
}

// mustOpenStore opens the quote store, or exits. A corrupt store is a data
// error and the file is left untouched.
func mustOpenStore(cfg *config.Config) *storage.Store {
	store, err := storage.Open(cfg.StorePath)
	if err != nil {
		code := ExitError
		if errors.Is(err, storage.ErrCorrupt) {
			code = ExitDataError
		}
		exitWithError(code, "opening quote store: %v", err)
	}
	logger.Debug("opened quote store",
		zap.String("path", cfg.StorePath),
		zap.Int("quotes", store.Len()))
	return store
}

// exitCodeFor maps domain errors to exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, quote.ErrUsage):
		return ExitError
	case errors.Is(err, quote.ErrValidation), errors.Is(err, storage.ErrCorrupt):
		return ExitDataError
	default:
		return ExitError
	}
}

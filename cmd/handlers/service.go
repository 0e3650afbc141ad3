package handlers

import (
	"context"
	"fmt"
	"time"

	"reelcraft/internal/aiclient"
	"reelcraft/internal/config"
	"reelcraft/internal/generate"
	"reelcraft/internal/logger"
	"reelcraft/internal/retry"
	"reelcraft/internal/store"
)

// generationOptions maps config knobs onto the retry and polling policy.
func generationOptions(cfg *config.Config) generate.Options {
	opts := generate.DefaultOptions(aiclient.IsRateLimited)

	if cfg.Generation.MaxAttempts > 0 {
		opts.Retry.MaxAttempts = cfg.Generation.MaxAttempts
	}
	opts.Retry.BaseDelay = config.ParseDuration(cfg.Generation.BaseDelay, retry.DefaultBaseDelay)
	opts.Retry.MaxJitter = config.ParseDuration(cfg.Generation.MaxJitter, retry.DefaultMaxJitter)

	opts.VideoSubmit = opts.Retry
	if cfg.Generation.VideoSubmitAttempts > 0 {
		opts.VideoSubmit.MaxAttempts = cfg.Generation.VideoSubmitAttempts
	} else {
		opts.VideoSubmit.MaxAttempts = generate.DefaultVideoSubmitAttempts
	}
	opts.VideoPoll = opts.Retry

	opts.PollInterval = config.ParseDuration(cfg.Generation.PollInterval, generate.DefaultPollInterval)
	opts.PollDeadline = config.ParseDuration(cfg.Generation.PollDeadline, generate.DefaultPollDeadline)
	return opts
}

// buildService wires the Gemini client into a generation service. Without
// a usable API key the service runs offline.
func buildService(ctx context.Context) (*generate.Service, error) {
	cfg := config.Get()
	opts := generationOptions(cfg)

	if !config.HasGeminiAPIKey() {
		logger.Warn("No Gemini API key configured, running in offline mode")
		return generate.NewService(nil, opts), nil
	}

	client, err := aiclient.New(ctx, aiclient.Config{
		APIKey:     cfg.AI.Gemini.APIKey,
		Model:      cfg.AI.Gemini.Model,
		VideoModel: cfg.AI.Gemini.VideoModel,
		ImageModel: cfg.AI.Gemini.ImageModel,
		EditModel:  cfg.AI.Gemini.EditModel,
		Timeout:    config.ParseDuration(cfg.AI.Gemini.Timeout, 60*time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return generate.NewService(client, opts), nil
}

// openStore opens the local database in the configured data directory.
func openStore() (*store.Store, error) {
	return store.NewStore(config.GetDataDir())
}

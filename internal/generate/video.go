package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reelcraft/internal/core"
	"reelcraft/internal/prompt"
	"reelcraft/internal/retry"
)

// Video submits a video generation job and polls it to completion,
// returning the finished operation with its download URI. Submission and
// each poll are retried independently; the overall wait is bounded by the
// poll deadline.
func (s *Service) Video(ctx context.Context, req core.VideoRequest) (core.VideoOperation, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return core.VideoOperation{}, &ValidationError{Field: "prompt", Reason: "must not be empty"}
	}
	if s.Offline() {
		return core.VideoOperation{}, &ConfigError{Feature: "video generation"}
	}

	aspectRatio := core.AspectRatioValue(req.AspectRatio)
	promptText := prompt.VideoPrompt(req)

	op, err := retry.Do(ctx, s.opts.VideoSubmit, func(ctx context.Context) (core.VideoOperation, error) {
		return s.ai.StartVideo(ctx, promptText, req.Image, aspectRatio)
	})
	if err != nil {
		return core.VideoOperation{}, fmt.Errorf("failed to start video generation: %w", err)
	}
	s.log.Info("video generation started", "operation", op.Name)

	deadline := time.Now().Add(s.opts.PollDeadline)
	for !op.Done {
		if time.Now().After(deadline) {
			return core.VideoOperation{}, fmt.Errorf("video generation did not finish within %s", s.opts.PollDeadline)
		}
		if err := sleepPoll(ctx, s.opts.VideoPoll, s.opts.PollInterval); err != nil {
			return core.VideoOperation{}, err
		}

		op, err = retry.Do(ctx, s.opts.VideoPoll, func(ctx context.Context) (core.VideoOperation, error) {
			return s.ai.PollVideo(ctx, op)
		})
		if err != nil {
			return core.VideoOperation{}, fmt.Errorf("failed to poll video generation: %w", err)
		}
	}

	if op.VideoURI == "" {
		return core.VideoOperation{}, &MalformedError{Err: fmt.Errorf("video generation finished without a download link")}
	}
	s.log.Info("video generation finished", "operation", op.Name)
	return op, nil
}

// DownloadVideo fetches the finished video bytes.
func (s *Service) DownloadVideo(ctx context.Context, uri string) ([]byte, error) {
	if strings.TrimSpace(uri) == "" {
		return nil, &ValidationError{Field: "uri", Reason: "must not be empty"}
	}
	if s.Offline() {
		return nil, &ConfigError{Feature: "video download"}
	}
	return s.ai.DownloadVideo(ctx, uri)
}

func sleepPoll(ctx context.Context, opts retry.Options, d time.Duration) error {
	if opts.Sleep != nil {
		return opts.Sleep(ctx, d)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

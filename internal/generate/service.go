// Package generate implements the content generation features on top of a
// pluggable AI transport. It owns request validation, retry policy, response
// decoding, and the offline placeholder mode used when no API key is
// configured.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"reelcraft/internal/core"
	"reelcraft/internal/logger"
	"reelcraft/internal/prompt"
	"reelcraft/internal/retry"
)

// AI is the transport surface the service generates through. A nil AI puts
// the service in offline mode.
type AI interface {
	GenerateJSON(ctx context.Context, promptText string, schema *genai.Schema) (string, error)
	GenerateGrounded(ctx context.Context, promptText string) (string, error)
	GenerateImage(ctx context.Context, promptText, aspectRatio string) ([]byte, error)
	EditImage(ctx context.Context, promptText string, image core.InlineImage) (*core.EditedImage, error)
	StartVideo(ctx context.Context, promptText string, image *core.InlineImage, aspectRatio string) (core.VideoOperation, error)
	PollVideo(ctx context.Context, op core.VideoOperation) (core.VideoOperation, error)
	DownloadVideo(ctx context.Context, uri string) ([]byte, error)
}

const (
	// DefaultVideoSubmitAttempts caps retries when starting a video job.
	DefaultVideoSubmitAttempts = 3
	// DefaultPollInterval spaces consecutive video status checks.
	DefaultPollInterval = 10 * time.Second
	// DefaultPollDeadline bounds the total wait for a video to finish.
	DefaultPollDeadline = 10 * time.Minute
)

// Options tune retry and polling behavior. DefaultOptions gives the
// standard policy; zero-value fields in a hand-built Options fall back to
// package defaults.
type Options struct {
	Retry        retry.Options
	VideoSubmit  retry.Options
	VideoPoll    retry.Options
	PollInterval time.Duration
	PollDeadline time.Duration
}

// DefaultOptions builds the standard policy around the given transient
// error classifier.
func DefaultOptions(retryable func(error) bool) Options {
	submit := retry.DefaultOptions(retryable)
	submit.MaxAttempts = DefaultVideoSubmitAttempts
	return Options{
		Retry:        retry.DefaultOptions(retryable),
		VideoSubmit:  submit,
		VideoPoll:    retry.DefaultOptions(retryable),
		PollInterval: DefaultPollInterval,
		PollDeadline: DefaultPollDeadline,
	}
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.PollDeadline <= 0 {
		o.PollDeadline = DefaultPollDeadline
	}
	if o.VideoSubmit.MaxAttempts <= 0 {
		o.VideoSubmit = o.Retry
		o.VideoSubmit.MaxAttempts = DefaultVideoSubmitAttempts
	}
	if o.VideoPoll.MaxAttempts <= 0 {
		o.VideoPoll = o.Retry
	}
	return o
}

// Service generates content. Construct with NewService.
type Service struct {
	ai   AI
	opts Options
	log  *slog.Logger
}

// NewService creates a generation service. Pass a nil AI to run offline:
// text features produce deterministic placeholders and media features
// return a ConfigError.
func NewService(ai AI, opts Options) *Service {
	return &Service{
		ai:   ai,
		opts: opts.withDefaults(),
		log:  logger.Get(),
	}
}

// Offline reports whether the service has no AI transport.
func (s *Service) Offline() bool {
	return s.ai == nil
}

func (s *Service) generateJSON(ctx context.Context, promptText string, schema *genai.Schema, v any) error {
	raw, err := retry.Do(ctx, s.opts.Retry, func(ctx context.Context) (string, error) {
		return s.ai.GenerateJSON(ctx, promptText, schema)
	})
	if err != nil {
		return err
	}
	return decodeInto(raw, v)
}

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}

// Script generates the main product script with three variations. Brand
// profile, liked examples, and personal insights are optional and shape
// the prompt when present.
func (s *Service) Script(ctx context.Context, req core.ScriptRequest, profile *core.BrandProfile, liked []core.Script, insights *core.PersonalInsights) (*core.ScriptOutput, error) {
	if err := requireField("productName", req.ProductName); err != nil {
		return nil, err
	}
	if err := requireField("productAdvantages", req.ProductAdvantages); err != nil {
		return nil, err
	}
	if s.Offline() {
		return offlineScript(req), nil
	}

	promptText := prompt.CompileScript(req, profile, liked, insights)
	var out core.ScriptOutput
	if err := s.generateJSON(ctx, promptText, prompt.ScriptSchema(), &out); err != nil {
		return nil, err
	}
	if len(out.Variations) == 0 {
		return nil, &MalformedError{Err: fmt.Errorf("response contains no script variations")}
	}
	s.log.Debug("generated script", "product", req.ProductName, "variations", len(out.Variations))
	return &out, nil
}

// LinkScript generates a single script for a product identified only by
// its marketplace link.
func (s *Service) LinkScript(ctx context.Context, req core.LinkScriptRequest, profile *core.BrandProfile) (*core.LinkScript, error) {
	if err := requireField("productLink", req.ProductLink); err != nil {
		return nil, err
	}
	if s.Offline() {
		return offlineLinkScript(req), nil
	}

	var out core.LinkScript
	if err := s.generateJSON(ctx, prompt.CompileLinkScript(req, profile), prompt.LinkScriptSchema(), &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Hook) == "" || strings.TrimSpace(out.Body) == "" {
		return nil, &MalformedError{Err: fmt.Errorf("response is missing hook or body")}
	}
	return &out, nil
}

// Hooks generates ten opening hooks for a product.
func (s *Service) Hooks(ctx context.Context, req core.HookRequest) (*core.HookSet, error) {
	if err := requireField("product", req.Product); err != nil {
		return nil, err
	}
	if s.Offline() {
		return offlineHooks(req), nil
	}

	var out core.HookSet
	if err := s.generateJSON(ctx, prompt.CompileHooks(req), prompt.HookSetSchema(), &out); err != nil {
		return nil, err
	}
	if len(out.Hooks) == 0 {
		return nil, &MalformedError{Err: fmt.Errorf("response contains no hooks")}
	}
	return &out, nil
}

// Angles generates five distinct review angles for a product.
func (s *Service) Angles(ctx context.Context, req core.AngleRequest) (*core.AngleSet, error) {
	if err := requireField("product", req.Product); err != nil {
		return nil, err
	}
	if s.Offline() {
		return offlineAngles(req), nil
	}

	var out core.AngleSet
	if err := s.generateJSON(ctx, prompt.CompileAngles(req), prompt.AngleSetSchema(), &out); err != nil {
		return nil, err
	}
	if len(out.Angles) == 0 {
		return nil, &MalformedError{Err: fmt.Errorf("response contains no angles")}
	}
	return &out, nil
}

// Hashtags generates categorized hashtag recommendations.
func (s *Service) Hashtags(ctx context.Context, req core.HashtagRequest) (*core.HashtagSet, error) {
	if err := requireField("productTopic", req.ProductTopic); err != nil {
		return nil, err
	}
	if s.Offline() {
		return offlineHashtags(req), nil
	}

	var out core.HashtagSet
	if err := s.generateJSON(ctx, prompt.CompileHashtags(req), prompt.HashtagSetSchema(), &out); err != nil {
		return nil, err
	}
	if len(out.Categories) == 0 {
		return nil, &MalformedError{Err: fmt.Errorf("response contains no hashtag categories")}
	}
	return &out, nil
}

// Plan generates a day-by-day content plan for a campaign.
func (s *Service) Plan(ctx context.Context, req core.PlanRequest) (*core.ContentPlan, error) {
	if err := requireField("productName", req.ProductName); err != nil {
		return nil, err
	}
	if req.CampaignDuration <= 0 {
		return nil, &ValidationError{Field: "campaignDuration", Reason: "must be a positive number of days"}
	}
	if s.Offline() {
		return offlinePlan(req), nil
	}

	var out core.ContentPlan
	if err := s.generateJSON(ctx, prompt.CompilePlan(req), prompt.ContentPlanSchema(), &out); err != nil {
		return nil, err
	}
	if len(out.DailyPlan) == 0 {
		return nil, &MalformedError{Err: fmt.Errorf("response contains no daily plan")}
	}
	return &out, nil
}

// Research runs search-grounded market research for a niche. Grounded
// calls cannot use a response schema, so the JSON object is extracted from
// the surrounding prose before decoding.
func (s *Service) Research(ctx context.Context, req core.ResearchRequest) (*core.MarketResearch, error) {
	if err := requireField("niche", req.Niche); err != nil {
		return nil, err
	}
	if s.Offline() {
		return offlineResearch(req), nil
	}

	raw, err := retry.Do(ctx, s.opts.Retry, func(ctx context.Context) (string, error) {
		return s.ai.GenerateGrounded(ctx, prompt.CompileResearch(req))
	})
	if err != nil {
		return nil, err
	}

	object, ok := extractObject(stripFences(raw))
	if !ok {
		return nil, &MalformedError{Raw: raw, Err: fmt.Errorf("no JSON object found in grounded response")}
	}
	var out core.MarketResearch
	if err := decodeInto(object, &out); err != nil {
		return nil, err
	}
	if len(out.TrendingProducts) == 0 {
		return nil, &MalformedError{Raw: raw, Err: fmt.Errorf("response contains no trending products")}
	}
	return &out, nil
}

// Storyboard generates a minimalist sketch for one scene description.
// Offline mode returns a tiny placeholder image so storyboards still
// render.
func (s *Service) Storyboard(ctx context.Context, description string) (*core.InlineImage, error) {
	if err := requireField("description", description); err != nil {
		return nil, err
	}
	if s.Offline() {
		return offlineStoryboard(), nil
	}

	data, err := retry.Do(ctx, s.opts.Retry, func(ctx context.Context) ([]byte, error) {
		return s.ai.GenerateImage(ctx, prompt.StoryboardPrompt(description), "16:9")
	})
	if err != nil {
		return nil, err
	}
	return &core.InlineImage{MIMEType: "image/png", Data: data}, nil
}

// EditImage applies a conversational edit to an uploaded image. This
// feature has no offline fallback.
func (s *Service) EditImage(ctx context.Context, req core.ImageEditRequest) (*core.EditedImage, error) {
	if err := requireField("prompt", req.Prompt); err != nil {
		return nil, err
	}
	if len(req.Image.Data) == 0 {
		return nil, &ValidationError{Field: "image", Reason: "must not be empty"}
	}
	if s.Offline() {
		return nil, &ConfigError{Feature: "image editing"}
	}

	return retry.Do(ctx, s.opts.Retry, func(ctx context.Context) (*core.EditedImage, error) {
		return s.ai.EditImage(ctx, req.Prompt, req.Image)
	})
}

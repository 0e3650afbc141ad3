// Package aiclient wraps the Gemini API behind the generation operations
// the rest of the application needs: schema-constrained JSON generation,
// search-grounded generation, video operations, and image generation and
// editing. Error classification for rate limiting happens here, at the
// transport boundary, so callers never inspect provider error payloads.
package aiclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"

	"reelcraft/internal/core"
)

const (
	// DefaultModel handles all text generation.
	DefaultModel = "gemini-2.5-flash"
	// DefaultVideoModel handles long-running video generation.
	DefaultVideoModel = "veo-2.0-generate-001"
	// DefaultImageModel handles storyboard sketch generation.
	DefaultImageModel = "imagen-4.0-generate-001"
	// DefaultEditModel handles conversational image editing.
	DefaultEditModel = "gemini-2.5-flash-image-preview"
)

// Config parameterizes a Client. Zero-value model fields fall back to the
// package defaults.
type Config struct {
	APIKey     string
	Model      string
	VideoModel string
	ImageModel string
	EditModel  string
	Timeout    time.Duration
}

// Client is a thin Gemini transport. It performs single calls only; retry
// policy belongs to the caller.
type Client struct {
	apiKey     string
	model      string
	videoModel string
	imageModel string
	editModel  string
	gClient    *genai.Client
	httpClient *http.Client
}

// New creates a Gemini-backed client. The API key is required here; the
// caller decides what "no key" means (offline mode) before constructing.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		apiKey:     cfg.APIKey,
		model:      defaultString(cfg.Model, DefaultModel),
		videoModel: defaultString(cfg.VideoModel, DefaultVideoModel),
		imageModel: defaultString(cfg.ImageModel, DefaultImageModel),
		editModel:  defaultString(cfg.EditModel, DefaultEditModel),
		gClient:    gClient,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// IsRateLimited reports whether err is the provider's rate-limit /
// resource-exhausted condition. This is the only retryable error class.
func IsRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	return false
}

func textContents(prompt string) []*genai.Content {
	return []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}
}

// GenerateJSON runs one generation call constrained to the given response
// schema and returns the raw response text.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.model, textContents(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// GenerateGrounded runs one generation call with the Google Search tool
// enabled. Grounded calls cannot also declare a response schema, so the
// returned text is free-form and the caller extracts structure from it.
func (c *Client) GenerateGrounded(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.model, textContents(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate grounded content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// GenerateImage produces one PNG image for the given prompt.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error) {
	config := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/png",
		AspectRatio:    aspectRatio,
	}

	resp, err := c.gClient.Models.GenerateImages(ctx, c.imageModel, prompt, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("image generation returned no images")
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}

// EditImage sends an image plus an edit instruction and collects the mixed
// text/image response parts.
func (c *Client) EditImage(ctx context.Context, prompt string, image core.InlineImage) (*core.EditedImage, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: image.MIMEType, Data: image.Data}},
			{Text: prompt},
		},
		Role: "user",
	}}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.editModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to edit image: %w", err)
	}

	result := &core.EditedImage{}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			switch {
			case part.Text != "":
				result.Text = part.Text
			case part.InlineData != nil:
				result.Image = &core.InlineImage{
					MIMEType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}
			}
		}
	}
	if result.Image == nil {
		return nil, fmt.Errorf("model returned no image; try a different prompt")
	}
	return result, nil
}

// StartVideo submits a video generation job and returns its operation
// handle. The optional image is used as a reference frame.
func (c *Client) StartVideo(ctx context.Context, prompt string, image *core.InlineImage, aspectRatio string) (core.VideoOperation, error) {
	var refImage *genai.Image
	if image != nil {
		refImage = &genai.Image{ImageBytes: image.Data, MIMEType: image.MIMEType}
	}
	config := &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		AspectRatio:    aspectRatio,
	}

	op, err := c.gClient.Models.GenerateVideos(ctx, c.videoModel, prompt, refImage, config)
	if err != nil {
		return core.VideoOperation{}, fmt.Errorf("failed to start video generation: %w", err)
	}
	return videoOperation(op), nil
}

// PollVideo fetches the current state of a video operation.
func (c *Client) PollVideo(ctx context.Context, op core.VideoOperation) (core.VideoOperation, error) {
	handle := &genai.GenerateVideosOperation{Name: op.Name}
	updated, err := c.gClient.Operations.GetVideosOperation(ctx, handle, nil)
	if err != nil {
		return core.VideoOperation{}, fmt.Errorf("failed to poll video operation: %w", err)
	}
	return videoOperation(updated), nil
}

func videoOperation(op *genai.GenerateVideosOperation) core.VideoOperation {
	result := core.VideoOperation{Name: op.Name, Done: op.Done}
	if op.Response != nil && len(op.Response.GeneratedVideos) > 0 {
		if video := op.Response.GeneratedVideos[0].Video; video != nil {
			result.VideoURI = video.URI
		}
	}
	return result
}

// DownloadVideo fetches the finished video bytes from its download URI.
// The API key is appended as a query parameter, as the endpoint requires.
func (c *Client) DownloadVideo(ctx context.Context, uri string) ([]byte, error) {
	separator := "?"
	if strings.Contains(uri, "?") {
		separator = "&"
	}
	downloadURL := uri + separator + "key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download video file: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

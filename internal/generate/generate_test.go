package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"

	"reelcraft/internal/core"
	"reelcraft/internal/retry"
)

type busyError struct{}

func (e *busyError) Error() string { return "resource exhausted" }

func isBusy(err error) bool {
	var be *busyError
	return errors.As(err, &be)
}

// mockAI is a scripted transport. Each method returns its configured
// response and counts calls; jsonErrs entries are consumed one per call
// before jsonResponse is returned.
type mockAI struct {
	jsonResponse  string
	jsonErrs      []error
	jsonCalls     int
	groundedText  string
	groundedCalls int
	startOp       core.VideoOperation
	pollOps       []core.VideoOperation
	pollCalls     int
	imageData     []byte
	editResult    *core.EditedImage
	downloadData  []byte
}

func (m *mockAI) GenerateJSON(ctx context.Context, promptText string, schema *genai.Schema) (string, error) {
	m.jsonCalls++
	if len(m.jsonErrs) > 0 {
		err := m.jsonErrs[0]
		m.jsonErrs = m.jsonErrs[1:]
		if err != nil {
			return "", err
		}
	}
	return m.jsonResponse, nil
}

func (m *mockAI) GenerateGrounded(ctx context.Context, promptText string) (string, error) {
	m.groundedCalls++
	return m.groundedText, nil
}

func (m *mockAI) GenerateImage(ctx context.Context, promptText, aspectRatio string) ([]byte, error) {
	return m.imageData, nil
}

func (m *mockAI) EditImage(ctx context.Context, promptText string, image core.InlineImage) (*core.EditedImage, error) {
	return m.editResult, nil
}

func (m *mockAI) StartVideo(ctx context.Context, promptText string, image *core.InlineImage, aspectRatio string) (core.VideoOperation, error) {
	return m.startOp, nil
}

func (m *mockAI) PollVideo(ctx context.Context, op core.VideoOperation) (core.VideoOperation, error) {
	if m.pollCalls >= len(m.pollOps) {
		return core.VideoOperation{}, fmt.Errorf("unexpected poll")
	}
	result := m.pollOps[m.pollCalls]
	m.pollCalls++
	return result, nil
}

func (m *mockAI) DownloadVideo(ctx context.Context, uri string) ([]byte, error) {
	return m.downloadData, nil
}

func fastOptions(sleeps *int) Options {
	sleep := func(ctx context.Context, d time.Duration) error {
		if sleeps != nil {
			*sleeps++
		}
		return nil
	}
	opts := DefaultOptions(isBusy)
	opts.Retry.Sleep = sleep
	opts.VideoSubmit.Sleep = sleep
	opts.VideoPoll.Sleep = sleep
	opts.PollInterval = time.Millisecond
	return opts
}

func validScriptJSON() string {
	variation := `{"title": "V%d", "parts": [{"partName": "Hook", "content": "Stop scrolling."}]}`
	return fmt.Sprintf(`{
		"killerTitle": "The honest serum review",
		"variations": [%s, %s, %s],
		"explanation": "Three angles on the same product.",
		"caption": "You need this.",
		"hashtags": "#serum #skincare"
	}`, fmt.Sprintf(variation, 1), fmt.Sprintf(variation, 2), fmt.Sprintf(variation, 3))
}

func scriptRequest() core.ScriptRequest {
	return core.ScriptRequest{
		ProductName:        "Serum X",
		ProductAdvantages:  "brightens skin",
		CopywritingFormula: "AIDA",
		VideoDuration:      "30-60 seconds",
	}
}

func TestScriptDecodesVariations(t *testing.T) {
	mock := &mockAI{jsonResponse: validScriptJSON()}
	svc := NewService(mock, fastOptions(nil))

	out, err := svc.Script(context.Background(), scriptRequest(), nil, nil, nil)
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}
	if len(out.Variations) != 3 {
		t.Errorf("expected 3 variations, got %d", len(out.Variations))
	}
	if out.KillerTitle != "The honest serum review" {
		t.Errorf("unexpected killer title: %q", out.KillerTitle)
	}
	if mock.jsonCalls != 1 {
		t.Errorf("expected 1 call, got %d", mock.jsonCalls)
	}
}

func TestScriptStripsCodeFences(t *testing.T) {
	mock := &mockAI{jsonResponse: "```json\n" + validScriptJSON() + "\n```"}
	svc := NewService(mock, fastOptions(nil))

	out, err := svc.Script(context.Background(), scriptRequest(), nil, nil, nil)
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}
	if len(out.Variations) != 3 {
		t.Errorf("expected 3 variations, got %d", len(out.Variations))
	}
}

func TestScriptMalformedResponse(t *testing.T) {
	mock := &mockAI{jsonResponse: "not json at all"}
	svc := NewService(mock, fastOptions(nil))

	_, err := svc.Script(context.Background(), scriptRequest(), nil, nil, nil)
	if !IsMalformed(err) {
		t.Errorf("expected malformed error, got %v", err)
	}
}

func TestScriptEmptyVariationsMalformed(t *testing.T) {
	mock := &mockAI{jsonResponse: `{"killerTitle": "x", "variations": []}`}
	svc := NewService(mock, fastOptions(nil))

	_, err := svc.Script(context.Background(), scriptRequest(), nil, nil, nil)
	if !IsMalformed(err) {
		t.Errorf("expected malformed error, got %v", err)
	}
}

func TestScriptValidationRejectsBeforeCalling(t *testing.T) {
	mock := &mockAI{jsonResponse: validScriptJSON()}
	svc := NewService(mock, fastOptions(nil))

	req := scriptRequest()
	req.ProductName = "   "
	_, err := svc.Script(context.Background(), req, nil, nil, nil)
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if mock.jsonCalls != 0 {
		t.Errorf("expected no calls, got %d", mock.jsonCalls)
	}
}

func TestScriptRetriesRateLimitThenSucceeds(t *testing.T) {
	mock := &mockAI{
		jsonResponse: validScriptJSON(),
		jsonErrs:     []error{&busyError{}, &busyError{}},
	}
	var sleeps int
	svc := NewService(mock, fastOptions(&sleeps))

	_, err := svc.Script(context.Background(), scriptRequest(), nil, nil, nil)
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}
	if mock.jsonCalls != 3 {
		t.Errorf("expected 3 calls, got %d", mock.jsonCalls)
	}
	if sleeps != 2 {
		t.Errorf("expected 2 backoff sleeps, got %d", sleeps)
	}
}

func TestScriptExhaustsRetries(t *testing.T) {
	mock := &mockAI{
		jsonResponse: validScriptJSON(),
		jsonErrs: []error{
			&busyError{}, &busyError{}, &busyError{}, &busyError{}, &busyError{},
		},
	}
	svc := NewService(mock, fastOptions(nil))

	_, err := svc.Script(context.Background(), scriptRequest(), nil, nil, nil)
	if !retry.IsExhausted(err) {
		t.Errorf("expected exhausted error, got %v", err)
	}
	if mock.jsonCalls != retry.DefaultMaxAttempts {
		t.Errorf("expected %d calls, got %d", retry.DefaultMaxAttempts, mock.jsonCalls)
	}
}

func TestScriptOfflinePlaceholder(t *testing.T) {
	svc := NewService(nil, fastOptions(nil))

	out, err := svc.Script(context.Background(), scriptRequest(), nil, nil, nil)
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}
	if len(out.Variations) != 3 {
		t.Errorf("expected 3 placeholder variations, got %d", len(out.Variations))
	}
	if !strings.Contains(out.KillerTitle, OfflineMarker) {
		t.Errorf("placeholder title %q missing offline marker", out.KillerTitle)
	}
	for _, v := range out.Variations {
		if len(v.Parts) == 0 {
			t.Fatalf("placeholder variation %q has no parts", v.Title)
		}
	}
}

func TestOfflinePlaceholdersAreDeterministic(t *testing.T) {
	svc := NewService(nil, fastOptions(nil))

	first, err := svc.Hooks(context.Background(), core.HookRequest{Product: "Serum X"})
	if err != nil {
		t.Fatalf("Hooks() error = %v", err)
	}
	second, err := svc.Hooks(context.Background(), core.HookRequest{Product: "Serum X"})
	if err != nil {
		t.Fatalf("Hooks() error = %v", err)
	}
	if len(first.Hooks) != len(second.Hooks) {
		t.Fatalf("placeholder hook counts differ: %d vs %d", len(first.Hooks), len(second.Hooks))
	}
	for i := range first.Hooks {
		if first.Hooks[i] != second.Hooks[i] {
			t.Errorf("hook %d differs between runs: %q vs %q", i, first.Hooks[i], second.Hooks[i])
		}
	}
}

func TestResearchExtractsObjectFromProse(t *testing.T) {
	mock := &mockAI{groundedText: `Here is what I found online.

{"trendingProducts": [{"name": "Mini blender", "reason": "Viral on TikTok"}],
 "audiencePainPoints": ["No time to cook"],
 "popularContentFormats": ["POV demos"],
 "killerHookIdeas": ["I was today years old..."]}

Sources: example.com`}
	svc := NewService(mock, fastOptions(nil))

	out, err := svc.Research(context.Background(), core.ResearchRequest{Niche: "kitchen gadgets"})
	if err != nil {
		t.Fatalf("Research() error = %v", err)
	}
	if len(out.TrendingProducts) != 1 || out.TrendingProducts[0].Name != "Mini blender" {
		t.Errorf("unexpected trending products: %+v", out.TrendingProducts)
	}
	if mock.groundedCalls != 1 {
		t.Errorf("expected 1 grounded call, got %d", mock.groundedCalls)
	}
}

func TestResearchNoObjectMalformed(t *testing.T) {
	mock := &mockAI{groundedText: "I could not find anything useful."}
	svc := NewService(mock, fastOptions(nil))

	_, err := svc.Research(context.Background(), core.ResearchRequest{Niche: "kitchen gadgets"})
	if !IsMalformed(err) {
		t.Errorf("expected malformed error, got %v", err)
	}
}

func TestVideoOfflineConfigError(t *testing.T) {
	svc := NewService(nil, fastOptions(nil))

	_, err := svc.Video(context.Background(), core.VideoRequest{Prompt: "unboxing"})
	if !IsConfig(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestVideoPollsUntilDone(t *testing.T) {
	mock := &mockAI{
		startOp: core.VideoOperation{Name: "operations/abc"},
		pollOps: []core.VideoOperation{
			{Name: "operations/abc"},
			{Name: "operations/abc", Done: true, VideoURI: "https://example.com/video.mp4?alt=media"},
		},
	}
	svc := NewService(mock, fastOptions(nil))

	op, err := svc.Video(context.Background(), core.VideoRequest{Prompt: "unboxing", AspectRatio: "9:16 (Vertical)"})
	if err != nil {
		t.Fatalf("Video() error = %v", err)
	}
	if !op.Done || op.VideoURI == "" {
		t.Errorf("expected finished operation with URI, got %+v", op)
	}
	if mock.pollCalls != 2 {
		t.Errorf("expected 2 polls, got %d", mock.pollCalls)
	}
}

func TestVideoDoneWithoutURIMalformed(t *testing.T) {
	mock := &mockAI{
		startOp: core.VideoOperation{Name: "operations/abc", Done: true},
	}
	svc := NewService(mock, fastOptions(nil))

	_, err := svc.Video(context.Background(), core.VideoRequest{Prompt: "unboxing"})
	if !IsMalformed(err) {
		t.Errorf("expected malformed error, got %v", err)
	}
}

func TestEditImageOfflineConfigError(t *testing.T) {
	svc := NewService(nil, fastOptions(nil))

	_, err := svc.EditImage(context.Background(), core.ImageEditRequest{
		Prompt: "make it brighter",
		Image:  core.InlineImage{MIMEType: "image/png", Data: []byte{1}},
	})
	if !IsConfig(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestStoryboardOfflinePlaceholder(t *testing.T) {
	svc := NewService(nil, fastOptions(nil))

	img, err := svc.Storyboard(context.Background(), "product close-up on a desk")
	if err != nil {
		t.Fatalf("Storyboard() error = %v", err)
	}
	if img.MIMEType != "image/png" || len(img.Data) == 0 {
		t.Errorf("expected placeholder PNG, got %+v", img)
	}
}

func TestPlanOfflineMatchesDuration(t *testing.T) {
	svc := NewService(nil, fastOptions(nil))

	plan, err := svc.Plan(context.Background(), core.PlanRequest{ProductName: "Serum X", CampaignDuration: 7})
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(plan.DailyPlan) != 7 {
		t.Errorf("expected 7 plan days, got %d", len(plan.DailyPlan))
	}
	if plan.DailyPlan[0].Day != 1 {
		t.Errorf("expected day numbering to start at 1, got %d", plan.DailyPlan[0].Day)
	}
}

package core

import (
	"strings"
	"time"
)

// PersonaType distinguishes whether a brand profile speaks as the brand
// itself or as an individual creator reviewing products.
type PersonaType string

const (
	PersonaCreator PersonaType = "creator" // first-person affiliate/creator voice
	PersonaBrand   PersonaType = "brand"   // official brand voice
)

// BrandProfile is a reusable voice-and-style configuration applied to
// generated scripts.
type BrandProfile struct {
	PersonaType      PersonaType `json:"personaType"`      // "creator" or "brand"
	BrandName        string      `json:"brandName"`        // Display name of the brand or creator
	BrandDescription string      `json:"brandDescription"` // Short description of the brand/channel
	ToneOfVoice      string      `json:"toneOfVoice"`      // Mandatory voice; profile is inert without it
	ForbiddenWords   string      `json:"forbiddenWords"`   // Comma-separated words the model must never use
	MainAudience     string      `json:"mainAudience"`     // Primary audience description
}

// Active reports whether the profile should be injected into prompts.
// A profile without a tone of voice is treated as absent.
func (p *BrandProfile) Active() bool {
	return p != nil && strings.TrimSpace(p.ToneOfVoice) != ""
}

// ScriptRequest describes a full product-script generation request.
type ScriptRequest struct {
	ProductName        string   `json:"productName"`
	ProductAdvantages  string   `json:"productAdvantages"`
	USP                string   `json:"usp"`
	AudienceProblem    string   `json:"audienceProblem"`
	TargetAudience     string   `json:"targetAudience"`
	ScriptGoal         string   `json:"scriptGoal"`
	VideoDuration      string   `json:"videoDuration"`
	CopywritingFormula string   `json:"copywritingFormula"`
	HookTypes          []string `json:"hookTypes"`
	ToneAndStyle       string   `json:"toneAndStyle"`
	CTAStyle           string   `json:"ctaStyle"`
	CustomCTA          string   `json:"customCTA"`
	IncludeVisuals     bool     `json:"includeVisuals"`
}

// LinkScriptRequest asks for a single script improvised from a product link.
// The link is never fetched; the model reasons from the URL alone.
type LinkScriptRequest struct {
	ProductLink    string   `json:"productLink"`
	TargetAudience string   `json:"targetAudience"`
	ContentStyle   string   `json:"contentStyle"`
	VideoDuration  string   `json:"videoDuration"`
	HookKillers    []string `json:"hookKillers"`
	HookFormat     string   `json:"hookFormat"`
	ContentType    string   `json:"contentType"`
}

// HookRequest asks for a batch of scroll-stopping opening lines.
type HookRequest struct {
	Product  string `json:"product"`
	Benefit  string `json:"benefit"`
	Category string `json:"category"`
}

// AngleRequest asks for creative review angles for a product.
type AngleRequest struct {
	Product  string `json:"product"`
	Benefit  string `json:"benefit"`
	Audience string `json:"audience"`
}

// HashtagRequest asks for categorized hashtag suggestions.
type HashtagRequest struct {
	ProductTopic string `json:"productTopic"`
	Audience     string `json:"audience"`
}

// PlanRequest asks for a multi-day content campaign plan.
type PlanRequest struct {
	ProductName      string `json:"productName"`
	CampaignGoal     string `json:"campaignGoal"`
	CampaignDuration int    `json:"campaignDuration"`
	TargetAudience   string `json:"targetAudience"`
	USP              string `json:"usp"`
}

// ResearchRequest asks for a search-grounded market intelligence report.
type ResearchRequest struct {
	Niche string `json:"niche"`
}

// InlineImage carries raw image bytes with their MIME type.
type InlineImage struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// VideoRequest asks for a generated short-form video.
type VideoRequest struct {
	Prompt      string       `json:"prompt"`
	Image       *InlineImage `json:"image,omitempty"` // optional reference frame
	Style       string       `json:"style"`
	AspectRatio string       `json:"aspectRatio"`
}

// ImageEditRequest asks for an AI edit of an uploaded image.
type ImageEditRequest struct {
	Prompt string      `json:"prompt"`
	Image  InlineImage `json:"image"`
}

// Feedback is the user's verdict on a generated script variation.
type Feedback string

const (
	FeedbackLiked    Feedback = "liked"
	FeedbackDisliked Feedback = "disliked"
)

// PerformanceData records how a published variation performed.
type PerformanceData struct {
	Views int `json:"views"`
	Likes int `json:"likes"`
	Sales int `json:"sales"`
}

// ScriptPart is one named section of a script (e.g., "Hook", "Problem").
type ScriptPart struct {
	PartName string `json:"partName"`
	Content  string `json:"content"`
}

// Script is a single generated script variation. Feedback and performance
// are attached after the fact by the user.
type Script struct {
	Title       string           `json:"title"`
	Parts       []ScriptPart     `json:"parts"`
	Feedback    Feedback         `json:"feedback,omitempty"`
	Performance *PerformanceData `json:"performance,omitempty"`
}

// ScriptOutput is the full result of a product-script generation.
type ScriptOutput struct {
	KillerTitle string   `json:"killerTitle"`
	Variations  []Script `json:"variations"`
	Explanation string   `json:"explanation"`
	Caption     string   `json:"caption"`
	Hashtags    string   `json:"hashtags"`
}

// LinkScript is a single hook/body/CTA script improvised from a link.
type LinkScript struct {
	KillerTitle string `json:"killerTitle"`
	Hook        string `json:"hook"`
	Body        string `json:"body"`
	CTA         string `json:"cta"`
	Explanation string `json:"explanation"`
	Caption     string `json:"caption"`
	Hashtags    string `json:"hashtags"`
}

// HookSet is a batch of generated hooks plus the strategy behind them.
type HookSet struct {
	Hooks       []string `json:"hooks"`
	Explanation string   `json:"explanation"`
}

// ReviewAngle is one creative review angle with a short example script.
type ReviewAngle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ExampleHook string `json:"exampleHook"`
	ExampleBody string `json:"exampleBody"`
	ExampleCTA  string `json:"exampleCta"`
}

// AngleSet is a batch of review angles plus the strategy behind them.
type AngleSet struct {
	Angles      []ReviewAngle `json:"angles"`
	Explanation string        `json:"explanation"`
}

// HashtagCategory groups related hashtags under a strategic label.
type HashtagCategory struct {
	CategoryName string   `json:"categoryName"`
	Hashtags     []string `json:"hashtags"`
}

// HashtagSet is the categorized hashtag result.
type HashtagSet struct {
	Categories  []HashtagCategory `json:"categories"`
	Explanation string            `json:"explanation"`
}

// PlanDay is one day of a content campaign plan.
type PlanDay struct {
	Day      int    `json:"day"`
	Theme    string `json:"theme"`
	Angle    string `json:"angle"`
	HookIdea string `json:"hookIdea"`
	CTA      string `json:"cta"`
}

// ContentPlan is a multi-day campaign plan with its overall strategy.
type ContentPlan struct {
	OverallStrategy string    `json:"overallStrategy"`
	DailyPlan       []PlanDay `json:"dailyPlan"`
}

// TrendingProduct is one product surfaced by market research.
type TrendingProduct struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// MarketResearch is a search-grounded niche intelligence report.
type MarketResearch struct {
	TrendingProducts      []TrendingProduct `json:"trendingProducts"`
	AudiencePainPoints    []string          `json:"audiencePainPoints"`
	PopularContentFormats []string          `json:"popularContentFormats"`
	KillerHookIdeas       []string          `json:"killerHookIdeas"`
}

// EditedImage is the mixed text/image output of an image edit.
type EditedImage struct {
	Image *InlineImage `json:"image"`
	Text  string       `json:"text,omitempty"`
}

// VideoOperation is a handle to a long-running video generation job.
type VideoOperation struct {
	Name     string `json:"name"`               // backend operation identifier
	Done     bool   `json:"done"`               // whether the job has finished
	VideoURI string `json:"videoUri,omitempty"` // download link once done
}

// HistoryEntry is one persisted script generation with its request context.
// The request context is what later feeds personal-insights aggregation.
type HistoryEntry struct {
	ID         string        `json:"id"`
	CreatedAt  time.Time     `json:"createdAt"`
	Request    ScriptRequest `json:"request"`
	Variations []Script      `json:"variations"`
}

// PersonalInsights names the historically best-performing choices per
// dimension. It is derived on demand, never stored.
type PersonalInsights struct {
	TopFormula  string `json:"topFormula"`
	TopHookType string `json:"topHookType"`
	TopTone     string `json:"topTone"`
}

package generate

import (
	"encoding/base64"
	"fmt"

	"reelcraft/internal/core"
	"reelcraft/internal/prompt"
	"reelcraft/internal/scene"
)

// OfflineMarker prefixes every placeholder text so callers and users can
// tell offline output from real generations.
const OfflineMarker = "[offline placeholder]"

// 1x1 transparent PNG, used as the storyboard stand-in when no API key is
// configured.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func offlineScriptParts(req core.ScriptRequest, variation int) []core.ScriptPart {
	parts := core.FormulaParts[req.CopywritingFormula]
	if len(parts) == 0 {
		parts = []string{"Hook", "Body", "CTA"}
	}
	result := make([]core.ScriptPart, 0, len(parts))
	for _, name := range parts {
		content := fmt.Sprintf("%s %s content for %s, variation %d.", OfflineMarker, name, req.ProductName, variation)
		if req.IncludeVisuals {
			content += " " + scene.Cue("product close-up")
		}
		result = append(result, core.ScriptPart{PartName: name, Content: content})
	}
	return result
}

func offlineScript(req core.ScriptRequest) *core.ScriptOutput {
	variations := make([]core.Script, 0, prompt.ScriptVariationCount)
	for i := 1; i <= prompt.ScriptVariationCount; i++ {
		variations = append(variations, core.Script{
			Title: fmt.Sprintf("%s Variation %d: %s", OfflineMarker, i, req.ProductName),
			Parts: offlineScriptParts(req, i),
		})
	}
	return &core.ScriptOutput{
		KillerTitle: fmt.Sprintf("%s Killer title for %s", OfflineMarker, req.ProductName),
		Variations:  variations,
		Explanation: OfflineMarker + " Set an API key to generate real scripts.",
		Caption:     fmt.Sprintf("%s Caption for %s.", OfflineMarker, req.ProductName),
		Hashtags:    "#offline #placeholder #demo",
	}
}

func offlineLinkScript(req core.LinkScriptRequest) *core.LinkScript {
	return &core.LinkScript{
		KillerTitle: fmt.Sprintf("%s Script for %s", OfflineMarker, req.ProductLink),
		Hook:        OfflineMarker + " Wait, you have to see this.",
		Body:        fmt.Sprintf("%s Placeholder body for the product at %s. %s", OfflineMarker, req.ProductLink, scene.Cue("show the product")),
		CTA:         OfflineMarker + " Check it out in the yellow basket.",
		Explanation: OfflineMarker + " Set an API key to generate real scripts.",
		Caption:     OfflineMarker + " Placeholder caption.",
		Hashtags:    "#offline #placeholder #demo",
	}
}

func offlineHooks(req core.HookRequest) *core.HookSet {
	hooks := make([]string, prompt.HookCount)
	for i := range hooks {
		hooks[i] = fmt.Sprintf("%s Hook %d for %s.", OfflineMarker, i+1, req.Product)
	}
	return &core.HookSet{
		Hooks:       hooks,
		Explanation: OfflineMarker + " Set an API key to generate real hooks.",
	}
}

func offlineAngles(req core.AngleRequest) *core.AngleSet {
	angles := make([]core.ReviewAngle, prompt.AngleCount)
	for i := range angles {
		angles[i] = core.ReviewAngle{
			Title:       fmt.Sprintf("%s Angle %d: %s", OfflineMarker, i+1, req.Product),
			Description: OfflineMarker + " Placeholder angle description.",
			ExampleHook: OfflineMarker + " Placeholder hook.",
			ExampleBody: OfflineMarker + " Placeholder body.",
			ExampleCTA:  OfflineMarker + " Placeholder CTA.",
		}
	}
	return &core.AngleSet{Angles: angles}
}

func offlineHashtags(req core.HashtagRequest) *core.HashtagSet {
	return &core.HashtagSet{
		Categories: []core.HashtagCategory{
			{CategoryName: "Broad", Hashtags: []string{"#fyp", "#viral"}},
			{CategoryName: "Niche", Hashtags: []string{"#offline", "#" + req.ProductTopic}},
			{CategoryName: "Specific", Hashtags: []string{"#placeholder"}},
		},
	}
}

func offlinePlan(req core.PlanRequest) *core.ContentPlan {
	days := make([]core.PlanDay, req.CampaignDuration)
	for i := range days {
		days[i] = core.PlanDay{
			Day:      i + 1,
			Theme:    fmt.Sprintf("%s Day %d theme", OfflineMarker, i+1),
			Angle:    OfflineMarker + " Placeholder angle.",
			HookIdea: OfflineMarker + " Placeholder hook idea.",
			CTA:      OfflineMarker + " Placeholder CTA.",
		}
	}
	return &core.ContentPlan{
		OverallStrategy: fmt.Sprintf("%s Placeholder strategy for %s.", OfflineMarker, req.ProductName),
		DailyPlan:       days,
	}
}

func offlineResearch(req core.ResearchRequest) *core.MarketResearch {
	return &core.MarketResearch{
		TrendingProducts: []core.TrendingProduct{
			{Name: OfflineMarker + " Product A", Reason: "Placeholder trend."},
			{Name: OfflineMarker + " Product B", Reason: "Placeholder trend."},
		},
		AudiencePainPoints:    []string{OfflineMarker + " Placeholder pain point for " + req.Niche},
		PopularContentFormats: []string{OfflineMarker + " Placeholder format"},
		KillerHookIdeas:       []string{OfflineMarker + " Placeholder hook idea"},
	}
}

func offlineStoryboard() *core.InlineImage {
	data, err := base64.StdEncoding.DecodeString(placeholderPNG)
	if err != nil {
		// The constant is fixed at compile time.
		panic(err)
	}
	return &core.InlineImage{MIMEType: "image/png", Data: data}
}

package prompt

import (
	"fmt"

	"reelcraft/internal/core"
)

// HookCount is how many hooks a hook-generator request asks for.
const HookCount = 10

// AngleCount is how many review angles an angle request asks for.
const AngleCount = 5

// CompileHooks builds the instruction for a batch of scroll-stopping hooks.
func CompileHooks(req core.HookRequest) string {
	return fmt.Sprintf(`Your task is to write %d highly scroll-stopping short-video hook variations for a product.

**Product details:**
*   **Product/link:** %s
*   **Main benefit/feature:** %s
*   **Desired hook category:** %s

**Mandatory rules:**
1.  **Stay on category:** if a specific category is given (anything other than "Random"), the majority of hooks MUST fit that category. For "Random", mix psychological categories freely (FOMO, Curiosity, Pain Point, etc.).
2.  **Variety:** every hook must be unique and take a different angle.
3.  **Short and punchy:** one to two sentences each, attention-grabbing from the first word.
4.  **Improvise:** if no benefit is given, make reasonable assumptions from the product name or link.

**JSON output format:**
Respond with a single valid JSON object with two properties: "hooks" and "explanation".
- "hooks": an array of exactly %d hook strings.
- "explanation": a short strategy analysis (2-3 sentences) of why these hooks work.
Do not wrap the output in markdown backticks.`,
		HookCount,
		req.Product,
		valueOr(req.Benefit, "Not specified; improvise from the product name."),
		req.Category,
		HookCount,
	)
}

// CompileAngles builds the instruction for creative review angles.
func CompileAngles(req core.AngleRequest) string {
	return fmt.Sprintf(`Your task is to produce %d unique, creative review angles for a product. Every angle must come with a short example script (Hook, Body, CTA).

**Product details:**
*   **Product/link:** %s
*   **Main benefit/feature:** %s
*   **Target audience:** %s

**Mandatory rules:**
1.  **Unique angles:** each angle must approach the product differently. Avoid generic angles like "Honest Review" or "Unboxing"; dig deeper, e.g. "beginner's first try", "is it still worth it this year?", "versus product X".
2.  **Clear description:** briefly explain why each angle is compelling.
3.  **Concrete example:** give a short Hook, Body, and CTA matching each angle.
4.  **Improvise:** make smart assumptions if product information is limited.

**JSON output format:**
Respond with a single valid JSON object with two properties: "angles" and "explanation".
- "angles": an array of %d objects, each with "title", "description", "exampleHook", "exampleBody", and "exampleCta" (all strings).
- "explanation": a short strategy analysis (2-3 sentences) of why these angles work.
Do not wrap the output in markdown backticks.`,
		AngleCount,
		req.Product,
		valueOr(req.Benefit, "Not specified; improvise."),
		valueOr(req.Audience, "General"),
		AngleCount,
	)
}

// CompileHashtags builds the instruction for categorized hashtag suggestions.
func CompileHashtags(req core.HashtagRequest) string {
	return fmt.Sprintf(`Your task is to produce 3-4 strategic hashtag categories for a product video on TikTok.

**Video details:**
*   **Product/topic:** %s
*   **Target audience:** %s

**Mandatory rules:**
1.  **Strategic categories:** use clear category names, for example "Broad Reach", "Niche (specific audience)", "Viral/Trending", "Brand".
2.  **Relevance:** every hashtag must be highly relevant to the product and audience.
3.  **Count:** roughly 5-10 hashtags per category.

**JSON output format:**
Respond with a single valid JSON object with two properties: "categories" and "explanation".
- "categories": an array of objects, each with "categoryName" (string) and "hashtags" (array of strings).
- "explanation": a short strategy analysis (2-3 sentences) of why this hashtag mix works.
Do not wrap the output in markdown backticks.`,
		req.ProductTopic,
		valueOr(req.Audience, "General"),
	)
}

// CompilePlan builds the instruction for a multi-day content campaign plan.
func CompilePlan(req core.PlanRequest) string {
	return fmt.Sprintf(`You are a **senior TikTok content strategist** who specializes in affiliate product campaigns.
Your task is to design a structured, strategic content plan for the coming days.

**Campaign details:**
*   **Product name:** %s
*   **Campaign goal:** %s
*   **Campaign duration:** %d days
*   **Target audience:** %s
*   **Unique selling proposition (USP):** %s

**Mandatory rules:**
1.  **Overall strategy:** start with "overallStrategy", a short paragraph (2-4 sentences) explaining the logic behind the daily theme order, e.g. open with awareness to build curiosity, move to problem-solution to show value, close with urgency to drive conversion.
2.  **Daily plan:** produce one entry per day for the whole duration. Each day has:
    *   "day": the day number (1, 2, 3, ...).
    *   "theme": the day's main theme (e.g. "Awareness & Unboxing", "Problem-Solution", "Social Proof", "Urgency/FOMO", "Engagement/Q&A"). Vary the theme daily.
    *   "angle": the specific angle for that day's content, e.g. "first impression as a beginner", "proving claim X", "answering the most common comment".
    *   "hookIdea": one strong hook idea that fits the day's theme.
    *   "cta": the call-to-action type best suited to the day's theme.
3.  **Audience and USP first:** the whole plan, from themes to CTAs, must resonate with the target audience and spotlight the USP.

**JSON output format:**
Respond with a single valid JSON object with two properties: "overallStrategy" (string) and "dailyPlan" (array of objects).
- Each "dailyPlan" object has "day" (number), "theme", "angle", "hookIdea", and "cta" (strings).
Do not wrap the output in markdown backticks.`,
		req.ProductName,
		req.CampaignGoal,
		req.CampaignDuration,
		req.TargetAudience,
		req.USP,
	)
}

// CompileResearch builds the instruction for a search-grounded market
// intelligence report. The generation call enables the search tool, so no
// response schema accompanies this prompt; the client extracts the JSON
// object from the grounded answer instead.
func CompileResearch(req core.ResearchRequest) string {
	return fmt.Sprintf(`You are a sharp, experienced **TikTok affiliate market analyst**.
Your task is to run market research USING GOOGLE SEARCH for the given product niche and present the findings as a tight, actionable intelligence report.

**Product niche:** %s

**Mandatory rules:**
1.  **Use Google Search:** you MUST use the search tool to find the most relevant and current information; do not rely on internal knowledge alone.
2.  **Trending products:** identify 3-5 specific products currently trending in this niche, each with a one-line reason for its popularity.
3.  **Audience pain points:** identify the 3 main problems, desires, or frustrations of this niche's audience. This is ammunition for relevant content.
4.  **Popular content formats:** find the 3 video formats performing best on TikTok for this niche, e.g. "aesthetic unboxing", "product A vs B battle", "problem-solution tutorial", "GRWM".
5.  **Killer hook ideas:** give 3 hook ideas proven to grab attention in this niche.

**JSON output format:**
Respond with a single valid JSON object with the properties "trendingProducts" (array of objects), "audiencePainPoints" (array of strings), "popularContentFormats" (array of strings), and "killerHookIdeas" (array of strings).
- Each "trendingProducts" object has "name" (string) and "reason" (string).
Do not wrap the output in markdown backticks.`,
		req.Niche,
	)
}

// StoryboardPrompt frames a scene cue as an image-generation prompt.
func StoryboardPrompt(description string) string {
	return fmt.Sprintf("A simple, clean, minimalist storyboard sketch of: %s", description)
}

// VideoPrompt combines the user's prompt with the chosen visual style.
func VideoPrompt(req core.VideoRequest) string {
	if req.Style == "" {
		return req.Prompt
	}
	return fmt.Sprintf("%s, %s style", req.Prompt, req.Style)
}

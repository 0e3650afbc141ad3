// Package prompt compiles typed generation requests into instruction
// strings for the model, paired with the structured-output schemas in
// schema.go. Compilation is pure: identical inputs always produce
// byte-identical instructions.
package prompt

import (
	"fmt"
	"strings"

	"reelcraft/internal/core"
	"reelcraft/internal/scene"
)

// sceneInstruction tells the model how to embed shot suggestions. It quotes
// the shared marker constants so generation and parsing stay in sync.
var sceneInstruction = fmt.Sprintf(
	"IMPORTANT - scene suggestions: inside every script section, add one short, easy-to-film scene suggestion using exactly the format `%sshort shot description%s`. Example: `%s`. This is mandatory for every section.",
	scene.MarkerOpen, scene.MarkerClose, scene.Cue("show the product texture in your hand"),
)

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// personaBlock renders the persona framing for script-style prompts. With
// no active profile the model acts as a generic affiliate content expert;
// an active profile replaces that with a strict brand or creator persona.
func personaBlock(profile *core.BrandProfile, variations int) string {
	task := fmt.Sprintf("Your task is to write %d short-form video script variation(s) that sound like natural human conversation, ready to use for product promotion.", variations)

	if !profile.Active() {
		return fmt.Sprintf(`### Persona & Style (always active)
You are an EXPERT at affiliate product content for TikTok Shop and Shopee.
%s
The scripts must feel engaging, candid, and emotional. Avoid stiff or overly formal language.`, task)
	}

	if profile.PersonaType == core.PersonaBrand {
		return fmt.Sprintf(`### Persona & Style (MANDATORY - BRAND PROFILE)
You MUST speak as the official voice of the brand "%s". You are the brand itself.
*   **Brand description:** %s
*   **Primary brand audience:** %s
*   **MANDATORY TONE OF VOICE:** you MUST use the brand's official voice: **%s**.
*   **FORBIDDEN WORDS:** NEVER use any of the following words: **%s**.

%s They must stay consistent with the brand persona above.`,
			valueOr(profile.BrandName, "an unnamed brand"),
			valueOr(profile.BrandDescription, "None."),
			valueOr(profile.MainAudience, "None."),
			profile.ToneOfVoice,
			valueOr(profile.ForbiddenWords, "None."),
			task)
	}

	return fmt.Sprintf(`### Persona & Style (MANDATORY - CREATOR PERSONA)
You MUST speak as a content creator/affiliate named "%s". You are NOT the brand; you are a user reviewing and recommending the product in first person.
*   **About you/your channel:** %s
*   **Your primary audience:** %s
*   **MANDATORY SPEAKING STYLE:** you MUST use your personal voice: **%s**.
*   **FORBIDDEN WORDS:** NEVER use any of the following words in your voice: **%s**.

%s Write them from the creator's point of view.`,
		valueOr(profile.BrandName, "Creator"),
		valueOr(profile.BrandDescription, "None."),
		valueOr(profile.MainAudience, "None."),
		profile.ToneOfVoice,
		valueOr(profile.ForbiddenWords, "None."),
		task)
}

// insightsBlock renders the high-priority personal-insights directive.
// Placement near the top of the prompt marks it as a requirement rather
// than a suggestion.
func insightsBlock(insights *core.PersonalInsights) string {
	if insights == nil {
		return ""
	}
	return fmt.Sprintf(`### IMPORTANT: Personal Performance Insights (MANDATORY)
Based on this user's tracked performance data, they get the BEST results with the combination below. You MUST PRIORITIZE these elements in the scripts you write to maximize the chance of success:
*   **Best-performing formula:** %s
*   **Best-performing hook:** %s
*   **Best-performing tone:** %s`,
		insights.TopFormula, insights.TopHookType, insights.TopTone)
}

// likedExamplesBlock embeds previously liked scripts verbatim as style
// references for the model to imitate.
func likedExamplesBlock(examples []core.Script) string {
	if len(examples) == 0 {
		return ""
	}
	var rendered []string
	for _, script := range examples {
		var parts []string
		for _, p := range script.Parts {
			parts = append(parts, fmt.Sprintf("%s: %s", p.PartName, p.Content))
		}
		rendered = append(rendered, fmt.Sprintf("--- LIKED SCRIPT EXAMPLE ---\nTitle: %s\n%s\n------------------------------",
			script.Title, strings.Join(parts, "\n")))
	}
	return fmt.Sprintf(`### Style Reference (VERY IMPORTANT)
This user gave positive feedback on the scripts below. STUDY their style, structure, and word choice, and write your new scripts in a VERY SIMILAR style.

%s`, strings.Join(rendered, "\n\n"))
}

func formulaInstruction(formula string) string {
	desc, ok := core.FormulaDescriptions[formula]
	if !ok {
		desc = "Use the standard Hook, Body, CTA structure."
	}
	parts := core.FormulaParts[formula]
	line := fmt.Sprintf("*   **Copywriting formula:** %s. Follow this structure strictly: %s", formula, desc)
	if len(parts) > 0 {
		line += fmt.Sprintf(" The ordered section names are: %s.", strings.Join(parts, ", "))
	}
	return line
}

func ctaInstruction(ctaStyle, customCTA string) string {
	if trimmed := strings.TrimSpace(customCTA); trimmed != "" {
		return fmt.Sprintf("*   **Call-to-action (CTA):** use this exact CTA: \"%s\"", trimmed)
	}
	return fmt.Sprintf("*   **Call-to-action (CTA) style:** %s. Write a CTA that feels natural in this style.", ctaStyle)
}

// ScriptVariationCount is how many variations a full script request asks for.
const ScriptVariationCount = 3

// CompileScript builds the instruction for a full product-script request.
func CompileScript(req core.ScriptRequest, profile *core.BrandProfile, liked []core.Script, insights *core.PersonalInsights) string {
	var b strings.Builder

	b.WriteString(personaBlock(profile, ScriptVariationCount))
	b.WriteString("\n\n")

	if block := insightsBlock(insights); block != "" {
		b.WriteString(block)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf(`Use the following **hook combination table** as your main inspiration, especially for the opening section of the chosen formula. Improvise each time so every video feels unique:

| No | Hook combination            | Template sentence (improvise freely)                                                  |
| -- | --------------------------- | ------------------------------------------------------------------------------------- |
| 1  | Pain -> Surprise            | "Tired of [audience pain]... turns out %[1]s can [key advantage]."                     |
| 2  | Curiosity -> Reveal         | "Did you know [unusual question]? The answer is %[1]s."                                |
| 3  | Relatable -> Solution       | "Ever dealt with [common problem]? Relax, %[1]s can [key advantage]."                  |
| 4  | Drama -> Education          | "I used to [painful routine]... now I just use %[1]s, which [key advantage]."          |
| 5  | Shock Value -> Benefit      | "I can't believe %[1]s can [surprising fact]! Plus it has [key advantage]."            |
| 6  | Question -> Proof           | "Still struggling with [common problem]? Here's proof %[1]s can [key advantage]."      |
| 7  | FOMO -> Deal                | "Everyone's already trying %[1]s... and it happens to be on sale right now!"           |
| 8  | Social Proof -> Demo        | "Thousands of people already use %[1]s... here's why."                                 |
| 9  | Myth Busting -> Truth       | "They say [myth]? Actually %[1]s [real advantage]."                                    |
| 10 | Before After -> Benefit     | "Look at the difference: before, and after using %[1]s."                               |

### Mandatory Improvisation Rules:
1.  **The formula structure comes first:** use the ordered sections of the given copywriting formula as the skeleton of every script, and use the hook table for the content inside each section.
2.  **Flowing narration:** write like you're chatting with a friend, not reading a feature list.
3.  **Natural CTA:** always close with a CTA matching the CTA instruction.
4.  **Replace placeholders:** replace every bracketed placeholder (like [audience pain], [common problem]) using the product and audience data below.
`, req.ProductName))

	if block := likedExamplesBlock(liked); block != "" {
		b.WriteString("\n")
		b.WriteString(block)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf(`
Your task is to write %d compelling product video script variations from the details below.

**Product details:**
*   **Product name:** %s
*   **Advantages:** %s
`, ScriptVariationCount, req.ProductName, req.ProductAdvantages))

	if usp := strings.TrimSpace(req.USP); usp != "" {
		b.WriteString(fmt.Sprintf("*   **Unique selling proposition (USP):** %s. This is the MAIN reason customers should pick this product; make it the core message of the script.\n", usp))
	}

	b.WriteString(fmt.Sprintf(`*   **Audience problem:** %s

**Goal & audience:**
*   **Script goal:** %s
*   **Target audience:** %s

**Structure & style:**
*   **Target video duration:** %s
%s
*   **Desired hook types (as inspiration):** %s. You decide the most effective hook format (statement, question, etc.).
*   **Tone & style:** %s
%s

**Additional instructions:**
*   Keep the scripts tight; fit the length to the target duration of %s.
*   Use language that resonates with the target audience.
%s
`,
		valueOr(req.AudienceProblem, "Not specified"),
		req.ScriptGoal,
		req.TargetAudience,
		req.VideoDuration,
		formulaInstruction(req.CopywritingFormula),
		strings.Join(req.HookTypes, ", "),
		req.ToneAndStyle,
		ctaInstruction(req.CTAStyle, req.CustomCTA),
		req.VideoDuration,
		sceneInstruction,
	))

	b.WriteString(fmt.Sprintf(`
**JSON output format:**
Respond with a single valid JSON object with the properties "killerTitle", "variations", "explanation", "caption", and "hashtags".
- "killerTitle": a highly clickable, curiosity-driven video title.
- "variations": an array of exactly %d script objects. Each has "title" (string) and "parts" (array of objects with "partName" and "content"). The order of "parts" MUST follow the %s formula structure.
- "explanation": a short strategy analysis (2-3 sentences) of why this combination of formula, hook, and style works for the given audience.
- "caption": a short, catchy social media caption.
- "hashtags": a single space-separated hashtag string (example: "#tiktokmademebuyit #viralserum #skincare").
Do not wrap the output in markdown backticks.`, ScriptVariationCount, req.CopywritingFormula))

	return b.String()
}

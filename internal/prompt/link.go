package prompt

import (
	"fmt"
	"strings"

	"reelcraft/internal/core"
)

// CompileLinkScript builds the instruction for a script improvised from a
// product link. The model never fetches the URL; it infers the product
// from the link text alone.
func CompileLinkScript(req core.LinkScriptRequest, profile *core.BrandProfile) string {
	var b strings.Builder

	b.WriteString(personaBlock(profile, 1))
	b.WriteString("\n\n")

	starter := ""
	if starters, ok := core.PersonaStarters[req.ContentStyle]; ok {
		starter = fmt.Sprintf(` Use one of these opener lines as hook inspiration: "%s"`, strings.Join(starters, `", "`))
	}

	b.WriteString(fmt.Sprintf(`Your task is to write a short video script (Hook, Body, CTA) from the product link and details below. You CANNOT access the link, so improvise and make reasonable assumptions about the product from the URL alone.

**Request details:**
*   **Product link (for name/category inspiration):** %s
*   **Target audience:** %s
*   **Content style (persona):** %s.%s
*   **Target video duration:** %s
*   **Hook killers (combine these):** %s. These psychological triggers MUST appear in the hook.
*   **Hook format:** %s
*   **Content type:** %s

**Mandatory rules:**
1.  **Improvise the product:** infer the product name, benefits, and features from the link. If the link is generic, assume a popular product. Write as if you know the product well.
2.  **Hook-Body-CTA structure:** the script must clearly split into those three sections.
3.  **Strong hook:** build the hook from the given hook killers and hook format.
4.  **Tight body:** state the audience's problem and how this product solves it; focus on one or two main benefits.
5.  **Clear CTA:** write a strong call to action matching the content type.
6.  **Natural language:** use everyday phrasing that fits the persona.
7.  %s

**JSON output format:**
Respond with a single valid JSON object with the properties "killerTitle", "hook", "body", "cta", "explanation", "caption", and "hashtags".
- "killerTitle": a highly clickable, curiosity-driven video title.
- "explanation": a short strategy analysis (2-3 sentences) of why this script works.
- "caption": a short, catchy social media caption.
- "hashtags": a single space-separated hashtag string.
Do not wrap the output in markdown backticks.`,
		req.ProductLink,
		valueOr(req.TargetAudience, "General"),
		req.ContentStyle,
		starter,
		req.VideoDuration,
		strings.Join(req.HookKillers, ", "),
		req.HookFormat,
		req.ContentType,
		sceneInstruction,
	))

	return b.String()
}

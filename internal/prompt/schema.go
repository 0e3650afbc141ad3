package prompt

import "google.golang.org/genai"

// Output schemas declared to the model alongside each compiled instruction.
// They mirror the result types in internal/core exactly; any response that
// deviates from them is treated as malformed by the generation client.

// ScriptSchema describes the full script-generation result shape.
func ScriptSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"killerTitle": {
				Type:        genai.TypeString,
				Description: "Clickable, curiosity-driven video title",
			},
			"variations": {
				Type:        genai.TypeArray,
				Description: "Exactly three script variations",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title": {
							Type:        genai.TypeString,
							Description: "Catchy script title",
						},
						"parts": {
							Type:        genai.TypeArray,
							Description: "Ordered script sections following the chosen copywriting formula",
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"partName": {
										Type:        genai.TypeString,
										Description: "Section name (e.g. Hook, Problem, Solution, CTA)",
									},
									"content": {
										Type:        genai.TypeString,
										Description: "Text content of the section, including its scene cue",
									},
								},
								Required: []string{"partName", "content"},
							},
						},
					},
					Required: []string{"title", "parts"},
				},
			},
			"explanation": {
				Type:        genai.TypeString,
				Description: "Short strategy analysis behind the scripts",
			},
			"caption": {
				Type:        genai.TypeString,
				Description: "Short social media caption",
			},
			"hashtags": {
				Type:        genai.TypeString,
				Description: "Space-separated hashtag string",
			},
		},
		Required: []string{"killerTitle", "variations", "explanation", "caption", "hashtags"},
	}
}

// LinkScriptSchema describes the link-script result shape.
func LinkScriptSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"killerTitle": {Type: genai.TypeString},
			"hook":        {Type: genai.TypeString},
			"body":        {Type: genai.TypeString},
			"cta":         {Type: genai.TypeString},
			"explanation": {Type: genai.TypeString},
			"caption":     {Type: genai.TypeString},
			"hashtags":    {Type: genai.TypeString},
		},
		Required: []string{"killerTitle", "hook", "body", "cta", "explanation", "caption", "hashtags"},
	}
}

// HookSetSchema describes the hook-generator result shape.
func HookSetSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"hooks": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"explanation": {Type: genai.TypeString},
		},
		Required: []string{"hooks", "explanation"},
	}
}

// AngleSetSchema describes the review-angle result shape.
func AngleSetSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"angles": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"exampleHook": {Type: genai.TypeString},
						"exampleBody": {Type: genai.TypeString},
						"exampleCta":  {Type: genai.TypeString},
					},
					Required: []string{"title", "description", "exampleHook", "exampleBody", "exampleCta"},
				},
			},
			"explanation": {Type: genai.TypeString},
		},
		Required: []string{"angles", "explanation"},
	}
}

// HashtagSetSchema describes the hashtag-generator result shape.
func HashtagSetSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"categories": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"categoryName": {Type: genai.TypeString},
						"hashtags": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
					},
					Required: []string{"categoryName", "hashtags"},
				},
			},
			"explanation": {Type: genai.TypeString},
		},
		Required: []string{"categories", "explanation"},
	}
}

// ContentPlanSchema describes the content-plan result shape.
func ContentPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"overallStrategy": {Type: genai.TypeString},
			"dailyPlan": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":      {Type: genai.TypeNumber},
						"theme":    {Type: genai.TypeString},
						"angle":    {Type: genai.TypeString},
						"hookIdea": {Type: genai.TypeString},
						"cta":      {Type: genai.TypeString},
					},
					Required: []string{"day", "theme", "angle", "hookIdea", "cta"},
				},
			},
		},
		Required: []string{"overallStrategy", "dailyPlan"},
	}
}

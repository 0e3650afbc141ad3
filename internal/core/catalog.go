package core

// FormulaParts maps each copywriting formula to its fixed, ordered list of
// script sections. Generated scripts must follow this order exactly; the
// section names double as ScriptPart.PartName values.
var FormulaParts = map[string][]string{
	"HPSBC":       {"Hook", "Problem", "Solution", "Benefit", "CTA"},
	"AIDA":        {"Attention", "Interest", "Desire", "Action"},
	"PAS":         {"Hook", "Problem", "Agitate", "Solution", "CTA"},
	"FAB":         {"Hook", "Features", "Advantages", "Benefits", "CTA"},
	"4P":          {"Picture", "Promise", "Prove", "Push"},
	"Storytelling": {"Hook", "Setup", "Conflict", "Resolution", "CTA"},
	"Testimonial": {"Hook", "Customer Story", "Product Tie-In", "CTA"},
	"ACCA":        {"Awareness", "Comprehension", "Conviction", "Action"},
}

// FormulaDescriptions gives the one-line structural guidance injected into
// prompts for each formula.
var FormulaDescriptions = map[string]string{
	"HPSBC":       "H (Hook), P (Problem, dramatized), S (Solution), B (Benefit, not features), C (Call to Action).",
	"AIDA":        "A (Attention/Hook), I (Interest), D (Desire), A (Action/CTA).",
	"PAS":         "P (Problem), A (Agitate), S (Solution). Open with a Hook and close with a CTA.",
	"FAB":         "F (Features), A (Advantages), B (Benefits). Open with a Hook and close with a CTA.",
	"4P":          "P (Picture), P (Promise), P (Prove), P (Push/CTA).",
	"Storytelling": "Narrative arc: Setup (introduction), Conflict (the problem), Resolution (the product as the fix). Open with a Hook and close with a CTA.",
	"Testimonial": "A customer quote or story, tied back to the product, closed with a CTA. Open with a Hook.",
	"ACCA":        "A (Awareness/Hook), C (Comprehension), C (Conviction), A (Action/CTA).",
}

// HookTypes are the psychological hook categories selectable per script.
var HookTypes = []string{
	"Pain Point",
	"Curiosity",
	"FOMO",
	"Shock Value",
	"Social Proof",
	"Myth Busting",
	"Before After",
	"Comparison",
	"Storytelling",
	"Question",
}

// TonesAndStyles are the selectable delivery tones.
var TonesAndStyles = []string{
	"Casual & Friendly",
	"Honest Review",
	"Energetic & Hype",
	"Soft-Selling",
	"Educational",
	"Dramatic",
	"Humorous",
}

// CTAStyles are the selectable call-to-action framings.
var CTAStyles = []string{
	"Urgency (limited stock)",
	"Discount Push",
	"Soft Ask (check it out)",
	"Engagement (comment below)",
	"Direct (tap the cart)",
}

// DefaultCTAStyle is the CTA style used when a request does not pick one.
const DefaultCTAStyle = "Soft Ask (check it out)"

// HookKillers are the psychological triggers a link-script hook can combine.
var HookKillers = []string{
	"Curiosity Gap",
	"Fear of Missing Out",
	"Controversy",
	"Instant Benefit",
	"Pattern Interrupt",
	"Relatability",
}

// HookFormats are the delivery formats available for link-script hooks.
var HookFormats = []string{
	"Bold Statement",
	"Question",
	"Confession",
	"Challenge",
	"Warning",
}

// HookCategories are the catalog values accepted by the hook generator.
// "Random" asks the model to mix categories freely.
var HookCategories = append([]string{"Random"}, HookTypes...)

// ContentStyles are the link-script persona styles; each maps to a set of
// opener lines in PersonaStarters.
var ContentStyles = []string{
	"Honest Complaint",
	"Honest Rant",
	"Over-the-Top Drama",
	"Storytelling",
	"To the Point",
}

// PersonaStarters provides opener-line inspiration per content style. The
// prompt compiler quotes these verbatim as hook candidates.
var PersonaStarters = map[string][]string{
	"Honest Complaint": {
		"Honestly, I'm so tired of...",
		"I swear it drives me crazy when...",
		"Isn't it exhausting having to...",
		"I'd basically given up on...",
		"Anyone else fed up with...",
	},
	"Honest Rant": {
		"Why is it always...",
		"Someone explain to me how...",
		"The thing that really gets me is...",
		"I've said it before and I'll say it again...",
		"Make it make sense...",
	},
	"Over-the-Top Drama": {
		"OMG you need to hear this!",
		"No. Way. This thing is...",
		"I am genuinely in shock right now, turns out...",
		"The drama started when...",
		"This is better than a soap opera!",
	},
	"Storytelling": {
		"So, story time...",
		"A while back I went through...",
		"It all started with...",
		"Let me tell you something...",
		"There's a story behind this...",
	},
	"To the Point": {
		"No fluff, here's the fix.",
		"This is the thing you actually need.",
		"Straight to it, here it is...",
		"Bottom line, this product can...",
		"Simply put...",
	},
}

// VideoStyles are the selectable visual styles for video generation.
var VideoStyles = []string{
	"Cinematic",
	"Vlog",
	"Product Showcase",
	"Stop Motion",
	"Animated",
}

// AspectRatios maps the user-facing aspect-ratio labels to the values the
// video backend accepts.
var AspectRatios = map[string]string{
	"9:16 (Vertical)":   "9:16",
	"16:9 (Horizontal)": "16:9",
	"1:1 (Square)":      "1:1",
	"4:3 (Classic)":     "4:3",
	"3:4 (Portrait)":    "3:4",
}

// DefaultAspectRatio is used when a request carries an unknown label.
const DefaultAspectRatio = "9:16"

// AspectRatioValue resolves a user-facing label to a backend value.
func AspectRatioValue(label string) string {
	if v, ok := AspectRatios[label]; ok {
		return v
	}
	return DefaultAspectRatio
}

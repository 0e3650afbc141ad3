package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelcraft/internal/config"
	"reelcraft/internal/core"
	"reelcraft/internal/insights"
)

// NewScriptCmd creates the script command, the main generation entry point
func NewScriptCmd() *cobra.Command {
	var (
		req      core.ScriptRequest
		asJSON   bool
		noSave   bool
		noExtras bool
	)

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Generate product review scripts with three variations",
		Long: `Generate a short-form video script for an affiliate product.

Each run produces three variations built from different hook combinations,
plus a caption and hashtags. The saved brand profile, liked scripts from
history, and personal performance insights all shape the result unless
--no-extras is set.

Examples:
  reelcraft script --product "Serum X" --advantages "brightens skin in 7 days"
  reelcraft script --product "Mini Blender" --advantages "300W, USB-C" \
    --formula PAS --hook-type "Curiosity" --hook-type "Problem-Solution" \
    --tone "Casual & Friendly" --visuals`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, req, asJSON, noSave, noExtras)
		},
	}

	cmd.Flags().StringVar(&req.ProductName, "product", "", "Product name (required)")
	cmd.Flags().StringVar(&req.ProductAdvantages, "advantages", "", "Key product advantages (required)")
	cmd.Flags().StringVar(&req.USP, "usp", "", "Unique selling point")
	cmd.Flags().StringVar(&req.AudienceProblem, "problem", "", "Audience problem the product solves")
	cmd.Flags().StringVar(&req.TargetAudience, "audience", "", "Target audience")
	cmd.Flags().StringVar(&req.ScriptGoal, "goal", "Sales / Checkout", "Script goal")
	cmd.Flags().StringVar(&req.VideoDuration, "duration", "30-60 seconds", "Target video duration")
	cmd.Flags().StringVar(&req.CopywritingFormula, "formula", "HPSBC", "Copywriting formula")
	cmd.Flags().StringArrayVar(&req.HookTypes, "hook-type", nil, "Hook types to combine (repeatable)")
	cmd.Flags().StringVar(&req.ToneAndStyle, "tone", "Casual & Friendly", "Tone and style")
	cmd.Flags().StringVar(&req.CTAStyle, "cta-style", core.DefaultCTAStyle, "CTA style")
	cmd.Flags().StringVar(&req.CustomCTA, "custom-cta", "", "Exact CTA text, overrides --cta-style")
	cmd.Flags().BoolVar(&req.IncludeVisuals, "visuals", false, "Embed scene suggestions in the script")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON output")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the result in history")
	cmd.Flags().BoolVar(&noExtras, "no-extras", false, "Ignore brand profile, liked scripts, and insights")

	return cmd
}

func runScript(cmd *cobra.Command, req core.ScriptRequest, asJSON, noSave, noExtras bool) error {
	if _, ok := core.FormulaParts[req.CopywritingFormula]; !ok && req.CopywritingFormula != "" {
		known := make([]string, 0, len(core.FormulaParts))
		for name := range core.FormulaParts {
			known = append(known, name)
		}
		note("Unknown formula %q, the model will fall back to Hook/Body/CTA. Known: %s",
			req.CopywritingFormula, strings.Join(known, ", "))
	}

	svc, err := buildService(cmd.Context())
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var (
		profile  *core.BrandProfile
		liked    []core.Script
		personal *core.PersonalInsights
	)
	if !noExtras {
		cfg := config.Get()
		if profile, err = st.GetBrandProfile(); err != nil {
			return err
		}
		if liked, err = st.LikedScripts(cfg.Insights.LikedSamples); err != nil {
			return err
		}
		entries, err := st.ListHistory(0)
		if err != nil {
			return err
		}
		result, err := insights.Compute(insights.FromHistory(entries), cfg.Insights.MinTracked)
		if err == nil {
			personal = &result
		} else if !errors.Is(err, insights.ErrInsufficientData) {
			return err
		}
	}

	out, err := svc.Script(cmd.Context(), req, profile, liked, personal)
	if err != nil {
		return err
	}

	if !noSave {
		entry, err := st.SaveHistory(core.HistoryEntry{Request: req, Variations: out.Variations})
		if err != nil {
			return err
		}
		defer note("Saved to history as %s", entry.ID)
	}

	if asJSON {
		return printJSON(out)
	}
	printScriptOutput(out)
	if svc.Offline() {
		fmt.Println()
		note("Offline mode: set GEMINI_API_KEY to generate real scripts.")
	}
	return nil
}

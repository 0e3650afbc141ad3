package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcraft/internal/core"
)

// NewLinkScriptCmd creates the link-script command
func NewLinkScriptCmd() *cobra.Command {
	var (
		req    core.LinkScriptRequest
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "link-script",
		Short: "Generate a script from a marketplace product link",
		Long: `Generate a single review script for a product identified only by its
TikTok Shop or Shopee link. The model never fetches the link; it infers
the product category from the URL text and improvises a plausible script
around it.

Examples:
  reelcraft link-script --link "https://shopee.com/product/123" \
    --style "Storytelling" --content-type "Soft-selling"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd.Context())
			if err != nil {
				return err
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			profile, err := st.GetBrandProfile()
			if err != nil {
				return err
			}

			out, err := svc.LinkScript(cmd.Context(), req, profile)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(out)
			}
			printLinkScript(out)
			if svc.Offline() {
				fmt.Println()
				note("Offline mode: set GEMINI_API_KEY to generate real scripts.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ProductLink, "link", "", "Product link (required)")
	cmd.Flags().StringVar(&req.TargetAudience, "audience", "", "Target audience")
	cmd.Flags().StringVar(&req.ContentStyle, "style", "Storytelling", "Content style")
	cmd.Flags().StringVar(&req.VideoDuration, "duration", "30-60 seconds", "Target video duration")
	cmd.Flags().StringArrayVar(&req.HookKillers, "hook-killer", nil, "Hook killer techniques (repeatable)")
	cmd.Flags().StringVar(&req.HookFormat, "hook-format", "", "Hook format")
	cmd.Flags().StringVar(&req.ContentType, "content-type", "Soft-selling", "Content type")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON output")

	return cmd
}

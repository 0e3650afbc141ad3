package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelcraft/internal/core"
)

// NewResearchCmd creates the research command
func NewResearchCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "research [niche]",
		Short: "Run search-grounded market research for a niche",
		Long: `Research what is currently selling in a product niche.

The request runs with Google Search grounding, so results reflect recent
marketplace and social trends rather than the model's training data.

Examples:
  reelcraft research "kitchen gadgets"
  reelcraft research "skincare for men" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.Research(cmd.Context(), core.ResearchRequest{
				Niche: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(out)
			}

			fmt.Println(sectionStyle.Render("Trending Products"))
			for i, product := range out.TrendingProducts {
				fmt.Printf("  %2d. %s\n      %s\n", i+1, titleStyle.Render(product.Name), product.Reason)
			}
			fmt.Println()
			printList("Audience Pain Points", out.AudiencePainPoints)
			printList("Popular Content Formats", out.PopularContentFormats)
			printList("Killer Hook Ideas", out.KillerHookIdeas)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON output")

	return cmd
}

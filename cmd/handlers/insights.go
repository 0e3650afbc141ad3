package handlers

import (
	"errors"

	"github.com/spf13/cobra"

	"reelcraft/internal/config"
	"reelcraft/internal/insights"
)

// NewInsightsCmd creates the insights command
func NewInsightsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show personal performance insights from tracked scripts",
		Long: `Aggregate tracked performance numbers into personal insights.

Once enough script variations have recorded sales, the formula, hook
type, and tone with the best average sales are surfaced here and
prioritized in future script generations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.ListHistory(0)
			if err != nil {
				return err
			}

			minTracked := config.Get().Insights.MinTracked
			result, err := insights.Compute(insights.FromHistory(entries), minTracked)
			if errors.Is(err, insights.ErrInsufficientData) {
				note("Not enough tracked scripts yet. Record sales on at least %d variations with 'reelcraft history track'.", minTracked)
				return nil
			}
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(result)
			}
			printInsights(&result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON output")

	return cmd
}

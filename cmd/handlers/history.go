package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcraft/internal/core"
	"reelcraft/internal/generate"
)

// NewHistoryCmd creates the history command with its subcommands
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse generated scripts and record feedback",
		Long: `Browse the local generation history.

Feedback and performance numbers recorded here feed back into future
generations: liked scripts become style references and tracked sales
drive the personal insights block.`,
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())
	cmd.AddCommand(newHistoryDeleteCmd())
	cmd.AddCommand(newHistoryFeedbackCmd())
	cmd.AddCommand(newHistoryTrackCmd())

	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List history entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			entries, err := st.ListHistory(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				note("No history yet. Generate a script first.")
				return nil
			}

			for _, entry := range entries {
				fmt.Printf("%s  %s  %s (%d variations)\n",
					labelStyle.Render(entry.CreatedAt.Format("2006-01-02 15:04")),
					entry.ID,
					titleStyle.Render(entry.Request.ProductName),
					len(entry.Variations),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show, 0 for all")

	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			entry, err := st.GetHistory(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(entry)
			}

			fmt.Println(titleStyle.Render(entry.Request.ProductName))
			fmt.Printf("%s %s  %s %s\n",
				labelStyle.Render("Generated:"), entry.CreatedAt.Format("2006-01-02 15:04"),
				labelStyle.Render("Formula:"), entry.Request.CopywritingFormula,
			)
			for i, variation := range entry.Variations {
				header := fmt.Sprintf("Variation %d: %s", i, variation.Title)
				if variation.Feedback != "" {
					header += fmt.Sprintf(" [%s]", variation.Feedback)
				}
				if variation.Performance != nil {
					header += fmt.Sprintf(" (views %d, likes %d, sales %d)",
						variation.Performance.Views, variation.Performance.Likes, variation.Performance.Sales)
				}
				fmt.Println(sectionStyle.Render(header))
				printScript(variation)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON output")

	return cmd
}

func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteHistory(args[0]); err != nil {
				return err
			}
			note("Deleted %s", args[0])
			return nil
		},
	}
}

func newHistoryFeedbackCmd() *cobra.Command {
	var (
		variation int
		clear     bool
	)

	cmd := &cobra.Command{
		Use:   "feedback [id] [liked|disliked]",
		Short: "Mark a script variation as liked or disliked",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var feedback core.Feedback
			switch {
			case clear:
			case len(args) == 2 && args[1] == string(core.FeedbackLiked):
				feedback = core.FeedbackLiked
			case len(args) == 2 && args[1] == string(core.FeedbackDisliked):
				feedback = core.FeedbackDisliked
			default:
				return &generate.ValidationError{Field: "feedback", Reason: `pass "liked", "disliked", or --clear`}
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdateFeedback(args[0], variation, feedback); err != nil {
				return err
			}
			note("Feedback recorded.")
			return nil
		},
	}

	cmd.Flags().IntVar(&variation, "variation", 0, "Variation index")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear existing feedback")

	return cmd
}

func newHistoryTrackCmd() *cobra.Command {
	var (
		variation int
		perf      core.PerformanceData
	)

	cmd := &cobra.Command{
		Use:   "track [id]",
		Short: "Record views, likes, and sales for a script variation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if perf.Views < 0 || perf.Likes < 0 || perf.Sales < 0 {
				return &generate.ValidationError{Field: "performance", Reason: "values must be non-negative"}
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.UpdatePerformance(args[0], variation, perf); err != nil {
				return err
			}
			note("Performance recorded.")
			return nil
		},
	}

	cmd.Flags().IntVar(&variation, "variation", 0, "Variation index")
	cmd.Flags().IntVar(&perf.Views, "views", 0, "View count")
	cmd.Flags().IntVar(&perf.Likes, "likes", 0, "Like count")
	cmd.Flags().IntVar(&perf.Sales, "sales", 0, "Sales count")

	return cmd
}

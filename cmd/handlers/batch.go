package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcraft/internal/core"
)

// NewHooksCmd creates the hooks command
func NewHooksCmd() *cobra.Command {
	var (
		req    core.HookRequest
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Generate ten opening hooks for a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.Hooks(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(out)
			}
			printList(fmt.Sprintf("Hooks for %s", req.Product), out.Hooks)
			if out.Explanation != "" {
				fmt.Println(labelStyle.Render("Why these work:"), out.Explanation)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Product, "product", "", "Product name (required)")
	cmd.Flags().StringVar(&req.Benefit, "benefit", "", "Main benefit")
	cmd.Flags().StringVar(&req.Category, "category", "Random", "Hook category, or Random to mix")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON output")

	return cmd
}

// NewAnglesCmd creates the angles command
func NewAnglesCmd() *cobra.Command {
	var (
		req    core.AngleRequest
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "angles",
		Short: "Generate five distinct review angles for a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.Angles(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(out)
			}
			for i, angle := range out.Angles {
				fmt.Println(sectionStyle.Render(fmt.Sprintf("%d. %s", i+1, angle.Title)))
				fmt.Printf("   %s\n", angle.Description)
				fmt.Printf("   %s %s\n", labelStyle.Render("Hook:"), angle.ExampleHook)
				fmt.Printf("   %s %s\n", labelStyle.Render("Body:"), truncate(angle.ExampleBody, 200))
				fmt.Printf("   %s %s\n", labelStyle.Render("CTA:"), angle.ExampleCTA)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Product, "product", "", "Product name (required)")
	cmd.Flags().StringVar(&req.Benefit, "benefit", "", "Main benefit")
	cmd.Flags().StringVar(&req.Audience, "audience", "", "Target audience")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON output")

	return cmd
}

// NewHashtagsCmd creates the hashtags command
func NewHashtagsCmd() *cobra.Command {
	var (
		req    core.HashtagRequest
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "hashtags",
		Short: "Generate categorized hashtag recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.Hashtags(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(out)
			}
			for _, category := range out.Categories {
				printList(category.CategoryName, category.Hashtags)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ProductTopic, "topic", "", "Product or topic (required)")
	cmd.Flags().StringVar(&req.Audience, "audience", "", "Target audience")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON output")

	return cmd
}

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	var (
		req    core.PlanRequest
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a day-by-day content plan for a campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd.Context())
			if err != nil {
				return err
			}
			out, err := svc.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(out)
			}
			fmt.Println(sectionStyle.Render("Overall Strategy"))
			fmt.Println("  " + out.OverallStrategy)
			fmt.Println()
			for _, day := range out.DailyPlan {
				fmt.Println(sectionStyle.Render(fmt.Sprintf("Day %d: %s", day.Day, day.Theme)))
				fmt.Printf("   %s %s\n", labelStyle.Render("Angle:"), day.Angle)
				fmt.Printf("   %s %s\n", labelStyle.Render("Hook idea:"), day.HookIdea)
				fmt.Printf("   %s %s\n", labelStyle.Render("CTA:"), day.CTA)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ProductName, "product", "", "Product name (required)")
	cmd.Flags().StringVar(&req.CampaignGoal, "goal", "Sales / Checkout", "Campaign goal")
	cmd.Flags().IntVar(&req.CampaignDuration, "days", 7, "Campaign duration in days")
	cmd.Flags().StringVar(&req.TargetAudience, "audience", "", "Target audience")
	cmd.Flags().StringVar(&req.USP, "usp", "", "Unique selling point")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON output")

	return cmd
}

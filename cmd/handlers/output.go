package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reelcraft/internal/core"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noteStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

// printJSON writes v as indented JSON, for --json output.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printScriptOutput(out *core.ScriptOutput) {
	fmt.Println(titleStyle.Render(out.KillerTitle))
	fmt.Println()
	for i, variation := range out.Variations {
		fmt.Println(sectionStyle.Render(fmt.Sprintf("Variation %d: %s", i+1, variation.Title)))
		printScript(variation)
		fmt.Println()
	}
	if out.Explanation != "" {
		fmt.Println(labelStyle.Render("Why this works:"), out.Explanation)
	}
	if out.Caption != "" {
		fmt.Println(labelStyle.Render("Caption:"), out.Caption)
	}
	if out.Hashtags != "" {
		fmt.Println(labelStyle.Render("Hashtags:"), out.Hashtags)
	}
}

func printScript(script core.Script) {
	for _, part := range script.Parts {
		fmt.Printf("  %s %s\n", labelStyle.Render(part.PartName+":"), part.Content)
	}
}

func printLinkScript(out *core.LinkScript) {
	fmt.Println(titleStyle.Render(out.KillerTitle))
	fmt.Printf("  %s %s\n", labelStyle.Render("Hook:"), out.Hook)
	fmt.Printf("  %s %s\n", labelStyle.Render("Body:"), out.Body)
	fmt.Printf("  %s %s\n", labelStyle.Render("CTA:"), out.CTA)
	if out.Explanation != "" {
		fmt.Println(labelStyle.Render("Why this works:"), out.Explanation)
	}
	if out.Caption != "" {
		fmt.Println(labelStyle.Render("Caption:"), out.Caption)
	}
	if out.Hashtags != "" {
		fmt.Println(labelStyle.Render("Hashtags:"), out.Hashtags)
	}
}

func printList(header string, items []string) {
	fmt.Println(sectionStyle.Render(header))
	for i, item := range items {
		fmt.Printf("  %2d. %s\n", i+1, item)
	}
}

func printInsights(insights *core.PersonalInsights) {
	fmt.Println(sectionStyle.Render("Personal Performance Insights"))
	fmt.Printf("  %s %s\n", labelStyle.Render("Top formula:"), insights.TopFormula)
	fmt.Printf("  %s %s\n", labelStyle.Render("Top hook type:"), insights.TopHookType)
	fmt.Printf("  %s %s\n", labelStyle.Render("Top tone:"), insights.TopTone)
}

func note(format string, args ...any) {
	fmt.Println(noteStyle.Render(fmt.Sprintf(format, args...)))
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

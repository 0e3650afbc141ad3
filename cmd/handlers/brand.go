package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcraft/internal/core"
	"reelcraft/internal/generate"
)

// NewBrandCmd creates the brand command with its subcommands
func NewBrandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Manage the brand profile that shapes generated scripts",
		Long: `Manage the saved brand profile.

When a profile with a tone of voice is saved, every script generation
adopts its persona: the tone becomes mandatory and forbidden words are
never used. Profiles without a tone of voice are ignored.`,
	}

	cmd.AddCommand(newBrandShowCmd())
	cmd.AddCommand(newBrandSetCmd())
	cmd.AddCommand(newBrandDeleteCmd())

	return cmd
}

func newBrandShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved brand profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			profile, err := st.GetBrandProfile()
			if err != nil {
				return err
			}
			if profile == nil {
				note("No brand profile saved. Use 'reelcraft brand set' to create one.")
				return nil
			}

			fmt.Println(sectionStyle.Render("Brand Profile"))
			fmt.Printf("  %s %s\n", labelStyle.Render("Persona:"), profile.PersonaType)
			fmt.Printf("  %s %s\n", labelStyle.Render("Name:"), profile.BrandName)
			fmt.Printf("  %s %s\n", labelStyle.Render("Description:"), profile.BrandDescription)
			fmt.Printf("  %s %s\n", labelStyle.Render("Tone of voice:"), profile.ToneOfVoice)
			fmt.Printf("  %s %s\n", labelStyle.Render("Forbidden words:"), profile.ForbiddenWords)
			fmt.Printf("  %s %s\n", labelStyle.Render("Main audience:"), profile.MainAudience)
			if !profile.Active() {
				note("This profile has no tone of voice, so generation ignores it.")
			}
			return nil
		},
	}
}

func newBrandSetCmd() *cobra.Command {
	var profile core.BrandProfile

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace the brand profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if profile.PersonaType != core.PersonaCreator && profile.PersonaType != core.PersonaBrand {
				return &generate.ValidationError{Field: "persona", Reason: `must be "creator" or "brand"`}
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SaveBrandProfile(profile); err != nil {
				return err
			}
			note("Brand profile saved.")
			if !profile.Active() {
				note("Warning: without --tone the profile will be ignored during generation.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar((*string)(&profile.PersonaType), "persona", "creator", `Persona type: "creator" or "brand"`)
	cmd.Flags().StringVar(&profile.BrandName, "name", "", "Brand or creator name")
	cmd.Flags().StringVar(&profile.BrandDescription, "description", "", "What the brand sells or stands for")
	cmd.Flags().StringVar(&profile.ToneOfVoice, "tone", "", "Mandatory tone of voice")
	cmd.Flags().StringVar(&profile.ForbiddenWords, "forbidden-words", "", "Comma-separated words to never use")
	cmd.Flags().StringVar(&profile.MainAudience, "audience", "", "Main audience")

	return cmd
}

func newBrandDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the saved brand profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteBrandProfile(); err != nil {
				return err
			}
			note("Brand profile deleted.")
			return nil
		},
	}
}

package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reelcraft/internal/core"
)

// NewStoryboardCmd creates the storyboard command
func NewStoryboardCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "storyboard [scene description]",
		Short: "Generate a storyboard sketch for a scene description",
		Long: `Generate a minimalist storyboard sketch for one scene.

Scene descriptions usually come from the visual cues embedded in a
generated script. In offline mode a placeholder image is written instead.

Examples:
  reelcraft storyboard "close-up of serum dripping onto skin" --output scene1.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd.Context())
			if err != nil {
				return err
			}

			img, err := svc.Storyboard(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, img.Data, 0644); err != nil {
				return fmt.Errorf("failed to write image file: %w", err)
			}

			fmt.Printf("%s %s (%d bytes)\n", sectionStyle.Render("Saved:"), output, len(img.Data))
			if svc.Offline() {
				note("Offline mode: wrote a placeholder image.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "storyboard.png", "Output file")

	return cmd
}

// NewEditImageCmd creates the edit-image command
func NewEditImageCmd() *cobra.Command {
	var (
		prompt    string
		imagePath string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "edit-image",
		Short: "Edit an image with a conversational instruction",
		Long: `Apply an edit instruction to an existing image.

This command requires a Gemini API key; there is no offline fallback.

Examples:
  reelcraft edit-image --image product.jpg \
    --prompt "put the product on a marble countertop with soft morning light" \
    --output product-edited.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(imagePath)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			svc, err := buildService(cmd.Context())
			if err != nil {
				return err
			}

			out, err := svc.EditImage(cmd.Context(), core.ImageEditRequest{
				Prompt: prompt,
				Image: core.InlineImage{
					MIMEType: http.DetectContentType(data),
					Data:     data,
				},
			})
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, out.Image.Data, 0644); err != nil {
				return fmt.Errorf("failed to write image file: %w", err)
			}
			fmt.Printf("%s %s (%d bytes)\n", sectionStyle.Render("Saved:"), output, len(out.Image.Data))
			if out.Text != "" {
				note("%s", out.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "Edit instruction (required)")
	cmd.Flags().StringVar(&imagePath, "image", "", "Image file to edit (required)")
	cmd.Flags().StringVar(&output, "output", "edited.png", "Output file")

	return cmd
}

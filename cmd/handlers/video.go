package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"reelcraft/internal/core"
)

// NewVideoCmd creates the video command
func NewVideoCmd() *cobra.Command {
	var (
		req       core.VideoRequest
		imagePath string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "video",
		Short: "Generate a short video clip from a scene description",
		Long: `Generate a video clip with Veo and download it.

Generation is a long-running operation: the job is submitted, polled
until it finishes, and the result saved to --output. Expect this to take
several minutes. An optional reference image guides the first frame.

This command requires a Gemini API key; there is no offline fallback.

Examples:
  reelcraft video --prompt "hands unboxing a mini blender on a kitchen counter" \
    --style Cinematic --aspect "9:16 (Vertical)" --output clip.mp4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("failed to read reference image: %w", err)
				}
				req.Image = &core.InlineImage{
					MIMEType: http.DetectContentType(data),
					Data:     data,
				}
			}

			svc, err := buildService(cmd.Context())
			if err != nil {
				return err
			}

			note("Submitting video generation, this can take several minutes...")
			op, err := svc.Video(cmd.Context(), req)
			if err != nil {
				return err
			}

			data, err := svc.DownloadVideo(cmd.Context(), op.VideoURI)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write video file: %w", err)
			}

			fmt.Printf("%s %s (%d bytes)\n", sectionStyle.Render("Saved:"), output, len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Prompt, "prompt", "", "Scene description (required)")
	cmd.Flags().StringVar(&req.Style, "style", "", "Visual style")
	cmd.Flags().StringVar(&req.AspectRatio, "aspect", core.DefaultAspectRatio, "Aspect ratio")
	cmd.Flags().StringVar(&imagePath, "image", "", "Reference image file")
	cmd.Flags().StringVar(&output, "output", "reelcraft-video.mp4", "Output file")

	return cmd
}

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"promocast/internal/core"
	"promocast/internal/llm"
	"promocast/internal/templates"
)

// NewViralCmd creates the topic-only viral content command. These formats
// have no product: they grow an account between promotional posts.
func NewViralCmd() *cobra.Command {
	var (
		templateType string
		tone         string
		niche        string
		format       string
		model        string
	)

	cmd := &cobra.Command{
		Use:   "viral <topic>",
		Short: "Generate topic-only viral content (hooks, storytime, listicle, ...)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := templates.ComposeViral(core.ViralTemplateType(templateType), templates.ViralRequest{
				Topic:         strings.Join(args, " "),
				Niche:         niche,
				Tone:          tone,
				ContentFormat: core.ContentFormat(format),
			})
			if err != nil {
				return err
			}

			client, err := llm.NewClient(model)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			text, err := client.Complete(context.Background(), prompt.System, prompt.User, llm.CompletionOptions{
				Temperature: 0.9,
				MaxTokens:   1024,
			})
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVar(&templateType, "type", string(core.ViralHooks), "viral template type (hooks, short_script, storytime, duet, listicle, challenge, caption_hashtags)")
	cmd.Flags().StringVar(&tone, "tone", "casual", "writing tone")
	cmd.Flags().StringVar(&niche, "niche", "", "niche context (optional; viral templates are niche-agnostic)")
	cmd.Flags().StringVar(&format, "format", string(core.FormatStandard), "content format (standard, spartan)")
	cmd.Flags().StringVar(&model, "model", "", "AI model override")

	return cmd
}

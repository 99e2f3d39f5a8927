package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"promocast/internal/config"
	"promocast/internal/core"
)

// NewGenerateCmd creates the interactive generation command. Unlike scheduled
// runs, fatal errors here surface directly to the user.
func NewGenerateCmd() *cobra.Command {
	var (
		niche        string
		templateType string
		tone         string
		platforms    []string
		format       string
		model        string
		affiliateID  string
		deliver      bool
	)

	cmd := &cobra.Command{
		Use:   "generate <product name>",
		Short: "Generate marketing copy for a product",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if affiliateID == "" {
				affiliateID = config.Get().Affiliate.DefaultTag
			}

			req := core.GenerationRequest{
				ProductName:   strings.Join(args, " "),
				Niche:         niche,
				TemplateType:  core.TemplateType(templateType),
				Tone:          tone,
				Platforms:     platforms,
				ContentFormat: core.ContentFormat(format),
				AIModel:       model,
				AffiliateID:   affiliateID,
			}

			gen, client, err := newGenerator(model)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			content, err := gen.Generate(context.Background(), req)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if _, err := st.SaveGeneratedContent(content, req, ""); err != nil {
				return fmt.Errorf("failed to persist content: %w", err)
			}

			printContent(content)

			if deliver {
				if ok := newDispatcher().Deliver(content, req, "manual_generation"); !ok {
					return fmt.Errorf("webhook delivery failed (see logs)")
				}
				fmt.Println("\nDelivered to webhook.")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&niche, "niche", "beauty", "content niche (beauty, tech, fitness, fashion, food, travel, pets)")
	cmd.Flags().StringVar(&templateType, "template", string(core.TemplateVideoScript), "template type (video_script, comparison, routine_kit, caption, affiliate_email, seo_blog)")
	cmd.Flags().StringVar(&tone, "tone", "enthusiastic", "writing tone")
	cmd.Flags().StringSliceVar(&platforms, "platforms", []string{"tiktok", "instagram"}, "target platforms for captions")
	cmd.Flags().StringVar(&format, "format", string(core.FormatStandard), "content format (standard, spartan)")
	cmd.Flags().StringVar(&model, "model", "", "AI model override")
	cmd.Flags().StringVar(&affiliateID, "affiliate", "", "Amazon Associates tag (defaults to config)")
	cmd.Flags().BoolVar(&deliver, "deliver", false, "POST the result to the configured webhook")

	return cmd
}

func printContent(content *core.GeneratedContent) {
	fmt.Println("=== SCRIPT ===")
	fmt.Println(content.Script)
	fmt.Println("\n=== DEMO SCRIPT ===")
	fmt.Println(content.DemoScript)
	fmt.Println("\n=== PRODUCT DESCRIPTION ===")
	fmt.Println(content.ProductDescription)
	for platformName, caption := range content.CaptionsByPlatform {
		fmt.Printf("\n=== CAPTION (%s) ===\n%s\n", platformName, caption)
	}
	fmt.Printf("\nAffiliate link: %s\n", content.AffiliateLink)
}

package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"promocast/internal/config"
	"promocast/internal/core"
)

// NewWebhookCmd creates the webhook command family.
func NewWebhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Inspect and test the delivery endpoint",
	}

	cmd.AddCommand(newWebhookTestCmd())
	cmd.AddCommand(newWebhookStatsCmd())

	return cmd
}

func newWebhookStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show delivery statistics for this process",
		Long: `Show the dispatcher's delivery counters. Statistics are per-process and
ephemeral: a fresh invocation starts from zero, so this is most useful inside
the serve daemon's logs or right after a test delivery.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := newDispatcher().Stats()
			fmt.Printf("Endpoint:     %s\n", config.Get().Webhook.URL)
			fmt.Printf("Total sent:   %d\n", stats.TotalSent)
			fmt.Printf("Successes:    %d\n", stats.SuccessCount)
			fmt.Printf("Failures:     %d\n", stats.FailureCount)
			fmt.Printf("Success rate: %.0f%%\n", stats.SuccessRate*100)
			if !stats.LastSent.IsZero() {
				fmt.Printf("Last sent:    %s\n", stats.LastSent.Format(time.RFC3339))
			}
			if stats.LastError != "" {
				fmt.Printf("Last error:   %s\n", stats.LastError)
			}
			return nil
		},
	}
}

func newWebhookTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Send a sample payload to the configured webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := config.Get().Webhook.URL
			if url == "" {
				return fmt.Errorf("webhook.url is not configured")
			}

			req := core.GenerationRequest{
				ProductName:   "Sample Product",
				Niche:         "beauty",
				TemplateType:  core.TemplateVideoScript,
				Tone:          "enthusiastic",
				Platforms:     []string{"tiktok", "instagram"},
				ContentFormat: core.FormatStandard,
			}
			content := &core.GeneratedContent{
				ID:     uuid.NewString(),
				Script: "This is a connectivity test from promocast. No content was generated.",
				CaptionsByPlatform: map[string]string{
					"tiktok":    "Connectivity test.",
					"instagram": "Connectivity test.",
				},
				Metadata: core.Metadata{
					AIModel:       "none",
					ContentFormat: req.ContentFormat,
					TemplateType:  req.TemplateType,
					Tone:          req.Tone,
					Niche:         req.Niche,
					Platforms:     req.Platforms,
					GeneratedAt:   time.Now().UTC(),
				},
			}

			d := newDispatcher()
			ok := d.Deliver(content, req, "webhook_test")
			stats := d.Stats()

			if !ok {
				return fmt.Errorf("delivery to %s failed: %s", url, stats.LastError)
			}

			fmt.Printf("Delivered test payload to %s\n", url)
			fmt.Printf("Sent: %d  Success: %d  Failed: %d  Success rate: %.0f%%\n",
				stats.TotalSent, stats.SuccessCount, stats.FailureCount, stats.SuccessRate*100)
			return nil
		},
	}
}

package handlers

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"promocast/internal/config"
	"promocast/internal/generator"
	"promocast/internal/llm"
	"promocast/internal/scheduler"
	"promocast/internal/store"
	"promocast/internal/webhook"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promocast",
		Short: "Promocast generates multi-platform marketing copy and relays it to your automation webhook.",
		Long: `Promocast turns a product name plus niche/tone/template selectors into
platform-ready marketing copy using an LLM, then posts the result to an
external automation endpoint - on demand or on a cron schedule.`,
	}

	// Initialize configuration
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.promocast.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewViralCmd())
	rootCmd.AddCommand(NewScheduleCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewWebhookCmd())
	rootCmd.AddCommand(NewTrendingCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if config.Get().App.ConfigFile != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", config.Get().App.ConfigFile)
	}
}

// openStore opens the sqlite store under the configured data directory.
func openStore() (*store.Store, error) {
	return store.NewStore(config.Get().App.DataDir)
}

// newDispatcher builds the webhook dispatcher from configuration.
func newDispatcher() *webhook.Dispatcher {
	cfg := config.Get().Webhook
	timeout, _ := time.ParseDuration(cfg.Timeout)
	batchDelay, _ := time.ParseDuration(cfg.BatchDelay)
	return webhook.NewDispatcher(cfg.URL, timeout, batchDelay)
}

// newGenerator builds the content generator on top of a live LLM client.
func newGenerator(model string) (*generator.Generator, *llm.Client, error) {
	client, err := llm.NewClient(model)
	if err != nil {
		return nil, nil, err
	}
	return generator.New(client), client, nil
}

// newSchedulerService wires the scheduler with its collaborators.
func newSchedulerService(st *store.Store) (*scheduler.Service, *llm.Client, error) {
	gen, client, err := newGenerator("")
	if err != nil {
		return nil, nil, err
	}

	cfg := config.Get().Scheduler
	svc := scheduler.New(gen, st, st, newDispatcher(), scheduler.Options{
		FailureThreshold:   cfg.FailureThreshold,
		EmptyTickIsSuccess: cfg.EmptyTickIsSuccess,
		Timezone:           cfg.Timezone,
	})
	return svc, client, nil
}

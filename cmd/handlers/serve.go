package handlers

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"promocast/internal/logger"
)

// NewServeCmd creates the serve command that runs the scheduler daemon.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduler daemon until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			svc, client, err := newSchedulerService(st)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err := svc.Start(); err != nil {
				return err
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			logger.Info("shutting down", "signal", sig.String())

			svc.Stop()
			return nil
		},
	}
}

package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobguard/go-jobguard/pkg/config"
	"github.com/jobguard/go-jobguard/pkg/engine"
	"github.com/jobguard/go-jobguard/pkg/server"
	"github.com/jobguard/go-jobguard/pkg/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the assessment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		guard := engine.New()
		store := storage.NewMemoryStore(cfg.HistorySize)
		srv := server.New(cfg, logger, guard, store)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("starting jobguard",
			zap.String("addr", cfg.Addr()),
			zap.Int("rate_limit_per_minute", cfg.RateLimitPerMinute),
			zap.Int("rate_limit_per_hour", cfg.RateLimitPerHour),
		)
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

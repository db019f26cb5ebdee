// Package cmd implements the jobguard command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "jobguard",
	Short: "Fraud risk assessment for job postings",
	Long: `jobguard scores job postings for fraud risk using heuristic
analysis of the posting text, recruiter email, company URL and the
platform the posting was found on.

Run "jobguard serve" to start the HTTP API, or "jobguard assess" for a
one-shot assessment from the command line.`,
	SilenceUsage: true,
}

// Execute runs the CLI. Errors are reported on stderr and reflected in
// the exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a production zap logger at the configured level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

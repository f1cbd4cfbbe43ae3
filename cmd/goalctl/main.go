package main

import (
	"os"

	"github.com/templui/goaltracker/cmd/goalctl/cmd"
	"github.com/templui/goaltracker/internal/config"
	"github.com/templui/goaltracker/internal/logger"
)

func main() {
	cfg := config.Load()

	// stdout is reserved for command output
	logger.Init(os.Stderr, cfg.IsDevelopment(), cfg.SentryDSN)
	defer logger.Flush()

	rootCmd := cmd.RootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		logger.Flush()
		os.Exit(1)
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Aliagaaaaaa/pets/internal/config"
	"github.com/Aliagaaaaaa/pets/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI
// flags, and attaches the logger plus a per-invocation trace ID to the
// command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) {
	logCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
	}

	base := logging.New(logging.Config{
		Level:  logCfg.Level,
		Format: logCfg.Format,
		File:   logCfg.File,
	})
	logger = logging.ComponentLogger(base, "cli")

	ctx := logging.ContextWithTraceID(cmd.Context(), logging.NewTraceID())
	ctx = base.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
}

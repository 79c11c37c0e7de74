package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"invoice-ledger/internal/adapters/repl"
	"invoice-ledger/internal/app"
	"invoice-ledger/internal/config"
	"invoice-ledger/internal/core"
	"invoice-ledger/internal/logger"
)

var version = "1.0.0"

// NewRootCommand builds the command tree. The root command runs the
// interactive menu against a fresh in-memory ledger.
func NewRootCommand(cfg *config.Config, clock core.Clock) *cobra.Command {
	var logOutput io.Closer
	closeLogOutput := func() error {
		if logOutput == nil {
			return nil
		}
		c := logOutput
		logOutput = nil
		return c.Close()
	}

	rootCmd := &cobra.Command{
		Use:   "invoice-ledger",
		Short: "In-memory invoicing ledger with an interactive menu",
		Long: `invoice-ledger tracks clients, generates invoices for billable items,
records payments and reports outstanding balances. Everything lives in
memory for the duration of the session.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			closer, err := logger.Setup(cfg.GetLoggerConfig())
			if err != nil {
				return err
			}
			logOutput = closer
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSession(cmd, cfg, clock)
			return errors.Join(err, closeLogOutput())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLogOutput()
		},
	}

	rootCmd.Flags().IntVar(&cfg.DueInDays, "due-days", cfg.DueInDays, "payment term in days for new invoices")
	rootCmd.Flags().StringVar(&cfg.ExportPath, "export", cfg.ExportPath, "write a JSON snapshot of the session to this file on exit")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newSchemaCommand())
	return rootCmd
}

func runSession(cmd *cobra.Command, cfg *config.Config, clock core.Clock) error {
	log := logger.WithComponent("cli")
	ledger := core.NewLedger(clock, core.NewShortID, cfg.DueInDays)
	svc := app.NewAppService(ledger, logger.WithComponent("app"))

	log.Info().Int("due_days", cfg.DueInDays).Msg("session started")
	repl.Run(cmd.Context(), svc, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())

	if cfg.ExportPath == "" {
		return nil
	}
	if err := writeSnapshot(cfg.ExportPath, svc.ExportSnapshot(cmd.Context())); err != nil {
		log.Error().Err(err).Str("path", cfg.ExportPath).Msg("snapshot export failed")
		return err
	}
	log.Info().Str("path", cfg.ExportPath).Msg("snapshot exported")
	return nil
}

func writeSnapshot(path string, snap core.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Execute runs the command tree with os.Args.
func Execute(cfg *config.Config) {
	rootCmd := NewRootCommand(cfg, core.SystemClock{})
	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

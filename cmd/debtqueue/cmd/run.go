package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/debtqueue/internal/console"
	"github.com/dbsmedya/debtqueue/internal/debtheap"
	"github.com/dbsmedya/debtqueue/internal/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive repayment session",
	Long: `Run opens a menu-driven session over a fixed-capacity repayment queue.

Menu actions:
  - Add a debt (description, interest rate 0-100, amount due > 0, ID)
  - Repay the highest-priority debt
  - Display the front debt without removing it
  - Find a debt by ID
  - List queued debts in repayment order

The capacity comes from --capacity, then queue.capacity in the config file,
and is asked for at startup when neither is set.

Example:
  debtqueue run --capacity 10`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := console.SetupSignalHandler(parent, func(sig os.Signal) {
		log.Warnw("received signal, ending session", "signal", sig.String())
	})
	defer stop()

	prompter := console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
		Color:     cfg.Display.Color,
		Precision: cfg.Display.Precision,
		Logger:    log,
	})
	defer prompter.Close()

	queueCapacity := cfg.ResolveCapacity(0)
	if queueCapacity == 0 {
		queueCapacity, err = prompter.PromptCapacity(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read capacity: %w", err)
		}
	}

	heap, err := debtheap.New(queueCapacity)
	if err != nil {
		return fmt.Errorf("failed to create queue: %w", err)
	}
	log.Infow("session started", "capacity", queueCapacity)

	session := console.NewSession(heap, prompter)
	runErr := session.Run(ctx)

	stats := session.Stats()
	log.Infow("session finished",
		"added", stats.Added,
		"repaid", stats.Repaid,
		"peeked", stats.Peeked,
		"lookups", stats.Lookups,
		"rejected", stats.Rejected,
		"remaining", heap.Len(),
	)

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

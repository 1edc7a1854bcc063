package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/debtqueue/internal/logger"
	"github.com/dbsmedya/debtqueue/internal/report"
	"github.com/dbsmedya/debtqueue/internal/schedule"
)

var planFile string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the repayment order for a batch of debts",
	Long: `Plan loads debts from a YAML file, pushes them through the bounded
repayment queue and prints the order in which they would be repaid.

The plan shows:
  - Queue overview (capacity, entries read)
  - Repayment order (highest interest first, larger amount on ties)
  - Entries rejected as invalid or because the queue was full

File format:
  debts:
    - description: Credit card
      interest_rate: 19.9
      amount_due: 1200
      id: 1

Example:
  debtqueue plan --file debts.yaml --capacity 20`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFile, "file", "f", "",
		"YAML file listing the debts (required)")
	planCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	entries, err := schedule.LoadFile(planFile)
	if err != nil {
		return err
	}

	plan, err := schedule.Build(entries, cfg.Queue.Capacity)
	if err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}
	log.WithOperation("plan").Infow("plan built",
		"file", planFile,
		"entries", len(entries),
		"scheduled", len(plan.Order),
		"rejected", len(plan.Rejected),
	)
	for _, r := range plan.Rejected {
		log.WithDebt(r.Entry.ID).Warnw("entry rejected", "index", r.Index, "error", r.Err)
	}

	out := cmd.OutOrStdout()
	report.Header(out, "Repayment Plan: %s", planFile)

	fmt.Fprintln(out)
	report.Section(out, "Queue Overview")
	fmt.Fprintf(out, "  Capacity:      %d", plan.Capacity)
	if cfg.Queue.Capacity == 0 {
		fmt.Fprint(out, " (sized to batch)")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Entries Read:  %d\n", len(entries))

	fmt.Fprintln(out)
	return schedule.Render(out, plan, cfg.Display.Precision)
}

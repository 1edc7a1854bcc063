package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/debtqueue/internal/config"
	"github.com/dbsmedya/debtqueue/internal/schedule"
)

var validateDebts string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and debt batch files",
	Long: `Validate checks the configuration file and, optionally, a batch file of debts.

Checks performed:
  - Configuration syntax and value ranges
  - Every batch entry: interest rate in [0,100], amount due > 0

Example:
  debtqueue validate --config debtqueue.yaml --debts debts.yaml`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateDebts, "debts", "d", "",
		"YAML file listing debts to check")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := GetConfigFile()

	fmt.Fprintf(out, "\n=== Configuration Validation ===\n")
	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(out, "Config file: %s (not found, using defaults)\n", configFile)
	} else {
		fmt.Fprintf(out, "Config file: %s\n", configFile)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return fmt.Errorf("configuration is invalid")
	}
	printConfigSummary(out, cfg)
	fmt.Fprintf(out, "✅ Configuration is valid\n")

	if validateDebts == "" {
		return nil
	}

	fmt.Fprintf(out, "\n--- Debts: %s ---\n", validateDebts)
	entries, err := schedule.LoadFile(validateDebts)
	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return fmt.Errorf("debts file is invalid")
	}
	fmt.Fprintf(out, "Entries: %d\n", len(entries))

	rejected := schedule.Validate(entries)
	for _, r := range rejected {
		fmt.Fprintf(out, "❌ entry %d (ID %d): %v\n", r.Index+1, r.Entry.ID, r.Err)
	}
	if cfg.Queue.Capacity > 0 && len(entries)-len(rejected) > cfg.Queue.Capacity {
		fmt.Fprintf(out, "⚠️  %d valid entries exceed queue capacity %d; the rest will be rejected\n",
			len(entries)-len(rejected), cfg.Queue.Capacity)
	}
	if len(rejected) > 0 {
		return fmt.Errorf("validation failed for %d of %d debts", len(rejected), len(entries))
	}

	fmt.Fprintln(out, "✅ All debts validated successfully")
	return nil
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	if cfg.Queue.Capacity > 0 {
		fmt.Fprintf(w, "Queue capacity: %d\n", cfg.Queue.Capacity)
	} else {
		fmt.Fprintf(w, "Queue capacity: ask at startup\n")
	}
	fmt.Fprintf(w, "Display: color=%v precision=%d\n", cfg.Display.Color, cfg.Display.Precision)
	fmt.Fprintf(w, "Logging: level=%s format=%s output=%s\n", cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
}

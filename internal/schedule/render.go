package schedule

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dbsmedya/debtqueue/internal/debt"
	"github.com/dbsmedya/debtqueue/internal/report"
)

// Render writes the repayment order as a table followed by any rejected entries.
func Render(w io.Writer, plan *Plan, precision int) error {
	num := func(v float64) string { return report.FormatNumber(v, precision) }

	report.Section(w, "Repayment Order (highest interest first)")
	if len(plan.Order) == 0 {
		fmt.Fprintln(w, "  (no debts scheduled)")
	} else {
		table := report.NewTable(
			report.Column{Title: "#", Align: report.AlignRight},
			report.Column{Title: "ID", Align: report.AlignRight},
			report.Column{Title: "Description", MaxWidth: debt.MaxDescriptionLength},
			report.Column{Title: "Rate %", Align: report.AlignRight},
			report.Column{Title: "Amount Due", Align: report.AlignRight},
		)
		for i, d := range plan.Order {
			table.AddRow(strconv.Itoa(i+1), strconv.Itoa(d.ID), d.Description, num(d.InterestRate), num(d.AmountDue))
		}
		if err := table.Render(w); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "\n  Scheduled: %d debt(s), total due %s\n", len(plan.Order), num(plan.Total()))

	if len(plan.Rejected) > 0 {
		fmt.Fprintln(w)
		report.Section(w, "Rejected Entries")
		for _, r := range plan.Rejected {
			fmt.Fprintf(w, "  • entry %d (ID %d, %q): %v\n", r.Index+1, r.Entry.ID, r.Entry.Description, r.Err)
		}
	}
	return nil
}

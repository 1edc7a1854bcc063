package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/debtqueue/internal/debt"
	"github.com/dbsmedya/debtqueue/internal/debtheap"
	"github.com/dbsmedya/debtqueue/internal/logger"
	"github.com/dbsmedya/debtqueue/internal/report"
)

// Stats counts what happened during a session.
type Stats struct {
	Added    int // Debts inserted
	Repaid   int // Debts extracted
	Peeked   int // Successful front displays
	Lookups  int // Find-by-ID requests, found or not
	Rejected int // Operations refused: full, empty or not found
}

// action handles one menu entry. It returns true to end the session.
type action func(ctx context.Context) (bool, error)

type menuItem struct {
	label string
	run   action
}

// Session dispatches menu choices to the heap and reports the outcome.
type Session struct {
	heap   *debtheap.Heap
	prompt *Prompter
	log    *logger.Logger
	menu   *orderedmap.OrderedMap[string, menuItem]
	stats  Stats
}

// NewSession binds a heap to a prompter. The prompter is owned by the caller.
func NewSession(h *debtheap.Heap, p *Prompter) *Session {
	s := &Session{
		heap:   h,
		prompt: p,
		log:    p.log,
		menu:   orderedmap.NewOrderedMap[string, menuItem](),
	}

	items := []menuItem{
		{"Add Debt", s.add},
		{"Repay Debt", s.repay},
		{"Display Front Debt", s.front},
		{"Find Debt by ID", s.find},
		{"List Debts", s.list},
		{"Exit", s.exit},
	}
	for i, item := range items {
		s.menu.Set(strconv.Itoa(i+1), item)
	}
	return s
}

// Stats returns the counters collected so far.
func (s *Session) Stats() Stats {
	return s.stats
}

// Run loops over the menu until Exit is chosen or input ends.
// End of input is a normal finish; context cancellation is returned as an error.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.printMenu()

		key, err := s.prompt.readChoice(ctx,
			"Enter your choice: ",
			fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d: ", s.menu.Len()),
			func(k string) bool {
				_, ok := s.menu.Get(k)
				return ok
			},
		)
		if err != nil {
			return s.finish(err)
		}

		item, _ := s.menu.Get(key)
		stop, err := item.run(ctx)
		if err != nil {
			return s.finish(err)
		}
		if stop {
			return nil
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.log.Debug("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) printMenu() {
	s.prompt.print.Plain("")
	s.prompt.print.Title("--- Debt Repayment Scheduling (%d/%d) ---", s.heap.Len(), s.heap.Cap())
	for el := s.menu.Front(); el != nil; el = el.Next() {
		s.prompt.print.Plain("%s. %s", el.Key, el.Value.label)
	}
}

func (s *Session) num(v float64) string {
	return report.FormatNumber(v, s.prompt.opts.Precision)
}

func (s *Session) add(ctx context.Context) (bool, error) {
	d, err := s.prompt.readDebt(ctx)
	if err != nil {
		return false, err
	}

	log := s.log.WithOperation("insert").WithDebt(d.ID)
	if err := s.heap.Insert(d); err != nil {
		if errors.Is(err, debtheap.ErrCapacityExceeded) {
			s.stats.Rejected++
			log.Warnw("insert rejected", "error", err)
			s.prompt.print.Error("Queue is full! Cannot add more debts.")
			return false, nil
		}
		return false, err
	}

	s.stats.Added++
	log.Debugw("debt added", "rate", d.InterestRate, "amount", d.AmountDue, "queued", s.heap.Len())
	s.prompt.print.Success("Debt '%s' (Interest Rate: %s%%, Amount Due: %s) added to queue.",
		d.Description, s.num(d.InterestRate), s.num(d.AmountDue))
	return false, nil
}

func (s *Session) repay(ctx context.Context) (bool, error) {
	log := s.log.WithOperation("repay")

	d, err := s.heap.ExtractMax()
	if errors.Is(err, debtheap.ErrQueueEmpty) {
		s.stats.Rejected++
		log.Warnw("repay rejected", "error", err)
		s.prompt.print.Warn("Queue is empty! No debts to repay.")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.stats.Repaid++
	log.WithDebt(d.ID).Debugw("debt repaid", "rate", d.InterestRate, "amount", d.AmountDue, "queued", s.heap.Len())
	s.prompt.print.Success("Repaying debt ID %d: '%s' with Interest Rate: %s%% and Amount Due: %s",
		d.ID, d.Description, s.num(d.InterestRate), s.num(d.AmountDue))
	return false, nil
}

func (s *Session) front(ctx context.Context) (bool, error) {
	d, err := s.heap.PeekMax()
	if errors.Is(err, debtheap.ErrQueueEmpty) {
		s.stats.Rejected++
		s.log.WithOperation("peek").Warnw("peek rejected", "error", err)
		s.prompt.print.Warn("Queue is empty! No debts to display.")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.stats.Peeked++
	s.prompt.print.Plain("Front debt: '%s' (Interest Rate: %s%%, Amount Due: %s)",
		d.Description, s.num(d.InterestRate), s.num(d.AmountDue))
	return false, nil
}

func (s *Session) find(ctx context.Context) (bool, error) {
	id, err := s.prompt.readID(ctx, "Enter debt ID to find: ")
	if err != nil {
		return false, err
	}

	s.stats.Lookups++
	log := s.log.WithOperation("find").WithDebt(id)

	d, err := s.heap.FindByID(id)
	if errors.Is(err, debtheap.ErrNotFound) {
		s.stats.Rejected++
		log.Debugw("lookup missed", "queued", s.heap.Len())
		s.prompt.print.Warn("No debt found with ID %d.", id)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.prompt.print.Plain("Found debt ID %d: '%s' (Interest Rate: %s%%, Amount Due: %s)",
		d.ID, d.Description, s.num(d.InterestRate), s.num(d.AmountDue))
	return false, nil
}

// list shows the queued debts in repayment order without touching the heap.
func (s *Session) list(ctx context.Context) (bool, error) {
	if s.heap.IsEmpty() {
		s.prompt.print.Warn("Queue is empty! No debts to list.")
		return false, nil
	}

	records := s.heap.Records()
	sort.SliceStable(records, func(i, j int) bool {
		return debt.Outranks(records[i], records[j])
	})

	table := report.NewTable(
		report.Column{Title: "#", Align: report.AlignRight},
		report.Column{Title: "ID", Align: report.AlignRight},
		report.Column{Title: "Description", MaxWidth: debt.MaxDescriptionLength},
		report.Column{Title: "Rate %", Align: report.AlignRight},
		report.Column{Title: "Amount Due", Align: report.AlignRight},
	)
	for i, d := range records {
		table.AddRow(strconv.Itoa(i+1), strconv.Itoa(d.ID), d.Description, s.num(d.InterestRate), s.num(d.AmountDue))
	}
	return false, table.Render(s.prompt.print.out)
}

func (s *Session) exit(ctx context.Context) (bool, error) {
	s.log.Debugw("exit requested", "queued", s.heap.Len())
	return true, nil
}

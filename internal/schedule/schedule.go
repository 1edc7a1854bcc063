// Package schedule builds a complete repayment order for a batch of debts
// by pushing them through the bounded priority heap and draining it.
package schedule

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/debtqueue/internal/debt"
	"github.com/dbsmedya/debtqueue/internal/debtheap"
)

// Entry is one debt as written in a batch file.
type Entry struct {
	Description  string  `yaml:"description"`
	InterestRate float64 `yaml:"interest_rate"`
	AmountDue    float64 `yaml:"amount_due"`
	ID           int     `yaml:"id"`
}

// File is the top-level layout of a batch file.
type File struct {
	Debts []Entry `yaml:"debts"`
}

// Debt validates the entry and converts it to a debt record.
func (e Entry) Debt() (debt.Debt, error) {
	return debt.New(e.Description, e.InterestRate, e.AmountDue, e.ID)
}

// ErrNoDebts is returned when a batch file lists no debts.
var ErrNoDebts = errors.New("no debts defined")

// LoadFile reads and decodes a YAML batch file. Unknown keys are rejected
// so that misspelled fields do not silently become zero values.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read debts file: %w", err)
	}
	return Decode(data)
}

// Decode parses batch file content.
func Decode(data []byte) ([]Entry, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse debts file: %w", err)
	}
	if len(f.Debts) == 0 {
		return nil, ErrNoDebts
	}
	return f.Debts, nil
}

// Rejection records a batch entry that did not make it into the plan.
type Rejection struct {
	Index int // Position in the batch, 0-based
	Entry Entry
	Err   error
}

// Plan is the outcome of scheduling a batch.
type Plan struct {
	Capacity int
	Order    []debt.Debt // Highest priority first
	Rejected []Rejection
}

// Total returns the sum of amounts in the repayment order.
func (p *Plan) Total() float64 {
	var total float64
	for _, d := range p.Order {
		total += d.AmountDue
	}
	return total
}

// Build inserts every valid entry into a heap of the given capacity and
// drains it. A capacity of 0 sizes the heap to the batch. Invalid entries
// and entries arriving after the heap is full are reported in Rejected.
func Build(entries []Entry, capacity int) (*Plan, error) {
	if capacity == 0 {
		capacity = len(entries)
	}
	h, err := debtheap.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}

	plan := &Plan{Capacity: capacity}
	for i, e := range entries {
		d, err := e.Debt()
		if err != nil {
			plan.Rejected = append(plan.Rejected, Rejection{Index: i, Entry: e, Err: err})
			continue
		}
		if err := h.Insert(d); err != nil {
			plan.Rejected = append(plan.Rejected, Rejection{Index: i, Entry: e, Err: err})
		}
	}

	plan.Order = h.Drain()
	return plan, nil
}

// Validate checks every entry and returns the ones that fail.
func Validate(entries []Entry) []Rejection {
	var rejected []Rejection
	for i, e := range entries {
		if _, err := e.Debt(); err != nil {
			rejected = append(rejected, Rejection{Index: i, Entry: e, Err: err})
		}
	}
	return rejected
}

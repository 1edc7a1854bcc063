// Package debtheap provides the fixed-capacity max-heap that orders debts for repayment.
package debtheap

import (
	"fmt"

	"github.com/dbsmedya/debtqueue/internal/debt"
)

// Heap is a bounded binary max-heap over debts.
// Slot 0 always holds the debt with the highest repayment priority.
// Only the first n slots are live; the backing slice never grows.
type Heap struct {
	slots []debt.Debt
	n     int
}

// New creates an empty heap that holds at most capacity debts.
func New(capacity int) (*Heap, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return &Heap{
		slots: make([]debt.Debt, capacity),
	}, nil
}

// Len returns the number of live debts.
func (h *Heap) Len() int {
	return h.n
}

// Cap returns the fixed capacity.
func (h *Heap) Cap() int {
	return len(h.slots)
}

// IsEmpty returns true if the heap holds no debts.
func (h *Heap) IsEmpty() bool {
	return h.n == 0
}

// IsFull returns true if no further debt can be inserted.
func (h *Heap) IsFull() bool {
	return h.n == len(h.slots)
}

// Insert adds a debt and restores heap order by sifting it up.
// The description and numeric fields are expected to be validated already.
// Returns a *CapacityError, leaving the heap untouched, when full.
func (h *Heap) Insert(d debt.Debt) error {
	if h.IsFull() {
		return &CapacityError{Capacity: len(h.slots)}
	}

	h.slots[h.n] = d
	h.n++
	h.siftUp(h.n - 1)
	return nil
}

// ExtractMax removes and returns the highest-priority debt.
// Returns ErrQueueEmpty when there is nothing to extract.
func (h *Heap) ExtractMax() (debt.Debt, error) {
	if h.IsEmpty() {
		return debt.Debt{}, ErrQueueEmpty
	}

	top := h.slots[0]
	last := h.n - 1
	h.slots[0] = h.slots[last]
	h.slots[last] = debt.Debt{}
	h.n--

	if h.n > 1 {
		h.siftDown(0)
	}
	return top, nil
}

// PeekMax returns the highest-priority debt without removing it.
func (h *Heap) PeekMax() (debt.Debt, error) {
	if h.IsEmpty() {
		return debt.Debt{}, ErrQueueEmpty
	}
	return h.slots[0], nil
}

// FindByID returns the first live debt, in slot order, whose ID matches.
// IDs are not the heap key, so this is a linear scan.
func (h *Heap) FindByID(id int) (debt.Debt, error) {
	for i := 0; i < h.n; i++ {
		if h.slots[i].ID == id {
			return h.slots[i], nil
		}
	}
	return debt.Debt{}, &NotFoundError{ID: id}
}

// Records returns a copy of the live debts in slot order.
func (h *Heap) Records() []debt.Debt {
	out := make([]debt.Debt, h.n)
	copy(out, h.slots[:h.n])
	return out
}

// Drain extracts every debt, returning them in repayment order.
func (h *Heap) Drain() []debt.Debt {
	out := make([]debt.Debt, 0, h.n)
	for !h.IsEmpty() {
		d, _ := h.ExtractMax()
		out = append(out, d)
	}
	return out
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (h *Heap) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
}

// siftUp moves slot i toward the root while it strictly outranks its parent.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !debt.Outranks(h.slots[i], h.slots[p]) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// siftDown moves slot i toward the leaves until neither child outranks it.
func (h *Heap) siftDown(i int) {
	for {
		best := h.best(i)
		if best == i {
			return
		}
		h.swap(i, best)
		i = best
	}
}

// best returns whichever of i and its live children has the highest priority.
// A child replaces the current candidate only when it strictly outranks it.
func (h *Heap) best(i int) int {
	best := i
	for _, c := range [2]int{left(i), right(i)} {
		if c < h.n && debt.Outranks(h.slots[c], h.slots[best]) {
			best = c
		}
	}
	return best
}

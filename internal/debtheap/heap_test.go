package debtheap

import (
	"errors"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/debtqueue/internal/debt"
)

// assertHeapOrder walks the live slots and checks every parent dominates its child.
func assertHeapOrder(t *testing.T, h *Heap) {
	t.Helper()
	records := h.Records()
	for i := 1; i < len(records); i++ {
		p := (i - 1) / 2
		if debt.Compare(records[p], records[i]) < 0 {
			t.Fatalf("heap order violated: parent %d %v < child %d %v", p, records[p], i, records[i])
		}
	}
}

func linearMax(records []debt.Debt) debt.Debt {
	best := records[0]
	for _, r := range records[1:] {
		if debt.Outranks(r, best) {
			best = r
		}
	}
	return best
}

func randomDebt(r *rand.Rand, id int) debt.Debt {
	// Few distinct rates and amounts so ties are common
	return debt.Debt{
		Description:  "random",
		InterestRate: float64(r.IntN(5)) * 2.5,
		AmountDue:    float64(r.IntN(4)+1) * 100,
		ID:           id,
	}
}

func exampleDebts() []debt.Debt {
	return []debt.Debt{
		{Description: "A", InterestRate: 5, AmountDue: 100, ID: 1},
		{Description: "B", InterestRate: 9, AmountDue: 50, ID: 2},
		{Description: "C", InterestRate: 9, AmountDue: 200, ID: 3},
	}
}

func TestNew(t *testing.T) {
	h, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Cap())
	assert.Equal(t, 0, h.Len())
	assert.True(t, h.IsEmpty())
	assert.False(t, h.IsFull())

	for _, capacity := range []int{0, -1} {
		h, err := New(capacity)
		assert.Nil(t, h)
		assert.True(t, errors.Is(err, ErrInvalidCapacity), "capacity %d: got %v", capacity, err)
	}
}

func TestExampleOrdering(t *testing.T) {
	h, err := New(3)
	require.NoError(t, err)

	for _, d := range exampleDebts() {
		require.NoError(t, h.Insert(d))
		assertHeapOrder(t, h)
	}
	assert.True(t, h.IsFull())

	top, err := h.PeekMax()
	require.NoError(t, err)
	assert.Equal(t, "C", top.Description, "tie on 9% should go to the larger amount")

	var order []string
	for !h.IsEmpty() {
		d, err := h.ExtractMax()
		require.NoError(t, err)
		order = append(order, d.Description)
		assertHeapOrder(t, h)
	}
	assert.Equal(t, []string{"C", "B", "A"}, order)
}

func TestFindByID(t *testing.T) {
	h, err := New(3)
	require.NoError(t, err)
	for _, d := range exampleDebts() {
		require.NoError(t, h.Insert(d))
	}
	before := h.Records()

	found, err := h.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "B", found.Description)

	_, err = h.FindByID(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, 99, nf.ID)

	assert.Equal(t, before, h.Records(), "lookups must not reorder")
}

func TestFindByIDReturnsFirstDuplicate(t *testing.T) {
	h, err := New(3)
	require.NoError(t, err)
	require.NoError(t, h.Insert(debt.Debt{Description: "low", InterestRate: 1, AmountDue: 10, ID: 5}))
	require.NoError(t, h.Insert(debt.Debt{Description: "high", InterestRate: 20, AmountDue: 10, ID: 5}))

	// "high" sifted into slot 0, so it is the first match in slot order
	found, err := h.FindByID(5)
	require.NoError(t, err)
	assert.Equal(t, "high", found.Description)
}

func TestFindByIDIgnoresExtracted(t *testing.T) {
	h, err := New(2)
	require.NoError(t, err)
	require.NoError(t, h.Insert(debt.Debt{Description: "gone", InterestRate: 50, AmountDue: 10, ID: 1}))
	require.NoError(t, h.Insert(debt.Debt{Description: "kept", InterestRate: 1, AmountDue: 10, ID: 2}))

	_, err = h.ExtractMax()
	require.NoError(t, err)

	_, err = h.FindByID(1)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCapacityExceeded(t *testing.T) {
	h, err := New(1)
	require.NoError(t, err)

	require.NoError(t, h.Insert(debt.Debt{Description: "first", InterestRate: 1, AmountDue: 1, ID: 1}))
	before := h.Records()

	err = h.Insert(debt.Debt{Description: "second", InterestRate: 99, AmountDue: 1, ID: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))

	var capErr *CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 1, capErr.Capacity)

	assert.Equal(t, 1, h.Len())
	assert.True(t, h.IsFull())
	assert.Equal(t, before, h.Records())
}

func TestEmptyOperations(t *testing.T) {
	h, err := New(2)
	require.NoError(t, err)

	_, err = h.ExtractMax()
	assert.True(t, errors.Is(err, ErrQueueEmpty))
	_, err = h.PeekMax()
	assert.True(t, errors.Is(err, ErrQueueEmpty))

	assert.Equal(t, 0, h.Len())
	assert.True(t, h.IsEmpty())
}

func TestExtractLastElement(t *testing.T) {
	h, err := New(2)
	require.NoError(t, err)
	require.NoError(t, h.Insert(debt.Debt{Description: "only", InterestRate: 3, AmountDue: 30, ID: 1}))

	d, err := h.ExtractMax()
	require.NoError(t, err)
	assert.Equal(t, "only", d.Description)
	assert.True(t, h.IsEmpty())
	assert.Empty(t, h.Records())

	// Heap is fully reusable after emptying
	require.NoError(t, h.Insert(debt.Debt{Description: "again", InterestRate: 4, AmountDue: 40, ID: 2}))
	require.NoError(t, h.Insert(debt.Debt{Description: "more", InterestRate: 5, AmountDue: 50, ID: 3}))
	assert.True(t, h.IsFull())
	top, err := h.PeekMax()
	require.NoError(t, err)
	assert.Equal(t, "more", top.Description)
}

func TestPeekDoesNotMutate(t *testing.T) {
	h, err := New(3)
	require.NoError(t, err)
	for _, d := range exampleDebts() {
		require.NoError(t, h.Insert(d))
	}
	before := h.Records()

	for i := 0; i < 3; i++ {
		_, err := h.PeekMax()
		require.NoError(t, err)
	}
	assert.Equal(t, before, h.Records())
	assert.Equal(t, 3, h.Len())
}

func TestRandomizedInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for round := 0; round < 50; round++ {
		capacity := r.IntN(32) + 1
		h, err := New(capacity)
		require.NoError(t, err)

		nextID := 0
		for step := 0; step < 200; step++ {
			if r.IntN(3) > 0 {
				nextID++
				err := h.Insert(randomDebt(r, nextID))
				if h.Len() == capacity && err != nil {
					assert.True(t, errors.Is(err, ErrCapacityExceeded))
				}
			} else {
				_, err := h.ExtractMax()
				if err != nil {
					assert.True(t, errors.Is(err, ErrQueueEmpty))
					assert.Equal(t, 0, h.Len())
				}
			}

			assertHeapOrder(t, h)
			if !h.IsEmpty() {
				top, err := h.PeekMax()
				require.NoError(t, err)
				assert.Equal(t, 0, debt.Compare(top, linearMax(h.Records())),
					"peek must equal the linear-scan maximum")
			}
		}
	}
}

func TestDrainOrderAndRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	const k = 64

	h, err := New(k)
	require.NoError(t, err)

	inserted := make([]debt.Debt, 0, k)
	for i := 0; i < k; i++ {
		d := randomDebt(r, i)
		inserted = append(inserted, d)
		require.NoError(t, h.Insert(d))
	}

	drained := h.Drain()
	require.Len(t, drained, k)
	assert.True(t, h.IsEmpty())

	for i := 1; i < len(drained); i++ {
		if debt.Compare(drained[i-1], drained[i]) < 0 {
			t.Fatalf("drain order increased at %d: %v then %v", i, drained[i-1], drained[i])
		}
	}

	byID := func(s []debt.Debt) []debt.Debt {
		out := append([]debt.Debt(nil), s...)
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		return out
	}
	assert.Equal(t, byID(inserted), byID(drained), "drain must return the same multiset")
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "queue is full: capacity 3 reached", (&CapacityError{Capacity: 3}).Error())
	assert.Equal(t, "debt not found: no debt with ID 12", (&NotFoundError{ID: 12}).Error())
}

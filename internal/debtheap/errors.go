package debtheap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned by New for capacities below one.
	ErrInvalidCapacity = errors.New("capacity must be a positive number")

	// ErrCapacityExceeded is returned when inserting into a full heap.
	ErrCapacityExceeded = errors.New("queue is full")

	// ErrQueueEmpty is returned when extracting or peeking an empty heap.
	ErrQueueEmpty = errors.New("queue is empty")

	// ErrNotFound is returned when no live debt has the requested ID.
	ErrNotFound = errors.New("debt not found")
)

// CapacityError reports a rejected insert together with the fixed capacity.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: capacity %d reached", ErrCapacityExceeded, e.Capacity)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// NotFoundError reports the ID a lookup failed on.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: no debt with ID %d", ErrNotFound, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
